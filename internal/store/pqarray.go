package store

import "github.com/lib/pq"

// stringArray is a thin alias over pq.StringArray so callers scanning
// Postgres text[] columns don't need to import lib/pq directly.
type stringArray = pq.StringArray
