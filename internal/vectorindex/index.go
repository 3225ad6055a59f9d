package vectorindex

import (
	"context"
	"errors"

	"github.com/careerengine/careerengine/internal/taxonomy"
)

// ErrUnavailable corresponds to the VectorIndexUnavailable fault kind
// named in §6/§7: a transient failure reaching the index backend.
var ErrUnavailable = errors.New("vectorindex: index unavailable")

// Filter restricts a query to one partition of the taxonomy (§4.5 step 1:
// "a metadata filter restricting to the expected skill_type").
type Filter struct {
	SkillType taxonomy.SkillType
}

// ScoredNode is one nearest-neighbor hit, ordered by Score descending by
// the Index contract (§6 (c)).
type ScoredNode struct {
	Node  *taxonomy.SkillNode
	Score float64
}

// Index is the taxonomy vector index collaborator: nearest-neighbor query
// by text, returning hits ordered by similarity descending.
type Index interface {
	Query(ctx context.Context, text string, k int, filter Filter) ([]ScoredNode, error)
}
