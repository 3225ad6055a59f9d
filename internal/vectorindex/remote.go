package vectorindex

import (
	"context"
	"time"

	"github.com/sony/gobreaker"
)

// RemoteIndex wraps a production Index implementation (e.g. a hosted
// vector-database client) with a circuit breaker, so repeated transient
// faults against the vector-index backend (§7 "transient faults") stop
// hammering it and surface ErrUnavailable quickly instead.
type RemoteIndex struct {
	inner   Index
	breaker *gobreaker.CircuitBreaker
}

// NewRemoteIndex wraps inner with a breaker that opens after 5 consecutive
// failures and probes again after 30 seconds.
func NewRemoteIndex(inner Index) *RemoteIndex {
	settings := gobreaker.Settings{
		Name:        "vectorindex",
		MaxRequests: 1,
		Interval:    0,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	}
	return &RemoteIndex{inner: inner, breaker: gobreaker.NewCircuitBreaker(settings)}
}

func (r *RemoteIndex) Query(ctx context.Context, text string, k int, filter Filter) ([]ScoredNode, error) {
	result, err := r.breaker.Execute(func() (any, error) {
		return r.inner.Query(ctx, text, k, filter)
	})
	if err != nil {
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			return nil, ErrUnavailable
		}
		return nil, err
	}
	return result.([]ScoredNode), nil
}
