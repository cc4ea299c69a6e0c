package assigner

import (
	"context"
	"fmt"

	"github.com/loadoutkit/mod-assigner/internal/metrics"
)

// Engine is the interface implemented by assignment strategies. An Engine
// turns a Request into the per-slot mod assignment and the leftover list of
// mods that could not be placed anywhere.
type Engine interface {
	// Assign computes the assignment for the request. It is a pure,
	// blocking computation; the context threads the logger and is not used
	// for cancellation.
	Assign(ctx context.Context, req Request) (Result, error)
}

// Strategy is an enumeration of the available assignment strategies.
type Strategy int

// enumeration of Strategy
const (
	// ExhaustiveStrategy enumerates every permutation triple of the shared
	// pools and keeps the lexicographically best candidate.
	ExhaustiveStrategy Strategy = iota
)

// EngineConfig holds configuration shared by all engine strategies.
type EngineConfig struct {
	// Metrics instruments the search. May be nil, in which case nothing is
	// recorded.
	Metrics *metrics.SearchMetrics
}

// NewEngine is a factory that creates a new Engine based on the provided
// strategy.
func NewEngine(strategy Strategy, config *EngineConfig) (Engine, error) {
	switch strategy {
	case ExhaustiveStrategy:
		return NewExhaustiveEngine(config)
	default:
		return nil, fmt.Errorf("unsupported assignment strategy: %v", strategy)
	}
}
