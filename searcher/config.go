package searcher

import (
	"fmt"
	"math"
	"time"
)

// Config controls search breadth, depth and time. Zero is not a usable
// config; start from DefaultConfig and override.
type Config struct {
	// Iterations caps the number of search iterations. Zero means no
	// budget: Search returns fold from an unexpanded root.
	Iterations int

	// ExplorationConstant weights the UCT exploration term.
	ExplorationConstant float64

	// TimeLimit optionally caps wall-clock time, polled between
	// iterations. Zero disables the limit.
	TimeLimit time.Duration

	// UseTranspositionTable enables the heuristic-evaluation cache.
	UseTranspositionTable bool

	// TranspositionTableSize caps cached entries before eviction.
	TranspositionTableSize int

	// ParallelSimulations > 1 runs that many independent root-parallel
	// trees and merges their votes.
	ParallelSimulations int

	// Progressive widening caps a node's children at
	// floor(constant * visits^exponent).
	ProgressiveWideningConstant float64
	ProgressiveWideningExponent float64
}

// DefaultConfig returns the standard search settings.
func DefaultConfig() Config {
	return Config{
		Iterations:                  10000,
		ExplorationConstant:         math.Sqrt2,
		UseTranspositionTable:       true,
		TranspositionTableSize:      100000,
		ParallelSimulations:         1,
		ProgressiveWideningConstant: 0.5,
		ProgressiveWideningExponent: 0.5,
	}
}

// Validate fails fast on configurations that would otherwise surface
// mid-search. Iterations may be zero (an empty budget) but not negative.
func (c Config) Validate() error {
	if c.Iterations < 0 {
		return fmt.Errorf("iterations must not be negative, got %d", c.Iterations)
	}
	if c.ExplorationConstant < 0 {
		return fmt.Errorf("exploration constant must not be negative, got %g", c.ExplorationConstant)
	}
	if c.TimeLimit < 0 {
		return fmt.Errorf("time limit must not be negative, got %s", c.TimeLimit)
	}
	if c.UseTranspositionTable && c.TranspositionTableSize <= 0 {
		return fmt.Errorf("transposition table size must be positive, got %d", c.TranspositionTableSize)
	}
	if c.ParallelSimulations < 1 {
		return fmt.Errorf("parallel simulations must be at least 1, got %d", c.ParallelSimulations)
	}
	if c.ProgressiveWideningConstant < 0 {
		return fmt.Errorf("progressive widening constant must not be negative, got %g", c.ProgressiveWideningConstant)
	}
	if c.ProgressiveWideningExponent < 0 {
		return fmt.Errorf("progressive widening exponent must not be negative, got %g", c.ProgressiveWideningExponent)
	}
	return nil
}
