// Package config loads advisor runs from HCL files: a search block with the
// optimizer settings and an optional hand block describing the snapshot.
package config

import (
	"fmt"
	"time"

	"advisor/game"
	"advisor/searcher"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// File is the root HCL schema.
type File struct {
	Search *SearchBlock `hcl:"search,block"`
	Hand   *HandBlock   `hcl:"hand,block"`
}

// SearchBlock overrides searcher defaults. Pointer fields distinguish
// "unset" from explicit zeros.
type SearchBlock struct {
	Iterations                  *int     `hcl:"iterations,optional"`
	ExplorationConstant         *float64 `hcl:"exploration_constant,optional"`
	TimeLimitMs                 *int     `hcl:"time_limit_ms,optional"`
	UseTranspositionTable       *bool    `hcl:"use_transposition_table,optional"`
	TranspositionTableSize      *int     `hcl:"transposition_table_size,optional"`
	ParallelSimulations         *int     `hcl:"parallel_simulations,optional"`
	ProgressiveWideningConstant *float64 `hcl:"progressive_widening_constant,optional"`
	ProgressiveWideningExponent *float64 `hcl:"progressive_widening_exponent,optional"`
}

// HandBlock describes one decision-point snapshot.
type HandBlock struct {
	Street     string   `hcl:"street"`
	Pot        float64  `hcl:"pot"`
	Stack      float64  `hcl:"stack"`
	Board      []string `hcl:"board,optional"`
	Hole       []string `hcl:"hole,optional"`
	Position   string   `hcl:"position,optional"`
	NumPlayers int      `hcl:"num_players,optional"`
	History    []string `hcl:"history,optional"`
}

// Load reads an HCL file and returns the search configuration plus the hand
// snapshot, if one was declared. Unset search fields keep their defaults.
func Load(path string) (searcher.Config, *game.State, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return searcher.Config{}, nil, fmt.Errorf("parsing %s: %s", path, diags.Error())
	}
	return decode(file.Body)
}

// Parse decodes HCL source from memory; name is used in diagnostics.
func Parse(name string, src []byte) (searcher.Config, *game.State, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, name)
	if diags.HasErrors() {
		return searcher.Config{}, nil, fmt.Errorf("parsing %s: %s", name, diags.Error())
	}
	return decode(file.Body)
}

func decode(body hcl.Body) (searcher.Config, *game.State, error) {
	var f File
	diags := gohcl.DecodeBody(body, nil, &f)
	if diags.HasErrors() {
		return searcher.Config{}, nil, fmt.Errorf("decoding config: %s", diags.Error())
	}

	cfg := searcher.DefaultConfig()
	if s := f.Search; s != nil {
		if s.Iterations != nil {
			cfg.Iterations = *s.Iterations
		}
		if s.ExplorationConstant != nil {
			cfg.ExplorationConstant = *s.ExplorationConstant
		}
		if s.TimeLimitMs != nil {
			cfg.TimeLimit = time.Duration(*s.TimeLimitMs) * time.Millisecond
		}
		if s.UseTranspositionTable != nil {
			cfg.UseTranspositionTable = *s.UseTranspositionTable
		}
		if s.TranspositionTableSize != nil {
			cfg.TranspositionTableSize = *s.TranspositionTableSize
		}
		if s.ParallelSimulations != nil {
			cfg.ParallelSimulations = *s.ParallelSimulations
		}
		if s.ProgressiveWideningConstant != nil {
			cfg.ProgressiveWideningConstant = *s.ProgressiveWideningConstant
		}
		if s.ProgressiveWideningExponent != nil {
			cfg.ProgressiveWideningExponent = *s.ProgressiveWideningExponent
		}
	}
	if err := cfg.Validate(); err != nil {
		return searcher.Config{}, nil, err
	}

	if f.Hand == nil {
		return cfg, nil, nil
	}
	h := f.Hand
	players := h.NumPlayers
	if players == 0 {
		players = 2
	}
	history := make([]game.Action, len(h.History))
	for i, tag := range h.History {
		history[i] = game.ActionFromString(tag)
	}
	state := game.NewState(h.Street, h.Pot, h.Stack, h.Board, h.Hole, h.Position, players, history)
	return cfg, &state, nil
}
