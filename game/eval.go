package game

import "strings"

// Evaluate scores a state in [0, 1] from the hero's perspective.
type Evaluate func(State) float64

const (
	potOddsWeight    = 0.2
	latePositionEdge = 0.1
	earlyPositionTax = 0.05
	aggressionBonus  = 0.05
)

// EvaluatePotOdds is the default heuristic: a 0.5 baseline shifted by the
// stack-to-pot relationship, table position, and how aggressive the betting
// line has been. It is a cheap stand-in for real equity calculation.
func EvaluatePotOdds(s State) float64 {
	score := 0.5

	if s.Pot > 0 && s.Stack > 0 {
		potOdds := s.Pot / (s.Pot + s.Stack)
		score += (potOdds - 0.5) * potOddsWeight
	}

	score += positionScore(s.Position)

	for _, a := range s.BettingHistory {
		if a.Aggressive() {
			score += aggressionBonus
		}
	}

	return clamp01(score)
}

func positionScore(position string) float64 {
	switch position {
	case "button", "btn", "dealer", "cutoff", "co", "late":
		return latePositionEdge
	case "sb", "bb", "utg":
		return -earlyPositionTax
	}
	if strings.Contains(position, "blind") || strings.Contains(position, "early") {
		return -earlyPositionTax
	}
	return 0
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
