package game

import "strings"

// Action is one betting decision in the abstracted game tree.
type Action string

const (
	Fold        Action = "fold"
	Check       Action = "check"
	Call        Action = "call"
	Bet         Action = "bet"
	BetSmall    Action = "bet_small"
	BetMedium   Action = "bet_medium"
	BetLarge    Action = "bet_large"
	Raise       Action = "raise"
	RaiseSmall  Action = "raise_small"
	RaiseMedium Action = "raise_medium"
	RaiseLarge  Action = "raise_large"
	AllIn       Action = "allin"

	// Showdown tags only ever appear in betting history, never as a
	// recommendation.
	CallShowdown  Action = "call_showdown"
	AllInShowdown Action = "allin_showdown"
)

// FacingBet reports whether a player acting after this action is facing a
// bet. Raises deliberately do not count: history ending in a raise falls
// through to the ambiguous action set.
func (a Action) FacingBet() bool {
	switch a {
	case Bet, BetSmall, BetMedium, BetLarge:
		return true
	}
	return false
}

// IsCheck reports whether the action passed without betting.
func (a Action) IsCheck() bool {
	return a == Check
}

// EndsHand reports whether the action closes out the hand.
func (a Action) EndsHand() bool {
	switch a {
	case Fold, CallShowdown, AllInShowdown:
		return true
	}
	return false
}

// Aggressive reports whether the action puts chips in beyond a call.
func (a Action) Aggressive() bool {
	switch a {
	case Bet, BetSmall, BetMedium, BetLarge,
		Raise, RaiseSmall, RaiseMedium, RaiseLarge,
		AllIn, AllInShowdown:
		return true
	}
	return false
}

func (a Action) String() string {
	return string(a)
}

// ActionFromString normalizes a free-form tag from the detection pipeline.
// Unknown tags are kept as-is after lower-casing; classification methods
// treat them as ambiguous prior actions.
func ActionFromString(s string) Action {
	switch tag := strings.ToLower(strings.TrimSpace(s)); tag {
	case "all-in", "all_in":
		return AllIn
	case "all-in_showdown", "all_in_showdown":
		return AllInShowdown
	default:
		return Action(tag)
	}
}
