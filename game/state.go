package game

import (
	"fmt"
	"strings"
)

// Streets recognized by the detection pipeline.
const (
	Preflop = "preflop"
	Flop    = "flop"
	Turn    = "turn"
	River   = "river"
)

// State is a snapshot of one decision point in a hand. It is immutable after
// construction: transitions go through Apply, which returns a new State.
type State struct {
	Street         string
	Pot            float64
	Stack          float64
	BoardCards     []string
	HoleCards      []string
	Position       string
	NumPlayers     int
	BettingHistory []Action
}

// NewState normalizes a raw snapshot: street and position to lower case,
// card codes to upper case, negative chip amounts clamped to zero. Card and
// history slices are copied so the caller cannot mutate the state afterwards.
func NewState(street string, pot, stack float64, board, hole []string, position string, numPlayers int, history []Action) State {
	return State{
		Street:         strings.ToLower(street),
		Pot:            max(pot, 0),
		Stack:          max(stack, 0),
		BoardCards:     NormalizeCards(board),
		HoleCards:      NormalizeCards(hole),
		Position:       strings.ToLower(position),
		NumPlayers:     numPlayers,
		BettingHistory: append([]Action(nil), history...),
	}
}

// IsTerminal reports whether the last action closed out the hand. A state
// with no history is never terminal.
func (s State) IsTerminal() bool {
	if len(s.BettingHistory) == 0 {
		return false
	}
	return s.BettingHistory[len(s.BettingHistory)-1].EndsHand()
}

// Hash is the transposition key: street, chip counts, board-card count and
// history length. Deliberately coarse; the table it feeds is a heuristic
// cache, not a correctness-critical index.
func (s State) Hash() string {
	return fmt.Sprintf("%s|%.2f|%.2f|%d|%d",
		s.Street, s.Pot, s.Stack, len(s.BoardCards), len(s.BettingHistory))
}

// LegalActions derives the action set for this decision point from the last
// history entry. The returned order is the expansion order.
func (s State) LegalActions() []Action {
	if s.IsTerminal() {
		return nil
	}
	if len(s.BettingHistory) == 0 {
		return []Action{Check, BetSmall, BetMedium, BetLarge, AllIn}
	}
	last := s.BettingHistory[len(s.BettingHistory)-1]
	switch {
	case last.FacingBet():
		return []Action{Fold, Call, RaiseSmall, RaiseMedium, RaiseLarge, AllIn}
	case last.IsCheck():
		return []Action{Check, BetSmall, BetMedium, BetLarge, AllIn}
	default:
		// Ambiguous prior action (raise, unknown tag): full superset.
		return []Action{Fold, Check, Call, BetSmall, BetMedium, BetLarge, AllIn}
	}
}

// Apply plays an action and returns the successor state. Chip movement is a
// simplified forward model, not a rules engine: bets and raises move a fixed
// fraction of the current pot, calls a quarter pot, all-in the whole stack.
// Amounts are clamped to the remaining stack.
func (s State) Apply(a Action) State {
	var amount float64
	switch {
	case a == AllIn || a == AllInShowdown:
		amount = s.Stack
	case a == Call || a == CallShowdown:
		amount = 0.25 * s.Pot
	case a == BetSmall:
		amount = 0.33 * s.Pot
	case a == BetLarge || a == RaiseLarge:
		amount = s.Pot
	case a.Aggressive():
		amount = 0.5 * s.Pot
	}
	if amount > s.Stack {
		amount = s.Stack
	}

	history := make([]Action, len(s.BettingHistory)+1)
	copy(history, s.BettingHistory)
	history[len(history)-1] = a

	next := s
	next.Pot = s.Pot + amount
	next.Stack = s.Stack - amount
	next.BettingHistory = history
	return next
}
