package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newFlopState(history ...Action) State {
	return NewState("flop", 100, 500,
		[]string{"Kh", "Qd", "9c"}, []string{"As", "Kd"},
		"button", 2, history)
}

func TestNewStateNormalization(t *testing.T) {
	state := NewState("FLOP", -5, -1, []string{"kh", "qd"}, []string{"as"}, "Button", 2, nil)

	require.Equal(t, "flop", state.Street, "Street should be lower-cased")
	require.Equal(t, "button", state.Position, "Position should be lower-cased")
	require.Equal(t, []string{"KH", "QD"}, state.BoardCards, "Board cards should be upper-cased")
	require.Equal(t, []string{"AS"}, state.HoleCards, "Hole cards should be upper-cased")
	require.Zero(t, state.Pot, "Negative pot should clamp to zero")
	require.Zero(t, state.Stack, "Negative stack should clamp to zero")
}

func TestNewStateCopiesHistory(t *testing.T) {
	history := []Action{Check}
	state := newFlopState(history...)
	history[0] = Fold

	require.Equal(t, []Action{Check}, state.BettingHistory,
		"Mutating the input slice should not affect the state")
}

func TestIsTerminal(t *testing.T) {
	t.Run("empty history is never terminal", func(t *testing.T) {
		require.False(t, newFlopState().IsTerminal())
	})

	t.Run("hand-ending last action is terminal", func(t *testing.T) {
		require.True(t, newFlopState(Fold).IsTerminal())
		require.True(t, newFlopState(Bet, CallShowdown).IsTerminal())
		require.True(t, newFlopState(AllInShowdown).IsTerminal())
	})

	t.Run("live last action is not terminal", func(t *testing.T) {
		require.False(t, newFlopState(Bet).IsTerminal())
		require.False(t, newFlopState(Fold, Check).IsTerminal(),
			"Only the last action decides terminality")
	})
}

func TestHash(t *testing.T) {
	t.Run("equal inputs yield equal hashes", func(t *testing.T) {
		require.Equal(t, newFlopState(Bet).Hash(), newFlopState(Bet).Hash())
	})

	t.Run("history length is part of the key", func(t *testing.T) {
		require.NotEqual(t, newFlopState().Hash(), newFlopState(Check).Hash())
	})

	t.Run("card identity is not part of the key", func(t *testing.T) {
		other := NewState("flop", 100, 500,
			[]string{"2h", "3d", "4c"}, []string{"7s", "2d"}, "button", 2, nil)
		require.Equal(t, newFlopState().Hash(), other.Hash(),
			"Only the board-card count feeds the hash")
	})
}

func TestLegalActions(t *testing.T) {
	t.Run("terminal state has no actions", func(t *testing.T) {
		require.Empty(t, newFlopState(Fold).LegalActions())
	})

	t.Run("first to act may check or bet", func(t *testing.T) {
		require.Equal(t,
			[]Action{Check, BetSmall, BetMedium, BetLarge, AllIn},
			newFlopState().LegalActions())
	})

	t.Run("after a check the bet set repeats", func(t *testing.T) {
		require.Equal(t,
			[]Action{Check, BetSmall, BetMedium, BetLarge, AllIn},
			newFlopState(Check).LegalActions())
	})

	t.Run("facing a bet offers fold, call and raises", func(t *testing.T) {
		require.Equal(t,
			[]Action{Fold, Call, RaiseSmall, RaiseMedium, RaiseLarge, AllIn},
			newFlopState(Bet).LegalActions())
	})

	t.Run("ambiguous prior action falls back to the full set", func(t *testing.T) {
		require.Equal(t,
			[]Action{Fold, Check, Call, BetSmall, BetMedium, BetLarge, AllIn},
			newFlopState(RaiseSmall).LegalActions())
		require.Equal(t,
			[]Action{Fold, Check, Call, BetSmall, BetMedium, BetLarge, AllIn},
			newFlopState(Action("limp")).LegalActions())
	})
}

func TestApply(t *testing.T) {
	base := newFlopState()

	t.Run("small bet moves a third of the pot", func(t *testing.T) {
		next := base.Apply(BetSmall)
		require.InDelta(t, 133, next.Pot, 0.001)
		require.InDelta(t, 467, next.Stack, 0.001)
	})

	t.Run("large bet and raise move a full pot", func(t *testing.T) {
		next := base.Apply(BetLarge)
		require.InDelta(t, 200, next.Pot, 0.001)
		require.InDelta(t, 400, next.Stack, 0.001)

		next = base.Apply(RaiseLarge)
		require.InDelta(t, 200, next.Pot, 0.001)
	})

	t.Run("other bets and raises move half a pot", func(t *testing.T) {
		for _, a := range []Action{Bet, BetMedium, Raise, RaiseSmall, RaiseMedium} {
			next := base.Apply(a)
			require.InDelta(t, 150, next.Pot, 0.001, "%s should move half the pot", a)
		}
	})

	t.Run("call moves a quarter of the pot", func(t *testing.T) {
		next := base.Apply(Call)
		require.InDelta(t, 125, next.Pot, 0.001)
		require.InDelta(t, 475, next.Stack, 0.001)
	})

	t.Run("all-in moves the whole stack", func(t *testing.T) {
		next := base.Apply(AllIn)
		require.InDelta(t, 600, next.Pot, 0.001)
		require.Zero(t, next.Stack)
	})

	t.Run("check and fold move nothing", func(t *testing.T) {
		for _, a := range []Action{Check, Fold} {
			next := base.Apply(a)
			require.Equal(t, base.Pot, next.Pot)
			require.Equal(t, base.Stack, next.Stack)
		}
	})

	t.Run("bets are clamped to the remaining stack", func(t *testing.T) {
		short := NewState("river", 100, 20, nil, nil, "bb", 2, nil)
		next := short.Apply(BetLarge)
		require.InDelta(t, 120, next.Pot, 0.001)
		require.Zero(t, next.Stack, "Stack should clamp at zero")
	})

	t.Run("history extends without mutating the original", func(t *testing.T) {
		first := base.Apply(Check)
		second := first.Apply(BetSmall)

		require.Empty(t, base.BettingHistory)
		require.Equal(t, []Action{Check}, first.BettingHistory)
		require.Equal(t, []Action{Check, BetSmall}, second.BettingHistory)
		require.Equal(t, base.Street, second.Street)
		require.Equal(t, base.BoardCards, second.BoardCards)
		require.Equal(t, base.Position, second.Position)
		require.Equal(t, base.NumPlayers, second.NumPlayers)
	})
}
