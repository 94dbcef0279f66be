package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestActionClassification(t *testing.T) {
	t.Run("bet family faces the next player with a bet", func(t *testing.T) {
		for _, a := range []Action{Bet, BetSmall, BetMedium, BetLarge} {
			require.True(t, a.FacingBet(), "%s should count as a bet", a)
		}
	})

	t.Run("raises do not count as facing a bet", func(t *testing.T) {
		for _, a := range []Action{Raise, RaiseSmall, RaiseMedium, RaiseLarge, AllIn, Check, Call, Fold} {
			require.False(t, a.FacingBet(), "%s should not count as a bet", a)
		}
	})

	t.Run("hand-ending tags", func(t *testing.T) {
		for _, a := range []Action{Fold, CallShowdown, AllInShowdown} {
			require.True(t, a.EndsHand(), "%s should end the hand", a)
		}
		for _, a := range []Action{Check, Call, Bet, AllIn} {
			require.False(t, a.EndsHand(), "%s should not end the hand", a)
		}
	})

	t.Run("aggressive tags cover bets, raises and all-ins", func(t *testing.T) {
		for _, a := range []Action{Bet, BetSmall, BetLarge, Raise, RaiseMedium, AllIn, AllInShowdown} {
			require.True(t, a.Aggressive(), "%s should be aggressive", a)
		}
		for _, a := range []Action{Fold, Check, Call, CallShowdown} {
			require.False(t, a.Aggressive(), "%s should be passive", a)
		}
	})
}

func TestActionFromString(t *testing.T) {
	t.Run("normalizes case and whitespace", func(t *testing.T) {
		require.Equal(t, BetSmall, ActionFromString(" Bet_Small "))
		require.Equal(t, Fold, ActionFromString("FOLD"))
	})

	t.Run("accepts all-in aliases", func(t *testing.T) {
		require.Equal(t, AllIn, ActionFromString("all-in"))
		require.Equal(t, AllIn, ActionFromString("all_in"))
		require.Equal(t, AllInShowdown, ActionFromString("all_in_showdown"))
	})

	t.Run("keeps unknown tags lower-cased", func(t *testing.T) {
		require.Equal(t, Action("limp"), ActionFromString("Limp"))
	})
}
