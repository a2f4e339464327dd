package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcome_Predicates(t *testing.T) {
	t.Run("None is neither a win nor a draw", func(t *testing.T) {
		assert.True(t, OutcomeNone.IsNone())
		assert.False(t, OutcomeNone.IsWin())
		assert.False(t, OutcomeNone.IsDraw())
	})

	t.Run("Draw is not a win", func(t *testing.T) {
		assert.True(t, OutcomeDraw.IsDraw())
		assert.False(t, OutcomeDraw.IsWin())
		assert.False(t, OutcomeDraw.IsNone())
	})

	t.Run("A player's win is a win", func(t *testing.T) {
		assert.True(t, Win(PlayerX).IsWin())
		assert.False(t, Win(PlayerX).IsNone())
		assert.False(t, Win(PlayerX).IsDraw())
	})
}

func TestOutcome_Winner(t *testing.T) {
	t.Run("Returns the player for a win outcome", func(t *testing.T) {
		// Given: a win for Player O
		outcome := Win(PlayerO)

		// When: extracting the winner
		winner, ok := outcome.Winner()

		// Then: Player O is reported
		require.True(t, ok)
		assert.Equal(t, PlayerO, winner)
	})

	t.Run("Reports no winner for none and draw", func(t *testing.T) {
		for _, outcome := range []Outcome{OutcomeNone, OutcomeDraw} {
			_, ok := outcome.Winner()
			assert.False(t, ok)
		}
	})
}
