package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateWinner(t *testing.T) {
	t.Run("Returns EmptyCell for an empty board", func(t *testing.T) {
		// Given: a fresh board
		board := NewBoard()

		// When: evaluating the winner
		winner := EvaluateWinner(board)

		// Then: there is no winner
		assert.Equal(t, EmptyCell, winner)
	})

	t.Run("Detects every winning line", func(t *testing.T) {
		for _, combo := range WinCombos {
			for _, mark := range []Mark{PlayerX, PlayerO} {
				// Given: a board where only one line is filled with the same mark
				board := NewBoard()
				for _, cell := range combo {
					board[cell] = mark
				}

				// When: evaluating the winner
				winner := EvaluateWinner(board)

				// Then: the owner of the line wins
				assert.Equal(t, mark, winner, "combo %v", combo)
			}
		}
	})

	t.Run("Ignores a line with mixed marks", func(t *testing.T) {
		// Given: a top row with X, X, O
		board := Board{
			PlayerX, PlayerX, PlayerO,
			EmptyCell, EmptyCell, EmptyCell,
			EmptyCell, EmptyCell, EmptyCell,
		}

		// When: evaluating the winner
		winner := EvaluateWinner(board)

		// Then: there is no winner
		assert.Equal(t, EmptyCell, winner)
	})

	t.Run("Returns EmptyCell for a drawn full board", func(t *testing.T) {
		// Given: a full board without a completed line
		board := Board{
			PlayerX, PlayerO, PlayerX,
			PlayerO, PlayerX, PlayerO,
			PlayerO, PlayerX, PlayerO,
		}

		// When: evaluating the winner
		winner := EvaluateWinner(board)

		// Then: a draw is not reported as a winner
		assert.Equal(t, EmptyCell, winner)
	})

	t.Run("Returns the first line in check order", func(t *testing.T) {
		// Given: a board where O owns the top row and X owns the bottom row
		board := Board{
			PlayerO, PlayerO, PlayerO,
			EmptyCell, EmptyCell, EmptyCell,
			PlayerX, PlayerX, PlayerX,
		}

		// When: evaluating the winner
		winner := EvaluateWinner(board)

		// Then: the top row is checked first
		assert.Equal(t, PlayerO, winner)
	})
}

func TestBoard_IsOccupied(t *testing.T) {
	board := NewBoard()
	board[4] = PlayerO

	assert.True(t, board.IsOccupied(4))
	assert.False(t, board.IsOccupied(0))
	assert.True(t, board.IsValidCell(8))
	assert.False(t, board.IsValidCell(9))
	assert.False(t, board.IsValidCell(-1))
}
