package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
)

// Session - one game with its full move history. It is not safe for concurrent use.
type Session struct {
	ID           string  `json:"id"`
	History      []Board `json:"history"`
	CurrentIndex int     `json:"current_move"`
}

// View - what a renderer needs to draw the current snapshot.
type View struct {
	Board  Board
	Turn   Mark
	Winner Mark
}

func NewSession(id string) *Session {
	return &Session{
		ID:           id,
		History:      []Board{NewBoard()},
		CurrentIndex: 0,
	}
}

func (that *Session) Len() int {
	return len(that.History)
}

func (that *Session) CurrentBoard() Board {
	return that.History[that.CurrentIndex]
}

// Turn - X moves on even snapshots, O on odd ones, whichever branch produced them.
func (that *Session) Turn() Mark {
	if that.CurrentIndex%2 == 0 {
		return PlayerX
	}
	return PlayerO
}

func (that *Session) Winner() Mark {
	return EvaluateWinner(that.CurrentBoard())
}

func (that *Session) CurrentView() View {
	return View{
		Board:  that.CurrentBoard(),
		Turn:   that.Turn(),
		Winner: that.Winner(),
	}
}

// ApplyMove - marks cell for the player to move. A move on an occupied cell or on a
// board that already has a winner is ignored and reported as not applied.
// Snapshots after CurrentIndex are dropped before the new board is appended.
func (that *Session) ApplyMove(cell int) (bool, error) {
	current := that.CurrentBoard()

	if !current.IsValidCell(cell) {
		return false, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if EvaluateWinner(current) != EmptyCell || current.IsOccupied(cell) {
		return false, nil
	}

	next := current
	next[cell] = that.Turn()

	history := make([]Board, that.CurrentIndex+1, that.CurrentIndex+2)
	copy(history, that.History[:that.CurrentIndex+1])

	that.History = append(history, next)
	that.CurrentIndex = len(that.History) - 1

	return true, nil
}

// JumpTo - moves the view to an earlier or later snapshot without touching history.
func (that *Session) JumpTo(index int) error {
	if index < 0 || index >= len(that.History) {
		return fmt.Errorf("%w: move %d of %d", apperror.ErrInvalidMove, index, len(that.History))
	}

	that.CurrentIndex = index

	return nil
}

// Validate - checks a session loaded from storage before it is used.
func (that *Session) Validate() error {
	if len(that.History) == 0 {
		return fmt.Errorf("%w: empty history", apperror.ErrInvalidSession)
	}

	if that.CurrentIndex < 0 || that.CurrentIndex >= len(that.History) {
		return fmt.Errorf("%w: current move %d out of %d", apperror.ErrInvalidSession, that.CurrentIndex, len(that.History))
	}

	return nil
}

func (that *Session) Clone() *Session {
	history := make([]Board, len(that.History))
	copy(history, that.History)

	return &Session{
		ID:           that.ID,
		History:      history,
		CurrentIndex: that.CurrentIndex,
	}
}
