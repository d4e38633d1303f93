package rest

import (
	"strconv"

	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
)

const startLabel = "Go to game start"

type moveItem struct {
	Move  int    `json:"move"`
	Label string `json:"label"`
}

type sessionResponse struct {
	ID          string       `json:"id"`
	Board       entity.Board `json:"board"`
	Turn        string       `json:"turn"`
	Winner      string       `json:"winner"`
	Status      string       `json:"status"`
	CurrentMove int          `json:"current_move"`
	Moves       []moveItem   `json:"moves"`
}

// statusText - a full board without a winner still reads "Next player".
func statusText(view entity.View) string {
	if view.Winner != entity.EmptyCell {
		return "Winner: " + view.Winner
	}
	return "Next player: " + view.Turn
}

func moveLabel(move int) string {
	if move == 0 {
		return startLabel
	}
	return "Go to move #" + strconv.Itoa(move)
}

func newSessionResponse(session *entity.Session) sessionResponse {
	view := session.CurrentView()

	moves := make([]moveItem, session.Len())
	for move := range moves {
		moves[move] = moveItem{Move: move, Label: moveLabel(move)}
	}

	return sessionResponse{
		ID:          session.ID,
		Board:       view.Board,
		Turn:        view.Turn,
		Winner:      view.Winner,
		Status:      statusText(view),
		CurrentMove: session.CurrentIndex,
		Moves:       moves,
	}
}
