package entity

type Mark = string

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	EmptyCell Mark = ""

	BoardSize = 9
)

// WinCombos - rows, columns, then diagonals. The order decides which line wins
// when a board holds more than one.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a row-major 3x3 grid. It is a value: assigning it copies every cell.
type Board [BoardSize]Mark

func NewBoard() Board {
	return Board{}
}

func (that Board) IsOccupied(cell int) bool {
	return that[cell] != EmptyCell
}

func (that Board) IsValidCell(cell int) bool {
	return cell >= 0 && cell < len(that)
}

// EvaluateWinner - returns the mark of the first completed line, or EmptyCell.
// A full board without a line also yields EmptyCell.
func EvaluateWinner(board Board) Mark {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	return EmptyCell
}
