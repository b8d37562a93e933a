package entity

const (
	PlayerX = "X"
	PlayerO = "O"

	// PlayerTie marks a finished game with no winner.
	PlayerTie = "-"

	EmptyCell = ""

	BoardSize = 3
)

// Board is a 3x3 grid stored row-major, addressed by row*3+col with
// row and col each in 0-2. It is a plain value: assignment copies the
// whole array, and every update operation returns a new Board without
// touching its receiver.
type Board [BoardSize * BoardSize]string

// Cell returns the mark at (row, col), or EmptyCell.
func (that Board) Cell(row, col int) string {
	return that[row*BoardSize+col]
}

// WithCell returns a copy of the board with the one cell at (row, col)
// set to mark. Emptiness of the target cell is the move engine's
// concern, not enforced here.
func (that Board) WithCell(row, col int, mark string) Board {
	next := that
	next[row*BoardSize+col] = mark
	return next
}

// IsFull reports whether all nine cells are occupied.
func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}
	return true
}

// GameState pairs a board with the mark that moves next. States are
// values: applying a move produces a fresh GameState and the previous
// one stays valid.
type GameState struct {
	Board Board
	Turn  string
}

// NewGameState returns the starting position: empty board, X to move.
func NewGameState() GameState {
	return GameState{Turn: PlayerX}
}

// MoveRequest is a cell address produced by the input parser, consumed
// once by move application and never stored.
type MoveRequest struct {
	Row int
	Col int
}
