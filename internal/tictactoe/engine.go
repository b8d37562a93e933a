package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// WinCombos enumerates the 8 winning lines as board indices:
// 3 rows, 3 columns, 2 diagonals.
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

// ApplyMove validates req against state and returns the successor
// state with the mover's mark placed and the turn toggled. It is a
// pure function of its inputs: on any error the input state comes
// back unchanged.
func ApplyMove(state entity.GameState, req entity.MoveRequest) (entity.GameState, error) {
	if _, done := Outcome(state.Board); done {
		return state, apperror.ErrGameFinished
	}

	if req.Row < 0 || req.Row >= entity.BoardSize || req.Col < 0 || req.Col >= entity.BoardSize {
		return state, fmt.Errorf("%w: %d,%d", apperror.ErrOutOfRange, req.Row, req.Col)
	}

	if state.Board.Cell(req.Row, req.Col) != entity.EmptyCell {
		return state, apperror.ErrCellOccupied
	}

	return entity.GameState{
		Board: state.Board.WithCell(req.Row, req.Col, state.Turn),
		Turn:  toggleMark(state.Turn),
	}, nil
}

func toggleMark(currentMark string) string {
	if currentMark == entity.PlayerX {
		return entity.PlayerO
	}
	return entity.PlayerX
}

// HasWon reports whether mark occupies all three cells of any of the
// 8 winning lines.
func HasWon(board entity.Board, mark string) bool {
	for _, combo := range WinCombos {
		if board[combo[0]] == mark && board[combo[1]] == mark && board[combo[2]] == mark {
			return true
		}
	}
	return false
}

// Outcome evaluates the terminal condition of a board. It returns the
// winning mark, PlayerTie for a full board with no winner, or
// ("", false) while the game is still in progress. Winner checks run
// before the full-board check, so a move that both completes a line
// and fills the board counts as a win, never a tie.
func Outcome(board entity.Board) (string, bool) {
	if HasWon(board, entity.PlayerX) {
		return entity.PlayerX, true
	}

	if HasWon(board, entity.PlayerO) {
		return entity.PlayerO, true
	}

	if board.IsFull() {
		return entity.PlayerTie, true
	}

	return "", false
}
