package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

const banner = "Moves are row,col with row and col in 0-2; (0,0) is the top left corner."

// Game drives a two-player game over a line-oriented console: prompt,
// parse, apply, render, until a terminal state or an explicit quit.
type Game struct {
	logger *slog.Logger
	input  *bufio.Scanner
	output io.Writer
	state  entity.GameState
}

// NewGame returns a game at the starting position reading moves from
// input and writing the transcript to output.
func NewGame(logger *slog.Logger, input io.Reader, output io.Writer) *Game {
	return &Game{
		logger: logger.With("component", "console"),
		input:  bufio.NewScanner(input),
		output: output,
		state:  entity.NewGameState(),
	}
}

// Run blocks until the game reaches a terminal state, the player
// quits, or input is exhausted. All of those are normal exits.
func (that *Game) Run(ctx context.Context) error {
	fmt.Fprintln(that.output, banner)
	fmt.Fprint(that.output, RenderBoard(that.state.Board))

	for {
		if winner, done := tictactoe.Outcome(that.state.Board); done {
			that.printOutcome(winner)
			return nil
		}

		if ctx.Err() != nil {
			that.logger.Info("context canceled, leaving game")
			return nil
		}

		fmt.Fprintf(that.output, "Enter row,col for next move for %s, or q to quit: ", that.state.Turn)

		line, ok := that.readLine()
		if !ok {
			// input source is gone, same as quitting
			that.logger.Info("input closed, leaving game")
			return nil
		}

		command, err := ParseCommand(line)
		if err != nil {
			fmt.Fprintln(that.output, "Illegal move.")
			continue
		}

		if command.Quit {
			that.logger.Info("player quit", "turn", that.state.Turn)
			return nil
		}

		nextState, err := tictactoe.ApplyMove(that.state, command.Move)
		switch {
		case errors.Is(err, apperror.ErrGameFinished):
			fmt.Fprintln(that.output, "Game over.")
			return nil
		case errors.Is(err, apperror.ErrCellOccupied):
			fmt.Fprintln(that.output, "Invalid move.")
			continue
		case err != nil:
			fmt.Fprintln(that.output, "Illegal move.")
			continue
		}

		that.logger.Debug("move applied", "mark", that.state.Turn, "row", command.Move.Row, "col", command.Move.Col)

		that.state = nextState
		fmt.Fprint(that.output, RenderBoard(that.state.Board))
	}
}

func (that *Game) readLine() (string, bool) {
	if !that.input.Scan() {
		return "", false
	}
	return that.input.Text(), true
}

func (that *Game) printOutcome(winner string) {
	switch winner {
	case entity.PlayerX:
		fmt.Fprintln(that.output, "Player X has won -- game over.")
	case entity.PlayerO:
		fmt.Fprintln(that.output, "Player O has won -- game over.")
	default:
		fmt.Fprintln(that.output, "The board is full, no winner -- game over.")
	}

	that.logger.Info("game finished", "winner", winner)
}
