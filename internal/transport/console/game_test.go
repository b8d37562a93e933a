package console

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runSession drives a full game with scripted input and returns the
// transcript written to the console.
func runSession(t *testing.T, input string) string {
	t.Helper()

	output := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	game := NewGame(logger, strings.NewReader(input), output)
	require.NoError(t, game.Run(context.Background()))

	return output.String()
}

func TestGame_Run(t *testing.T) {
	t.Run("X wins by completing the top row", func(t *testing.T) {
		// Given: X plays (0,0),(0,1),(0,2) while O plays (1,1),(1,0),
		// entered as col,row pairs
		input := "0,0\n1,1\n1,0\n0,1\n2,0\n"

		// When: running the session
		transcript := runSession(t, input)

		// Then: the game ends announcing X exactly once
		assert.Equal(t, 1, strings.Count(transcript, "Player X has won -- game over."))
		assert.NotContains(t, transcript, "Player O has won")
		assert.NotContains(t, transcript, "no winner")

		// And: the final render shows the completed top row
		assert.Contains(t, transcript, " X | X | X \n")
	})

	t.Run("Quit at the first prompt exits with no further output", func(t *testing.T) {
		// When: the player quits immediately
		transcript := runSession(t, "q\n")

		// Then: the transcript is exactly banner, empty board, one prompt
		expected := "Moves are row,col with row and col in 0-2; (0,0) is the top left corner.\n" +
			"\n" +
			"   |   |   \n" +
			"-----------\n" +
			"   |   |   \n" +
			"-----------\n" +
			"   |   |   \n" +
			"Enter row,col for next move for X, or q to quit: "
		assert.Equal(t, expected, transcript)
	})

	t.Run("Out of grammar input reports Illegal move and re-prompts the same player", func(t *testing.T) {
		// Given: an input outside the grammar, then quit
		input := "5,5\nq\n"

		// When: running the session
		transcript := runSession(t, input)

		// Then: the move is rejected and X is prompted again
		assert.Contains(t, transcript, "Illegal move.")
		assert.Equal(t, 2, strings.Count(transcript, "for X, or q to quit: "))
		assert.NotContains(t, transcript, "for O, or q to quit: ")
	})

	t.Run("Occupied cell reports Invalid move and leaves the turn with the same player", func(t *testing.T) {
		// Given: O answers with X's cell, then quits
		input := "0,0\n0,0\nq\n"

		// When: running the session
		transcript := runSession(t, input)

		// Then: the second attempt is rejected and O is re-prompted
		assert.Contains(t, transcript, "Invalid move.")
		assert.Equal(t, 2, strings.Count(transcript, "for O, or q to quit: "))
	})

	t.Run("A full board with no winner ends in a draw", func(t *testing.T) {
		// Given: nine moves filling the board with no three in a row,
		// entered as col,row pairs
		input := "0,0\n1,0\n2,0\n1,1\n0,1\n2,1\n1,2\n0,2\n2,2\n"

		// When: running the session
		transcript := runSession(t, input)

		// Then: the game ends announcing the draw exactly once
		assert.Equal(t, 1, strings.Count(transcript, "The board is full, no winner -- game over."))
		assert.NotContains(t, transcript, "has won")
	})

	t.Run("Exhausted input ends the session like a quit", func(t *testing.T) {
		// When: the input source closes before any move
		transcript := runSession(t, "")

		// Then: the session ends after the first prompt with no messages
		assert.True(t, strings.HasSuffix(transcript, "for X, or q to quit: "))
		assert.NotContains(t, transcript, "move.")
		assert.NotContains(t, transcript, "game over.")
	})

	t.Run("A canceled context ends the session before prompting", func(t *testing.T) {
		// Given: a context canceled up front
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		output := &bytes.Buffer{}
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		game := NewGame(logger, strings.NewReader("0,0\n"), output)

		// When: running the session
		require.NoError(t, game.Run(ctx))

		// Then: no prompt was written
		assert.NotContains(t, output.String(), "Enter row,col")
	})
}
