package console

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// Command is one line of player input: either a quit request or a
// move.
type Command struct {
	Quit bool
	Move entity.MoveRequest
}

// ParseCommand interprets one input line. The grammar is the literal
// "q", or two digits in 0-2 separated by a comma. The pair reads
// column first: "0,2" addresses column 0, row 2.
func ParseCommand(line string) (Command, error) {
	line = strings.TrimSpace(line)

	if line == "q" {
		return Command{Quit: true}, nil
	}

	if len(line) != 3 || line[1] != ',' {
		return Command{}, fmt.Errorf("%w: %q", apperror.ErrIllegalInput, line)
	}

	col, colOK := digit(line[0])
	row, rowOK := digit(line[2])
	if !colOK || !rowOK {
		return Command{}, fmt.Errorf("%w: %q", apperror.ErrIllegalInput, line)
	}

	return Command{Move: entity.MoveRequest{Row: row, Col: col}}, nil
}

func digit(char byte) (int, bool) {
	if char < '0' || char > '2' {
		return 0, false
	}
	return int(char - '0'), true
}
