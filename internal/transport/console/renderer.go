package console

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const rowDivider = "-----------"

// RenderBoard formats the board for the console: a blank line, then
// three rows separated by the dashed divider. Empty cells render as
// a single space.
func RenderBoard(board entity.Board) string {
	var builder strings.Builder

	builder.WriteString("\n")
	for row := 0; row < entity.BoardSize; row++ {
		if row > 0 {
			builder.WriteString(rowDivider + "\n")
		}
		fmt.Fprintf(&builder, " %s | %s | %s \n",
			cellGlyph(board.Cell(row, 0)),
			cellGlyph(board.Cell(row, 1)),
			cellGlyph(board.Cell(row, 2)),
		)
	}

	return builder.String()
}

func cellGlyph(cell string) string {
	if cell == entity.EmptyCell {
		return " "
	}
	return cell
}
