package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/strtab/strtab"
)

// Console styling. Borders are grey; cell colors come from the view.
// Styles are applied as the last step, after width computation and
// padding, so escape codes never affect the layout.
var (
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	cellStyles = map[strtab.Color]lipgloss.Style{
		strtab.ColorRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		strtab.ColorGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		strtab.ColorYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		strtab.ColorBlue:   lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		strtab.ColorWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		strtab.ColorGrey:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
)

// Console renders v as a bordered grid with per-cell colors. Rows are
// separated by horizontal rules so jagged input stays readable.
func Console(w io.Writer, v *strtab.View) error {
	widths := consoleWidths(v)
	rule := borderStyle.Render(horizontalRule(widths))

	if _, err := fmt.Fprintln(w, rule); err != nil {
		return err
	}
	for r := 0; r < v.Rows(); r++ {
		if err := consoleRow(w, v, r, widths); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, rule); err != nil {
			return err
		}
	}
	return nil
}

func consoleWidths(v *strtab.View) []int {
	widths := make([]int, v.Cols())
	for r := 0; r < v.Rows(); r++ {
		for c := 0; c < v.Cols(); c++ {
			if cw := runewidth.StringWidth(v.Cell(r, c).String()); cw > widths[c] {
				widths[c] = cw
			}
		}
	}
	return widths
}

// horizontalRule draws "+---+---+" sized to the column widths, each cell
// padded by one space on both sides.
func horizontalRule(widths []int) string {
	var sb strings.Builder
	sb.WriteByte('+')
	for _, w := range widths {
		sb.WriteString(strings.Repeat("-", w+2))
		sb.WriteByte('+')
	}
	return sb.String()
}

func consoleRow(w io.Writer, v *strtab.View, r int, widths []int) error {
	vert := borderStyle.Render("|")
	var sb strings.Builder
	sb.WriteString(vert)
	for c := 0; c < v.Cols(); c++ {
		cell := padCell(v.Cell(r, c).String(), widths[c])
		if style, ok := cellStyles[v.Color(r, c)]; ok {
			cell = style.Render(cell)
		}
		sb.WriteString(" ")
		sb.WriteString(cell)
		sb.WriteString(" ")
		sb.WriteString(vert)
	}
	_, err := fmt.Fprintln(w, sb.String())
	return err
}
