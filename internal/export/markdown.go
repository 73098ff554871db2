package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/strtab/strtab"
)

// writeMarkdown renders a GitHub-flavored Markdown table. The view has
// no out-of-band header, so the first row serves as the header row.
func writeMarkdown(w io.Writer, v *strtab.View) error {
	all := rows(v)
	if len(all) == 0 {
		return nil
	}
	numCols := len(all[0])

	// Column widths, minimum 3 for the separator dashes.
	widths := make([]int, numCols)
	for _, row := range all {
		for i, cell := range row {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	if err := writeMarkdownRow(w, all[0], widths); err != nil {
		return err
	}

	sep := make([]string, numCols)
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}

	for _, row := range all[1:] {
		if err := writeMarkdownRow(w, row, widths); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		padded[i] = padCell(cell, width)
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}

// padCell left-aligns s in a field of the given display width.
func padCell(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}
