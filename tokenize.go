package strtab

import "strings"

// Default split patterns.
const (
	DefaultSeparator = " "
	DefaultEndLine   = "\n"
)

// Tokenize splits raw input into a grid of cell strings. Lines are split
// by the end-line pattern, cells by the separator pattern; both are
// literal matches, not regexps, and may be several characters long. When
// the end-line pattern contains no '\n', all '\n' and '\r' characters are
// stripped first so a custom terminator works on line-broken input.
//
// Cells are trimmed of surrounding whitespace; empty cells and lines
// without any cells are discarded. There is no quoting or escaping: a
// separator occurring inside intended cell content cannot be
// distinguished.
func Tokenize(raw, sep, endLine string) [][]string {
	if sep == "" {
		sep = DefaultSeparator
	}
	if endLine == "" {
		endLine = DefaultEndLine
	}
	if !strings.Contains(endLine, "\n") {
		raw = strings.NewReplacer("\n", "", "\r", "").Replace(raw)
	}

	var grid [][]string
	for _, line := range strings.Split(raw, endLine) {
		line = strings.TrimSpace(line)
		var cells []string
		for _, cell := range strings.Split(line, sep) {
			cell = strings.TrimSpace(cell)
			if cell != "" {
				cells = append(cells, cell)
			}
		}
		if len(cells) > 0 {
			grid = append(grid, cells)
		}
	}
	return grid
}
