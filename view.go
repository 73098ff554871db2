package strtab

// View is the final renderable projection: the retained cells plus a
// color per cell. Colors resolve against the cell's position in the
// original table, so a subtable keeps the colors its cells had before
// projection.
type View struct {
	cells  [][]Cell
	colors [][]Color
}

// project builds a view from the retained row/column indices of t.
func project(t *Table, sub *SubtableRules, colors *ColorRules) *View {
	lines := sub.Lines(t.Rows())
	cols := sub.Columns(t.Cols())

	v := &View{
		cells:  make([][]Cell, len(lines)),
		colors: make([][]Color, len(lines)),
	}
	for i, r := range lines {
		v.cells[i] = make([]Cell, len(cols))
		v.colors[i] = make([]Color, len(cols))
		for j, c := range cols {
			v.cells[i][j] = t.Cell(r, c)
			v.colors[i][j] = colors.ColorFor(r, c)
		}
	}
	return v
}

// Rows returns the number of retained rows.
func (v *View) Rows() int { return len(v.cells) }

// Cols returns the number of retained columns.
func (v *View) Cols() int {
	if len(v.cells) == 0 {
		return 0
	}
	return len(v.cells[0])
}

// Cell returns the cell at 0-based (row, col) of the view.
func (v *View) Cell(row, col int) Cell { return v.cells[row][col] }

// Color returns the color attached to the cell at 0-based (row, col).
func (v *View) Color(row, col int) Color { return v.colors[row][col] }
