package strtab

// Table is a rectangular grid of typed cells. Every row has the same
// length; rows built from shorter input lines are padded with empty Text
// cells, so all downstream stages index by uniform (row, col) coordinates.
// A Table is read-only after construction.
type Table struct {
	rows [][]Cell
}

// NewTable builds a table from rows of cells, padding short rows to the
// width of the longest. Padding never fails; a jagged grid is legal input.
func NewTable(rows [][]Cell) *Table {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	for i, row := range rows {
		for len(row) < width {
			row = append(row, TextCell(""))
		}
		rows[i] = row
	}
	return &Table{rows: rows}
}

// Rows returns the number of rows.
func (t *Table) Rows() int { return len(t.rows) }

// Cols returns the number of columns.
func (t *Table) Cols() int {
	if len(t.rows) == 0 {
		return 0
	}
	return len(t.rows[0])
}

// Cell returns the cell at 0-based (row, col).
func (t *Table) Cell(row, col int) Cell { return t.rows[row][col] }

// buildTable types a raw grid. In ParseForceString mode every cell stays
// Text and force rules are ignored entirely. Otherwise the force rules,
// when they cover a cell's line or column, pick the target type; the
// directive is axis-exclusive, so at most one of the two applies.
func buildTable(grid [][]string, mode ParseMode, force *ForceRules) *Table {
	rows := make([][]Cell, len(grid))
	for r, line := range grid {
		cells := make([]Cell, len(line))
		for c, raw := range line {
			cells[c] = typeCell(raw, r, c, mode, force)
		}
		rows[r] = cells
	}
	return NewTable(rows)
}

func typeCell(raw string, row, col int, mode ParseMode, force *ForceRules) Cell {
	if mode == ParseForceString {
		return TextCell(raw)
	}
	index := row
	if force.Axis() == AxisColumn {
		index = col
	}
	if tag, ok := force.TypeFor(index); ok {
		return ForceCell(raw, tag)
	}
	return AutoCell(raw)
}

// Subtable returns the projection retained by the rules: the cross
// section of the retained rows and columns, in ascending index order
// regardless of the order ranges were written in. Indices past the table
// are dropped silently. Nil rules retain the whole table.
func (t *Table) Subtable(rules *SubtableRules) *Table {
	lines := rules.Lines(t.Rows())
	cols := rules.Columns(t.Cols())
	rows := make([][]Cell, len(lines))
	for i, r := range lines {
		row := make([]Cell, len(cols))
		for j, c := range cols {
			row[j] = t.rows[r][c]
		}
		rows[i] = row
	}
	return &Table{rows: rows}
}
