package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/strtab/strtab"
)

const sheetName = "Sheet1"

// writeXLSX writes the view to a single-sheet workbook with typed cells:
// integers and floats become spreadsheet numbers, text stays text.
func writeXLSX(w io.Writer, v *strtab.View) error {
	f := excelize.NewFile()
	defer f.Close()

	for r := 0; r < v.Rows(); r++ {
		for c := 0; c < v.Cols(); c++ {
			name, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("xlsx cell (%d,%d): %w", r, c, err)
			}
			if err := f.SetCellValue(sheetName, name, v.Cell(r, c).Value()); err != nil {
				return fmt.Errorf("xlsx cell %s: %w", name, err)
			}
		}
	}
	return f.Write(w)
}
