package export

import (
	"encoding/json"
	"io"

	"github.com/strtab/strtab"
)

// writeJSON encodes the view as an array of rows with typed values:
// integers and floats stay numbers, text stays strings.
func writeJSON(w io.Writer, v *strtab.View) error {
	out := make([][]any, v.Rows())
	for r := 0; r < v.Rows(); r++ {
		row := make([]any, v.Cols())
		for c := 0; c < v.Cols(); c++ {
			row[c] = v.Cell(r, c).Value()
		}
		out[r] = row
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(out)
}
