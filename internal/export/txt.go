package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/strtab/strtab"
)

// writeTXT renders one input line per output line, cells joined by a
// single space. Color information never reaches file output.
func writeTXT(w io.Writer, v *strtab.View) error {
	for _, row := range rows(v) {
		if _, err := fmt.Fprintln(w, strings.Join(row, " ")); err != nil {
			return err
		}
	}
	return nil
}
