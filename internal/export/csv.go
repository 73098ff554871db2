package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/strtab/strtab"
)

func writeCSV(w io.Writer, v *strtab.View) error {
	cw := csv.NewWriter(w)
	for _, row := range rows(v) {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeTSV(w io.Writer, v *strtab.View) error {
	for _, row := range rows(v) {
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}
