// Package export renders a projected table view to its output targets:
// the console, or a file whose format is chosen by extension. Colors
// attached to the view only affect console rendering; file exports
// ignore them.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/strtab/strtab"
)

// ErrUnsupportedFormat reports an output path with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Format represents a file output format.
type Format string

const (
	CSV      Format = "csv"
	TSV      Format = "tsv"
	TXT      Format = "txt"
	Markdown Format = "markdown"
	JSON     Format = "json"
	XLSX     Format = "xlsx"
)

// String returns the format name.
func (f Format) String() string { return string(f) }

// DetectFormat infers the output format from a file path's extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return CSV, nil
	case ".tsv":
		return TSV, nil
	case ".txt":
		return TXT, nil
	case ".md", ".markdown":
		return Markdown, nil
	case ".json":
		return JSON, nil
	case ".xls", ".xlsx":
		return XLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Write renders v to w in the given format.
func Write(w io.Writer, f Format, v *strtab.View) error {
	switch f {
	case CSV:
		return writeCSV(w, v)
	case TSV:
		return writeTSV(w, v)
	case TXT:
		return writeTXT(w, v)
	case Markdown:
		return writeMarkdown(w, v)
	case JSON:
		return writeJSON(w, v)
	case XLSX:
		return writeXLSX(w, v)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// WriteFile renders v to path in the format its extension implies. On
// error the file may exist but no partial table is silently kept: the
// error is returned to the caller to act on.
func WriteFile(path string, v *strtab.View) error {
	f, err := DetectFormat(path)
	if err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := Write(out, f, v); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// rows flattens the view into rendered cell strings.
func rows(v *strtab.View) [][]string {
	out := make([][]string, v.Rows())
	for r := 0; r < v.Rows(); r++ {
		row := make([]string, v.Cols())
		for c := 0; c < v.Cols(); c++ {
			row[c] = v.Cell(r, c).String()
		}
		out[r] = row
	}
	return out
}
