// Package input reads the raw text for one run. The whole input is
// materialized in memory; the pipeline does not stream.
package input

import (
	"fmt"
	"io"
	"os"
)

// Read returns the raw input text. A non-empty path reads that file;
// an empty path reads standard input until EOF.
func Read(path string) (string, error) {
	if path == "" {
		return ReadFrom(os.Stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

// ReadFrom drains r into a string.
func ReadFrom(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}
