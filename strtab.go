package strtab

import "fmt"

// ParseMode selects between type inference and verbatim text.
type ParseMode int

const (
	// ParseAuto infers each cell's type: Integer, then Float, then Text.
	ParseAuto ParseMode = iota
	// ParseForceString keeps every cell as Text. Force-parse directives
	// for numeric types are meaningless in this mode and are ignored,
	// not errored.
	ParseForceString
)

// Options carries the effective configuration for one pipeline run. The
// directive fields hold raw directive strings; empty strings mean the
// directive is absent. Options is consumed read-only.
type Options struct {
	Separator string // cell separator pattern, default " "
	EndLine   string // line terminator pattern, default "\n"
	Mode      ParseMode

	ForceParse     string // force-parse directive, e.g. "1-2li,4f"
	ExportColor    string // export-color directive, e.g. "1lr,2cg"
	ExportSubtable string // export-subtable directive, e.g. "1-3l,1-3c"
}

// Parse tokenizes and types raw input into a Table.
//
// A malformed or conflicting force-parse directive is fatal and returns
// the resolution error unchanged; no table is produced. Per-cell forced
// parses that fail fall back to auto inference silently.
func Parse(raw string, opts Options) (*Table, error) {
	force, err := forceRules(opts)
	if err != nil {
		return nil, err
	}
	grid := Tokenize(raw, opts.Separator, opts.EndLine)
	return buildTable(grid, opts.Mode, force), nil
}

func forceRules(opts Options) (*ForceRules, error) {
	if opts.Mode == ParseForceString || opts.ForceParse == "" {
		return nil, nil
	}
	specs, err := ParseSpecs(ForceParse, opts.ForceParse)
	if err != nil {
		return nil, fmt.Errorf("force-parse: %w", err)
	}
	return ResolveForce(specs)
}

// Project applies the subtable and color directives of opts to t and
// returns the renderable view. Malformed directives are fatal; ranges
// pointing past the table are dropped silently.
func Project(t *Table, opts Options) (*View, error) {
	subSpecs, err := ParseSpecs(ExportSubtable, opts.ExportSubtable)
	if err != nil {
		return nil, fmt.Errorf("export-subtable: %w", err)
	}
	colorSpecs, err := ParseSpecs(ExportColor, opts.ExportColor)
	if err != nil {
		return nil, fmt.Errorf("export-color: %w", err)
	}

	var sub *SubtableRules
	if len(subSpecs) > 0 {
		sub = ResolveSubtable(subSpecs)
	}
	var colors *ColorRules
	if len(colorSpecs) > 0 {
		colors = ResolveColors(colorSpecs)
	}
	return project(t, sub, colors), nil
}
