package strtab

import (
	"regexp"
	"strconv"
)

// Kind is the inferred or forced scalar type of a cell.
type Kind int

const (
	KindText Kind = iota
	KindInt
	KindFloat
)

// String returns the kind name used in debug output.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "str"
	}
}

// Cell is one typed table cell. The variant is decided once, when the
// cell is created, and never changes afterwards. For KindText the value
// is Raw itself.
type Cell struct {
	Raw   string
	Kind  Kind
	Int   int64
	Float float64
}

// The accepted number grammars. Deliberately narrower than strconv:
// no hex, no "Inf"/"NaN", no underscores.
var (
	intPattern   = regexp.MustCompile(`^[+-]?[0-9]+$`)
	floatPattern = regexp.MustCompile(`^[+-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)([eE][+-]?[0-9]+)?$`)
)

// AutoCell classifies a raw string by trying the Integer grammar first,
// then Float, then falling back to Text. The order matters: "3" becomes
// Integer, "3.0" becomes Float, "3.5.1" becomes Text.
func AutoCell(raw string) Cell {
	if intPattern.MatchString(raw) {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return Cell{Raw: raw, Kind: KindInt, Int: v}
		}
		// Matches the grammar but overflows int64; Float is the next
		// grammar in auto order.
	}
	if floatPattern.MatchString(raw) {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return Cell{Raw: raw, Kind: KindFloat, Float: v}
		}
	}
	return Cell{Raw: raw, Kind: KindText}
}

// ForceCell parses raw as the tagged type. A raw string that does not
// match the target grammar silently falls back to [AutoCell]: a force
// directive only upgrades parsing, it never fails a cell.
func ForceCell(raw string, tag TypeTag) Cell {
	switch tag {
	case TagInt:
		if intPattern.MatchString(raw) {
			if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
				return Cell{Raw: raw, Kind: KindInt, Int: v}
			}
		}
	case TagFloat:
		if floatPattern.MatchString(raw) {
			if v, err := strconv.ParseFloat(raw, 64); err == nil {
				return Cell{Raw: raw, Kind: KindFloat, Float: v}
			}
		}
	case TagString:
		return TextCell(raw)
	}
	return AutoCell(raw)
}

// TextCell wraps raw verbatim, without inference.
func TextCell(raw string) Cell {
	return Cell{Raw: raw, Kind: KindText}
}

// String renders the cell value in canonical form. Integers normalize
// away leading '+' and leading zeros ("+007" renders "7"); floats use the
// shortest representation that round-trips.
func (c Cell) String() string {
	switch c.Kind {
	case KindInt:
		return strconv.FormatInt(c.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(c.Float, 'g', -1, 64)
	default:
		return c.Raw
	}
}

// Value returns the typed value for encoders: int64, float64, or string.
func (c Cell) Value() any {
	switch c.Kind {
	case KindInt:
		return c.Int
	case KindFloat:
		return c.Float
	default:
		return c.Raw
	}
}
