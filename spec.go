package strtab

import (
	"fmt"
	"strconv"
	"strings"
)

// Axis selects the table dimension a range spec targets.
type Axis int

const (
	// AxisNone marks a force-parse segment that inherits the axis from
	// the rest of its invocation.
	AxisNone Axis = iota
	AxisLine
	AxisColumn
)

// String returns the axis letter used in directive strings.
func (a Axis) String() string {
	switch a {
	case AxisLine:
		return "l"
	case AxisColumn:
		return "c"
	default:
		return ""
	}
}

// TypeTag is the target type of a force-parse directive.
type TypeTag int

const (
	TagString TypeTag = iota
	TagInt
	TagFloat
)

// String returns the tag letter used in directive strings. Both 'u' and
// 'i' parse to TagInt; 'i' is the canonical serialization.
func (t TypeTag) String() string {
	switch t {
	case TagInt:
		return "i"
	case TagFloat:
		return "f"
	default:
		return "s"
	}
}

// DirectiveKind identifies which directive a range spec belongs to. The
// kind decides the tag grammar and whether the axis letter is required.
type DirectiveKind int

const (
	ForceParse DirectiveKind = iota
	ExportColor
	ExportSubtable
)

func (k DirectiveKind) String() string {
	switch k {
	case ForceParse:
		return "force-parse"
	case ExportColor:
		return "export-color"
	default:
		return "export-subtable"
	}
}

// RangeSpec is one parsed directive segment: an inclusive 1-based index
// range on one axis, with a kind-specific tag. Start == End denotes a
// single line or column.
type RangeSpec struct {
	Kind  DirectiveKind
	Axis  Axis
	Start int
	End   int
	Type  TypeTag // ForceParse only
	Color Color   // ExportColor only
}

// String serializes the spec back into directive syntax. Parsing the
// result yields an equal spec, modulo 'u' normalizing to 'i'.
func (s RangeSpec) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(s.Start))
	if s.End != s.Start {
		sb.WriteByte('-')
		sb.WriteString(strconv.Itoa(s.End))
	}
	sb.WriteString(s.Axis.String())
	switch s.Kind {
	case ForceParse:
		sb.WriteString(s.Type.String())
	case ExportColor:
		sb.WriteString(s.Color.letter())
	}
	return sb.String()
}

// FormatSpecs serializes a spec sequence into a directive string.
func FormatSpecs(specs []RangeSpec) string {
	parts := make([]string, len(specs))
	for i, s := range specs {
		parts[i] = s.String()
	}
	return strings.Join(parts, ",")
}

// ParseSpecs parses a directive string into its range specs, in source
// order. It validates syntax only: indices must be positive and ranges
// ordered, but nothing is checked against table dimensions here. Specs
// pointing past the table are dropped later, at application time.
func ParseSpecs(kind DirectiveKind, s string) ([]RangeSpec, error) {
	if s == "" {
		return nil, nil
	}
	segments := strings.Split(s, ",")
	specs := make([]RangeSpec, 0, len(segments))
	for _, seg := range segments {
		spec, err := parseSegment(kind, seg)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func parseSegment(kind DirectiveKind, seg string) (RangeSpec, error) {
	spec := RangeSpec{Kind: kind}

	rest, ok := splitIndex(seg, &spec.Start)
	if !ok {
		return spec, fmt.Errorf("%w: %q: missing or invalid index", ErrInvalidRangeSpec, seg)
	}
	spec.End = spec.Start
	if strings.HasPrefix(rest, "-") {
		rest, ok = splitIndex(rest[1:], &spec.End)
		if !ok {
			return spec, fmt.Errorf("%w: %q: missing or invalid range end", ErrInvalidRangeSpec, seg)
		}
	}
	if spec.Start > spec.End {
		return spec, fmt.Errorf("%w: %q: start of range %d greater than end %d",
			ErrInvalidRangeSpec, seg, spec.Start, spec.End)
	}

	switch kind {
	case ExportSubtable:
		switch rest {
		case "l":
			spec.Axis = AxisLine
		case "c":
			spec.Axis = AxisColumn
		default:
			return spec, fmt.Errorf("%w: %q: must end with 'l' or 'c'", ErrInvalidRangeSpec, seg)
		}

	case ForceParse:
		if len(rest) == 2 {
			switch rest[0] {
			case 'l':
				spec.Axis = AxisLine
			case 'c':
				spec.Axis = AxisColumn
			default:
				return spec, fmt.Errorf("%w: %q: unknown axis %q", ErrInvalidRangeSpec, seg, rest[:1])
			}
			rest = rest[1:]
		}
		if len(rest) != 1 {
			return spec, fmt.Errorf("%w: %q: missing type tag", ErrInvalidRangeSpec, seg)
		}
		switch rest[0] {
		case 's':
			spec.Type = TagString
		case 'u', 'i':
			spec.Type = TagInt
		case 'f':
			spec.Type = TagFloat
		default:
			return spec, fmt.Errorf("%w: %q: type tag must be 's', 'u', 'i' or 'f'", ErrInvalidRangeSpec, seg)
		}

	case ExportColor:
		if len(rest) != 2 {
			return spec, fmt.Errorf("%w: %q: expected axis and color tag", ErrInvalidRangeSpec, seg)
		}
		switch rest[0] {
		case 'l':
			spec.Axis = AxisLine
		case 'c':
			spec.Axis = AxisColumn
		default:
			return spec, fmt.Errorf("%w: %q: unknown axis %q", ErrInvalidRangeSpec, seg, rest[:1])
		}
		color, ok := colorForLetter(rest[1])
		if !ok {
			return spec, fmt.Errorf("%w: %q: color tag must be 'r', 'g', 'b', 'y', 'x' or 'w'", ErrInvalidRangeSpec, seg)
		}
		spec.Color = color
	}

	return spec, nil
}

// splitIndex consumes the leading decimal index of seg into dst and
// returns the remainder. It reports false for an absent or non-positive
// index.
func splitIndex(seg string, dst *int) (string, bool) {
	i := 0
	for i < len(seg) && seg[i] >= '0' && seg[i] <= '9' {
		i++
	}
	if i == 0 {
		return seg, false
	}
	n, err := strconv.Atoi(seg[:i])
	if err != nil || n < 1 {
		return seg, false
	}
	*dst = n
	return seg[i:], true
}
