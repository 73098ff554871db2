package strtab

import (
	"fmt"
	"sort"
)

// ForceRules is the resolved form of a force-parse directive: one axis
// and an index→tag table with O(1) lookup.
type ForceRules struct {
	axis  Axis
	types map[int]TypeTag // 0-based line or column index
}

// ResolveForce merges force-parse specs into a queryable rule set.
//
// A force-parse invocation is axis-exclusive: mixing 'l' and 'c' segments
// fails with [ErrAxisConflict]. Segments without an axis letter inherit
// the invocation's axis; if no segment names one, resolution fails with
// [ErrInvalidRangeSpec]. Two segments assigning different tags to the
// same index fail with [ErrTypeConflict]; assigning the same tag twice is
// an idempotent union, not a conflict.
func ResolveForce(specs []RangeSpec) (*ForceRules, error) {
	if len(specs) == 0 {
		return nil, nil
	}

	axis := AxisNone
	for _, s := range specs {
		if s.Axis == AxisNone {
			continue
		}
		if axis != AxisNone && s.Axis != axis {
			return nil, fmt.Errorf("%w: force-parse cannot use 'l' and 'c' in the same invocation", ErrAxisConflict)
		}
		axis = s.Axis
	}
	if axis == AxisNone {
		return nil, fmt.Errorf("%w: no line or column specified", ErrInvalidRangeSpec)
	}

	types := make(map[int]TypeTag)
	for _, s := range specs {
		for i := s.Start; i <= s.End; i++ {
			if prev, ok := types[i-1]; ok && prev != s.Type {
				return nil, fmt.Errorf("%w: index %d forced to both %q and %q",
					ErrTypeConflict, i, prev, s.Type)
			}
			types[i-1] = s.Type
		}
	}
	return &ForceRules{axis: axis, types: types}, nil
}

// Axis reports which dimension the rules apply to.
func (r *ForceRules) Axis() Axis {
	if r == nil {
		return AxisNone
	}
	return r.axis
}

// TypeFor returns the forced tag for a 0-based line or column index.
func (r *ForceRules) TypeFor(index int) (TypeTag, bool) {
	if r == nil {
		return TagString, false
	}
	t, ok := r.types[index]
	return t, ok
}

// ColorRules is the resolved form of an export-color directive. Line and
// column assignments are kept separately; the per-cell tie-break lives in
// ColorFor.
type ColorRules struct {
	lines map[int]Color
	cols  map[int]Color
}

// ResolveColors merges export-color specs into a queryable rule set.
// Unlike force-parse, color directives may mix axes. When the same axis
// and index is assigned twice, the last segment wins, matching the order
// the assignments would have been applied in.
func ResolveColors(specs []RangeSpec) *ColorRules {
	r := &ColorRules{
		lines: make(map[int]Color),
		cols:  make(map[int]Color),
	}
	for _, s := range specs {
		m := r.lines
		if s.Axis == AxisColumn {
			m = r.cols
		}
		for i := s.Start; i <= s.End; i++ {
			m[i-1] = s.Color
		}
	}
	return r
}

// ColorFor returns the color for a cell at 0-based (line, col). Line
// color takes precedence over column color; this is the documented
// tie-break, not an error condition.
func (r *ColorRules) ColorFor(line, col int) Color {
	if r == nil {
		return ColorDefault
	}
	if c, ok := r.lines[line]; ok {
		return c
	}
	if c, ok := r.cols[col]; ok {
		return c
	}
	return ColorDefault
}

// SubtableRules is the resolved form of an export-subtable directive:
// the sets of line and column indices to retain.
type SubtableRules struct {
	lines map[int]bool
	cols  map[int]bool
}

// ResolveSubtable merges export-subtable specs into retention sets.
func ResolveSubtable(specs []RangeSpec) *SubtableRules {
	r := &SubtableRules{
		lines: make(map[int]bool),
		cols:  make(map[int]bool),
	}
	for _, s := range specs {
		m := r.lines
		if s.Axis == AxisColumn {
			m = r.cols
		}
		for i := s.Start; i <= s.End; i++ {
			m[i-1] = true
		}
	}
	return r
}

// Lines returns the retained 0-based row indices for a table of n rows,
// in ascending order. An empty line set retains every row; indices past
// the table are dropped.
func (r *SubtableRules) Lines(n int) []int {
	if r == nil {
		return allIndices(n)
	}
	return retained(r.lines, n)
}

// Columns returns the retained 0-based column indices for a table of n
// columns, in ascending order, with the same conventions as Lines.
func (r *SubtableRules) Columns(n int) []int {
	if r == nil {
		return allIndices(n)
	}
	return retained(r.cols, n)
}

func retained(set map[int]bool, n int) []int {
	if len(set) == 0 {
		return allIndices(n)
	}
	out := make([]int, 0, len(set))
	for i := range set {
		if i < n {
			out = append(out, i)
		}
	}
	sort.Ints(out)
	return out
}

func allIndices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
