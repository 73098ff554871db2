package strtab_test

import (
	"testing"

	"github.com/strtab/strtab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSpecs(t *testing.T, kind strtab.DirectiveKind, s string) []strtab.RangeSpec {
	t.Helper()
	specs, err := strtab.ParseSpecs(kind, s)
	require.NoError(t, err)
	return specs
}

func TestResolveForceAxisConflict(t *testing.T) {
	t.Parallel()
	_, err := strtab.ResolveForce(mustSpecs(t, strtab.ForceParse, "1li,2cf"))
	assert.ErrorIs(t, err, strtab.ErrAxisConflict)
}

func TestResolveForceTypeConflict(t *testing.T) {
	t.Parallel()
	_, err := strtab.ResolveForce(mustSpecs(t, strtab.ForceParse, "1-3li,2lf"))
	assert.ErrorIs(t, err, strtab.ErrTypeConflict)
}

func TestResolveForceEqualTagsUnion(t *testing.T) {
	t.Parallel()
	// Overlapping ranges with the same tag are an idempotent union.
	rules, err := strtab.ResolveForce(mustSpecs(t, strtab.ForceParse, "1-3li,2lu"))
	require.NoError(t, err)
	tag, ok := rules.TypeFor(1)
	assert.True(t, ok)
	assert.Equal(t, strtab.TagInt, tag)
}

func TestResolveForceNoAxis(t *testing.T) {
	t.Parallel()
	_, err := strtab.ResolveForce(mustSpecs(t, strtab.ForceParse, "1i,2f"))
	assert.ErrorIs(t, err, strtab.ErrInvalidRangeSpec)
}

func TestResolveForceAxisInheritance(t *testing.T) {
	t.Parallel()
	rules, err := strtab.ResolveForce(mustSpecs(t, strtab.ForceParse, "1-2li,4f"))
	require.NoError(t, err)
	assert.Equal(t, strtab.AxisLine, rules.Axis())

	tag, ok := rules.TypeFor(0)
	assert.True(t, ok)
	assert.Equal(t, strtab.TagInt, tag)

	tag, ok = rules.TypeFor(3)
	assert.True(t, ok)
	assert.Equal(t, strtab.TagFloat, tag)

	_, ok = rules.TypeFor(2)
	assert.False(t, ok)
}

func TestResolveForceEmpty(t *testing.T) {
	t.Parallel()
	rules, err := strtab.ResolveForce(nil)
	require.NoError(t, err)
	assert.Nil(t, rules)

	// Nil rules answer queries instead of panicking.
	assert.Equal(t, strtab.AxisNone, rules.Axis())
	_, ok := rules.TypeFor(0)
	assert.False(t, ok)
}

func TestResolveColorsLinePrecedence(t *testing.T) {
	t.Parallel()
	rules := strtab.ResolveColors(mustSpecs(t, strtab.ExportColor, "1lr,2lg,3cb"))

	// (line 1, column 3) is covered by both; the line color wins.
	assert.Equal(t, strtab.ColorRed, rules.ColorFor(0, 2))
	assert.Equal(t, strtab.ColorGreen, rules.ColorFor(1, 2))
	assert.Equal(t, strtab.ColorBlue, rules.ColorFor(2, 2))
	assert.Equal(t, strtab.ColorDefault, rules.ColorFor(2, 0))
}

func TestResolveColorsLastWins(t *testing.T) {
	t.Parallel()
	rules := strtab.ResolveColors(mustSpecs(t, strtab.ExportColor, "1lr,1lg"))
	assert.Equal(t, strtab.ColorGreen, rules.ColorFor(0, 0))
}

func TestResolveColorsNil(t *testing.T) {
	t.Parallel()
	var rules *strtab.ColorRules
	assert.Equal(t, strtab.ColorDefault, rules.ColorFor(0, 0))
}

func TestResolveSubtable(t *testing.T) {
	t.Parallel()
	rules := strtab.ResolveSubtable(mustSpecs(t, strtab.ExportSubtable, "1-3l"))
	assert.Equal(t, []int{0, 1, 2}, rules.Lines(5))
	// No column specs: every column is retained.
	assert.Equal(t, []int{0, 1, 2, 3, 4}, rules.Columns(5))
}

func TestResolveSubtableOutOfBounds(t *testing.T) {
	t.Parallel()
	rules := strtab.ResolveSubtable(mustSpecs(t, strtab.ExportSubtable, "10-12l"))
	assert.Empty(t, rules.Lines(5))
}

func TestResolveSubtableAscendingOrder(t *testing.T) {
	t.Parallel()
	// Ranges listed out of order still project in ascending index order.
	rules := strtab.ResolveSubtable(mustSpecs(t, strtab.ExportSubtable, "4l,1-2l"))
	assert.Equal(t, []int{0, 1, 3}, rules.Lines(5))
}
