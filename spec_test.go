package strtab_test

import (
	"testing"

	"github.com/strtab/strtab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpecsForce(t *testing.T) {
	t.Parallel()
	specs, err := strtab.ParseSpecs(strtab.ForceParse, "1-2li,4f")
	require.NoError(t, err)
	require.Len(t, specs, 2)

	assert.Equal(t, strtab.AxisLine, specs[0].Axis)
	assert.Equal(t, 1, specs[0].Start)
	assert.Equal(t, 2, specs[0].End)
	assert.Equal(t, strtab.TagInt, specs[0].Type)

	// "4f" has no axis letter; it inherits at resolution time.
	assert.Equal(t, strtab.AxisNone, specs[1].Axis)
	assert.Equal(t, 4, specs[1].Start)
	assert.Equal(t, 4, specs[1].End)
	assert.Equal(t, strtab.TagFloat, specs[1].Type)
}

func TestParseSpecsForceUnsignedTag(t *testing.T) {
	t.Parallel()
	specs, err := strtab.ParseSpecs(strtab.ForceParse, "3lu")
	require.NoError(t, err)
	require.Len(t, specs, 1)
	assert.Equal(t, strtab.TagInt, specs[0].Type, "'u' and 'i' both mean Integer")
}

func TestParseSpecsColor(t *testing.T) {
	t.Parallel()
	specs, err := strtab.ParseSpecs(strtab.ExportColor, "1lr,2lg,3cb")
	require.NoError(t, err)
	require.Len(t, specs, 3)
	assert.Equal(t, strtab.AxisLine, specs[0].Axis)
	assert.Equal(t, strtab.ColorRed, specs[0].Color)
	assert.Equal(t, strtab.ColorGreen, specs[1].Color)
	assert.Equal(t, strtab.AxisColumn, specs[2].Axis)
	assert.Equal(t, strtab.ColorBlue, specs[2].Color)
}

func TestParseSpecsSubtable(t *testing.T) {
	t.Parallel()
	specs, err := strtab.ParseSpecs(strtab.ExportSubtable, "1-3l,1-3c")
	require.NoError(t, err)
	require.Len(t, specs, 2)
	assert.Equal(t, strtab.AxisLine, specs[0].Axis)
	assert.Equal(t, strtab.AxisColumn, specs[1].Axis)
	assert.Equal(t, 1, specs[1].Start)
	assert.Equal(t, 3, specs[1].End)
}

func TestParseSpecsEmpty(t *testing.T) {
	t.Parallel()
	specs, err := strtab.ParseSpecs(strtab.ForceParse, "")
	require.NoError(t, err)
	assert.Nil(t, specs)
}

func TestParseSpecsInvalid(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		kind strtab.DirectiveKind
		in   string
	}{
		{"no index", strtab.ForceParse, "li"},
		{"zero index", strtab.ForceParse, "0li"},
		{"negative index", strtab.ForceParse, "-1li"},
		{"reversed range", strtab.ForceParse, "3-2li"},
		{"missing range end", strtab.ForceParse, "1-li"},
		{"missing type tag", strtab.ForceParse, "1l"},
		{"unknown type tag", strtab.ForceParse, "1lz"},
		{"unknown axis", strtab.ForceParse, "1zi"},
		{"color missing tag", strtab.ExportColor, "1l"},
		{"color unknown tag", strtab.ExportColor, "1lz"},
		{"color missing axis", strtab.ExportColor, "1r"},
		{"subtable missing axis", strtab.ExportSubtable, "4"},
		{"subtable unknown axis", strtab.ExportSubtable, "4x"},
		{"subtable trailing tag", strtab.ExportSubtable, "4li"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := strtab.ParseSpecs(tc.kind, tc.in)
			assert.ErrorIs(t, err, strtab.ErrInvalidRangeSpec)
		})
	}
}

func TestParseSpecsOutOfBoundsNotAnError(t *testing.T) {
	t.Parallel()
	// Bounds are checked against the table at application time, never
	// during parsing.
	_, err := strtab.ParseSpecs(strtab.ExportSubtable, "100-200l")
	assert.NoError(t, err)
}

func TestFormatSpecsRoundTrip(t *testing.T) {
	t.Parallel()
	cases := []struct {
		kind strtab.DirectiveKind
		in   string
	}{
		{strtab.ForceParse, "1-2li,4f"},
		{strtab.ForceParse, "2-2ls"},
		{strtab.ForceParse, "5lu"},
		{strtab.ExportColor, "1lr,2lg,3cb"},
		{strtab.ExportSubtable, "1-3l,1-3c"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			first, err := strtab.ParseSpecs(tc.kind, tc.in)
			require.NoError(t, err)
			second, err := strtab.ParseSpecs(tc.kind, strtab.FormatSpecs(first))
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}
