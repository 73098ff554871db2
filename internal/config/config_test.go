package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/strtab/strtab"
	"github.com/strtab/strtab/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadOverlayTOML(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "strtab.toml", `
separation = ";"
parse_mode = "s"
force_parse = "1-2li"
`)
	o, err := config.LoadOverlay(path)
	require.NoError(t, err)
	require.NotNil(t, o.Separation)
	assert.Equal(t, ";", *o.Separation)
	require.NotNil(t, o.ParseMode)
	assert.Equal(t, "s", *o.ParseMode)
	assert.Nil(t, o.Output)
}

func TestLoadOverlayYAML(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "strtab.yaml", "separation: \"|\"\nend_line: \";\"\n")
	o, err := config.LoadOverlay(path)
	require.NoError(t, err)
	require.NotNil(t, o.Separation)
	assert.Equal(t, "|", *o.Separation)
	require.NotNil(t, o.EndLine)
	assert.Equal(t, ";", *o.EndLine)
}

func TestLoadOverlayUnsupportedFormat(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "strtab.ini", "separation=;")
	_, err := config.LoadOverlay(path)
	assert.Error(t, err)
}

func TestLoadOverlayMissingFile(t *testing.T) {
	t.Parallel()
	_, err := config.LoadOverlay(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestMergePrecedence(t *testing.T) {
	t.Parallel()
	sep := ";"
	force := "1li"
	file := config.Overlay{Separation: &sep, ForceParse: &force}

	cliSep := "|"
	cli := config.Overlay{Separation: &cliSep}

	cfg := config.Default().Merge(file).Merge(cli)

	// CLI wins per option; file-only options survive the second merge.
	assert.Equal(t, "|", cfg.Separation)
	assert.Equal(t, "1li", cfg.ForceParse)
	// Untouched options keep their defaults.
	assert.Equal(t, "\n", cfg.EndLine)
	assert.Equal(t, config.ModeAuto, cfg.ParseMode)
}

func TestMode(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	mode, err := cfg.Mode()
	require.NoError(t, err)
	assert.Equal(t, strtab.ParseAuto, mode)

	cfg.ParseMode = "s"
	mode, err = cfg.Mode()
	require.NoError(t, err)
	assert.Equal(t, strtab.ParseForceString, mode)

	cfg.ParseMode = "x"
	_, err = cfg.Mode()
	assert.Error(t, err)
}

func TestOptions(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	cfg.ForceParse = "1-2li"
	cfg.ExportSubtable = "1-3l"

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, " ", opts.Separator)
	assert.Equal(t, "1-2li", opts.ForceParse)
	assert.Equal(t, "1-3l", opts.ExportSubtable)
}
