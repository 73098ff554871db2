// Package config builds the effective configuration for one run. Values
// layer in a fixed order — built-in defaults, then a TOML or YAML
// settings file, then command-line flags — and the merged result is
// immutable: no component mutates it afterwards.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/strtab/strtab"
)

// Parse modes accepted by the parse_mode option.
const (
	ModeAuto        = "a"
	ModeForceString = "s"
)

// Config is the effective merged configuration.
type Config struct {
	Input          string // input file path; empty means stdin
	Separation     string // cell separator pattern
	EndLine        string // line terminator pattern
	ParseMode      string // "a" (auto) or "s" (force string)
	ForceParse     string // force-parse directive
	ExportColor    string // export-color directive
	ExportSubtable string // export-subtable directive
	Output         string // output file path; empty means console
	LogLevel       string // debug, info, warn, error
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Separation: strtab.DefaultSeparator,
		EndLine:    strtab.DefaultEndLine,
		ParseMode:  ModeAuto,
		LogLevel:   "info",
	}
}

// Overlay is one layer of optional settings. Nil fields leave the value
// below them untouched. The settings file and the CLI each produce one
// overlay.
type Overlay struct {
	Input          *string `toml:"input" yaml:"input"`
	Separation     *string `toml:"separation" yaml:"separation"`
	EndLine        *string `toml:"end_line" yaml:"end_line"`
	ParseMode      *string `toml:"parse_mode" yaml:"parse_mode"`
	ForceParse     *string `toml:"force_parse" yaml:"force_parse"`
	ExportColor    *string `toml:"export_color" yaml:"export_color"`
	ExportSubtable *string `toml:"export_subtable" yaml:"export_subtable"`
	Output         *string `toml:"output" yaml:"output"`
	LogLevel       *string `toml:"log_level" yaml:"log_level"`
}

// LoadOverlay reads a settings file. The format is chosen by extension:
// .toml is TOML, .yaml and .yml are YAML.
func LoadOverlay(path string) (Overlay, error) {
	var o Overlay
	data, err := os.ReadFile(path)
	if err != nil {
		return o, fmt.Errorf("read config: %w", err)
	}
	switch filepath.Ext(path) {
	case ".toml":
		if err := toml.Unmarshal(data, &o); err != nil {
			return o, fmt.Errorf("parse config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &o); err != nil {
			return o, fmt.Errorf("parse config %s: %w", path, err)
		}
	default:
		return o, fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}
	return o, nil
}

// Merge applies an overlay on top of c and returns the result. Each
// option set in the overlay wins; this is the whole precedence rule, so
// layering defaults, file, and CLI is just two Merge calls in order.
func (c Config) Merge(o Overlay) Config {
	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&c.Input, o.Input)
	apply(&c.Separation, o.Separation)
	apply(&c.EndLine, o.EndLine)
	apply(&c.ParseMode, o.ParseMode)
	apply(&c.ForceParse, o.ForceParse)
	apply(&c.ExportColor, o.ExportColor)
	apply(&c.ExportSubtable, o.ExportSubtable)
	apply(&c.Output, o.Output)
	apply(&c.LogLevel, o.LogLevel)
	return c
}

// Mode translates the parse_mode option.
func (c Config) Mode() (strtab.ParseMode, error) {
	switch c.ParseMode {
	case ModeAuto:
		return strtab.ParseAuto, nil
	case ModeForceString:
		return strtab.ParseForceString, nil
	default:
		return strtab.ParseAuto, fmt.Errorf("invalid parse mode %q: must be %q or %q",
			c.ParseMode, ModeAuto, ModeForceString)
	}
}

// Options assembles the pipeline options from the merged configuration.
func (c Config) Options() (strtab.Options, error) {
	mode, err := c.Mode()
	if err != nil {
		return strtab.Options{}, err
	}
	return strtab.Options{
		Separator:      c.Separation,
		EndLine:        c.EndLine,
		Mode:           mode,
		ForceParse:     c.ForceParse,
		ExportColor:    c.ExportColor,
		ExportSubtable: c.ExportSubtable,
	}, nil
}
