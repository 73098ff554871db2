package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/strtab/strtab"
	"github.com/strtab/strtab/internal/config"
	"github.com/strtab/strtab/internal/export"
	"github.com/strtab/strtab/internal/input"
)

var flags struct {
	cfgFile        string
	inputPath      string
	separation     string
	endLine        string
	parseMode      string
	forceParse     string
	exportSubtable string
	exportColor    string
	output         string
	logLevel       string
}

var rootCmd = &cobra.Command{
	Use:   "strtab",
	Short: "Parse delimited text into a typed table",
	Long: `strtab converts a delimited character stream into a structured, typed
table and renders a selected subtable to the console or to a file.

Cells are typed automatically (Integer, Float, or Text) or forced per
line/column with a range directive such as '1-2li,4f'. Subtable and
color directives use the same range syntax: '1-3l,1-3c' selects a cross
section, '1lr,3cb' colors line 1 red and column 3 blue.

The output file format follows the extension: .csv, .tsv, .txt, .md,
.json, .xls, .xlsx. Without -o the table renders to the console with
colors applied.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&flags.cfgFile, "config", "", "settings file (.toml, .yaml)")
	rootCmd.Flags().StringVarP(&flags.inputPath, "input", "i", "", "input file path; stdin if not set")
	rootCmd.Flags().StringVarP(&flags.separation, "separation", "s", " ", "cell separator pattern, may be multiple chars")
	rootCmd.Flags().StringVarP(&flags.endLine, "end-line", "e", "\n", "line terminator pattern; if it contains no \\n, all \\n and \\r are stripped first")
	rootCmd.Flags().StringVarP(&flags.parseMode, "parse-mode", "p", "a", "'a' infers cell types, 's' keeps everything text")
	rootCmd.Flags().StringVarP(&flags.forceParse, "force-parse", "f", "", "force lines or columns to a type, e.g. '1-2li,4f'")
	rootCmd.Flags().StringVarP(&flags.exportSubtable, "export-subtable", "S", "", "export only the given lines/columns, e.g. '1-3l,1-3c'")
	rootCmd.Flags().StringVarP(&flags.exportColor, "export-color", "C", "", "color lines/columns on console output, e.g. '1lr,3cb'")
	rootCmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file path; console if not set")
	rootCmd.Flags().StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
}

func run(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if flags.cfgFile != "" {
		overlay, err := config.LoadOverlay(flags.cfgFile)
		if err != nil {
			return err
		}
		cfg = cfg.Merge(overlay)
	}
	cfg = cfg.Merge(cliOverlay(cmd))

	if err := setupLogging(cfg.LogLevel); err != nil {
		return err
	}
	slog.Debug("effective configuration assembled",
		"input", cfg.Input, "output", cfg.Output, "parse_mode", cfg.ParseMode)

	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	raw, err := input.Read(cfg.Input)
	if err != nil {
		return err
	}

	table, err := strtab.Parse(raw, opts)
	if err != nil {
		return err
	}
	view, err := strtab.Project(table, opts)
	if err != nil {
		return err
	}
	slog.Debug("table built", "rows", view.Rows(), "cols", view.Cols())

	if cfg.Output == "" {
		return export.Console(cmd.OutOrStdout(), view)
	}
	return export.WriteFile(cfg.Output, view)
}

// cliOverlay turns explicitly set flags into a config overlay. Only
// changed flags participate, so file-provided settings survive unless
// the user overrides them on the command line.
func cliOverlay(cmd *cobra.Command) config.Overlay {
	var o config.Overlay
	set := func(name string, dst **string, value *string) {
		if cmd.Flags().Changed(name) {
			*dst = value
		}
	}
	set("input", &o.Input, &flags.inputPath)
	set("separation", &o.Separation, &flags.separation)
	set("end-line", &o.EndLine, &flags.endLine)
	set("parse-mode", &o.ParseMode, &flags.parseMode)
	set("force-parse", &o.ForceParse, &flags.forceParse)
	set("export-subtable", &o.ExportSubtable, &flags.exportSubtable)
	set("export-color", &o.ExportColor, &flags.exportColor)
	set("output", &o.Output, &flags.output)
	set("log-level", &o.LogLevel, &flags.logLevel)
	return o
}

func setupLogging(level string) error {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "", "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be debug, info, warn, or error", level)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
	return nil
}
