// Package strtab converts delimited text into a structured, typed table.
//
// The pipeline has three stages: tokenizing the raw input into a grid of
// cell strings, typing each cell as Integer, Float, or Text, and projecting
// a subtable with per-cell color annotations for rendering. The central
// entry points are [Parse], which builds a [Table] from raw text, and
// [Project], which applies subtable and color directives to produce a
// [View] for the output layer.
//
// # Directives
//
// Users steer the pipeline with range-spec directives. A directive is a
// comma-separated list of segments matching
//
//	<index>[-<index>][axis][tag]
//
// where indices are 1-based and inclusive, the axis is 'l' (line) or 'c'
// (column), and the tag depends on the directive kind:
//
//   - [ForceParse] — type tags 's', 'u', 'i', 'f' ('u' and 'i' both mean
//     Integer). Segments may omit the axis and inherit it from the rest of
//     the invocation: "1-2li,4f" forces lines 1-2 and line 4 to Integer
//     and Float. One invocation may target lines or columns, never both.
//   - [ExportColor] — color tags 'r', 'g', 'b', 'y', 'x', 'w'. Line and
//     column segments may be mixed; when a cell is covered by both, the
//     line color wins.
//   - [ExportSubtable] — axis only, no tag. "1-3l,1-3c" selects the cross
//     section of lines 1-3 and columns 1-3.
//
// Use [ParseSpecs] to parse a directive string and [ResolveForce],
// [ResolveColors], or [ResolveSubtable] to turn the specs into queryable
// rule sets.
//
// # Typing
//
// Auto inference tries the Integer grammar first, then Float, then falls
// back to Text: "3" becomes Integer, "3.0" becomes Float, "3.5.1" becomes
// Text. A force-parse directive upgrades specific lines or columns to a
// target type; a cell that does not match the target grammar silently
// falls back to auto inference. [ParseForceString] mode skips inference
// entirely and keeps every cell as Text.
//
// # Errors
//
// Directive-level problems are fatal and abort the run before any output:
//
//   - [ErrInvalidRangeSpec] — malformed segment syntax
//   - [ErrAxisConflict] — one force-parse invocation mixing 'l' and 'c'
//   - [ErrTypeConflict] — two tags disagreeing about the same index
//
// Everything else degrades silently: out-of-bounds indices are dropped at
// application time, and per-cell forced-parse failures fall back to auto
// inference. This split is deliberate; a bad command line should fail
// fast, a bad cell should not.
package strtab
