package strtab

import "errors"

// Sentinel errors for programmatic error handling. All three are fatal
// configuration errors: callers should abort before producing output.
var (
	ErrInvalidRangeSpec = errors.New("invalid range spec")
	ErrAxisConflict     = errors.New("axis conflict")
	ErrTypeConflict     = errors.New("type conflict")
)
