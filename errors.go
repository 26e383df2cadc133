package kind

import "errors"

// Sentinel errors returned by the parsing and scanning entry points.
// The set is closed: no other error value is produced by this package,
// so callers can distinguish every failure with errors.Is().
var (
	// ErrWrongClass indicates a public identifier carries the prefix of a
	// different class than the one it was parsed as.
	ErrWrongClass = errors.New("wrong class")

	// ErrInvalidFormat indicates the identifier text is malformed: the
	// underscore separator is missing, or the value part is not a
	// hyphenated 128-bit hex value.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrEmptyDBID indicates a database scan produced a NULL or empty
	// value where an identifier column was expected.
	ErrEmptyDBID = errors.New("empty db id")
)
