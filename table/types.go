// SPDX-License-Identifier: MIT

package table

import (
	"errors"
	"fmt"
)

// DefaultDelimiter separates the three columns of a row.
const DefaultDelimiter = ";"

// Sentinel errors returned by the parser.
var (
	// ErrMalformedRow indicates a row that does not have exactly three columns,
	// a list column that is not wrapped in brackets, or a repeated target.
	ErrMalformedRow = errors.New("table: malformed row")

	// ErrLengthMismatch indicates connection and distance lists of different lengths.
	ErrLengthMismatch = errors.New("table: connection and distance counts differ")

	// ErrBadDistance indicates a negative, NaN or infinite distance.
	ErrBadDistance = errors.New("table: distance must be finite and non-negative")

	// ErrSelfLink indicates a row that links a waypoint to itself.
	ErrSelfLink = errors.New("table: waypoint links to itself")

	// ErrEmptyDelimiter indicates WithDelimiter("").
	ErrEmptyDelimiter = errors.New("table: delimiter is empty")
)

// ParseError locates a failure in the input.
type ParseError struct {
	Line int    // 1-based line number
	Row  string // offending row text
	Err  error  // underlying cause
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("table: line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Options configures reading and writing.
type Options struct {
	Delimiter string // column separator, default ";"
}

// Option represents a functional option for Parse and Write.
type Option func(*Options)

// WithDelimiter overrides the column separator.
func WithDelimiter(delim string) Option {
	return func(o *Options) {
		o.Delimiter = delim
	}
}

func buildOptions(opts []Option) (Options, error) {
	cfg := Options{Delimiter: DefaultDelimiter}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Delimiter == "" {
		return cfg, ErrEmptyDelimiter
	}

	return cfg, nil
}
