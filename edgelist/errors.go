package edgelist

import (
	"errors"
	"fmt"
)

// ErrMalformedRecord is the sentinel wrapped by every *ParseError.
var ErrMalformedRecord = errors.New("edgelist: malformed record")

// ParseError reports the first record that could not be loaded.
type ParseError struct {
	Line   int    // 1-based line number in the input (header is line 1)
	Reason string // short human-readable cause
	Err    error  // underlying strconv/core error, if any
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("edgelist: line %d: %s: %v", e.Line, e.Reason, e.Err)
	}

	return fmt.Sprintf("edgelist: line %d: %s", e.Line, e.Reason)
}

// Is makes errors.Is(err, ErrMalformedRecord) true for every ParseError.
func (e *ParseError) Is(target error) bool { return target == ErrMalformedRecord }

func (e *ParseError) Unwrap() error { return e.Err }
