// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package period

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidFormat is matched by every *ParseError via errors.Is.
var ErrInvalidFormat = errors.New("invalid period format")

// ParseError describes why a string could not be parsed as a Period.
type ParseError struct {
	// Input is the full string given to Parse.
	Input string

	// Pos is the byte offset in Input where parsing failed.
	Pos int

	Reason string

	// Err is the underlying strconv error, if any.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("period: cannot parse %q at offset %d: %s: %s", e.Input, e.Pos, e.Reason, e.Err)
	}
	return fmt.Sprintf("period: cannot parse %q at offset %d: %s", e.Input, e.Pos, e.Reason)
}

// Unwrap implements the implicit interface for usage with errors.Is and errors.As.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrInvalidFormat.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidFormat
}

// unit designators in the order they must appear
const units = "YMD"

// Parse parses the date portion of an ISO-8601 period, P[n]Y[n]M[n]D.
//
// Each component is optional but, when present, must appear in the order
// years, months, days and consist of an optional '-' followed by decimal
// digits. Missing components are zero, which makes "P" the zero period.
// Nothing may follow the days component.
func Parse(s string) (Period, error) {
	if len(s) == 0 || s[0] != 'P' {
		return Period{}, &ParseError{Input: s, Reason: "must start with 'P'"}
	}

	var (
		fields [len(units)]int32
		next   int // index into units of the next allowed designator
		start  = 1 // start of the current numeric token
	)
	for i := 1; i < len(s); i++ {
		c := s[i]
		if c == '-' || ('0' <= c && c <= '9') {
			continue
		}

		u := strings.IndexByte(units, c)
		if u < 0 {
			return Period{}, &ParseError{Input: s, Pos: i, Reason: fmt.Sprintf("unexpected character %q", c)}
		}
		if u < next {
			return Period{}, &ParseError{Input: s, Pos: i, Reason: fmt.Sprintf("designator %q out of order", c)}
		}

		n, err := strconv.ParseInt(s[start:i], 10, 32)
		if err != nil {
			return Period{}, &ParseError{Input: s, Pos: start, Reason: fmt.Sprintf("invalid number for designator %q", c), Err: err}
		}
		fields[u] = int32(n)
		next = u + 1
		start = i + 1

		if c == 'D' && start < len(s) {
			return Period{}, &ParseError{Input: s, Pos: start, Reason: "unexpected text after days"}
		}
	}
	if start < len(s) {
		return Period{}, &ParseError{Input: s, Pos: start, Reason: "missing designator after number"}
	}

	return Of(fields[0], fields[1], fields[2]), nil
}

// MustParse is like Parse but panics if s cannot be parsed.
func MustParse(s string) Period {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}
