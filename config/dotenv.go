// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"fmt"
	"io"

	"github.com/z5labs/period/internal/try"

	"github.com/joho/godotenv"
)

// DotEnv represents a Source backed by a dotenv formatted document.
// Variable names are mapped to keys the same way as FromEnv.
type DotEnv struct {
	prefix string
	r      io.Reader
}

// FromDotEnv returns a Source which will apply its config from
// the KEY=value pairs read from r. If r is also an io.Closer it
// is closed once read.
func FromDotEnv(r io.Reader, prefix string) DotEnv {
	return DotEnv{
		prefix: prefix,
		r:      r,
	}
}

// InvalidDotEnvError occurs if the underlying io.Reader can not be parsed as dotenv.
type InvalidDotEnvError struct {
	cause error
}

// Error implements the error interface.
func (e InvalidDotEnvError) Error() string {
	return fmt.Sprintf("invalid dotenv: %s", e.cause)
}

// Unwrap implements the implicit interface for usage with errors.Is and errors.As.
func (e InvalidDotEnvError) Unwrap() error {
	return e.cause
}

// Apply implements the Source interface.
func (src DotEnv) Apply(store Store) (err error) {
	defer try.Close(&err, src.r)

	vars, err := godotenv.Parse(src.r)
	if err != nil {
		return InvalidDotEnvError{cause: err}
	}
	return applyVars(store, src.prefix, vars)
}
