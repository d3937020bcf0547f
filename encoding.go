// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package period

import (
	"bytes"
	"database/sql"
	"database/sql/driver"
	"encoding"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	_ encoding.TextMarshaler   = Period{}
	_ encoding.TextUnmarshaler = (*Period)(nil)
	_ json.Marshaler           = Period{}
	_ json.Unmarshaler         = (*Period)(nil)
	_ yaml.Marshaler           = Period{}
	_ yaml.Unmarshaler         = (*Period)(nil)
	_ driver.Valuer            = Period{}
	_ sql.Scanner              = (*Period)(nil)
)

// MarshalText implements the encoding.TextMarshaler interface.
func (p Period) MarshalText() ([]byte, error) {
	return p.appendText(nil), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (p *Period) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
// A Period is encoded as a JSON string.
func (p Period) MarshalJSON() ([]byte, error) {
	b := make([]byte, 0, 26)
	b = append(b, '"')
	b = p.appendText(b)
	return append(b, '"'), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// A JSON null leaves p unchanged.
func (p *Period) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	var s string
	err := json.Unmarshal(b, &s)
	if err != nil {
		return err
	}
	return p.UnmarshalText([]byte(s))
}

// MarshalYAML implements the yaml.Marshaler interface.
func (p Period) MarshalYAML() (any, error) {
	return p.String(), nil
}

// NotScalarError is returned when decoding a Period from
// a YAML node which is not a scalar.
type NotScalarError struct {
	Line   int
	Column int
}

// Error implements the error interface.
func (e NotScalarError) Error() string {
	return fmt.Sprintf("period: yaml node at line %d column %d must be a scalar", e.Line, e.Column)
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (p *Period) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return NotScalarError{Line: value.Line, Column: value.Column}
	}
	return p.UnmarshalText([]byte(value.Value))
}

// Value implements the driver.Valuer interface.
func (p Period) Value() (driver.Value, error) {
	return p.String(), nil
}

// UnsupportedScanTypeError is returned by Scan for source
// values other than string, []byte or nil.
type UnsupportedScanTypeError struct {
	Src any
}

// Error implements the error interface.
func (e UnsupportedScanTypeError) Error() string {
	return fmt.Sprintf("period: cannot scan %T into Period", e.Src)
}

// Scan implements the sql.Scanner interface. A NULL column scans as the zero period.
func (p *Period) Scan(src any) error {
	switch x := src.(type) {
	case nil:
		*p = Period{}
		return nil
	case string:
		return p.UnmarshalText([]byte(x))
	case []byte:
		return p.UnmarshalText(x)
	default:
		return UnsupportedScanTypeError{Src: src}
	}
}
