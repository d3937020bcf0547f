// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package period

import "strconv"

// String returns the ISO-8601 representation of p, such as "P1Y-2M3D".
// Zero components are omitted and the zero period is "P0D".
func (p Period) String() string {
	return string(p.appendText(make([]byte, 0, 24)))
}

// AppendText implements the encoding.TextAppender interface.
// It never returns an error.
func (p Period) AppendText(b []byte) ([]byte, error) {
	return p.appendText(b), nil
}

func (p Period) appendText(b []byte) []byte {
	if p.IsZero() {
		return append(b, "P0D"...)
	}

	b = append(b, 'P')
	b = appendComponent(b, p.years, 'Y')
	b = appendComponent(b, p.months, 'M')
	b = appendComponent(b, p.days, 'D')
	return b
}

func appendComponent(b []byte, n int32, unit byte) []byte {
	if n == 0 {
		return b
	}
	b = strconv.AppendInt(b, int64(n), 10)
	return append(b, unit)
}
