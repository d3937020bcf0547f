// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package period

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected Period
	}{
		{name: "all components", input: "P1Y2M3D", expected: Of(1, 2, 3)},
		{name: "only years", input: "P5Y", expected: OfYears(5)},
		{name: "only months", input: "P13M", expected: OfMonths(13)},
		{name: "only days", input: "P40D", expected: OfDays(40)},
		{name: "negative years", input: "P-1Y", expected: OfYears(-1)},
		{name: "mixed signs", input: "P1Y-2M3D", expected: Of(1, -2, 3)},
		{name: "years and days", input: "P2Y7D", expected: Of(2, 0, 7)},
		{name: "bare designator", input: "P", expected: Zero()},
		{name: "explicit zeros", input: "P0Y0M0D", expected: Zero()},
		{name: "canonical zero", input: "P0D", expected: Zero()},
		{name: "leading zeros", input: "P007D", expected: OfDays(7)},
		{name: "int32 bounds", input: "P2147483647Y-2147483648D", expected: Of(math.MaxInt32, 0, math.MinInt32)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := Parse(tc.input)
			require.NoError(t, err)
			require.Equal(t, tc.expected, p)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		pos      int
		numErr   error
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: `period: cannot parse "" at offset 0: must start with 'P'`,
		},
		{
			name:     "missing leading P",
			input:    "X1Y2M3D",
			expected: `period: cannot parse "X1Y2M3D" at offset 0: must start with 'P'`,
		},
		{
			name:     "lower case designator",
			input:    "p1D",
			expected: `period: cannot parse "p1D" at offset 0: must start with 'P'`,
		},
		{
			name:     "unknown designator",
			input:    "P1Y2X3D",
			pos:      4,
			expected: `period: cannot parse "P1Y2X3D" at offset 4: unexpected character 'X'`,
		},
		{
			name:  "time section",
			input: "P1DT2H",
			pos:   3,
		},
		{
			name:  "week designator",
			input: "P2W",
			pos:   2,
		},
		{
			name:  "plus sign",
			input: "P+1D",
			pos:   1,
		},
		{
			name:   "missing number",
			input:  "PY",
			pos:    1,
			numErr: strconv.ErrSyntax,
		},
		{
			name:   "lone minus",
			input:  "P-M",
			pos:    1,
			numErr: strconv.ErrSyntax,
		},
		{
			name:   "embedded minus",
			input:  "P1-2D",
			pos:    1,
			numErr: strconv.ErrSyntax,
		},
		{
			name:   "out of range",
			input:  "P2147483648Y",
			pos:    1,
			numErr: strconv.ErrRange,
		},
		{
			name:  "designators out of order",
			input: "P1M2Y",
			pos:   4,
		},
		{
			name:  "repeated designator",
			input: "P1Y1Y",
			pos:   4,
		},
		{
			name:  "text after days",
			input: "P1DX",
			pos:   3,
		},
		{
			name:     "number without designator",
			input:    "P1Y12",
			pos:      3,
			expected: `period: cannot parse "P1Y12" at offset 3: missing designator after number`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := Parse(tc.input)
			require.ErrorIs(t, err, ErrInvalidFormat)
			require.Zero(t, p)

			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			require.Equal(t, tc.input, perr.Input)
			require.Equal(t, tc.pos, perr.Pos)
			if tc.numErr != nil {
				require.ErrorIs(t, err, tc.numErr)
			}
			if tc.expected != "" {
				require.Equal(t, tc.expected, err.Error())
			}
		})
	}
}

func TestMustParse(t *testing.T) {
	t.Run("will panic", func(t *testing.T) {
		t.Run("if the string is not a valid period", func(t *testing.T) {
			defer func() {
				r := recover()
				err, ok := r.(error)
				require.True(t, ok)
				require.True(t, errors.Is(err, ErrInvalidFormat))
			}()

			MustParse("1Y")
		})
	})

	t.Run("will return the parsed period", func(t *testing.T) {
		require.Equal(t, Of(1, 0, 2), MustParse("P1Y2D"))
	})
}
