// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package period

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPeriod_AddUnits(t *testing.T) {
	type addFunc func(Period, int32) (Period, error)

	addYears := Period.AddYears
	addMonths := Period.AddMonths
	addWeeks := Period.AddWeeks
	addDays := Period.AddDays

	testCases := []struct {
		name     string
		add      addFunc
		p        Period
		n        int32
		expected Period
		overflow bool
	}{
		{name: "years", add: addYears, p: OfYears(5), n: 3, expected: OfYears(8)},
		{name: "negative years", add: addYears, p: Of(1, 2, 3), n: -4, expected: Of(-3, 2, 3)},
		{name: "zero years", add: addYears, p: OfYears(math.MaxInt32), n: 0, expected: OfYears(math.MaxInt32)},
		{name: "years overflow", add: addYears, p: OfYears(math.MaxInt32), n: 1, overflow: true},
		{name: "months", add: addMonths, p: Of(1, 11, 0), n: 2, expected: Of(1, 13, 0)},
		{name: "months underflow", add: addMonths, p: OfMonths(math.MinInt32), n: -1, overflow: true},
		{name: "days", add: addDays, p: OfDays(2), n: 5, expected: OfDays(7)},
		{name: "days overflow", add: addDays, p: OfDays(math.MaxInt32 - 1), n: 2, overflow: true},
		{name: "weeks", add: addWeeks, p: OfDays(2), n: 3, expected: OfDays(23)},
		{name: "negative weeks", add: addWeeks, p: OfYears(1), n: -1, expected: Of(1, 0, -7)},
		{name: "zero weeks", add: addWeeks, p: OfDays(math.MaxInt32), n: 0, expected: OfDays(math.MaxInt32)},
		{name: "weeks multiplication overflow", add: addWeeks, p: Zero(), n: math.MaxInt32/7 + 1, overflow: true},
		{name: "weeks addition overflow", add: addWeeks, p: OfDays(math.MaxInt32 - 6), n: 1, overflow: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := tc.add(tc.p, tc.n)
			if tc.overflow {
				require.ErrorIs(t, err, ErrOverflow)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, p)
		})
	}
}

func TestPeriod_Add(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     Period
		expected Period
		overflow bool
	}{
		{name: "component-wise", a: Of(1, 2, 3), b: Of(4, 5, 6), expected: Of(5, 7, 9)},
		{name: "no normalization", a: OfMonths(11), b: OfMonths(2), expected: OfMonths(13)},
		{name: "zero right operand", a: Of(math.MaxInt32, math.MaxInt32, math.MaxInt32), b: Zero(), expected: Of(math.MaxInt32, math.MaxInt32, math.MaxInt32)},
		{name: "zero left operand", a: Zero(), b: Of(-1, 0, 1), expected: Of(-1, 0, 1)},
		{name: "years overflow", a: OfYears(math.MaxInt32), b: OfYears(1), overflow: true},
		{name: "days overflow", a: Of(1, 1, math.MinInt32), b: Of(1, 1, -1), overflow: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := tc.a.Add(tc.b)
			if tc.overflow {
				require.ErrorIs(t, err, ErrOverflow)
				require.Zero(t, p)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, p)
		})
	}
}

func TestPeriod_Sub(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     Period
		expected Period
		overflow bool
	}{
		{name: "component-wise", a: Of(5, 7, 9), b: Of(4, 5, 6), expected: Of(1, 2, 3)},
		{name: "result is negative", a: Zero(), b: Of(1, 2, 3), expected: Of(-1, -2, -3)},
		{name: "zero right operand", a: OfDays(4), b: Zero(), expected: OfDays(4)},
		{name: "right operand cannot be negated", a: Zero(), b: OfMonths(math.MinInt32), overflow: true},
		{name: "difference overflows", a: OfYears(math.MaxInt32), b: OfYears(-1), overflow: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := tc.a.Sub(tc.b)
			if tc.overflow {
				require.ErrorIs(t, err, ErrOverflow)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, p)
		})
	}
}

func TestPeriod_Multiply(t *testing.T) {
	testCases := []struct {
		name     string
		p        Period
		n        int32
		expected Period
		overflow bool
	}{
		{name: "by zero", p: Of(1, 2, 3), n: 0, expected: Zero()},
		{name: "by zero with extreme components", p: Of(math.MinInt32, math.MaxInt32, 1), n: 0, expected: Zero()},
		{name: "by one", p: Of(1, 2, 3), n: 1, expected: Of(1, 2, 3)},
		{name: "by one with extreme components", p: OfYears(math.MinInt32), n: 1, expected: OfYears(math.MinInt32)},
		{name: "zero period", p: Zero(), n: math.MaxInt32, expected: Zero()},
		{name: "by three", p: Of(1, -2, 3), n: 3, expected: Of(3, -6, 9)},
		{name: "by minus two", p: Of(1, -2, 0), n: -2, expected: Of(-2, 4, 0)},
		{name: "years overflow", p: OfYears(math.MaxInt32/2 + 1), n: 2, overflow: true},
		{name: "days overflow", p: Of(1, 1, math.MinInt32/4-1), n: 4, overflow: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := tc.p.Multiply(tc.n)
			if tc.overflow {
				require.ErrorIs(t, err, ErrOverflow)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, p)
		})
	}
}

func TestPeriod_Negated(t *testing.T) {
	t.Run("will return an error", func(t *testing.T) {
		testCases := []struct {
			name string
			p    Period
		}{
			{name: "if years is the minimum int32", p: OfYears(math.MinInt32)},
			{name: "if months is the minimum int32", p: Of(1, math.MinInt32, 1)},
			{name: "if days is the minimum int32", p: OfDays(math.MinInt32)},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := tc.p.Negated()
				require.ErrorIs(t, err, ErrOverflow)
			})
		}
	})

	t.Run("will negate every component", func(t *testing.T) {
		p, err := OfYears(1).Negated()
		require.NoError(t, err)
		require.Equal(t, OfYears(-1), p)

		p, err = Of(math.MaxInt32, -5, 0).Negated()
		require.NoError(t, err)
		require.Equal(t, Of(-math.MaxInt32, 5, 0), p)
	})
}
