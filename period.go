// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package period

import (
	"cmp"

	"github.com/z5labs/period/internal/checked"
)

// ErrOverflow is matched by any error returned from an arithmetic
// operation whose result does not fit in an int32 component.
var ErrOverflow = checked.ErrOverflow

// Period is an amount of time expressed in years, months and days.
// The zero value is the zero period.
type Period struct {
	years  int32
	months int32
	days   int32
}

// Of returns a Period made of the given components.
func Of(years, months, days int32) Period {
	return Period{
		years:  years,
		months: months,
		days:   days,
	}
}

// OfYears returns a Period of the given number of years.
func OfYears(years int32) Period {
	return Period{years: years}
}

// OfMonths returns a Period of the given number of months.
func OfMonths(months int32) Period {
	return Period{months: months}
}

// OfDays returns a Period of the given number of days.
func OfDays(days int32) Period {
	return Period{days: days}
}

// OfWeeks returns a Period of seven days per week.
func OfWeeks(weeks int32) (Period, error) {
	days, err := checked.Mul(weeks, 7)
	if err != nil {
		return Period{}, err
	}
	return Period{days: days}, nil
}

// Zero returns the zero period, P0D.
func Zero() Period {
	return Period{}
}

// Years returns the years component.
func (p Period) Years() int32 {
	return p.years
}

// Months returns the months component.
func (p Period) Months() int32 {
	return p.months
}

// Days returns the days component.
func (p Period) Days() int32 {
	return p.days
}

// WithYears returns a copy of p with its years component replaced.
func (p Period) WithYears(years int32) Period {
	if years == p.years {
		return p
	}
	p.years = years
	return p
}

// WithMonths returns a copy of p with its months component replaced.
func (p Period) WithMonths(months int32) Period {
	if months == p.months {
		return p
	}
	p.months = months
	return p
}

// WithDays returns a copy of p with its days component replaced.
func (p Period) WithDays(days int32) Period {
	if days == p.days {
		return p
	}
	p.days = days
	return p
}

// IsZero reports whether all components are zero.
func (p Period) IsZero() bool {
	return p == Period{}
}

// IsNegative reports whether any single component is negative.
// Components are inspected individually so a period such as P1Y-1M
// is negative even though its total length is not.
func (p Period) IsNegative() bool {
	return p.years < 0 || p.months < 0 || p.days < 0
}

// ToTotalMonths returns years*12 + months. Days are ignored.
func (p Period) ToTotalMonths() int64 {
	return int64(p.years)*12 + int64(p.months)
}

// Equal reports whether p and other have identical components.
func (p Period) Equal(other Period) bool {
	return p == other
}

// Compare orders periods by years, then months, then days. It returns
// -1 if p is less than other, 0 if they are equal and +1 otherwise.
// The ordering is structural; P1Y and P12M are not equal.
func (p Period) Compare(other Period) int {
	switch {
	case p.years != other.years:
		return cmp.Compare(p.years, other.years)
	case p.months != other.months:
		return cmp.Compare(p.months, other.months)
	default:
		return cmp.Compare(p.days, other.days)
	}
}
