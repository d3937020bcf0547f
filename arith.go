// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package period

import "github.com/z5labs/period/internal/checked"

// AddYears returns p with n added to its years component.
func (p Period) AddYears(n int32) (Period, error) {
	if n == 0 {
		return p, nil
	}
	years, err := checked.Add(p.years, n)
	if err != nil {
		return Period{}, err
	}
	return p.WithYears(years), nil
}

// AddMonths returns p with n added to its months component.
func (p Period) AddMonths(n int32) (Period, error) {
	if n == 0 {
		return p, nil
	}
	months, err := checked.Add(p.months, n)
	if err != nil {
		return Period{}, err
	}
	return p.WithMonths(months), nil
}

// AddWeeks returns p with 7*n added to its days component.
func (p Period) AddWeeks(n int32) (Period, error) {
	if n == 0 {
		return p, nil
	}
	days, err := checked.Mul(n, 7)
	if err != nil {
		return Period{}, err
	}
	return p.AddDays(days)
}

// AddDays returns p with n added to its days component.
func (p Period) AddDays(n int32) (Period, error) {
	if n == 0 {
		return p, nil
	}
	days, err := checked.Add(p.days, n)
	if err != nil {
		return Period{}, err
	}
	return p.WithDays(days), nil
}

// Add returns the component-wise sum of p and other. Components are
// added in the order years, months, days and the first overflow is returned.
func (p Period) Add(other Period) (Period, error) {
	if other.IsZero() {
		return p, nil
	}

	p, err := p.AddYears(other.years)
	if err != nil {
		return Period{}, err
	}
	p, err = p.AddMonths(other.months)
	if err != nil {
		return Period{}, err
	}
	return p.AddDays(other.days)
}

// Sub returns p minus other. It fails if other cannot be negated.
func (p Period) Sub(other Period) (Period, error) {
	neg, err := other.Negated()
	if err != nil {
		return Period{}, err
	}
	return p.Add(neg)
}

// Multiply returns p with every component multiplied by n.
func (p Period) Multiply(n int32) (Period, error) {
	if n == 0 {
		return Period{}, nil
	}
	if n == 1 || p.IsZero() {
		return p, nil
	}

	years, err := checked.Mul(p.years, n)
	if err != nil {
		return Period{}, err
	}
	months, err := checked.Mul(p.months, n)
	if err != nil {
		return Period{}, err
	}
	days, err := checked.Mul(p.days, n)
	if err != nil {
		return Period{}, err
	}
	return Of(years, months, days), nil
}

// Negated returns p with every component negated. It fails if any
// component is math.MinInt32.
func (p Period) Negated() (Period, error) {
	return p.Multiply(-1)
}
