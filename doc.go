// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package period provides a date-based amount of time in the ISO-8601 calendar system.
//
// A Period is made of three independent signed components: years, months and days.
// The components are never normalized into one another, so "P13M" stays 13 months
// and "P1Y-2M" stays one year minus two months. A Period is not tied to any start
// date and does not know how long a month or a year is.
//
// # Construction
//
//	p := period.Of(1, 2, 3)   // P1Y2M3D
//	q := period.OfMonths(6)   // P6M
//	z := period.Zero()        // P0D
//
// # Text Representation
//
// Periods are parsed from and formatted to the date portion of the ISO-8601
// period format, P[n]Y[n]M[n]D:
//
//	p, err := period.Parse("P1Y-2M10D")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(p) // P1Y-2M10D
//
// The zero period is always formatted as "P0D".
//
// # Arithmetic
//
// Every operation which could exceed the range of an int32 component is checked
// and returns an error matching ErrOverflow instead of wrapping:
//
//	p, err := period.OfYears(1).AddWeeks(2)
//	if errors.Is(err, period.ErrOverflow) {
//	    // handle overflow
//	}
//
// # Encoding
//
// Period implements encoding.TextMarshaler, json.Marshaler, yaml.Marshaler and
// driver.Valuer, along with their decoding counterparts, all using the canonical
// text representation.
package period
