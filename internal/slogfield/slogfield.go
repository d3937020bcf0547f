// Copyright (c) 2023 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package slogfield provides typed slog.Attr constructors for the values the period tool logs.
package slogfield

import (
	"log/slog"

	"github.com/z5labs/period"
)

// Error returns an slog.Attr for a error.
func Error(err error) slog.Attr {
	return slog.Any("error", err)
}

// String returns an slog.Attr for a string.
func String(key, value string) slog.Attr {
	return slog.String(key, value)
}

// Strings returns an slog.Attr for a slice of strings.
func Strings(key string, values []string) slog.Attr {
	return slog.Any(key, values)
}

// Int returns an slog.Attr for a int.
func Int(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// Int32 returns an slog.Attr for a int32.
func Int32(key string, n int32) slog.Attr {
	return slog.Int64(key, int64(n))
}

// Int64 returns an slog.Attr for a int64.
func Int64(key string, n int64) slog.Attr {
	return slog.Int64(key, n)
}

// Period returns an slog.Attr grouping the canonical form of p with its components.
func Period(key string, p period.Period) slog.Attr {
	return slog.Group(
		key,
		slog.String("iso", p.String()),
		slog.Int64("years", int64(p.Years())),
		slog.Int64("months", int64(p.Months())),
		slog.Int64("days", int64(p.Days())),
	)
}

// Periods returns an slog.Attr for a slice of periods in canonical form.
func Periods(key string, ps []period.Period) slog.Attr {
	ss := make([]string, len(ps))
	for i, p := range ps {
		ss[i] = p.String()
	}
	return slog.Any(key, ss)
}
