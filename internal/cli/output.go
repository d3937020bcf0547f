// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/z5labs/period"
)

type periodView struct {
	Period      period.Period `json:"period"`
	Years       int32         `json:"years"`
	Months      int32         `json:"months"`
	Days        int32         `json:"days"`
	TotalMonths int64         `json:"total_months"`
	Zero        bool          `json:"zero"`
	Negative    bool          `json:"negative"`
}

func (a *app) printPeriod(p period.Period) error {
	if a.cfg.Output == OutputText {
		_, err := fmt.Fprintln(a.stdout, p)
		return err
	}

	return a.writeJSON(periodView{
		Period:      p,
		Years:       p.Years(),
		Months:      p.Months(),
		Days:        p.Days(),
		TotalMonths: p.ToTotalMonths(),
		Zero:        p.IsZero(),
		Negative:    p.IsNegative(),
	})
}

func (a *app) printValue(name string, v any) error {
	if a.cfg.Output == OutputText {
		_, err := fmt.Fprintln(a.stdout, v)
		return err
	}
	return a.writeJSON(map[string]any{name: v})
}

func (a *app) writeJSON(v any) error {
	enc := json.NewEncoder(a.stdout)
	return enc.Encode(v)
}
