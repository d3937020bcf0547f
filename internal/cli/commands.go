// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package cli

import (
	"fmt"
	"strconv"

	"github.com/z5labs/period"
	"github.com/z5labs/period/internal/slogfield"

	"github.com/spf13/cobra"
)

func (a *app) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse PERIOD...",
		Short: "Parse periods and print them in canonical form",
		Args:  cobra.MinimumNArgs(1),
		RunE: runE(func(cmd *cobra.Command, args []string) error {
			ps, err := a.resolveAll(args)
			if err != nil {
				return err
			}
			for _, p := range ps {
				err = a.printPeriod(p)
				if err != nil {
					return err
				}
			}
			return nil
		}),
	}
}

func (a *app) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add PERIOD PERIOD...",
		Short: "Add periods component by component",
		Args:  cobra.MinimumNArgs(2),
		RunE: runE(func(cmd *cobra.Command, args []string) error {
			ps, err := a.resolveAll(args)
			if err != nil {
				return err
			}

			sum := ps[0]
			for _, p := range ps[1:] {
				a.log.DebugContext(cmd.Context(), "adding period", slogfield.Period("sum", sum), slogfield.Period("period", p))
				sum, err = sum.Add(p)
				if err != nil {
					return err
				}
			}
			return a.printPeriod(sum)
		}),
	}
}

func (a *app) subCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sub PERIOD PERIOD",
		Short: "Subtract the second period from the first",
		Args:  cobra.ExactArgs(2),
		RunE: runE(func(cmd *cobra.Command, args []string) error {
			ps, err := a.resolveAll(args)
			if err != nil {
				return err
			}

			diff, err := ps[0].Sub(ps[1])
			if err != nil {
				return err
			}
			return a.printPeriod(diff)
		}),
	}
}

func (a *app) mulCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mul PERIOD N",
		Short: "Multiply every component of a period by N",
		Args:  cobra.ExactArgs(2),
		RunE: runE(func(cmd *cobra.Command, args []string) error {
			p, err := a.resolve(args[0])
			if err != nil {
				return err
			}
			n, err := parseInt32(args[1])
			if err != nil {
				return err
			}

			a.log.DebugContext(cmd.Context(), "multiplying period", slogfield.Period("period", p), slogfield.Int32("n", n))
			product, err := p.Multiply(n)
			if err != nil {
				return err
			}
			return a.printPeriod(product)
		}),
	}
}

func (a *app) negCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "neg PERIOD",
		Short: "Negate every component of a period",
		Args:  cobra.ExactArgs(1),
		RunE: runE(func(cmd *cobra.Command, args []string) error {
			p, err := a.resolve(args[0])
			if err != nil {
				return err
			}

			neg, err := p.Negated()
			if err != nil {
				return err
			}
			return a.printPeriod(neg)
		}),
	}
}

func (a *app) shiftCmd() *cobra.Command {
	var years, months, weeks, days int32

	cmd := &cobra.Command{
		Use:   "shift PERIOD",
		Short: "Add individual units to a period",
		Args:  cobra.ExactArgs(1),
		RunE: runE(func(cmd *cobra.Command, args []string) error {
			p, err := a.resolve(args[0])
			if err != nil {
				return err
			}

			steps := []struct {
				n   int32
				add func(period.Period, int32) (period.Period, error)
			}{
				{years, period.Period.AddYears},
				{months, period.Period.AddMonths},
				{weeks, period.Period.AddWeeks},
				{days, period.Period.AddDays},
			}
			for _, step := range steps {
				p, err = step.add(p, step.n)
				if err != nil {
					return err
				}
			}
			return a.printPeriod(p)
		}),
	}

	flags := cmd.Flags()
	flags.Int32Var(&years, "years", 0, "years to add")
	flags.Int32Var(&months, "months", 0, "months to add")
	flags.Int32Var(&weeks, "weeks", 0, "weeks to add, as 7 days each")
	flags.Int32Var(&days, "days", 0, "days to add")
	return cmd
}

func (a *app) monthsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "months PERIOD",
		Short: "Print years*12 + months, ignoring days",
		Args:  cobra.ExactArgs(1),
		RunE: runE(func(cmd *cobra.Command, args []string) error {
			p, err := a.resolve(args[0])
			if err != nil {
				return err
			}
			return a.printValue("total_months", p.ToTotalMonths())
		}),
	}
}

func (a *app) cmpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cmp PERIOD PERIOD",
		Short: "Compare two periods by years, then months, then days",
		Args:  cobra.ExactArgs(2),
		RunE: runE(func(cmd *cobra.Command, args []string) error {
			ps, err := a.resolveAll(args)
			if err != nil {
				return err
			}
			return a.printValue("compare", ps[0].Compare(ps[1]))
		}),
	}
}

// InvalidIntegerError is returned when a numeric argument is not an int32.
type InvalidIntegerError struct {
	Value string
	Cause error
}

// Error implements the error interface.
func (e InvalidIntegerError) Error() string {
	return fmt.Sprintf("invalid integer %q: %s", e.Value, e.Cause)
}

// Unwrap implements the implicit interface for usage with errors.Is and errors.As.
func (e InvalidIntegerError) Unwrap() error {
	return e.Cause
}

func parseInt32(s string) (int32, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, InvalidIntegerError{Value: s, Cause: err}
	}
	return int32(n), nil
}
