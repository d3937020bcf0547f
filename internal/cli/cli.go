// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package cli implements the period command line tool.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/z5labs/period"
	"github.com/z5labs/period/config"
	"github.com/z5labs/period/internal/slogfield"
	"github.com/z5labs/period/internal/try"

	"github.com/spf13/cobra"
)

// EnvPrefix is the prefix of environment variables read as config.
const EnvPrefix = "PERIOD_"

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config is the configuration of the period tool.
type Config struct {
	Output  string                   `config:"output"`
	Aliases map[string]period.Period `config:"aliases"`
}

type app struct {
	stdout io.Writer
	level  *slog.LevelVar
	log    *slog.Logger

	configPath string
	envFile    string
	output     string
	logLevel   string

	cfg Config
}

// Execute runs the period tool with the given arguments and returns
// the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a, cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		a.log.ErrorContext(ctx, "command failed", slogfield.Error(err))
		return 1
	}
	return 0
}

func newRootCmd(stdout, stderr io.Writer) (*app, *cobra.Command) {
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)

	a := &app{
		stdout: stdout,
		level:  level,
		log:    slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})),
	}

	cmd := &cobra.Command{
		Use:   "period",
		Short: "Parse, format and do arithmetic on ISO-8601 periods",
		Long: `period works with date based ISO-8601 periods such as P1Y2M3D.

Operands may be a period or the name of an alias defined in config.
Config is read from the --config YAML file, then the --env-file dotenv
file, then PERIOD_* environment variables, with later sources winning.
Use -- before negative numeric arguments.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML config file")
	flags.StringVar(&a.envFile, "env-file", "", "dotenv config file")
	flags.StringVarP(&a.output, "output", "o", OutputText, "output format: text or json")
	flags.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.AddCommand(
		a.parseCmd(),
		a.addCmd(),
		a.subCmd(),
		a.mulCmd(),
		a.negCmd(),
		a.shiftCmd(),
		a.monthsCmd(),
		a.cmpCmd(),
	)
	return a, cmd
}

// UnsupportedOutputError is returned for an unknown output format.
type UnsupportedOutputError struct {
	Output string
}

// Error implements the error interface.
func (e UnsupportedOutputError) Error() string {
	return fmt.Sprintf("unsupported output format: %q", e.Output)
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	err := a.level.UnmarshalText([]byte(a.logLevel))
	if err != nil {
		return err
	}

	cfg, err := a.readConfig(cmd.Context())
	if err != nil {
		return err
	}
	if cfg.Output == "" || cmd.Flags().Changed("output") {
		cfg.Output = a.output
	}
	if cfg.Output != OutputText && cfg.Output != OutputJSON {
		return UnsupportedOutputError{Output: cfg.Output}
	}

	a.cfg = cfg
	a.log.DebugContext(
		cmd.Context(),
		"loaded config",
		slogfield.String("output", cfg.Output),
		slogfield.Int("aliases", len(cfg.Aliases)),
	)
	return nil
}

func (a *app) readConfig(ctx context.Context) (Config, error) {
	var srcs []config.Source
	if a.configPath != "" {
		a.log.DebugContext(ctx, "reading yaml config", slogfield.String("path", a.configPath))
		srcs = append(srcs, config.FromYaml(openFile(a.configPath)))
	}
	if a.envFile != "" {
		a.log.DebugContext(ctx, "reading dotenv config", slogfield.String("path", a.envFile))
		srcs = append(srcs, config.FromDotEnv(openFile(a.envFile), EnvPrefix))
	}
	srcs = append(srcs, config.FromEnv(EnvPrefix))

	m, err := config.Read(srcs...)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	err = m.Unmarshal(&cfg)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func openFile(path string) *config.FileReader {
	dir, name := filepath.Split(filepath.Clean(path))
	if dir == "" {
		dir = "."
	}
	return config.NewFileReader(os.DirFS(dir), name)
}

// resolve returns the alias named s or, if there is none, parses s.
func (a *app) resolve(s string) (period.Period, error) {
	if p, ok := a.cfg.Aliases[s]; ok {
		return p, nil
	}
	return period.Parse(s)
}

func (a *app) resolveAll(args []string) ([]period.Period, error) {
	ps := make([]period.Period, len(args))
	for i, arg := range args {
		p, err := a.resolve(arg)
		if err != nil {
			return nil, err
		}
		ps[i] = p
	}
	a.log.Debug("resolved operands", slogfield.Strings("args", args), slogfield.Periods("periods", ps))
	return ps, nil
}

func runE(f func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		defer try.Recover(&err)
		return f(cmd, args)
	}
}
