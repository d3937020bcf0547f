// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"os"
	"strings"

	"github.com/z5labs/period/config/key"
)

// Env represents a Source where its underlying values
// are extracted from environment variables.
type Env struct {
	prefix  string
	environ func() []string
}

// FromEnv returns a Source which will apply its config from the
// environment variables of the current process whose names start
// with prefix. The remainder of the name is lower cased and split
// on '_' into a key.Chain, e.g. with prefix "PERIOD_" the variable
// PERIOD_ALIASES_QUARTER sets the key "aliases.quarter".
func FromEnv(prefix string) Env {
	return Env{
		prefix:  prefix,
		environ: os.Environ,
	}
}

// Apply implements the Source interface.
func (src Env) Apply(store Store) error {
	env := src.environ()
	vars := make(map[string]string, len(env))
	for _, pair := range env {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		vars[k] = v
	}
	return applyVars(store, src.prefix, vars)
}

func applyVars(store Store, prefix string, vars map[string]string) error {
	for name, v := range vars {
		rest, ok := strings.CutPrefix(name, prefix)
		if !ok {
			continue
		}

		chain := key.Split(strings.ToLower(rest), "_")
		if len(chain) == 0 {
			continue
		}

		err := store.Set(chain, v)
		if err != nil {
			return err
		}
	}
	return nil
}
