// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables overriding file
// configuration (e.g. TACTIC_INTERPRETER=exhaustive).
const EnvPrefix = "TACTIC_"

// Config carries the run configuration of the engine's command-line
// harness.  Nothing here is read ambiently by the engine itself; the CLI
// translates it into explicit interp.Options.
type Config struct {
	// Interpreter discipline: "lazy" or "exhaustive".
	Interpreter string `koanf:"interpreter"`
	// Default race deadline, in milliseconds.
	TimeoutMillis uint `koanf:"timeout"`
	// Path of the audit database; empty disables auditing.
	Audit string `koanf:"audit"`
	// Logging level ("debug", "info", ...).
	LogLevel string `koanf:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Interpreter:   "lazy",
		TimeoutMillis: 5000,
		Audit:         "",
		LogLevel:      "info",
	}
}

// Load reads configuration from an optional yaml file, then applies
// environment overrides.  An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	k := koanf.New(".")
	// Load file (if given)
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return cfg, fmt.Errorf("loading %s: %w", path, err)
		}
	}
	// Environment overrides
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return cfg, fmt.Errorf("loading environment: %w", err)
	}
	//
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshalling configuration: %w", err)
	}
	// Done
	return cfg, nil
}
