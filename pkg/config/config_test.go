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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	//
	assert.Equal(t, "lazy", cfg.Interpreter)
	assert.Equal(t, uint(5000), cfg.TimeoutMillis)
	assert.Empty(t, cfg.Audit)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tactic.yaml")
	contents := "interpreter: exhaustive\ntimeout: 250\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
	//
	cfg, err := Load(path)
	require.NoError(t, err)
	//
	assert.Equal(t, "exhaustive", cfg.Interpreter)
	assert.Equal(t, uint(250), cfg.TimeoutMillis)
	assert.Equal(t, "debug", cfg.LogLevel)
	// Unset keys keep their defaults.
	assert.Empty(t, cfg.Audit)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "no-such.yaml"))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tactic.yaml")
	require.NoError(t, os.WriteFile(path, []byte("interpreter: lazy\n"), 0600))
	// Environment wins over the file.
	t.Setenv("TACTIC_INTERPRETER", "exhaustive")
	t.Setenv("TACTIC_AUDIT", "audit.db")
	//
	cfg, err := Load(path)
	require.NoError(t, err)
	//
	assert.Equal(t, "exhaustive", cfg.Interpreter)
	assert.Equal(t, "audit.db", cfg.Audit)
}
