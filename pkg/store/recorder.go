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
package store

import (
	"time"

	"github.com/google/uuid"
)

// Step is one audit record: executable tactic X applied to input value Y at
// step N produced outcome Z.  Sufficient for audit and replay; the engine
// never reads history back during execution.
type Step struct {
	// Run this step belongs to.
	RunID uuid.UUID
	// Position of this step within the run.
	Index uint64
	// Name of the tactic node evaluated.
	Tactic string
	// Rendering of the input value.
	Input string
	// Outcome classification ("proved", "open" or a failure kind).
	OutcomeKind string
	// Rendering of the outcome value.
	Outcome string
	// Wall time spent evaluating the node.
	Elapsed time.Duration
}

// Recorder is the write-only persistence contract the engine exposes its
// results through.  Implementations must tolerate concurrent Record calls,
// since racing combinators evaluate on multiple goroutines.
type Recorder interface {
	// Record one evaluation step.
	Record(step Step) error
	// Close releases any underlying resources.
	Close() error
}

// Discard is the no-op recorder used when auditing is disabled.
type Discard struct{}

// Record implementation for the Recorder interface.
func (Discard) Record(Step) error {
	return nil
}

// Close implementation for the Recorder interface.
func (Discard) Close() error {
	return nil
}
