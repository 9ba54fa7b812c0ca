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
package interp

import (
	"strings"
	"sync/atomic"

	log "github.com/sirupsen/logrus"

	"github.com/sequentlab/go-tactic/pkg/tactic"
)

// Listener observes tactic evaluation.  Begin and End are called
// synchronously around every AST node, in strict nesting order matching the
// tree structure: a parent's End always fires after all its children's End
// calls.  Kill fires when a top-level run is abandoned by its context.
// Listeners are owned by the caller and merely referenced by the engine; a
// listener shared with racing combinators must tolerate concurrent calls.
type Listener interface {
	// Begin fires before a node is evaluated.
	Begin(input tactic.Value, t tactic.Tactic)
	// End fires after a node has been evaluated, with its outcome.
	End(input tactic.Value, t tactic.Tactic, outcome tactic.Value)
	// Kill fires when the run is abandoned.
	Kill()
}

// TraceListener logs every begin/end event at debug level with nesting
// depth, giving a readable indented trace of an entire evaluation.
type TraceListener struct {
	depth atomic.Int32
}

// NewTraceListener constructs a fresh trace listener.
func NewTraceListener() *TraceListener {
	return &TraceListener{}
}

// Begin implementation for the Listener interface.
func (l *TraceListener) Begin(input tactic.Value, t tactic.Tactic) {
	depth := l.depth.Add(1) - 1
	log.Debugf("%s> %s", strings.Repeat("  ", int(depth)), t.TacticName())
}

// End implementation for the Listener interface.
func (l *TraceListener) End(input tactic.Value, t tactic.Tactic, outcome tactic.Value) {
	depth := l.depth.Add(-1)
	log.Debugf("%s< %s => %s", strings.Repeat("  ", int(depth)), t.TacticName(), outcome)
}

// Kill implementation for the Listener interface.
func (l *TraceListener) Kill() {
	log.Warn("evaluation killed")
}
