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
package tactic

import (
	"fmt"
	"strings"

	"github.com/sequentlab/go-tactic/pkg/proof"
	"github.com/sequentlab/go-tactic/pkg/util"
)

// FailureKind tags the failure taxonomy.  Every kind is a recoverable value
// (alternation and racing can always catch it); the kinds exist so callers
// can distinguish e.g. a programmer error in tactic shape from a rule the
// kernel rejected.
type FailureKind int

const (
	// GenericFailure covers explicit Fail tactics and other plain failures.
	GenericFailure FailureKind = iota
	// RuleInapplicable indicates the kernel rejected a rule application.
	RuleInapplicable
	// ShapeMismatch indicates a malformed tactic shape, e.g. a branch list
	// whose length disagrees with the open subgoal count.
	ShapeMismatch
	// UnificationFailed indicates no pattern of a pattern-match tactic
	// unified against the goal.
	UnificationFailed
	// LetInapplicable indicates a let abstraction could not be
	// re-specialised after its inner proof.
	LetInapplicable
	// CompoundKind pairs the failures of both alternatives of an
	// alternation (or of every candidate of a race that failed early).
	CompoundKind
	// TimedOut indicates no racing alternative succeeded within its
	// deadline.
	TimedOut
	// CancelledKind indicates evaluation was abandoned cooperatively, e.g.
	// a losing race candidate.
	CancelledKind
)

func (k FailureKind) String() string {
	switch k {
	case RuleInapplicable:
		return "inapplicable"
	case ShapeMismatch:
		return "ill-formed"
	case UnificationFailed:
		return "no match"
	case LetInapplicable:
		return "let inapplicable"
	case CompoundKind:
		return "compound"
	case TimedOut:
		return "timeout"
	case CancelledKind:
		return "cancelled"
	default:
		return "failed"
	}
}

// Failure is the failing side of the Value union.  Failures are values, not
// host-level aborts; they carry a message, an optional proof-state snapshot
// at the point of failure, the two sub-failures for compounds, and the trace
// of tactic frames that were active when the failure arose (outermost
// first).  Failures are immutable; wrapping operations rebuild.
type Failure struct {
	// Kind of this failure.
	Kind FailureKind
	// Human-readable message.
	Message string
	// Proof state at the point of failure, for diagnostics.
	Snapshot util.Option[proof.State]
	// Sub-failures (compound failures only).
	Left, Right *Failure
	// Active tactic frames, outermost first.
	frames []string
}

// NewFailure constructs a plain failure.
func NewFailure(format string, args ...any) *Failure {
	return &Failure{GenericFailure, fmt.Sprintf(format, args...), util.None[proof.State](), nil, nil, nil}
}

// NewInapplicable constructs a rule-inapplicability failure.
func NewInapplicable(format string, args ...any) *Failure {
	return &Failure{RuleInapplicable, fmt.Sprintf(format, args...), util.None[proof.State](), nil, nil, nil}
}

// NewShapeMismatch constructs a malformed-tactic-shape failure.
func NewShapeMismatch(format string, args ...any) *Failure {
	return &Failure{ShapeMismatch, fmt.Sprintf(format, args...), util.None[proof.State](), nil, nil, nil}
}

// NewUnificationFailure constructs a pattern-unification failure.
func NewUnificationFailure(format string, args ...any) *Failure {
	return &Failure{UnificationFailed, fmt.Sprintf(format, args...), util.None[proof.State](), nil, nil, nil}
}

// NewLetFailure constructs a let re-specialisation failure.
func NewLetFailure(format string, args ...any) *Failure {
	return &Failure{LetInapplicable, fmt.Sprintf(format, args...), util.None[proof.State](), nil, nil, nil}
}

// NewTimeout constructs a race-deadline failure.
func NewTimeout(format string, args ...any) *Failure {
	return &Failure{TimedOut, fmt.Sprintf(format, args...), util.None[proof.State](), nil, nil, nil}
}

// NewCancelled constructs a cooperative-cancellation failure.
func NewCancelled(format string, args ...any) *Failure {
	return &Failure{CancelledKind, fmt.Sprintf(format, args...), util.None[proof.State](), nil, nil, nil}
}

// NewCompound pairs two failures, preserving both for diagnostics.
func NewCompound(left *Failure, right *Failure) *Failure {
	msg := fmt.Sprintf("all alternatives failed: %s; %s", left.Message, right.Message)
	return &Failure{CompoundKind, msg, util.None[proof.State](), left, right, nil}
}

// IsFailure implementation for the Value interface.
func (f *Failure) IsFailure() bool {
	return true
}

// WithSnapshot attaches the proof state at the point of failure.
func (f *Failure) WithSnapshot(state proof.State) *Failure {
	g := f.clone()
	g.Snapshot = util.Some(state)
	//
	return g
}

// WithFrame records a tactic frame as active when this failure propagated
// through it.  Frames accumulate outermost first, so the final trace reads
// from the top-level tactic down to the failing leaf.
func (f *Failure) WithFrame(name string) *Failure {
	g := f.clone()
	g.frames = append([]string{name}, g.frames...)
	//
	return g
}

// Trace returns the tactic frames active at the point of failure, outermost
// first.
func (f *Failure) Trace() []string {
	frames := make([]string, len(f.frames))
	copy(frames, f.frames)
	//
	return frames
}

// Error implementation, so failures can cross error-shaped interfaces.
func (f *Failure) Error() string {
	return f.String()
}

func (f *Failure) String() string {
	if len(f.frames) == 0 {
		return fmt.Sprintf("%s: %s", f.Kind, f.Message)
	}
	//
	return fmt.Sprintf("%s: %s (in %s)", f.Kind, f.Message, strings.Join(f.frames, " > "))
}

func (f *Failure) isValue() {}

func (f *Failure) clone() *Failure {
	frames := make([]string, len(f.frames))
	copy(frames, f.frames)
	//
	return &Failure{f.Kind, f.Message, f.Snapshot, f.Left, f.Right, frames}
}
