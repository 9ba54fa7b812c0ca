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
	"github.com/sequentlab/go-tactic/pkg/tactic/label"
)

// Value is what flows through the interpreter: either a proof state
// (possibly labelled) or a failure.  This is a closed union; no further
// implementations exist.
type Value interface {
	// IsFailure distinguishes the two sides of the union.
	IsFailure() bool
	//
	String() string
	// seals the union
	isValue()
}

// ProofValue is the success side of the Value union: a proof state together
// with optional branch labels.  When labels are present there is exactly one
// label per open subgoal, in subgoal order.
type ProofValue struct {
	// The underlying proof certificate.
	State proof.State
	// Branch provenance labels, or nil when unlabelled.
	Labels []label.Label
}

// NewValue wraps an unlabelled proof state.
func NewValue(state proof.State) *ProofValue {
	return &ProofValue{state, nil}
}

// NewLabelledValue wraps a proof state with one label per open subgoal.
// Panics if the counts disagree, since that would break the labelling
// invariant for every subsequent combinator.
func NewLabelledValue(state proof.State, labels []label.Label) *ProofValue {
	if labels != nil && len(labels) != len(state.Subgoals()) {
		panic(fmt.Sprintf("%d labels for %d subgoals", len(labels), len(state.Subgoals())))
	}
	//
	return &ProofValue{state, labels}
}

// IsFailure implementation for the Value interface.
func (v *ProofValue) IsFailure() bool {
	return false
}

// Labelled indicates whether branch labels are attached.
func (v *ProofValue) Labelled() bool {
	return v.Labels != nil
}

// Equals determines whether two proof values agree on both state and labels.
// This is the progress check used by saturating combinators.
func (v *ProofValue) Equals(other *ProofValue) bool {
	if !v.State.Equals(other.State) || len(v.Labels) != len(other.Labels) {
		return false
	}
	//
	for i := range v.Labels {
		if !v.Labels[i].Equals(other.Labels[i]) {
			return false
		}
	}
	// Done
	return true
}

func (v *ProofValue) String() string {
	if v.Labels == nil {
		return v.State.String()
	}
	//
	names := make([]string, len(v.Labels))
	for i, l := range v.Labels {
		names[i] = l.String()
	}
	//
	return fmt.Sprintf("%s <%s>", v.State.String(), strings.Join(names, ", "))
}

func (v *ProofValue) isValue() {}
