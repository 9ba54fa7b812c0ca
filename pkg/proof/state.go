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
package proof

import (
	"fmt"
	"strings"

	"github.com/sequentlab/go-tactic/pkg/logic"
)

// State is a proof certificate: a conclusion sequent together with the
// ordered open subgoals from which that conclusion is derivable.  A state
// with no open subgoals is proved.  States are immutable values and can only
// be advanced through the rule-checked primitives below; free construction
// of an arbitrary certificate is deliberately impossible from outside this
// package.
type State struct {
	conclusion logic.Sequent
	subgoals   []logic.Sequent
}

// New starts a proof of the given conclusion, whose single open subgoal is
// the conclusion itself.
func New(conclusion logic.Sequent) State {
	return State{conclusion, []logic.Sequent{conclusion}}
}

// Conclusion returns the sequent this certificate concludes.
func (s State) Conclusion() logic.Sequent {
	return s.conclusion
}

// Subgoals returns the open subgoals of this certificate.  Callers must not
// modify the returned slice.
func (s State) Subgoals() []logic.Sequent {
	return s.subgoals
}

// Subgoal returns the ith open subgoal.
func (s State) Subgoal(i int) logic.Sequent {
	return s.subgoals[i]
}

// IsProved holds when this certificate has no open subgoals.
func (s State) IsProved() bool {
	return len(s.subgoals) == 0
}

// Equals determines whether two certificates are structurally identical.
func (s State) Equals(other State) bool {
	if !s.conclusion.Equals(other.conclusion) || len(s.subgoals) != len(other.subgoals) {
		return false
	}
	//
	for i := range s.subgoals {
		if !s.subgoals[i].Equals(other.subgoals[i]) {
			return false
		}
	}
	// Done
	return true
}

// Apply advances this certificate by applying a rule to subgoal i, replacing
// it with the zero or more subgoals the rule produces.  This is the only way
// a certificate gains or loses subgoals.
func (s State) Apply(i int, rule Rule) (State, error) {
	if i < 0 || i >= len(s.subgoals) {
		return State{}, fmt.Errorf("subgoal %d out of range (%d open)", i, len(s.subgoals))
	}
	// Consult the kernel rule
	replacement, err := rule.Apply(s.subgoals[i])
	if err != nil {
		return State{}, err
	}
	// Done
	return s.splice(i, replacement), nil
}

// Sub focuses subgoal i as a certificate in its own right, whose conclusion
// (and single open subgoal) is that subgoal.  Used by branching combinators
// to work on one goal in isolation; the result is re-attached via Graft.
func (s State) Sub(i int) (State, error) {
	if i < 0 || i >= len(s.subgoals) {
		return State{}, fmt.Errorf("subgoal %d out of range (%d open)", i, len(s.subgoals))
	}
	//
	return New(s.subgoals[i]), nil
}

// Graft replaces subgoal i with the open subgoals of a sub-certificate,
// checking that the sub-certificate actually concludes that subgoal.  The
// check is what keeps branch merging sound: a derivation of anything else
// cannot be attached.
func (s State) Graft(i int, sub State) (State, error) {
	if i < 0 || i >= len(s.subgoals) {
		return State{}, fmt.Errorf("subgoal %d out of range (%d open)", i, len(s.subgoals))
	}
	//
	if !sub.conclusion.Equals(s.subgoals[i]) {
		return State{}, fmt.Errorf("cannot graft derivation of %q onto subgoal %q",
			sub.conclusion.String(), s.subgoals[i].String())
	}
	// Done
	return s.splice(i, sub.subgoals), nil
}

// Substitute applies a uniform expression substitution across the entire
// certificate (conclusion and all subgoals).  Uniformity is what makes this
// a sound kernel primitive: every sequent is rewritten identically.
func (s State) Substitute(from logic.Expression, to logic.Expression) State {
	subgoals := make([]logic.Sequent, len(s.subgoals))
	//
	for i, g := range s.subgoals {
		subgoals[i] = g.Substitute(from, to)
	}
	//
	return State{s.conclusion.Substitute(from, to), subgoals}
}

// splice replaces subgoal i with the given replacement subgoals, shifting
// subsequent subgoals accordingly.
func (s State) splice(i int, replacement []logic.Sequent) State {
	subgoals := make([]logic.Sequent, 0, len(s.subgoals)+len(replacement)-1)
	subgoals = append(subgoals, s.subgoals[:i]...)
	subgoals = append(subgoals, replacement...)
	subgoals = append(subgoals, s.subgoals[i+1:]...)
	//
	return State{s.conclusion, subgoals}
}

func (s State) String() string {
	if s.IsProved() {
		return fmt.Sprintf("proved %s", s.conclusion.String())
	}
	//
	var builder strings.Builder
	//
	fmt.Fprintf(&builder, "%s from", s.conclusion.String())
	//
	for i, g := range s.subgoals {
		fmt.Fprintf(&builder, " [%d: %s]", i, g.String())
	}
	//
	return builder.String()
}
