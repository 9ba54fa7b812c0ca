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

// This file provides a handful of self-evident structural rules.  They stand
// in for the (external) rule kernel in the engine's self-checks and tests;
// the engine itself never special-cases them.

// conjunction is the rendered connective recognised by SplitConjunction.
const conjunction = " & "

// CloseTrivial closes goals which are trivially valid: either some succedent
// formula is a syntactic reflexive equality (e.g. "1=1"), or some succedent
// formula already appears in the antecedent.
var CloseTrivial Rule = &closeTrivial{}

type closeTrivial struct{}

// Name implementation for the Rule interface.
func (r *closeTrivial) Name() string {
	return "close"
}

// Apply implementation for the Rule interface.
func (r *closeTrivial) Apply(goal logic.Sequent) ([]logic.Sequent, error) {
	for _, f := range goal.Succedent() {
		if reflexive(f) {
			return nil, nil
		}
		// Check for an identical assumption
		for _, a := range goal.Antecedent() {
			if f.Equals(a) {
				return nil, nil
			}
		}
	}
	//
	return nil, fmt.Errorf("goal %q is not trivially closable", goal.String())
}

// SplitConjunction splits a goal whose sole succedent formula is a
// conjunction into one subgoal per conjunct, each retaining the antecedent.
var SplitConjunction Rule = &splitConjunction{}

type splitConjunction struct{}

// Name implementation for the Rule interface.
func (r *splitConjunction) Name() string {
	return "andR"
}

// Apply implementation for the Rule interface.
func (r *splitConjunction) Apply(goal logic.Sequent) ([]logic.Sequent, error) {
	if len(goal.Succedent()) != 1 {
		return nil, fmt.Errorf("andR requires a single succedent formula, got %q", goal.String())
	}
	//
	conjuncts := strings.Split(goal.Succedent()[0].String(), conjunction)
	if len(conjuncts) < 2 {
		return nil, fmt.Errorf("succedent of %q is not a conjunction", goal.String())
	}
	// Construct one subgoal per conjunct
	subgoals := make([]logic.Sequent, len(conjuncts))
	for i, c := range conjuncts {
		subgoals[i] = logic.NewSequent(goal.Antecedent(), []logic.Formula{logic.NewFormula(c)})
	}
	//
	return subgoals, nil
}

// reflexive checks for a syntactic equality with identical sides.
func reflexive(f logic.Formula) bool {
	parts := strings.Split(f.String(), "=")
	//
	if len(parts) != 2 {
		return false
	}
	//
	lhs := strings.TrimSpace(parts[0])
	rhs := strings.TrimSpace(parts[1])
	//
	return lhs != "" && lhs == rhs
}
