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

// Case pairs a branch label with the tactic handling goals so labelled.
type Case struct {
	// Leaf label component to match.
	Label string
	// Tactic for matching goals.
	Tactic Tactic
}

// CaseBranch distributes sub-tactics over subgoals by label rather than by
// position: each subgoal is matched to the case whose label equals the leaf
// component of that subgoal's label.  An unmatched subgoal, an unused case,
// or an unlabelled state is a shape mismatch.  The order of cases is
// irrelevant to semantics; output subgoals keep the original goal order, so
// goal numbering stays stable for users.
type CaseBranch struct {
	Cases []Case
}

// ByLabel constructs a branch matching sub-tactics to subgoals by label.
func ByLabel(cases ...Case) *CaseBranch {
	return &CaseBranch{cases}
}

// TacticName implementation for the Tactic interface.
func (t *CaseBranch) TacticName() string {
	return "cases"
}

func (t *CaseBranch) isTactic() {}
