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

// BranchList distributes one sub-tactic per open subgoal, positionally.  The
// current state must have exactly as many open subgoals as there are
// sub-tactics; otherwise the tactic is ill-formed and fails with a shape
// mismatch.  Each branch runs on its subgoal in isolation; results are
// spliced back at the position of the original subgoal, in order.
type BranchList struct {
	Children []Tactic
}

// Branch constructs a positional branch over the given sub-tactics.
func Branch(children ...Tactic) *BranchList {
	return &BranchList{children}
}

// TacticName implementation for the Tactic interface.
func (t *BranchList) TacticName() string {
	return "branch"
}

func (t *BranchList) isTactic() {}

// OnAllGoals applies one tactic independently to every currently open
// subgoal.  Equivalent to a branch replicating the tactic to the current
// goal count, computed dynamically; a proved state is left untouched.
type OnAllGoals struct {
	Body Tactic
}

// OnAll constructs the dynamic distribution of a tactic over all open
// subgoals.
func OnAll(body Tactic) *OnAllGoals {
	return &OnAllGoals{body}
}

// TacticName implementation for the Tactic interface.
func (t *OnAllGoals) TacticName() string {
	return "onAll"
}

func (t *OnAllGoals) isTactic() {}
