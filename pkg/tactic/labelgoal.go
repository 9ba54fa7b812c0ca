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
)

// GoalLabel attaches a branch label to the single current open subgoal,
// either as a fresh label or as a sublabel of the goal's existing one.  More
// (or fewer) than one open subgoal is a shape mismatch.
type GoalLabel struct {
	Name string
}

// LabelGoal constructs the labelling of the current subgoal.
func LabelGoal(name string) *GoalLabel {
	return &GoalLabel{name}
}

// TacticName implementation for the Tactic interface.
func (t *GoalLabel) TacticName() string {
	return fmt.Sprintf("label(%s)", t.Name)
}

func (t *GoalLabel) isTactic() {}
