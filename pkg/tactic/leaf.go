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

// Abort is the always-failing leaf.
type Abort struct {
	Message string
}

// Fail constructs an always-failing tactic with the given message.
func Fail(message string) *Abort {
	return &Abort{message}
}

// TacticName implementation for the Tactic interface.
func (t *Abort) TacticName() string {
	return "fail"
}

func (t *Abort) isTactic() {}

// NoOp is the always-succeeding leaf, leaving its input untouched.
type NoOp struct{}

// Skip constructs the no-op tactic.
func Skip() *NoOp {
	return &NoOp{}
}

// TacticName implementation for the Tactic interface.
func (t *NoOp) TacticName() string {
	return "skip"
}

func (t *NoOp) isTactic() {}
