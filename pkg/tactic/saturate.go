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

// Saturation repeats its body until it stops making progress (the resulting
// value equals the previous one) or fails outright.  Body failures are
// absorbed: iteration stops and the last good value is the result, so a
// saturation never fails itself (cancellation excepted, which always
// propagates).  Zero iterations is success.
type Saturation struct {
	Body Tactic
}

// Saturate constructs the saturating repetition of a tactic.
func Saturate(body Tactic) *Saturation {
	return &Saturation{body}
}

// TacticName implementation for the Tactic interface.
func (t *Saturation) TacticName() string {
	return "saturate"
}

func (t *Saturation) isTactic() {}

// Repetition is like Saturation except the very first application must
// succeed and make progress; otherwise the whole tactic fails.
type Repetition struct {
	Body Tactic
}

// RepeatPlus constructs the at-least-once repetition of a tactic.
func RepeatPlus(body Tactic) *Repetition {
	return &Repetition{body}
}

// TacticName implementation for the Tactic interface.
func (t *Repetition) TacticName() string {
	return "repeat+"
}

func (t *Repetition) isTactic() {}
