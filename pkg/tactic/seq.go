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

// Sequence runs its left tactic, then its right tactic on the result.  A
// failure on either side is a failure of the whole; the right side is never
// entered when the left side fails.
type Sequence struct {
	Left  Tactic
	Right Tactic
}

// Seq composes two or more tactics sequentially, associating to the right.
func Seq(first Tactic, rest ...Tactic) Tactic {
	if len(rest) == 0 {
		return first
	}
	//
	return &Sequence{first, Seq(rest[0], rest[1:]...)}
}

// TacticName implementation for the Tactic interface.
func (t *Sequence) TacticName() string {
	return "seq"
}

func (t *Sequence) isTactic() {}

// Continuation runs its left tactic, then its right tactic exactly once on
// whatever value remains, including a failure value: the right frame is
// entered (its listener events fire, its name joins the trace) even when the
// left side failed.  This is the only combinator which passes failures
// onward rather than short-circuiting.
type Continuation struct {
	Left  Tactic
	Right Tactic
}

// After composes two tactics such that the second always runs on the first's
// outcome.
func After(left Tactic, right Tactic) *Continuation {
	return &Continuation{left, right}
}

// TacticName implementation for the Tactic interface.
func (t *Continuation) TacticName() string {
	return "after"
}

func (t *Continuation) isTactic() {}
