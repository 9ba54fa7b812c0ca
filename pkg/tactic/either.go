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

// Alternation is left-biased choice: run the left tactic; if it fails, run
// the right tactic from the original input; if both fail, the result is a
// compound failure pairing both.
type Alternation struct {
	Left  Tactic
	Right Tactic
}

// Either composes two or more alternatives, associating to the right.
func Either(first Tactic, rest ...Tactic) Tactic {
	if len(rest) == 0 {
		return first
	}
	//
	return &Alternation{first, Either(rest[0], rest[1:]...)}
}

// TacticName implementation for the Tactic interface.
func (t *Alternation) TacticName() string {
	return "either"
}

func (t *Alternation) isTactic() {}
