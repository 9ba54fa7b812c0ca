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
	"github.com/sequentlab/go-tactic/pkg/logic"
)

// PatternCase pairs a sequent pattern with a builder producing the tactic to
// run once the pattern has unified, instantiated with the computed
// substitution.
type PatternCase struct {
	Pattern logic.Pattern
	Build   func(logic.Substitution) Tactic
}

// PatternMatch tries its cases against the current goal in order, running
// the first whose pattern unifies.  First match wins: once a pattern
// unifies, later cases are never attempted even if they would also match.
// No match at all is a unification failure.
type PatternMatch struct {
	Cases []PatternCase
}

// Match constructs a first-match-wins pattern dispatch.
func Match(cases ...PatternCase) *PatternMatch {
	return &PatternMatch{cases}
}

// TacticName implementation for the Tactic interface.
func (t *PatternMatch) TacticName() string {
	return "match"
}

func (t *PatternMatch) isTactic() {}
