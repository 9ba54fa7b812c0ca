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
package logic

import (
	"strings"
)

// Sequent pairs an ordered antecedent with an ordered succedent, read as "the
// conjunction of the antecedent implies the disjunction of the succedent".
// Sequents are immutable and compared structurally.
type Sequent struct {
	ante []Formula
	succ []Formula
}

// NewSequent constructs a sequent from the given antecedent and succedent.
// The argument slices are copied.
func NewSequent(ante []Formula, succ []Formula) Sequent {
	a := make([]Formula, len(ante))
	s := make([]Formula, len(succ))
	copy(a, ante)
	copy(s, succ)
	//
	return Sequent{a, s}
}

// Goal constructs a sequent with an empty antecedent and a single succedent
// formula, the most common shape for a proof goal.
func Goal(succ Formula) Sequent {
	return Sequent{nil, []Formula{succ}}
}

// Antecedent returns the antecedent formulas.  Callers must not modify the
// returned slice.
func (s Sequent) Antecedent() []Formula {
	return s.ante
}

// Succedent returns the succedent formulas.  Callers must not modify the
// returned slice.
func (s Sequent) Succedent() []Formula {
	return s.succ
}

// Equals determines whether two sequents are structurally identical.
func (s Sequent) Equals(other Sequent) bool {
	if len(s.ante) != len(other.ante) || len(s.succ) != len(other.succ) {
		return false
	}
	// Check antecedent
	for i := range s.ante {
		if !s.ante[i].Equals(other.ante[i]) {
			return false
		}
	}
	// Check succedent
	for i := range s.succ {
		if !s.succ[i].Equals(other.succ[i]) {
			return false
		}
	}
	// Done
	return true
}

// Substitute replaces every occurrence of a given expression in every formula
// of this sequent, producing a fresh sequent.
func (s Sequent) Substitute(from Expression, to Expression) Sequent {
	ante := make([]Formula, len(s.ante))
	succ := make([]Formula, len(s.succ))
	//
	for i, f := range s.ante {
		ante[i] = f.Substitute(from, to)
	}
	//
	for i, f := range s.succ {
		succ[i] = f.Substitute(from, to)
	}
	//
	return Sequent{ante, succ}
}

func (s Sequent) String() string {
	var builder strings.Builder
	//
	for i, f := range s.ante {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(f.String())
	}
	//
	builder.WriteString(" |- ")
	//
	for i, f := range s.succ {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(f.String())
	}
	//
	return builder.String()
}
