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

// Pattern describes a sequent shape against which concrete sequents can be
// unified.  Formulas within a pattern whose rendering begins with '?' act as
// placeholders which bind whole formulas; all other formulas must match
// exactly.
type Pattern struct {
	shape Sequent
}

// NewPattern constructs a pattern from a sequent shape.
func NewPattern(shape Sequent) Pattern {
	return Pattern{shape}
}

// Shape returns the underlying sequent shape of this pattern.
func (p Pattern) Shape() Sequent {
	return p.shape
}

// Substitution maps placeholder names (without the leading '?') to the
// formulas they were bound to during unification.
type Substitution map[string]Formula

// Formula returns the formula bound to a given placeholder, if any.
func (s Substitution) Formula(name string) (Formula, bool) {
	f, ok := s[name]
	return f, ok
}

// Unifier is the capability used to match patterns against proof goals.  The
// engine consumes this interface; richer unifiers (e.g. modulo renaming) can
// be supplied by the caller.
type Unifier interface {
	// Unify attempts to unify a pattern against a sequent, returning the
	// binding of placeholders on success.
	Unify(pattern Pattern, sequent Sequent) (Substitution, bool)
}

// LiteralUnifier is a positional unifier: a pattern matches a sequent when
// both sides have the same length and each pattern formula either is a
// placeholder or equals the corresponding goal formula.  A placeholder bound
// twice must bind equal formulas.
type LiteralUnifier struct{}

// Unify implementation for the Unifier interface.
func (u LiteralUnifier) Unify(pattern Pattern, sequent Sequent) (Substitution, bool) {
	subst := Substitution{}
	//
	if !unifySide(pattern.shape.Antecedent(), sequent.Antecedent(), subst) {
		return nil, false
	}
	//
	if !unifySide(pattern.shape.Succedent(), sequent.Succedent(), subst) {
		return nil, false
	}
	// Done
	return subst, true
}

func unifySide(pats []Formula, goals []Formula, subst Substitution) bool {
	if len(pats) != len(goals) {
		return false
	}
	//
	for i, pat := range pats {
		name, ok := placeholder(pat)
		//
		switch {
		case !ok:
			// Concrete formula, must match exactly.
			if !pat.Equals(goals[i]) {
				return false
			}
		default:
			// Placeholder binds the whole goal formula; a repeated
			// placeholder must bind consistently.
			if prior, bound := subst[name]; bound && !prior.Equals(goals[i]) {
				return false
			}
			//
			subst[name] = goals[i]
		}
	}
	// Done
	return true
}

// placeholder checks whether a pattern formula is a placeholder, returning
// its name if so.
func placeholder(f Formula) (string, bool) {
	text := f.String()
	if strings.HasPrefix(text, "?") {
		return text[1:], true
	}
	//
	return "", false
}
