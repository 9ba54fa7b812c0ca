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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequent_01(t *testing.T) {
	s := Goal(NewFormula("1=1"))
	//
	assert.Empty(t, s.Antecedent())
	require.Len(t, s.Succedent(), 1)
	assert.True(t, s.Equals(Goal(NewFormula("1=1"))))
	assert.False(t, s.Equals(Goal(NewFormula("2=2"))))
	assert.Equal(t, " |- 1=1", s.String())
}

func TestSequent_02(t *testing.T) {
	ante := []Formula{NewFormula("p"), NewFormula("q")}
	succ := []Formula{NewFormula("r")}
	s := NewSequent(ante, succ)
	// Mutating the originals must not affect the sequent.
	ante[0] = NewFormula("mutated")
	//
	assert.Equal(t, "p", s.Antecedent()[0].String())
	assert.Equal(t, "p, q |- r", s.String())
}

func TestSequentSubstitute(t *testing.T) {
	s := Goal(NewFormula("f(c)=f(c)"))
	r := s.Substitute(NewExpression("f(c)"), NewExpression("v"))
	//
	assert.True(t, r.Equals(Goal(NewFormula("v=v"))))
	// Original untouched
	assert.True(t, s.Equals(Goal(NewFormula("f(c)=f(c)"))))
	// Round trip
	assert.True(t, r.Substitute(NewExpression("v"), NewExpression("f(c)")).Equals(s))
}

func TestUnify_01(t *testing.T) {
	pattern := NewPattern(Goal(NewFormula("?p")))
	//
	subst, ok := LiteralUnifier{}.Unify(pattern, Goal(NewFormula("x>0")))
	require.True(t, ok)
	//
	bound, ok := subst.Formula("p")
	require.True(t, ok)
	assert.Equal(t, "x>0", bound.String())
}

func TestUnify_02(t *testing.T) {
	// Concrete formulas must match exactly.
	pattern := NewPattern(Goal(NewFormula("x>0")))
	//
	_, ok := LiteralUnifier{}.Unify(pattern, Goal(NewFormula("x>1")))
	assert.False(t, ok)
	//
	_, ok = LiteralUnifier{}.Unify(pattern, Goal(NewFormula("x>0")))
	assert.True(t, ok)
}

func TestUnify_03(t *testing.T) {
	// Length mismatch never unifies.
	pattern := NewPattern(Goal(NewFormula("?p")))
	goal := NewSequent([]Formula{NewFormula("a")}, []Formula{NewFormula("b")})
	//
	_, ok := LiteralUnifier{}.Unify(pattern, goal)
	assert.False(t, ok)
}

func TestUnify_04(t *testing.T) {
	// A repeated placeholder must bind consistently.
	shape := NewSequent(
		[]Formula{NewFormula("?p")},
		[]Formula{NewFormula("?p")})
	//
	matching := NewSequent([]Formula{NewFormula("q")}, []Formula{NewFormula("q")})
	conflicting := NewSequent([]Formula{NewFormula("q")}, []Formula{NewFormula("r")})
	//
	_, ok := LiteralUnifier{}.Unify(NewPattern(shape), matching)
	assert.True(t, ok)
	//
	_, ok = LiteralUnifier{}.Unify(NewPattern(shape), conflicting)
	assert.False(t, ok)
}
