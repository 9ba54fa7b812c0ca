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

// Formula is an opaque logical formula.  The engine never inspects formula
// structure; it only compares formulas for structural equality, renders them
// for diagnostics and (for the let combinator) substitutes expressions within
// them.  Formulas are immutable values.
type Formula struct {
	text string
}

// NewFormula constructs a formula from its rendering.
func NewFormula(text string) Formula {
	return Formula{text}
}

// Equals determines whether two formulas are structurally identical.
func (f Formula) Equals(other Formula) bool {
	return f.text == other.text
}

// Substitute replaces every occurrence of a given expression within this
// formula, producing a fresh formula.
func (f Formula) Substitute(from Expression, to Expression) Formula {
	return Formula{strings.ReplaceAll(f.text, from.text, to.text)}
}

// Contains determines whether a given expression occurs within this formula.
func (f Formula) Contains(e Expression) bool {
	return strings.Contains(f.text, e.text)
}

func (f Formula) String() string {
	return f.text
}

// Expression is an opaque term which may occur within formulas.  Like
// formulas, expressions are immutable values compared structurally.
type Expression struct {
	text string
}

// NewExpression constructs an expression from its rendering.
func NewExpression(text string) Expression {
	return Expression{text}
}

// Equals determines whether two expressions are structurally identical.
func (e Expression) Equals(other Expression) bool {
	return e.text == other.text
}

func (e Expression) String() string {
	return e.text
}
