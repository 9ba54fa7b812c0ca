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

	"github.com/sequentlab/go-tactic/pkg/logic"
)

// Abstraction introduces a local substitution scope: the body is proved
// against a modified goal in which occurrences of a value expression are
// abstracted to a fresh symbol named by the abbreviation.  On success the
// result is specialised back; when the inner proof cannot be instantiated
// back the tactic fails with a let-inapplicability failure.
type Abstraction struct {
	// Fresh symbol standing in for the value.
	Abbreviation string
	// Expression being abstracted.
	Value logic.Expression
	// Tactic proving the abstracted goal.
	Body Tactic
}

// Let constructs a local abstraction scope around a tactic.
func Let(abbreviation string, value logic.Expression, body Tactic) *Abstraction {
	return &Abstraction{abbreviation, value, body}
}

// TacticName implementation for the Tactic interface.
func (t *Abstraction) TacticName() string {
	return fmt.Sprintf("let(%s)", t.Abbreviation)
}

func (t *Abstraction) isTactic() {}
