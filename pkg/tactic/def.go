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
)

// Definition registers a named tactic for later reference within the same
// top-level run.  The body may refer to its own name via Call: resolution
// happens lazily at application time, which is what permits loop-like
// recursive tactics without a cyclic AST value.
type Definition struct {
	Name string
	Body Tactic
}

// Def constructs a named tactic definition.
func Def(name string, body Tactic) *Definition {
	return &Definition{name, body}
}

// TacticName implementation for the Tactic interface.
func (t *Definition) TacticName() string {
	return fmt.Sprintf("def(%s)", t.Name)
}

func (t *Definition) isTactic() {}

// Reference applies a previously defined named tactic, looked up in the
// current run's registry at application time.
type Reference struct {
	Name string
}

// Call constructs a by-name application of a defined tactic.
func Call(name string) *Reference {
	return &Reference{name}
}

// TacticName implementation for the Tactic interface.  The user's chosen
// name is the identity reported in traces.
func (t *Reference) TacticName() string {
	return t.Name
}

func (t *Reference) isTactic() {}
