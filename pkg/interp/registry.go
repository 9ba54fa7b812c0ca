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
package interp

import (
	"fmt"
	"sync"

	"github.com/sequentlab/go-tactic/pkg/tactic"
)

// Registry holds the named tactics defined during one top-level run.  It is
// scoped to that run: nothing is ambient or process-wide.  Racing
// combinators fork the registry per candidate, so a definition made inside
// one race branch is never observable from a sibling.
type Registry struct {
	mu   sync.RWMutex
	defs map[string]tactic.Tactic
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]tactic.Tactic)}
}

// Define binds a name to a tactic body.  Rebinding an existing name is
// rejected, since that is almost certainly a programming error in the
// tactic.
func (r *Registry) Define(name string, body tactic.Tactic) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	//
	if _, ok := r.defs[name]; ok {
		return fmt.Errorf("tactic %q already defined", name)
	}
	//
	r.defs[name] = body
	//
	return nil
}

// Lookup resolves a name to its tactic body.
func (r *Registry) Lookup(name string) (tactic.Tactic, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	//
	body, ok := r.defs[name]
	//
	return body, ok
}

// Fork copies this registry into an independent child scope.  Definitions
// made in the child are invisible to the parent and to siblings.
func (r *Registry) Fork() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	//
	defs := make(map[string]tactic.Tactic, len(r.defs))
	for name, body := range r.defs {
		defs[name] = body
	}
	//
	return &Registry{defs: defs}
}
