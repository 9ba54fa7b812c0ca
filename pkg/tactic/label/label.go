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
package label

import (
	"strconv"
	"strings"
)

// Label identifies one proof branch's provenance as a hierarchical path of
// components (e.g. "indStep.cutShow").  Labels are immutable; every derived
// label is a fresh value.  Two labels are equal iff their full component
// paths are equal.
type Label struct {
	path []string
}

// New constructs a label from the given path components.
func New(components ...string) Label {
	path := make([]string, len(components))
	copy(path, components)
	//
	return Label{path}
}

// Components returns the full path of this label, outermost first.
func (l Label) Components() []string {
	path := make([]string, len(l.path))
	copy(path, l.path)
	//
	return path
}

// Top returns the leaf component of this label, which is what branch-by-label
// matching compares against.
func (l Label) Top() string {
	if len(l.path) == 0 {
		return ""
	}
	//
	return l.path[len(l.path)-1]
}

// IsEmpty holds for the empty label.
func (l Label) IsEmpty() bool {
	return len(l.path) == 0
}

// Append derives a child label by extending this label's path with a new
// leaf component.
func (l Label) Append(child string) Label {
	path := make([]string, 0, len(l.path)+1)
	path = append(path, l.path...)
	path = append(path, child)
	//
	return Label{path}
}

// Split derives labels for the n subgoals which one labelled subgoal became.
// Splitting into one keeps the label as is (no pointless child level);
// otherwise each new subgoal receives a numbered child label.
func (l Label) Split(n int) []Label {
	if n <= 0 {
		return nil
	} else if n == 1 {
		return []Label{l}
	}
	//
	children := make([]Label, n)
	for i := range children {
		children[i] = l.Append(strconv.Itoa(i + 1))
	}
	//
	return children
}

// Equals determines whether two labels have identical paths.
func (l Label) Equals(other Label) bool {
	if len(l.path) != len(other.path) {
		return false
	}
	//
	for i := range l.path {
		if l.path[i] != other.path[i] {
			return false
		}
	}
	// Done
	return true
}

func (l Label) String() string {
	return strings.Join(l.path, ".")
}
