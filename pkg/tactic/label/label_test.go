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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelAppend(t *testing.T) {
	l := New("indStep")
	child := l.Append("cutShow")
	//
	assert.Equal(t, "indStep.cutShow", child.String())
	assert.Equal(t, "cutShow", child.Top())
	// Parent untouched
	assert.Equal(t, "indStep", l.String())
}

func TestLabelSplit(t *testing.T) {
	l := New("case")
	//
	assert.Nil(t, l.Split(0))
	// Splitting into one keeps the label as is.
	one := l.Split(1)
	require.Len(t, one, 1)
	assert.True(t, one[0].Equals(l))
	// Splitting further numbers the children.
	three := l.Split(3)
	require.Len(t, three, 3)
	assert.Equal(t, "case.1", three[0].String())
	assert.Equal(t, "case.2", three[1].String())
	assert.Equal(t, "case.3", three[2].String())
}

func TestLabelEquality(t *testing.T) {
	assert.True(t, New("a", "b").Equals(New("a", "b")))
	assert.False(t, New("a", "b").Equals(New("a")))
	assert.False(t, New("a", "b").Equals(New("a", "c")))
	// Equality is on the full path, not just the leaf.
	assert.False(t, New("a", "x").Equals(New("b", "x")))
}

func TestLabelFreshness(t *testing.T) {
	components := []string{"a", "b"}
	l := New(components...)
	components[0] = "mutated"
	//
	assert.Equal(t, "a.b", l.String())
	// Components returns a copy.
	l.Components()[0] = "mutated"
	assert.Equal(t, "a.b", l.String())
}
