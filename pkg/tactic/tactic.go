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

// Tactic is one node of the combinator AST.  The variant set is closed: the
// interpreter dispatches over it exhaustively, and nothing outside this
// package can add a variant.  Tactics are immutable trees; the only form of
// recursion is by-name indirection through Def/Call, resolved lazily at
// evaluation time.
type Tactic interface {
	// TacticName identifies this node in listener events and failure
	// traces.
	TacticName() string
	// seals the variant set
	isTactic()
}
