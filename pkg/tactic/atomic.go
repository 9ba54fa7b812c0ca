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
	"github.com/sequentlab/go-tactic/pkg/proof"
)

// RuleApp is the atomic leaf: a single kernel rule application, optionally
// targeted at a specific subgoal.
type RuleApp struct {
	// The kernel rule to apply.
	Rule proof.Rule
	// Target subgoal, or negative for the first open subgoal.
	Goal int
}

// Apply constructs an atomic rule application targeting the first open
// subgoal.
func Apply(rule proof.Rule) *RuleApp {
	return &RuleApp{rule, -1}
}

// ApplyAt constructs an atomic rule application targeting subgoal i.
func ApplyAt(rule proof.Rule, i int) *RuleApp {
	return &RuleApp{rule, i}
}

// Decide constructs an atomic leaf wrapping an external arithmetic oracle,
// closing a single-succedent goal the oracle proves valid.
func Decide(oracle proof.Oracle) *RuleApp {
	return &RuleApp{proof.NewOracleRule(oracle), -1}
}

// TacticName implementation for the Tactic interface.
func (t *RuleApp) TacticName() string {
	return t.Rule.Name()
}

func (t *RuleApp) isTactic() {}
