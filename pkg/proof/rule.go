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
package proof

import (
	"fmt"

	"github.com/sequentlab/go-tactic/pkg/logic"
)

// Rule is the kernel capability: a sound inference step which, applied to a
// goal sequent, either produces the zero or more subgoals from which that
// goal follows, or rejects the goal as outside its preconditions.  The rule
// set itself lives outside this engine; the engine merely applies whatever
// rules it is handed, via State.Apply.
type Rule interface {
	// Name identifies this rule in traces and diagnostics.
	Name() string
	// Apply transforms a goal into replacement subgoals, or fails when the
	// rule's preconditions are unmet.
	Apply(goal logic.Sequent) ([]logic.Sequent, error)
}

// Verdict is the outcome of an external arithmetic decision procedure.
type Verdict int

const (
	// Unknown indicates the procedure could not decide the formula.
	Unknown Verdict = iota
	// Proved indicates the formula is valid.
	Proved
	// Refuted indicates the formula is invalid.
	Refuted
)

func (v Verdict) String() string {
	switch v {
	case Proved:
		return "proved"
	case Refuted:
		return "refuted"
	default:
		return "unknown"
	}
}

// Oracle is the capability interface for external arithmetic decision
// procedures (computer algebra, SMT).  Its verdicts enter proofs only
// through OracleRule, never directly.
type Oracle interface {
	// Decide the validity of a first-order arithmetic formula.
	Decide(formula logic.Formula) (Verdict, error)
}

// OracleRule wraps an arithmetic oracle as an inference rule closing any
// single-succedent goal whose formula the oracle proves valid.
type OracleRule struct {
	oracle Oracle
}

// NewOracleRule constructs the rule wrapper around a given oracle.
func NewOracleRule(oracle Oracle) *OracleRule {
	return &OracleRule{oracle}
}

// Name implementation for the Rule interface.
func (r *OracleRule) Name() string {
	return "oracle"
}

// Apply implementation for the Rule interface.
func (r *OracleRule) Apply(goal logic.Sequent) ([]logic.Sequent, error) {
	if len(goal.Antecedent()) != 0 || len(goal.Succedent()) != 1 {
		return nil, fmt.Errorf("oracle requires a single-succedent goal, got %q", goal.String())
	}
	// Consult the oracle
	verdict, err := r.oracle.Decide(goal.Succedent()[0])
	//
	if err != nil {
		return nil, fmt.Errorf("oracle: %w", err)
	} else if verdict != Proved {
		return nil, fmt.Errorf("oracle %s %q", verdict, goal.Succedent()[0].String())
	}
	// Goal closed
	return nil, nil
}
