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
	"time"
)

// Race runs several alternatives concurrently against the same input state
// and commits to the first success within the deadline, cancelling the
// others cooperatively.  If no alternative succeeds before the deadline the
// race fails with a timeout; if every alternative fails before the deadline
// the race fails immediately with their combined failures.
type Race struct {
	// Maximum time to wait for a success.
	Timeout time.Duration
	// Candidate tactics, raced concurrently.
	Alternatives []Tactic
}

// TimeoutAlternatives constructs a race over the given alternatives.
func TimeoutAlternatives(timeout time.Duration, alternatives ...Tactic) *Race {
	return &Race{timeout, alternatives}
}

// TacticName implementation for the Tactic interface.
func (t *Race) TacticName() string {
	return "timeoutAlternatives"
}

func (t *Race) isTactic() {}
