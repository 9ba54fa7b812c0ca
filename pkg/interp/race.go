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
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/sequentlab/go-tactic/pkg/tactic"
)

// race runs every alternative concurrently against the (immutable) input
// value and commits to the first success.  Each candidate owns a forked
// registry scope, so sibling definitions never leak across candidates.
// Cancellation is cooperative: losers observe the cancelled context between
// AST nodes and their eventual results are discarded unread from the
// buffered channel.
func (e *evaluator) race(ctx context.Context, node *tactic.Race, pv *tactic.ProofValue) tactic.Value {
	if len(node.Alternatives) == 0 {
		return tactic.NewShapeMismatch("race over no alternatives")
	}
	//
	rctx, cancel := context.WithTimeout(ctx, node.Timeout)
	defer cancel()
	// Buffered so that losers never block sending.
	results := make(chan tactic.Value, len(node.Alternatives))
	//
	for i, alt := range node.Alternatives {
		candidate := e.fork()
		//
		go func(i int, t tactic.Tactic) {
			results <- candidate.eval(rctx, t, pv)
			log.Debugf("race candidate %d (%s) finished", i, t.TacticName())
		}(i, alt)
	}
	//
	var failures []*tactic.Failure
	//
	for range node.Alternatives {
		select {
		case result := <-results:
			if !result.IsFailure() {
				// First success wins; cancel the rest.
				cancel()
				return result
			}
			//
			failures = append(failures, result.(*tactic.Failure))
		case <-rctx.Done():
			if ctx.Err() != nil {
				// The surrounding run was abandoned, not the deadline.
				return tactic.NewCancelled("race abandoned: %v", ctx.Err())
			}
			//
			return tactic.NewTimeout("no alternative succeeded within %s", node.Timeout).WithSnapshot(pv.State)
		}
	}
	// Every candidate failed before the deadline.
	return foldFailures(failures)
}
