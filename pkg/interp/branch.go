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
	"strconv"

	"github.com/sequentlab/go-tactic/pkg/tactic"
	"github.com/sequentlab/go-tactic/pkg/tactic/label"
)

// branch distributes one sub-tactic per open subgoal and merges the results.
// Under the lazy discipline the first branch failure aborts immediately;
// under the exhaustive discipline every branch is evaluated (so every
// branch's listener events fire) and all branch failures are folded into one
// compound failure.  Per documented policy the aggregated failure carries no
// partial merged state.
func (e *evaluator) branch(ctx context.Context, children []tactic.Tactic, pv *tactic.ProofValue) tactic.Value {
	goals := pv.State.Subgoals()
	//
	if len(children) != len(goals) {
		return tactic.NewShapeMismatch("branch: expected %d open goals, found %d",
			len(children), len(goals)).WithSnapshot(pv.State)
	}
	//
	results := make([]*tactic.ProofValue, len(children))
	//
	var failures []*tactic.Failure
	//
	for i, child := range children {
		sub, err := pv.State.Sub(i)
		if err != nil {
			return tactic.NewFailure("branch %d: %v", i, err)
		}
		// Focus the branch onto its own goal (and its own label).
		var labels []label.Label
		if pv.Labels != nil {
			labels = []label.Label{pv.Labels[i]}
		}
		//
		result := e.eval(ctx, child, &tactic.ProofValue{State: sub, Labels: labels})
		//
		if f, ok := result.(*tactic.Failure); ok {
			if e.kind == Lazy {
				return f
			}
			//
			failures = append(failures, f)
			//
			continue
		}
		//
		results[i] = result.(*tactic.ProofValue)
	}
	//
	if len(failures) > 0 {
		return foldFailures(failures)
	}
	//
	return mergeBranches(pv, results)
}

// onAll distributes one tactic over every currently open subgoal, sized
// dynamically.  A proved state is left untouched.
func (e *evaluator) onAll(ctx context.Context, body tactic.Tactic, pv *tactic.ProofValue) tactic.Value {
	n := len(pv.State.Subgoals())
	//
	if n == 0 {
		return pv
	}
	//
	children := make([]tactic.Tactic, n)
	for i := range children {
		children[i] = body
	}
	//
	return e.branch(ctx, children, pv)
}

// caseBranch matches sub-tactics to subgoals by comparing case labels
// against the leaf component of each subgoal's label, then defers to the
// positional branch machinery so output goals keep their original order.
func (e *evaluator) caseBranch(ctx context.Context, node *tactic.CaseBranch, pv *tactic.ProofValue) tactic.Value {
	if pv.Labels == nil {
		return tactic.NewShapeMismatch("case branch requires labelled goals").WithSnapshot(pv.State)
	}
	//
	goals := pv.State.Subgoals()
	//
	if len(node.Cases) != len(goals) {
		return tactic.NewShapeMismatch("case branch: expected %d open goals, found %d",
			len(node.Cases), len(goals)).WithSnapshot(pv.State)
	}
	//
	children := make([]tactic.Tactic, len(goals))
	used := make([]bool, len(node.Cases))
	//
	for i, l := range pv.Labels {
		matched := -1
		//
		for j, c := range node.Cases {
			if !used[j] && c.Label == l.Top() {
				matched = j
				break
			}
		}
		//
		if matched < 0 {
			return tactic.NewShapeMismatch("no case matches goal label %q", l.String()).WithSnapshot(pv.State)
		}
		//
		used[matched] = true
		children[i] = node.Cases[matched].Tactic
	}
	//
	return e.branch(ctx, children, pv)
}

// saturate repeatedly applies the body until it fails or stops making
// progress.  When progress is required, a failing or stagnant first
// iteration fails the whole tactic; otherwise the last good value wins and
// the tactic itself never fails.  Cancellation is the one exception:
// abandonment propagates rather than being absorbed as a partial result.
func (e *evaluator) saturate(ctx context.Context, body tactic.Tactic, pv *tactic.ProofValue, requireProgress bool) tactic.Value {
	var current *tactic.ProofValue = pv
	//
	for first := true; ; first = false {
		next := e.eval(ctx, body, current)
		//
		if f, ok := next.(*tactic.Failure); ok {
			// A cancelled evaluation must surface as cancelled, never as a
			// partial success; otherwise an abandoned race candidate could
			// win with a half-saturated state.
			if f.Kind == tactic.CancelledKind {
				return f
			}
			//
			if first && requireProgress {
				return f
			}
			// Stop iterating, keep the state before the failing iteration.
			return current
		}
		//
		nv := next.(*tactic.ProofValue)
		//
		if nv.Equals(current) {
			if first && requireProgress {
				return tactic.NewFailure("%s made no progress", body.TacticName()).WithSnapshot(current.State)
			}
			// No progress: saturation reached.
			return nv
		}
		//
		current = nv
	}
}

// mergeBranches splices every branch's resulting subgoals (and labels) back
// into the overall certificate at the position previously occupied by that
// branch's goal, in left-to-right order.
func mergeBranches(parent *tactic.ProofValue, results []*tactic.ProofValue) tactic.Value {
	state := parent.State
	// Graft right-to-left so positions of pending grafts stay stable.
	for i := len(results) - 1; i >= 0; i-- {
		var err error
		//
		if state, err = state.Graft(i, results[i].State); err != nil {
			return tactic.NewFailure("merging branch %d: %v", i, err)
		}
	}
	// Labels are carried whenever the parent had them or any branch
	// introduced some.
	needLabels := parent.Labels != nil
	//
	for _, r := range results {
		needLabels = needLabels || r.Labels != nil
	}
	//
	if !needLabels {
		return &tactic.ProofValue{State: state, Labels: nil}
	}
	//
	labels := []label.Label{}
	//
	for i, r := range results {
		ls := r.Labels
		//
		if ls == nil {
			// Unlabelled branch result: derive labels from the parent's
			// label at this position, seeding positionally when the
			// parent was unlabelled too.
			base := label.New(strconv.Itoa(i + 1))
			if parent.Labels != nil {
				base = parent.Labels[i]
			}
			//
			ls = base.Split(len(r.State.Subgoals()))
		}
		//
		labels = append(labels, ls...)
	}
	// Every branch proved means an unlabelled (proved) merged state.
	if len(labels) == 0 {
		labels = nil
	}
	//
	return &tactic.ProofValue{State: state, Labels: labels}
}

// relabel tracks a rule application at goal g which produced k replacement
// goals, splicing split labels at that position.
func relabel(labels []label.Label, g int, k int) []label.Label {
	if labels == nil {
		return nil
	}
	//
	out := make([]label.Label, 0, len(labels)+k-1)
	out = append(out, labels[:g]...)
	out = append(out, labels[g].Split(k)...)
	out = append(out, labels[g+1:]...)
	// Closing the last goal leaves an unlabelled (proved) state.
	if len(out) == 0 {
		return nil
	}
	//
	return out
}

// foldFailures aggregates branch failures left-associatively into a single
// (possibly compound) failure.
func foldFailures(failures []*tactic.Failure) *tactic.Failure {
	result := failures[0]
	//
	for _, f := range failures[1:] {
		result = tactic.NewCompound(result, f)
	}
	//
	return result
}
