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
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/sequentlab/go-tactic/pkg/logic"
	"github.com/sequentlab/go-tactic/pkg/proof"
	"github.com/sequentlab/go-tactic/pkg/store"
	"github.com/sequentlab/go-tactic/pkg/tactic"
	"github.com/sequentlab/go-tactic/pkg/tactic/label"
)

// Kind selects the scheduling discipline for branching combinators.
type Kind int

const (
	// Lazy evaluates branches in order and aborts on the first branch
	// failure without attempting the remaining branches.
	Lazy Kind = iota
	// Exhaustive evaluates every branch (all listener events fire) before
	// surfacing a failure aggregating every branch that failed.
	Exhaustive
)

func (k Kind) String() string {
	if k == Exhaustive {
		return "exhaustive"
	}
	//
	return "lazy"
}

// Options configures one top-level run.  Everything is explicit; the engine
// reads no ambient global state.
type Options struct {
	// Scheduling discipline (defaults to Lazy).
	Kind Kind
	// Observers notified around every node evaluation.
	Listeners []Listener
	// Pattern unifier (defaults to logic.LiteralUnifier).
	Unifier logic.Unifier
	// Audit recorder (defaults to discarding).
	Recorder store.Recorder
}

// Run evaluates a tactic against an initial value, which is either a proof
// value or a prior failure to propagate.  The result is the final proof
// value (possibly fully proved) or a structured failure.  Cancellation of
// the context is cooperative: evaluation stops between AST nodes and the
// listeners' Kill hooks fire.
func Run(ctx context.Context, t tactic.Tactic, initial tactic.Value, opts Options) tactic.Value {
	if opts.Unifier == nil {
		opts.Unifier = logic.LiteralUnifier{}
	}
	//
	if opts.Recorder == nil {
		opts.Recorder = store.Discard{}
	}
	//
	e := &evaluator{
		kind:      opts.Kind,
		listeners: opts.Listeners,
		unifier:   opts.Unifier,
		recorder:  opts.Recorder,
		registry:  NewRegistry(),
		runID:     uuid.New(),
		step:      &atomic.Uint64{},
	}
	//
	log.Debugf("run %s: %s interpreter, tactic %s", e.runID, opts.Kind, t.TacticName())
	//
	result := e.eval(ctx, t, initial)
	// Abandoned runs additionally fire the kill hooks.
	if ctx.Err() != nil {
		for _, l := range e.listeners {
			l.Kill()
		}
	}
	//
	return result
}

// evaluator carries the per-run evaluation context.  Racing combinators fork
// it per candidate; everything shared across forks (recorder, step counter,
// listeners) is safe under concurrent use, while the registry is forked
// into an isolated scope.
type evaluator struct {
	kind      Kind
	listeners []Listener
	unifier   logic.Unifier
	recorder  store.Recorder
	registry  *Registry
	runID     uuid.UUID
	step      *atomic.Uint64
}

// fork derives the evaluator for one race candidate: an isolated registry
// scope over otherwise shared run context.
func (e *evaluator) fork() *evaluator {
	return &evaluator{
		kind:      e.kind,
		listeners: e.listeners,
		unifier:   e.unifier,
		recorder:  e.recorder,
		registry:  e.registry.Fork(),
		runID:     e.runID,
		step:      e.step,
	}
}

// eval is the standard evaluation entry: failure inputs propagate untouched
// (without listener events), everything else enters the node's frame.
func (e *evaluator) eval(ctx context.Context, t tactic.Tactic, v tactic.Value) tactic.Value {
	if v.IsFailure() {
		return v
	}
	//
	return e.evalFrame(ctx, t, v)
}

// evalFrame enters a node's frame unconditionally: listeners fire, the
// outcome is recorded, and a propagating failure gains this frame's name.
// The after combinator uses this directly so that its continuation observes
// failure values.
func (e *evaluator) evalFrame(ctx context.Context, t tactic.Tactic, v tactic.Value) tactic.Value {
	// Cooperative cancellation between nodes.
	if err := ctx.Err(); err != nil {
		return tactic.NewCancelled("evaluation abandoned: %v", err)
	}
	//
	for _, l := range e.listeners {
		l.Begin(v, t)
	}
	//
	started := time.Now()
	result := e.apply(ctx, t, v)
	// Propagating failures acquire this frame's identity.
	if f, ok := result.(*tactic.Failure); ok {
		result = f.WithFrame(t.TacticName())
	}
	//
	for _, l := range e.listeners {
		l.End(v, t, result)
	}
	//
	e.record(t, v, result, time.Since(started))
	//
	return result
}

// apply implements each combinator's control-flow contract.  This is the
// single exhaustive dispatch over the closed tactic variant set.
func (e *evaluator) apply(ctx context.Context, t tactic.Tactic, v tactic.Value) tactic.Value {
	// A failure value can arrive here through the after combinator; every
	// node passes it through unchanged.
	pv, ok := v.(*tactic.ProofValue)
	if !ok {
		return v
	}
	//
	switch node := t.(type) {
	case *tactic.NoOp:
		return v
	case *tactic.Abort:
		return tactic.NewFailure("%s", node.Message).WithSnapshot(pv.State)
	case *tactic.RuleApp:
		return e.applyRule(node, pv)
	case *tactic.Sequence:
		return e.eval(ctx, node.Right, e.eval(ctx, node.Left, v))
	case *tactic.Continuation:
		return e.evalFrame(ctx, node.Right, e.eval(ctx, node.Left, v))
	case *tactic.Alternation:
		return e.alternate(ctx, node, v)
	case *tactic.BranchList:
		return e.branch(ctx, node.Children, pv)
	case *tactic.OnAllGoals:
		return e.onAll(ctx, node.Body, pv)
	case *tactic.CaseBranch:
		return e.caseBranch(ctx, node, pv)
	case *tactic.Saturation:
		return e.saturate(ctx, node.Body, pv, false)
	case *tactic.Repetition:
		return e.saturate(ctx, node.Body, pv, true)
	case *tactic.GoalLabel:
		return e.labelGoal(node, pv)
	case *tactic.PatternMatch:
		return e.matchPattern(ctx, node, pv)
	case *tactic.Race:
		return e.race(ctx, node, pv)
	case *tactic.Definition:
		if err := e.registry.Define(node.Name, node.Body); err != nil {
			return tactic.NewShapeMismatch("%v", err)
		}
		//
		return v
	case *tactic.Reference:
		body, ok := e.registry.Lookup(node.Name)
		if !ok {
			return tactic.NewFailure("tactic %q is not defined", node.Name)
		}
		//
		return e.eval(ctx, body, v)
	case *tactic.Abstraction:
		return e.let(ctx, node, pv)
	}
	// Unreachable: the variant set is closed.
	return tactic.NewFailure("unknown tactic %T", t)
}

// alternate implements left-biased choice with compound failure.
func (e *evaluator) alternate(ctx context.Context, node *tactic.Alternation, v tactic.Value) tactic.Value {
	left := e.eval(ctx, node.Left, v)
	if !left.IsFailure() {
		return left
	}
	// Retry from the original input.
	right := e.eval(ctx, node.Right, v)
	if !right.IsFailure() {
		return right
	}
	// Both alternatives failed.
	return tactic.NewCompound(left.(*tactic.Failure), right.(*tactic.Failure))
}

// applyRule performs an atomic rule application against the targeted
// subgoal, keeping labels in step with the goals the rule produced.
func (e *evaluator) applyRule(node *tactic.RuleApp, pv *tactic.ProofValue) tactic.Value {
	goal := node.Goal
	if goal < 0 {
		goal = 0
	}
	//
	goals := pv.State.Subgoals()
	//
	if len(goals) == 0 {
		return tactic.NewInapplicable("%s: no open goals", node.Rule.Name()).WithSnapshot(pv.State)
	} else if goal >= len(goals) {
		return tactic.NewInapplicable("%s: goal %d out of range (%d open)",
			node.Rule.Name(), goal, len(goals)).WithSnapshot(pv.State)
	}
	//
	next, err := pv.State.Apply(goal, node.Rule)
	if err != nil {
		return tactic.NewInapplicable("%v", err).WithSnapshot(pv.State)
	}
	// One goal became this many.
	produced := len(next.Subgoals()) - len(goals) + 1
	//
	return &tactic.ProofValue{State: next, Labels: relabel(pv.Labels, goal, produced)}
}

// labelGoal attaches a (sub)label to the single open subgoal.
func (e *evaluator) labelGoal(node *tactic.GoalLabel, pv *tactic.ProofValue) tactic.Value {
	goals := pv.State.Subgoals()
	//
	if len(goals) != 1 {
		return tactic.NewShapeMismatch("label %q requires exactly one open goal, found %d",
			node.Name, len(goals)).WithSnapshot(pv.State)
	}
	//
	var l label.Label
	//
	if pv.Labels != nil {
		l = pv.Labels[0].Append(node.Name)
	} else {
		l = label.New(node.Name)
	}
	//
	return &tactic.ProofValue{State: pv.State, Labels: []label.Label{l}}
}

// matchPattern tries the cases in order against the first open subgoal and
// runs the first whose pattern unifies; strictly first-match-wins.
func (e *evaluator) matchPattern(ctx context.Context, node *tactic.PatternMatch, pv *tactic.ProofValue) tactic.Value {
	goals := pv.State.Subgoals()
	//
	if len(goals) == 0 {
		return tactic.NewInapplicable("nothing to match on a proved state").WithSnapshot(pv.State)
	}
	//
	for _, c := range node.Cases {
		if subst, ok := e.unifier.Unify(c.Pattern, goals[0]); ok {
			return e.eval(ctx, c.Build(subst), pv)
		}
	}
	//
	return tactic.NewUnificationFailure("no pattern matches goal %q", goals[0].String()).WithSnapshot(pv.State)
}

// let proves the body against the abstracted goal, then specialises the
// resulting derivation back onto the original certificate.
func (e *evaluator) let(ctx context.Context, node *tactic.Abstraction, pv *tactic.ProofValue) tactic.Value {
	goals := pv.State.Subgoals()
	//
	if len(goals) != 1 {
		return tactic.NewShapeMismatch("let %q requires exactly one open goal, found %d",
			node.Abbreviation, len(goals)).WithSnapshot(pv.State)
	}
	//
	symbol := logic.NewExpression(node.Abbreviation)
	abstracted := goals[0].Substitute(node.Value, symbol)
	inner := tactic.NewLabelledValue(proof.New(abstracted), pv.Labels)
	//
	result := e.eval(ctx, node.Body, inner)
	if result.IsFailure() {
		return result
	}
	//
	rv := result.(*tactic.ProofValue)
	// Specialise the inner derivation back, then re-attach it.  The graft
	// check rejects derivations which do not instantiate back to the
	// original goal (e.g. the abbreviation symbol already occurred there).
	specialised := rv.State.Substitute(symbol, node.Value)
	//
	merged, err := pv.State.Graft(0, specialised)
	if err != nil {
		return tactic.NewLetFailure("cannot instantiate %q back to %s: %v",
			node.Abbreviation, node.Value.String(), err).WithSnapshot(pv.State)
	}
	//
	labels := rv.Labels
	if labels == nil && pv.Labels != nil {
		labels = pv.Labels[0].Split(len(rv.State.Subgoals()))
	}
	// A state without open subgoals is unlabelled (nil), never labelled
	// with zero labels.
	if len(labels) == 0 {
		labels = nil
	}
	//
	return &tactic.ProofValue{State: merged, Labels: labels}
}

// record writes one audit step; recorder errors are logged, never allowed to
// affect proof results.
func (e *evaluator) record(t tactic.Tactic, input tactic.Value, outcome tactic.Value, elapsed time.Duration) {
	step := store.Step{
		RunID:       e.runID,
		Index:       e.step.Add(1),
		Tactic:      t.TacticName(),
		Input:       input.String(),
		OutcomeKind: outcomeKind(outcome),
		Outcome:     outcome.String(),
		Elapsed:     elapsed,
	}
	//
	if err := e.recorder.Record(step); err != nil {
		log.Errorf("audit record failed: %v", err)
	}
}

// outcomeKind classifies an outcome for the audit trail.
func outcomeKind(v tactic.Value) string {
	switch v := v.(type) {
	case *tactic.Failure:
		return v.Kind.String()
	case *tactic.ProofValue:
		if v.State.IsProved() {
			return "proved"
		}
		//
		return "open"
	}
	//
	return "unknown"
}
