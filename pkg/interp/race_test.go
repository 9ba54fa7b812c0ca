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
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sequentlab/go-tactic/pkg/logic"
	"github.com/sequentlab/go-tactic/pkg/tactic"
)

// sleepyRule stands in for an expensive decision procedure.
type sleepyRule struct {
	delay time.Duration
}

func (r *sleepyRule) Name() string {
	return "slow"
}

func (r *sleepyRule) Apply(goal logic.Sequent) ([]logic.Sequent, error) {
	time.Sleep(r.delay)
	//
	return nil, fmt.Errorf("slow rule gave up")
}

func TestRaceFastWins(t *testing.T) {
	// The quick alternative wins well before the deadline; the slow one is
	// abandoned rather than awaited.
	program := tactic.TimeoutAlternatives(time.Second,
		tactic.Apply(&sleepyRule{5 * time.Second}),
		trivial,
	)
	//
	started := time.Now()
	result := run(program, goalOf("1=1"))
	//
	proved(t, result)
	assert.Less(t, time.Since(started), time.Second)
}

func TestRaceTimeout(t *testing.T) {
	// No alternative finishing in time yields a timeout failure at the
	// deadline, not at the alternative's own pace.
	program := tactic.TimeoutAlternatives(200*time.Millisecond,
		tactic.Apply(&sleepyRule{5 * time.Second}),
	)
	//
	started := time.Now()
	result := run(program, goalOf("1=1"))
	elapsed := time.Since(started)
	//
	f := failed(t, result, tactic.TimedOut)
	assert.Contains(t, f.Message, "no alternative succeeded")
	assert.True(t, f.Snapshot.HasValue())
	//
	assert.GreaterOrEqual(t, elapsed, 200*time.Millisecond)
	assert.Less(t, elapsed, 3*time.Second)
}

func TestRaceTimeoutMidSaturation(t *testing.T) {
	// A candidate cancelled mid-saturation must not win the race with the
	// partial state it had reached; the race fails at the deadline.
	program := tactic.TimeoutAlternatives(230*time.Millisecond,
		tactic.Saturate(tactic.Apply(&growRule{50 * time.Millisecond})),
	)
	result := run(program, goalOf("1=1"))
	//
	failed(t, result, tactic.TimedOut)
}

func TestRaceAllFailEarly(t *testing.T) {
	// Every alternative failing outright ends the race immediately, well
	// before the deadline, with their combined failures.
	program := tactic.TimeoutAlternatives(time.Minute,
		tactic.Fail("a"),
		tactic.Fail("b"),
	)
	//
	started := time.Now()
	result := run(program, goalOf("1=1"))
	//
	f := failed(t, result, tactic.CompoundKind)
	assert.Contains(t, f.Message, "all alternatives failed")
	assert.Less(t, time.Since(started), time.Second)
}

func TestRaceEmpty(t *testing.T) {
	f := failed(t, run(tactic.TimeoutAlternatives(time.Second), goalOf("1=1")), tactic.ShapeMismatch)
	//
	assert.Contains(t, f.Message, "no alternatives")
}

func TestRaceScopeIsolation(t *testing.T) {
	// A definition made inside a race candidate must not leak into the
	// surrounding run.
	inner := tactic.Seq(tactic.Def("x", tactic.Skip()), tactic.Call("x"))
	program := tactic.Seq(
		tactic.TimeoutAlternatives(time.Second, inner),
		tactic.Call("x"),
	)
	//
	f := failed(t, run(program, goalOf("1=1")), tactic.GenericFailure)
	assert.Contains(t, f.Message, `tactic "x" is not defined`)
}

func TestRaceAbandoned(t *testing.T) {
	// Cancelling the surrounding run is reported as cancellation, not as a
	// race timeout.
	ctx, cancel := context.WithCancel(context.Background())
	//
	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()
	//
	program := tactic.TimeoutAlternatives(time.Minute,
		tactic.Apply(&sleepyRule{5 * time.Second}),
	)
	result := Run(ctx, program, goalOf("1=1"), Options{})
	//
	failed(t, result, tactic.CancelledKind)
}
