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
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sequentlab/go-tactic/pkg/interp"
	"github.com/sequentlab/go-tactic/pkg/logic"
	"github.com/sequentlab/go-tactic/pkg/proof"
	"github.com/sequentlab/go-tactic/pkg/store"
	"github.com/sequentlab/go-tactic/pkg/tactic"
)

var (
	green = color.New(color.FgGreen)
	red   = color.New(color.FgRed, color.Bold)
)

// selfcheckCmd runs the built-in demonstration proofs through both
// interpreter disciplines, as a quick end-to-end sanity check of the engine.
var selfcheckCmd = &cobra.Command{
	Use:   "selfcheck",
	Short: "Run the built-in demonstration proofs through both interpreters.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cmd)
		// Flag overrides the configured deadline.
		timeoutMillis := cfg.TimeoutMillis
		if cmd.Flags().Changed("timeout") {
			timeoutMillis = getUint(cmd, "timeout")
		}
		//
		timeout := time.Duration(timeoutMillis) * time.Millisecond
		//
		recorder := store.Recorder(store.Discard{})
		//
		if cfg.Audit != "" {
			r, err := store.OpenSQLite(cfg.Audit)
			if err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
			//
			defer r.Close()
			//
			recorder = r
		}
		//
		failed := false
		//
		for _, check := range selfchecks(timeout) {
			for _, kind := range []interp.Kind{interp.Lazy, interp.Exhaustive} {
				opts := interp.Options{
					Kind:      kind,
					Listeners: []interp.Listener{interp.NewTraceListener()},
					Recorder:  recorder,
				}
				//
				initial := tactic.NewValue(proof.New(check.goal))
				result := interp.Run(context.Background(), check.program, initial, opts)
				//
				if ok := reportCheck(check.name, kind, result); !ok {
					failed = true
				}
			}
		}
		//
		if failed {
			os.Exit(1)
		}
	},
}

// selfcheck pairs a goal with the tactic expected to prove it.
type selfcheck struct {
	name    string
	goal    logic.Sequent
	program tactic.Tactic
}

// selfchecks assembles the demonstration proofs.
func selfchecks(timeout time.Duration) []selfcheck {
	split := tactic.Apply(proof.SplitConjunction)
	trivial := tactic.Apply(proof.CloseTrivial)
	//
	return []selfcheck{
		{
			"conjunction",
			logic.Goal(logic.NewFormula("1=1 & 2=2")),
			tactic.Seq(split, tactic.Branch(trivial, trivial)),
		},
		{
			"labelled branches",
			logic.Goal(logic.NewFormula("1=1 & 2=2")),
			tactic.Seq(split,
				tactic.Branch(tactic.LabelGoal("base case"), tactic.LabelGoal("use case")),
				tactic.ByLabel(
					tactic.Case{Label: "use case", Tactic: trivial},
					tactic.Case{Label: "base case", Tactic: trivial},
				)),
		},
		{
			"saturation",
			logic.Goal(logic.NewFormula("1=1 & 2=2 & 3=3")),
			tactic.Seq(tactic.Saturate(split), tactic.OnAll(trivial)),
		},
		{
			"race",
			logic.Goal(logic.NewFormula("1=1")),
			tactic.TimeoutAlternatives(timeout,
				tactic.Apply(&slowRule{2 * timeout}),
				trivial,
			),
		},
	}
}

// reportCheck prints one coloured result line, returning success.
func reportCheck(name string, kind interp.Kind, result tactic.Value) bool {
	switch v := result.(type) {
	case *tactic.ProofValue:
		if v.State.IsProved() {
			green.Printf("ok   %s (%s)\n", name, kind)
			return true
		}
		//
		red.Printf("FAIL %s (%s): %d goals left open\n", name, kind, len(v.State.Subgoals()))
	case *tactic.Failure:
		red.Printf("FAIL %s (%s): %s\n", name, kind, v)
	}
	//
	return false
}

// slowRule stands in for an expensive decision procedure which never
// finishes in time.
type slowRule struct {
	delay time.Duration
}

// Name implementation for the Rule interface.
func (r *slowRule) Name() string {
	return "slow"
}

// Apply implementation for the Rule interface.
func (r *slowRule) Apply(goal logic.Sequent) ([]logic.Sequent, error) {
	log.Debugf("slow rule sleeping %s", r.delay)
	time.Sleep(r.delay)
	//
	return nil, fmt.Errorf("slow rule gave up")
}

func init() {
	rootCmd.AddCommand(selfcheckCmd)
	selfcheckCmd.Flags().Uint("timeout", 1000, "race deadline in milliseconds (overrides configuration)")
}
