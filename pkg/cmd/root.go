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
	"fmt"
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sequentlab/go-tactic/pkg/config"
)

// Version is filled when building with make, but *not* when installing via
// "go install".
var Version string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "go-tactic",
	Short: "A tactic interpreter for sequent-style proofs.",
	Long:  "An interpreter (and debug harness) for the tactic combinator language.",
	Run: func(cmd *cobra.Command, args []string) {
		if getFlag(cmd, "version") {
			fmt.Print("go-tactic ")
			if Version != "" {
				// Built via "make"
				fmt.Printf("%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				// Built via "go install"
				fmt.Printf("%s", info.Main.Version)
			} else {
				// Unknown, perhaps "go run"
				fmt.Printf("(unknown version)")
			}
			fmt.Println()
		}
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main().  It only needs to happen
// once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// loadConfig assembles the effective configuration from the optional config
// file, the environment and the command-line flags, and applies the logging
// level.
func loadConfig(cmd *cobra.Command) config.Config {
	cfg, err := config.Load(getString(cmd, "config"))
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	// Flags override everything
	if getFlag(cmd, "verbose") {
		cfg.LogLevel = "debug"
	}
	//
	if audit := getString(cmd, "audit"); audit != "" {
		cfg.Audit = audit
	}
	//
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	log.SetLevel(level)
	//
	return cfg
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().String("config", "", "path of an optional yaml configuration file")
	rootCmd.PersistentFlags().String("audit", "", "record evaluation steps into the given SQLite database")
}
