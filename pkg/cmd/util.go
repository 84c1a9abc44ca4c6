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

	"github.com/consensys/go-dagalloc/pkg/dag"
	"github.com/consensys/go-dagalloc/pkg/tac"
	"github.com/consensys/go-dagalloc/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		atexit.Exit(2)
	}
	//
	return r
}

// GetString gets an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		atexit.Exit(2)
	}
	//
	return r
}

// GetInt gets an expected int flag, or exits if an error arises.
func GetInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		atexit.Exit(2)
	}
	//
	return r
}

// Configure log level from the persistent verbose flag.
func configureLogging(cmd *cobra.Command) {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

// Determine the seed policy from the persistent seed flag.
func getSeedPolicy(cmd *cobra.Command) dag.SeedPolicy {
	policy, err := dag.ParseSeedPolicy(GetString(cmd, "seed"))
	if err != nil {
		fmt.Println(err)
		atexit.Exit(2)
	}
	//
	return policy
}

// Read the instructions to process, either by translating the expression given
// with --expr or by reading a listing from the file given as the sole argument.
func readInstructions(cmd *cobra.Command, args []string) []string {
	var (
		expr = GetString(cmd, "expr")
		err  error
	)
	//
	switch {
	case expr != "" && len(args) == 0:
		var insns []string
		//
		if insns, err = tac.Translate(expr); err == nil {
			log.Debugf("translated expression into %d instructions", len(insns))
			return insns
		}
	case expr == "" && len(args) == 1:
		var bytes []byte
		//
		if bytes, err = os.ReadFile(args[0]); err == nil {
			insns := tac.SplitListing(string(bytes))
			log.Debugf("read %d instructions from %s", len(insns), args[0])
			//
			return insns
		}
	default:
		fmt.Println("expected either --expr or a single listing file")
		atexit.Exit(2)
	}
	// Handle error
	log.Errorln(err)
	atexit.Exit(2)
	// unreachable
	return nil
}

// Build and label the DAG for the given instructions, or exit.
func analyse(cmd *cobra.Command, insns []string) *dag.Graph {
	stats := util.NewPerfStats()
	//
	g, err := dag.Analyse(insns, getSeedPolicy(cmd))
	if err != nil {
		log.Errorln(err)
		atexit.Exit(3)
	}
	//
	stats.Log("Building DAG")
	log.Debugf("built DAG with %d nodes (%d roots)", g.Len(), len(g.Roots()))
	//
	return g
}
