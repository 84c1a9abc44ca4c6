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
	"strings"

	"github.com/consensys/go-dagalloc/pkg/tac"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

var translateCmd = &cobra.Command{
	Use:   "translate [flags] expression",
	Short: "translate an expression into three-address code.",
	Long: `Translate an infix arithmetic expression (e.g. "x = a + b * c") into an
equivalent sequence of three-address instructions.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		insns, err := tac.Translate(strings.Join(args, " "))
		if err != nil {
			log.Errorln(err)
			atexit.Exit(2)
		}
		//
		for _, insn := range insns {
			fmt.Println(insn)
		}
	},
}

var evalCmd = &cobra.Command{
	Use:   "eval [flags] expression",
	Short: "evaluate an expression over integer literals.",
	Long:  `Evaluate an infix arithmetic expression over integer literals, using truncating division.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		val, err := tac.Evaluate(strings.Join(args, " "))
		if err != nil {
			log.Errorln(err)
			atexit.Exit(2)
		}
		//
		fmt.Println(val)
	},
}

func init() {
	rootCmd.AddCommand(translateCmd)
	rootCmd.AddCommand(evalCmd)
}
