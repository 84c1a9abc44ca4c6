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
	"slices"
	"strings"

	"github.com/consensys/go-dagalloc/pkg/dag"
	"github.com/consensys/go-dagalloc/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

var buildCmd = &cobra.Command{
	Use:   "build [flags] [file.tac]",
	Short: "build and label the DAG of some three-address code.",
	Long: `Build the DAG for a listing of three-address instructions (one per line), or
for the expression given with --expr, and report the register label of every
node along with the minimum number of registers required.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		insns := readInstructions(cmd, args)
		g := analyse(cmd, insns)
		//
		if GetFlag(cmd, "tac") {
			for _, insn := range insns {
				fmt.Println(insn)
			}
			//
			fmt.Println()
		}
		//
		if GetFlag(cmd, "summary") {
			for _, line := range g.Summary() {
				fmt.Println(line)
			}
		} else if err := printNodeTable(g, ansiEscapes(cmd)); err != nil {
			log.Errorln(err)
			atexit.Exit(1)
		}
		//
		fmt.Printf("\nMinimum number of registers required: %d\n", g.MinRegisters())
	},
}

// Determine whether escapes should be used, based on the --ansi flag.
func ansiEscapes(cmd *cobra.Command) bool {
	switch mode := GetString(cmd, "ansi"); mode {
	case "auto":
		return termio.IsTerminal(os.Stdout)
	case "always":
		return true
	case "never":
		return false
	default:
		fmt.Printf("unknown --ansi mode \"%s\"\n", mode)
		atexit.Exit(2)
	}
	// unreachable
	return false
}

// Print one row per node, highlighting the roots.
func printNodeTable(g *dag.Graph, escapes bool) error {
	var (
		table = termio.NewTablePrinter(6, g.Len()+1)
		roots = g.Roots()
		bold  = termio.BoldAnsiEscape()
	)
	//
	table.SetRow(0, "Node", "Operator", "Left", "Right", "Labels", "Registers")
	//
	for col := uint(0); col < 6; col++ {
		table.SetEscape(col, 0, bold)
	}
	//
	for i, node := range g.Nodes() {
		var (
			row = uint(i) + 1
			op  = "Leaf/Value"
		)
		//
		if node.Operator.HasValue() {
			op = node.Operator.Unwrap()
		}
		//
		table.SetRow(row, fmt.Sprintf("%d", i), op, node.Left.String(), node.Right.String(),
			strings.Join(node.Labels, ", "), node.Registers.String())
		//
		if slices.Contains(roots, uint(i)) {
			table.SetEscape(5, row, termio.NewAnsiEscape().FgColour(termio.TERM_GREEN))
		}
	}
	//
	table.AnsiEscapes(escapes)
	//
	return table.Print(os.Stdout)
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().String("expr", "", "translate and build the given expression")
	buildCmd.Flags().Bool("tac", false, "print the instructions being built")
	buildCmd.Flags().Bool("summary", false, "print a one line summary per node instead of a table")
	buildCmd.Flags().String("ansi", "auto", "use ANSI escapes (auto, always or never)")
}
