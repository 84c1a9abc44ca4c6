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
	"os"

	"github.com/consensys/go-dagalloc/pkg/dag"
	"github.com/consensys/go-dagalloc/pkg/render"
	"github.com/consensys/go-dagalloc/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

var renderCmd = &cobra.Command{
	Use:   "render [flags] [file.tac]",
	Short: "render the labeled DAG of some three-address code as a PNG image.",
	Long: `Build and label the DAG for a listing of three-address instructions, or for
the expression given with --expr, and write a picture of it as a PNG image.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		var (
			g    = analyse(cmd, readInstructions(cmd, args))
			opts = render.DefaultOptions()
			out  = GetString(cmd, "out")
		)
		//
		opts.Width = GetInt(cmd, "width")
		opts.Height = GetInt(cmd, "height")
		//
		if err := writeImage(g, opts, out); err != nil {
			log.Errorln(err)
			atexit.Exit(1)
		}
		//
		log.Infof("wrote %s (%d nodes, %d registers)", out, g.Len(), g.MinRegisters())
	},
}

func writeImage(g *dag.Graph, opts render.Options, filename string) error {
	stats := util.NewPerfStats()
	//
	img, err := render.Draw(g, opts)
	if err != nil {
		return err
	}
	//
	stats.Log("Rendering DAG")
	//
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	//
	if err := render.EncodePNG(img, file); err != nil {
		file.Close()
		return err
	}
	//
	return file.Close()
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().String("expr", "", "translate and render the given expression")
	renderCmd.Flags().StringP("out", "o", "dag.png", "output image file")
	renderCmd.Flags().Int("width", render.DefaultOptions().Width, "image width in pixels")
	renderCmd.Flags().Int("height", render.DefaultOptions().Height, "image height in pixels")
}
