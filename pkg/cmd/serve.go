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
	"os"
	"os/signal"

	"github.com/consensys/go-dagalloc/pkg/render"
	"github.com/consensys/go-dagalloc/pkg/server"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
	"github.com/xyproto/env/v2"
)

var serveCmd = &cobra.Command{
	Use:   "serve [flags]",
	Short: "serve a web front-end for building and visualising DAGs.",
	Long: `Serve a web page where expressions or three-address code can be entered, and
which then displays the labeled DAG along with the minimum number of registers
required.  The listen address defaults to $DAGALLOC_ADDR (or :5000).`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		var (
			addr        = GetString(cmd, "addr")
			ctx, cancel = signal.NotifyContext(context.Background(), os.Interrupt)
			s           = server.New(getSeedPolicy(cmd), render.DefaultOptions())
		)
		// Shut down gracefully on exit
		atexit.Register(cancel)
		//
		if addr == "" {
			addr = env.Str("DAGALLOC_ADDR", ":5000")
		}
		//
		if err := s.ListenAndServe(ctx, addr); err != nil {
			log.Errorln(err)
			atexit.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "address to listen on")
}
