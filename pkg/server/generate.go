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
package server

import (
	"errors"
	"strings"

	"github.com/consensys/go-dagalloc/pkg/dag"
	"github.com/consensys/go-dagalloc/pkg/render"
	"github.com/consensys/go-dagalloc/pkg/tac"
)

// INPUT_TAC identifies input given as a listing of three-address code.
const INPUT_TAC = "tac"

// INPUT_EXPRESSION identifies input given as an infix expression.
const INPUT_EXPRESSION = "expression"

// ErrNoInput is reported for a request without any input.
var ErrNoInput = errors.New("No input provided")

// Request is the body of a generate request.
type Request struct {
	// Either "tac" (the default) or "expression".
	InputType string `json:"input_type"`
	InputData string `json:"input_data"`
}

// Response is the body of a successful generate request.
type Response struct {
	// Base64 encoded PNG image of the labeled DAG.
	Image        string   `json:"image"`
	MinRegisters uint     `json:"min_registers"`
	NodeDetails  string   `json:"node_details"`
	Instructions []string `json:"tac_instructions"`
}

// Generate translates (if necessary), builds, labels and renders the DAG for a
// given request.  Every call uses its own builder, hence this is safe to call
// concurrently.
func Generate(req Request, policy dag.SeedPolicy, opts render.Options) (Response, error) {
	var (
		insns []string
		err   error
	)
	//
	if strings.TrimSpace(req.InputData) == "" {
		return Response{}, ErrNoInput
	}
	//
	switch req.InputType {
	case INPUT_EXPRESSION:
		if insns, err = tac.Translate(req.InputData); err != nil {
			return Response{}, err
		}
	case INPUT_TAC, "":
		insns = tac.SplitListing(req.InputData)
	default:
		return Response{}, errors.New("unknown input type \"" + req.InputType + "\"")
	}
	//
	g, err := dag.Analyse(insns, policy)
	if err != nil {
		return Response{}, err
	}
	//
	img, err := render.Draw(g, opts)
	if err != nil {
		return Response{}, err
	}
	//
	image, err := render.EncodeBase64(img)
	if err != nil {
		return Response{}, err
	}
	//
	return Response{image, g.MinRegisters(), strings.Join(g.Summary(), "\n"), insns}, nil
}
