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
package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/consensys/go-dagalloc/pkg/dag"
	"github.com/consensys/go-dagalloc/pkg/render"
	"github.com/consensys/go-dagalloc/pkg/server"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Server", func() {
	var s *server.Server

	BeforeEach(func() {
		opts := render.DefaultOptions()
		opts.Width, opts.Height = 300, 200
		s = server.New(dag.SEED_PREFER_LEFT, opts)
	})

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(body))
		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, req)
		//
		return rec
	}

	Describe("GET /", func() {
		It("should serve the index page", func() {
			rec := httptest.NewRecorder()
			s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Header().Get("Content-Type")).To(HavePrefix("text/html"))
			Expect(rec.Body.String()).To(ContainSubstring("/generate"))
		})
	})

	Describe("POST /generate", func() {
		It("should translate and label an expression", func() {
			rec := post(`{"input_type": "expression", "input_data": "a+b*c"}`)
			Expect(rec.Code).To(Equal(http.StatusOK))

			var resp server.Response
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Instructions).To(Equal([]string{"t1 = b * c", "t2 = a + t1"}))
			Expect(resp.MinRegisters).To(Equal(uint(2)))
			Expect(resp.Image).NotTo(BeEmpty())
			Expect(strings.Split(resp.NodeDetails, "\n")).To(HaveLen(5))
		})

		It("should default to three-address code", func() {
			rec := post(`{"input_data": "t1 = a + b\nt2 = a + b\n"}`)
			Expect(rec.Code).To(Equal(http.StatusOK))

			var resp server.Response
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.NodeDetails).To(ContainSubstring("+ (t1, t2) label=1"))
			Expect(resp.MinRegisters).To(Equal(uint(1)))
		})

		It("should reject empty input", func() {
			rec := post(`{"input_type": "tac", "input_data": "  "}`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(rec.Body.String()).To(ContainSubstring("No input provided"))
		})

		It("should report malformed instructions", func() {
			rec := post(`{"input_type": "tac", "input_data": "a b c d"}`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))

			var body map[string]string
			Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
			Expect(body["error"]).To(ContainSubstring("a b c d"))
		})

		It("should report malformed expressions", func() {
			rec := post(`{"input_type": "expression", "input_data": "(a+b"}`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("should reject malformed requests", func() {
			rec := post(`{"input_type": `)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("should reject unknown input types", func() {
			rec := post(`{"input_type": "lisp", "input_data": "x"}`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("Generate", func() {
		It("should be usable without HTTP", func() {
			resp, err := server.Generate(server.Request{InputType: server.INPUT_EXPRESSION, InputData: "x = (a+b)*(a+b)"},
				dag.SEED_PREFER_LEFT, render.DefaultOptions())
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Instructions).To(HaveLen(4))
			Expect(resp.MinRegisters).To(Equal(uint(2)))
		})
	})
})
