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
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/consensys/go-dagalloc/pkg/dag"
	"github.com/consensys/go-dagalloc/pkg/render"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:embed index.html
var indexPage []byte

// MAX_REQUEST_BYTES bounds the size of a request body.
const MAX_REQUEST_BYTES = 1 << 20

// Server provides a web front-end for building and visualising labeled DAGs.
type Server struct {
	router *mux.Router
	policy dag.SeedPolicy
	opts   render.Options
}

// New constructs a server which labels using the given seed policy, and renders
// using the given options.
func New(policy dag.SeedPolicy, opts render.Options) *Server {
	s := &Server{mux.NewRouter(), policy, opts}
	//
	s.router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	s.router.HandleFunc("/generate", s.handleGenerate).Methods(http.MethodPost)
	//
	return s
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log.Debugf("%s %s", r.Method, r.URL.Path)
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves requests on a given address until the context is
// cancelled, at which point the server is shut down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s, ReadHeaderTimeout: 10 * time.Second}
	errs := make(chan error, 1)
	//
	go func() {
		errs <- srv.ListenAndServe()
	}()
	//
	log.Infof("listening on %s", addr)
	//
	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		//
		if err := srv.Shutdown(shutdown); err != nil {
			return err
		}
		//
		if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		//
		return nil
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	//
	if _, err := w.Write(indexPage); err != nil {
		log.Error(err)
	}
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req Request
	//
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, MAX_REQUEST_BYTES))
	//
	if err := decoder.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed request: " + err.Error()})
		return
	}
	//
	resp, err := Generate(req, s.policy, s.opts)
	if err != nil {
		log.Errorf("generate failed: %v", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		//
		return
	}
	//
	log.Debugf("generated %d instructions needing %d registers", len(resp.Instructions), resp.MinRegisters)
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error(err)
	}
}
