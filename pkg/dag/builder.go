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
package dag

import (
	"fmt"

	"github.com/consensys/go-dagalloc/pkg/tac"
	"github.com/consensys/go-dagalloc/pkg/util"
)

// valueKey identifies an operator node structurally, such that two
// instructions with equal keys compute the same value.
type valueKey struct {
	op    string
	left  uint
	right util.Option[uint]
}

// Builder constructs a DAG from a sequence of three-address instructions,
// merging common subexpressions as it goes.  All state (including the table of
// active names) is owned by the builder, hence separate builders can be used
// concurrently.
type Builder struct {
	graph *Graph
	// Maps structural keys to the first operator node created with that key.
	numbering map[valueKey]uint
}

// NewBuilder constructs a builder for an initially empty graph.
func NewBuilder() *Builder {
	return &Builder{NewGraph(), make(map[valueKey]uint)}
}

// Graph returns the graph constructed so far.
func (p *Builder) Graph() *Graph {
	return p.graph
}

// Add a single instruction to the graph being built.  Operands are resolved to
// the nodes they currently denote (creating leaves for unseen names), and the
// result name is then repointed at the node computing the instruction's value.
// Previously assigned nodes are never altered by reassignment.
func (p *Builder) Add(insn tac.Instruction) {
	var (
		node  uint
		left  = p.ensureLabel(insn.Left)
		right = util.None[uint]()
	)
	//
	if insn.Right.HasValue() {
		right = util.Some(p.ensureLabel(insn.Right.Unwrap()))
	}
	//
	if insn.Operator.HasValue() {
		node = p.ensureOperation(insn.Operator.Unwrap(), left, right)
	} else {
		// Bare copy, so result simply names the operand's node.
		node = left
	}
	//
	p.assignLabel(insn.Result, node)
}

// Resolve a name to its current node, creating a fresh leaf if it is unseen.
func (p *Builder) ensureLabel(name string) uint {
	if index, ok := p.graph.names[name]; ok {
		return index
	}
	//
	index := uint(len(p.graph.nodes))
	p.graph.nodes = append(p.graph.nodes, NewLeaf(name))
	p.graph.names[name] = index
	//
	return index
}

// Find the operator node matching a given structure, or create one.
func (p *Builder) ensureOperation(op string, left uint, right util.Option[uint]) uint {
	key := valueKey{op, left, right}
	//
	if index, ok := p.numbering[key]; ok {
		return index
	}
	//
	index := uint(len(p.graph.nodes))
	p.graph.nodes = append(p.graph.nodes, NewOperation(op, left, right))
	p.numbering[key] = index
	//
	return index
}

func (p *Builder) assignLabel(name string, index uint) {
	p.graph.nodes[index].addLabel(name)
	p.graph.names[name] = index
}

// Build constructs a DAG from a sequence of instructions, processed in order.
func Build(insns []tac.Instruction) *Graph {
	builder := NewBuilder()
	//
	for _, insn := range insns {
		builder.Add(insn)
	}
	//
	return builder.Graph()
}

// BuildLines decodes and then builds a DAG from a sequence of instruction
// lines.  If any line cannot be decoded, the resulting error is returned (and
// no graph is produced).
func BuildLines(lines []string) (*Graph, error) {
	insns := make([]tac.Instruction, len(lines))
	//
	for i, line := range lines {
		insn, err := tac.Decode(line)
		if err != nil {
			return nil, fmt.Errorf("instruction %d: %w", i+1, err)
		}
		//
		insns[i] = insn
	}
	//
	return Build(insns), nil
}
