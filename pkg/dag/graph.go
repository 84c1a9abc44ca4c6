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

	"github.com/consensys/go-dagalloc/pkg/util"
)

// Graph is an arena of DAG nodes addressed by index.  Graphs produced by the
// Builder have the property that every child precedes its parents, hence they
// are acyclic by construction.
type Graph struct {
	nodes []Node
	// Maps each name to the node it currently denotes.
	names map[string]uint
}

// NewGraph constructs a graph from a given set of nodes.  No name table is
// constructed, hence Lookup fails for every name.
func NewGraph(nodes ...Node) *Graph {
	return &Graph{nodes, make(map[string]uint)}
}

// Len returns the number of nodes in this graph.
func (p *Graph) Len() uint {
	return uint(len(p.nodes))
}

// Nodes returns the nodes of this graph, in creation order.
func (p *Graph) Nodes() []Node {
	return p.nodes
}

// Node returns the node at a given index.
func (p *Graph) Node(index uint) *Node {
	return &p.nodes[index]
}

// Lookup returns the node which a given name currently denotes.
func (p *Graph) Lookup(name string) (uint, bool) {
	index, ok := p.names[name]
	return index, ok
}

// Parents returns the indices of all nodes which have the given node as a child,
// in ascending order.  A parent using the node as both operands appears once.
func (p *Graph) Parents(index uint) []uint {
	var (
		parents []uint
		target  = util.Some(index)
	)
	//
	for i := range p.nodes {
		ith := &p.nodes[i]
		//
		if util.OptionEquals(ith.Left, target) || util.OptionEquals(ith.Right, target) {
			parents = append(parents, uint(i))
		}
	}
	//
	return parents
}

// Roots returns the indices of all nodes which are not a child of any other
// node, in ascending order.  These represent final computed results.
func (p *Graph) Roots() []uint {
	var (
		referenced = make([]bool, len(p.nodes))
		roots      []uint
	)
	//
	for i := range p.nodes {
		for _, child := range p.nodes[i].Children() {
			referenced[child] = true
		}
	}
	//
	for i, r := range referenced {
		if !r {
			roots = append(roots, uint(i))
		}
	}
	//
	return roots
}

// MinRegisters returns the minimum number of registers required to evaluate
// this graph, which is the largest register label of any root.  Roots without a
// register label count as zero, as does an empty graph.
func (p *Graph) MinRegisters() uint {
	var m uint
	//
	for _, root := range p.Roots() {
		m = max(m, p.nodes[root].Registers.UnwrapOr(0))
	}
	//
	return m
}

// Summary returns one line per node describing its operator, labels and
// register label, as in "Node  3: + (t2) label=2".
func (p *Graph) Summary() []string {
	lines := make([]string, len(p.nodes))
	//
	for i := range p.nodes {
		lines[i] = fmt.Sprintf("Node %2d: %s", i, p.nodes[i].String())
	}
	//
	return lines
}
