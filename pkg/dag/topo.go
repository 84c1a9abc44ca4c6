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
)

// CycleError is reported when a graph which should be acyclic is not.  Graphs
// produced by the Builder never contain cycles.
type CycleError struct {
	// Nodes which could not be ordered.
	Nodes []uint
}

// Error implements the error interface.
func (p *CycleError) Error() string {
	return fmt.Sprintf("graph contains a cycle through nodes %v", p.Nodes)
}

// TopologicalOrder returns the nodes of a graph ordered such that every parent
// precedes its children.  Nodes become ready once all their parents have been
// placed, and ready nodes are placed first-come first-served starting from the
// roots in ascending order, with a node's left child considered before its
// right.  Hence, the order depends only on the structure of the graph.
func TopologicalOrder(g *Graph) ([]uint, error) {
	var (
		n = g.Len()
		// Number of unplaced incoming edges for each node.
		pending = make([]uint, n)
		order   = make([]uint, 0, n)
	)
	//
	for i := range g.nodes {
		for _, child := range g.nodes[i].Children() {
			pending[child]++
		}
	}
	//
	for i := uint(0); i < n; i++ {
		if pending[i] == 0 {
			order = append(order, i)
		}
	}
	// Placed nodes double as the work queue.
	for head := 0; head < len(order); head++ {
		for _, child := range g.nodes[order[head]].Children() {
			if pending[child]--; pending[child] == 0 {
				order = append(order, child)
			}
		}
	}
	//
	if uint(len(order)) != n {
		var stuck []uint
		//
		for i := uint(0); i < n; i++ {
			if pending[i] != 0 {
				stuck = append(stuck, i)
			}
		}
		//
		return nil, &CycleError{stuck}
	}
	//
	return order, nil
}
