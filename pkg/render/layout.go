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
package render

import (
	"github.com/consensys/go-dagalloc/pkg/dag"
)

// Position gives the location of a node within a layout.  Horizontal positions
// lie strictly between 0 and 1, whilst the vertical position is the negated
// depth of the node (i.e. roots are at 0, their children at -1, and so on).
type Position struct {
	X float64
	Y float64
}

// Layout positions the nodes of a graph hierarchically.  A node without parents
// sits on level 0, whilst every other node sits one level below its deepest
// parent.  Nodes on the same level are spread evenly across the width in order
// of their index.
func Layout(g *dag.Graph) ([]Position, error) {
	order, err := dag.TopologicalOrder(g)
	if err != nil {
		return nil, err
	}
	//
	var (
		levels    = make([]uint, g.Len())
		positions = make([]Position, g.Len())
		rows      [][]uint
	)
	// Parents are always placed before their children.
	for _, index := range order {
		for _, child := range g.Node(index).Children() {
			levels[child] = max(levels[child], levels[index]+1)
		}
	}
	//
	for i, level := range levels {
		for uint(len(rows)) <= level {
			rows = append(rows, nil)
		}
		//
		rows[level] = append(rows[level], uint(i))
	}
	//
	for level, row := range rows {
		spacing := 1.0 / float64(len(row)+1)
		//
		for i, index := range row {
			positions[index] = Position{float64(i+1) * spacing, -float64(level)}
		}
	}
	//
	return positions, nil
}

// Depth returns the number of levels spanned by a layout.
func Depth(positions []Position) uint {
	var depth uint
	//
	for _, p := range positions {
		depth = max(depth, uint(-p.Y)+1)
	}
	//
	return depth
}
