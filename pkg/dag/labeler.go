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
	"slices"

	"github.com/consensys/go-dagalloc/pkg/util"
)

// SeedPolicy determines the seed given to a node which is the left child of one
// parent and the right child of another (or the same) parent.
type SeedPolicy uint

// SEED_PREFER_LEFT seeds such nodes as left children (i.e. with 1).
const SEED_PREFER_LEFT SeedPolicy = 0

// SEED_PREFER_RIGHT seeds such nodes as right children (i.e. with 0).
const SEED_PREFER_RIGHT SeedPolicy = 1

// ParseSeedPolicy parses a seed policy from its name ("left" or "right").
func ParseSeedPolicy(name string) (SeedPolicy, error) {
	switch name {
	case "left":
		return SEED_PREFER_LEFT, nil
	case "right":
		return SEED_PREFER_RIGHT, nil
	}
	//
	return SEED_PREFER_LEFT, fmt.Errorf("unknown seed policy \"%s\" (expected left or right)", name)
}

func (p SeedPolicy) String() string {
	if p == SEED_PREFER_RIGHT {
		return "right"
	}
	//
	return "left"
}

// Label computes the register label of every node in a graph, in place.  This
// proceeds in two passes.  Firstly, every node with a parent is seeded according
// to the side it occupies: 1 for a left operand, and 0 for a right operand.
// Secondly, nodes are visited children first, such that a node whose children
// have equal labels L receives L+1, whilst unequal labels give the larger of
// the two.  A node with only one labeled child simply inherits that label.
// Leaves without parents remain unlabeled.
func Label(g *Graph, policy SeedPolicy) error {
	order, err := TopologicalOrder(g)
	if err != nil {
		return err
	}
	//
	seed(g, policy)
	// Visit children before parents
	slices.Reverse(order)
	//
	for _, index := range order {
		node := &g.nodes[index]
		left := childRegisters(g, node.Left)
		right := childRegisters(g, node.Right)
		//
		switch {
		case left.HasValue() && right.HasValue():
			node.Registers = util.Some(combine(left.Unwrap(), right.Unwrap()))
		case left.HasValue():
			node.Registers = left
		case right.HasValue():
			node.Registers = right
		}
	}
	//
	return nil
}

// Seed every unlabeled node which has a parent, based on the side(s) it
// occupies.
func seed(g *Graph, policy SeedPolicy) {
	var (
		isLeft  = make([]bool, g.Len())
		isRight = make([]bool, g.Len())
	)
	//
	for i := range g.nodes {
		ith := &g.nodes[i]
		//
		if ith.Left.HasValue() {
			isLeft[ith.Left.Unwrap()] = true
		}
		//
		if ith.Right.HasValue() {
			isRight[ith.Right.Unwrap()] = true
		}
	}
	//
	for i := range g.nodes {
		ith := &g.nodes[i]
		//
		switch {
		case ith.Registers.HasValue():
			continue
		case isLeft[i] && isRight[i]:
			if policy == SEED_PREFER_RIGHT {
				ith.Registers = util.Some[uint](0)
			} else {
				ith.Registers = util.Some[uint](1)
			}
		case isLeft[i]:
			ith.Registers = util.Some[uint](1)
		case isRight[i]:
			ith.Registers = util.Some[uint](0)
		}
	}
}

func childRegisters(g *Graph, child util.Option[uint]) util.Option[uint] {
	if child.IsEmpty() {
		return util.None[uint]()
	}
	//
	return g.nodes[child.Unwrap()].Registers
}

// Sethi-Ullman rule for combining the labels of two operands.
func combine(left uint, right uint) uint {
	if left == right {
		return left + 1
	}
	//
	return max(left, right)
}

// Analyse decodes a sequence of instruction lines, builds the corresponding DAG
// and then labels it.  On success, the graph's MinRegisters gives the overall
// register requirement.
func Analyse(lines []string, policy SeedPolicy) (*Graph, error) {
	g, err := BuildLines(lines)
	if err != nil {
		return nil, err
	}
	//
	if err := Label(g, policy); err != nil {
		return nil, err
	}
	//
	return g, nil
}
