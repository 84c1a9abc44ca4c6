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
	"reflect"
	"testing"

	"github.com/consensys/go-dagalloc/pkg/tac"
	"github.com/consensys/go-dagalloc/pkg/util"
	"github.com/consensys/go-dagalloc/pkg/util/assert"
)

func TestBuild_01(t *testing.T) {
	g := checkBuild(t, "t1 = b * c", "t2 = a + t1")
	//
	checkNode(t, g, 0, leaf("b"))
	checkNode(t, g, 1, leaf("c"))
	checkNode(t, g, 2, op("*", 0, some(1), "t1"))
	checkNode(t, g, 3, leaf("a"))
	checkNode(t, g, 4, op("+", 3, some(2), "t2"))
	assert.Equal(t, []uint{4}, g.Roots())
}

func TestBuild_CommonSubexpression(t *testing.T) {
	g := checkBuild(t, "t1 = a + b", "t2 = a + b")
	//
	assert.Equal(t, 3, g.Len())
	checkNode(t, g, 2, op("+", 0, some(1), "t1", "t2"))
}

func TestBuild_OperandOrder(t *testing.T) {
	// Operand order matters, so these are not merged.
	g := checkBuild(t, "t1 = a + b", "t2 = b + a")
	//
	assert.Equal(t, 4, g.Len())
}

func TestBuild_Reassignment(t *testing.T) {
	g := checkBuild(t, "x = a + b", "x = c + d", "y = x * e")
	//
	checkNode(t, g, 2, op("+", 0, some(1), "x"))
	checkNode(t, g, 5, op("+", 3, some(4), "x"))
	checkNode(t, g, 7, op("*", 5, some(6), "y"))
	checkLookup(t, g, "x", 5)
}

func TestBuild_SelfReassignment(t *testing.T) {
	g := checkBuild(t, "x = x + 1")
	//
	checkNode(t, g, 0, leaf("x"))
	checkNode(t, g, 2, op("+", 0, some(1), "x"))
	checkLookup(t, g, "x", 2)
}

func TestBuild_Copy(t *testing.T) {
	g := checkBuild(t, "t1 = a + b", "x = t1", "x = t1")
	//
	assert.Equal(t, 3, g.Len())
	checkNode(t, g, 2, op("+", 0, some(1), "t1", "x"))
}

func TestBuild_CopyLeaf(t *testing.T) {
	g := checkBuild(t, "x = y")
	//
	assert.Equal(t, 1, g.Len())
	checkNode(t, g, 0, leaf("y", "x"))
	assert.Equal(t, []uint{0}, g.Roots())
}

func TestBuild_Unary(t *testing.T) {
	g := checkBuild(t, "t1 = - a", "t2 = - a")
	//
	checkNode(t, g, 1, op("-", 0, none(), "t1", "t2"))
}

func TestBuild_Index(t *testing.T) {
	g := checkBuild(t, "x = a[i]", "y = a[i]")
	//
	checkNode(t, g, 2, op(tac.INDEX, 0, some(1), "x", "y"))
}

func TestBuild_ReuseAfterReassignment(t *testing.T) {
	// After reassigning a, "a + b" denotes a different value.
	g := checkBuild(t, "t1 = a + b", "a = c", "t2 = a + b")
	//
	checkNode(t, g, 2, op("+", 0, some(1), "t1"))
	checkNode(t, g, 3, leaf("c", "a"))
	checkNode(t, g, 4, op("+", 3, some(1), "t2"))
}

func TestBuild_Deterministic(t *testing.T) {
	lines := []string{"t1 = a + b", "t2 = c - t1", "t3 = t1 * t2", "t4 = a + b", "x = t4 / t3"}
	//
	for n := 0; n < 10; n++ {
		g1 := checkBuild(t, lines...)
		g2 := checkBuild(t, lines...)
		assert.True(t, reflect.DeepEqual(g1, g2), "graphs differ")
	}
}

func TestBuild_Invalid(t *testing.T) {
	g, err := BuildLines([]string{"t1 = a + b", "a b c d"})
	//
	ferr := assert.ErrorAs[*tac.FormatError](t, err)
	assert.Equal(t, "a b c d", ferr.Instruction)
	assert.True(t, g == nil, "partial graph returned")
}

func TestBuild_Empty(t *testing.T) {
	g := checkBuild(t)
	//
	assert.Equal(t, 0, g.Len())
	assert.Equal(t, 0, len(g.Roots()))
	assert.Equal(t, 0, g.MinRegisters())
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkBuild(t *testing.T, lines ...string) *Graph {
	t.Helper()
	//
	g, err := BuildLines(lines)
	assert.NoError(t, err)
	//
	return g
}

func checkNode(t *testing.T, g *Graph, index uint, expected Node) {
	t.Helper()
	//
	assert.True(t, index < g.Len(), "node %d missing", index)
	//
	actual := g.Node(index)
	assert.Equal(t, expected.Operator, actual.Operator, "node %d operator", index)
	assert.Equal(t, expected.Left, actual.Left, "node %d left", index)
	assert.Equal(t, expected.Right, actual.Right, "node %d right", index)
	assert.Equal(t, expected.Labels, actual.Labels, "node %d labels", index)
}

func checkLookup(t *testing.T, g *Graph, name string, expected uint) {
	t.Helper()
	//
	index, ok := g.Lookup(name)
	assert.True(t, ok, "name %s unknown", name)
	assert.Equal(t, expected, index)
}

func leaf(names ...string) Node {
	return Node{Labels: names}
}

func op(operator string, left uint, right util.Option[uint], names ...string) Node {
	node := NewOperation(operator, left, right)
	node.Labels = names
	//
	return node
}

func some(index uint) util.Option[uint] {
	return util.Some(index)
}

func none() util.Option[uint] {
	return util.None[uint]()
}
