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
	"strings"

	"github.com/consensys/go-dagalloc/pkg/util"
)

// Node represents a single computation (or original operand) in the DAG.
// Children are identified by their index within the enclosing graph, rather
// than by reference, since many parents can share the same child.
type Node struct {
	// Operation computed by this node, which is empty for a leaf.
	Operator util.Option[string]
	// Index of the first operand (if any).
	Left util.Option[uint]
	// Index of the second operand (if any).
	Right util.Option[uint]
	// Names which have denoted this node's value, in order of assignment.
	Labels []string
	// Register label computed by Label, which is empty until then (and may
	// remain empty for isolated leaves).
	Registers util.Option[uint]
}

// NewLeaf constructs a leaf node carrying a single name.
func NewLeaf(name string) Node {
	return Node{Labels: []string{name}}
}

// NewOperation constructs an (unlabeled) operator node with the given
// children.
func NewOperation(op string, left uint, right util.Option[uint]) Node {
	return Node{Operator: util.Some(op), Left: util.Some(left), Right: right}
}

// IsLeaf checks whether this node is an original operand, rather than the
// result of some operation.
func (p *Node) IsLeaf() bool {
	return p.Operator.IsEmpty()
}

// HasLabel checks whether a given name is attached to this node.
func (p *Node) HasLabel(name string) bool {
	return slices.Contains(p.Labels, name)
}

// Children returns the indices of this node's children, left first.
func (p *Node) Children() []uint {
	var children []uint
	//
	if p.Left.HasValue() {
		children = append(children, p.Left.Unwrap())
	}
	//
	if p.Right.HasValue() {
		children = append(children, p.Right.Unwrap())
	}
	//
	return children
}

// Attach a name to this node, unless it is already present.
func (p *Node) addLabel(name string) {
	if !p.HasLabel(name) {
		p.Labels = append(p.Labels, name)
	}
}

// String returns a human-readable summary of this node, such as
// "+ (t2, x) label=2" or "Leaf/Value (a) label=1".
func (p *Node) String() string {
	var (
		op     = "Leaf/Value"
		labels = "None"
	)
	//
	if p.Operator.HasValue() {
		op = p.Operator.Unwrap()
	}
	//
	if len(p.Labels) != 0 {
		labels = strings.Join(p.Labels, ", ")
	}
	//
	return fmt.Sprintf("%s (%s) label=%s", op, labels, p.Registers.String())
}
