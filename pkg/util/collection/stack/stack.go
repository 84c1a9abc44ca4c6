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
package stack

// Stack represents a reusable LIFO stack which is implemented using an array.
type Stack[T any] struct {
	items []T
}

// NewStack returns an empty stack
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

// IsEmpty checks whether or not there are still items on the stack
func (p *Stack[T]) IsEmpty() bool {
	return p.Len() == 0
}

// Len returns the number of items on the stack.
func (p *Stack[T]) Len() uint {
	return uint(len(p.items))
}

// Top returns the item on top of the stack without removing it.  The second
// return value is false when the stack is empty.
func (p *Stack[T]) Top() (T, bool) {
	var empty T
	//
	if len(p.items) == 0 {
		return empty, false
	}
	//
	return p.items[len(p.items)-1], true
}

// Push a new item onto the stack
func (p *Stack[T]) Push(item T) {
	p.items = append(p.items, item)
}

// Pop the last item off the stack.  The second return value is false when the
// stack was already empty, in which case nothing is removed.
func (p *Stack[T]) Pop() (T, bool) {
	var (
		empty T
		n     = len(p.items)
	)
	//
	if n == 0 {
		return empty, false
	}
	// Get last item
	item := p.items[n-1]
	// Remove last item
	p.items = p.items[:n-1]
	// Done
	return item, true
}

// Items returns the contents of the stack, bottom first.
func (p *Stack[T]) Items() []T {
	return p.items
}
