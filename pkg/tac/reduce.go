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
package tac

import (
	"github.com/consensys/go-dagalloc/pkg/util/collection/stack"
)

// reducer implements operator-precedence reduction over a token stream using an
// explicit operand stack and an explicit operator stack.  The meaning of
// operands, and of applying an operator, is supplied by the client.  This allows
// the same reduction discipline to drive both translation into three-address
// code, and direct evaluation of literal expressions.
type reducer[T any] struct {
	// Expression being reduced (for error reporting).
	expr      string
	operands  *stack.Stack[T]
	operators *stack.Stack[Token]
	// Convert an operand token into a value.
	operand func(Token) (T, error)
	// Apply an operator to two values.
	apply func(op Token, left T, right T) (T, error)
}

func newReducer[T any](expr string, operand func(Token) (T, error),
	apply func(Token, T, T) (T, error)) *reducer[T] {
	return &reducer[T]{expr, stack.NewStack[T](), stack.NewStack[Token](), operand, apply}
}

// run processes all tokens, returning the single value left on the operand
// stack.
func (p *reducer[T]) run(tokens []Token) (T, error) {
	var empty T
	//
	for _, token := range tokens {
		if err := p.process(token); err != nil {
			return empty, err
		}
	}
	// Flush remaining operators, top of stack first.
	for !p.operators.IsEmpty() {
		if top, _ := p.operators.Top(); top.Kind == LBRACE {
			return empty, newParseError(p.expr, "unmatched '('")
		} else if err := p.reduce(len(p.expr)); err != nil {
			return empty, err
		}
	}
	//
	switch p.operands.Len() {
	case 0:
		return empty, newParseError(p.expr, "empty expression")
	case 1:
		value, _ := p.operands.Pop()
		return value, nil
	default:
		return empty, newParseError(p.expr, "missing operator between operands")
	}
}

func (p *reducer[T]) process(token Token) error {
	switch {
	case token.Kind == OPERAND:
		value, err := p.operand(token)
		if err != nil {
			return err
		}
		//
		p.operands.Push(value)
	case token.Kind == LBRACE:
		p.operators.Push(token)
	case token.Kind == RBRACE:
		// Reduce until matching "(" is found
		for {
			top, ok := p.operators.Top()
			if !ok {
				return wrapParseError(p.expr, &UnderflowError{"operator", token.Offset})
			} else if top.Kind == LBRACE {
				p.operators.Pop()
				return nil
			} else if err := p.reduce(token.Offset); err != nil {
				return err
			}
		}
	case token.IsOperator():
		for {
			top, ok := p.operators.Top()
			if !ok || top.Kind == LBRACE || top.Precedence() < token.Precedence() {
				break
			} else if err := p.reduce(token.Offset); err != nil {
				return err
			}
		}
		//
		p.operators.Push(token)
	default:
		panic("unreachable")
	}
	//
	return nil
}

// reduce pops the top operator and top two operands, pushing the result of
// applying the operator.
func (p *reducer[T]) reduce(offset int) error {
	op, ok := p.operators.Pop()
	if !ok {
		return wrapParseError(p.expr, &UnderflowError{"operator", offset})
	}
	//
	right, ok := p.operands.Pop()
	if !ok {
		return wrapParseError(p.expr, &UnderflowError{"operand", offset})
	}
	//
	left, ok := p.operands.Pop()
	if !ok {
		return wrapParseError(p.expr, &UnderflowError{"operand", offset})
	}
	//
	value, err := p.apply(op, left, right)
	if err != nil {
		return err
	}
	//
	p.operands.Push(value)
	//
	return nil
}
