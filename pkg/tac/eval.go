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
	"fmt"
	"strconv"
)

// Evaluate computes the value of an infix expression over integer literals,
// using the same precedence rules as Translate.  Division truncates towards
// zero, and dividing by zero is reported as a DivideByZeroError.  Operands
// which are not integer literals are rejected.
func Evaluate(expr string) (int64, error) {
	operand := func(token Token) (int64, error) {
		val, err := strconv.ParseInt(token.Text, 10, 64)
		if err != nil {
			return 0, newParseError(expr, fmt.Sprintf("'%s' is not an integer literal", token.Text))
		}
		//
		return val, nil
	}
	//
	return newReducer(expr, operand, applyLiteral).run(Tokenize(expr))
}

func applyLiteral(op Token, left int64, right int64) (int64, error) {
	switch op.Kind {
	case ADD:
		return left + right, nil
	case SUB:
		return left - right, nil
	case MUL:
		return left * right, nil
	case DIV:
		if right == 0 {
			return 0, &DivideByZeroError{left}
		}
		//
		return left / right, nil
	}
	//
	panic("unreachable")
}
