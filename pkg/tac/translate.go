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
	"strings"
)

// Translate converts an infix arithmetic expression into an equivalent sequence
// of three-address instructions, one per line, in emission order.  Each
// reduction introduces a fresh temporary "tN", where N counts up from 1.  For
// example, "a+b*c" translates into "t1 = b * c" followed by "t2 = a + t1".
//
// An expression of the form "x = e" translates e, and then assigns the final
// temporary (or the sole operand of e) to x.  An expression with neither an
// operator nor an assignment produces no instructions, and is rejected.
func Translate(expr string) ([]string, error) {
	var (
		text     = StripWhitespace(expr)
		lhs, rhs = "", text
		insns    []string
		temps    = 0
	)
	// Split off assignment target (if applicable)
	switch strings.Count(text, "=") {
	case 0:
	case 1:
		lhs, rhs, _ = strings.Cut(text, "=")
		//
		if lhs == "" {
			return nil, newParseError(expr, "missing assignment target")
		} else if strings.ContainsAny(lhs, "+-*/()") {
			return nil, newParseError(expr, fmt.Sprintf("invalid assignment target '%s'", lhs))
		} else if rhs == "" {
			return nil, newParseError(expr, "missing right-hand side")
		}
	default:
		return nil, newParseError(expr, "more than one '='")
	}
	//
	operand := func(token Token) (string, error) {
		return token.Text, nil
	}
	//
	emit := func(op Token, left string, right string) (string, error) {
		temps++
		tmp := fmt.Sprintf("t%d", temps)
		insns = append(insns, fmt.Sprintf("%s = %s %s %s", tmp, left, op.Text, right))
		//
		return tmp, nil
	}
	//
	result, err := newReducer(expr, operand, emit).run(Tokenize(rhs))
	//
	switch {
	case err != nil:
		return nil, err
	case lhs != "":
		insns = append(insns, fmt.Sprintf("%s = %s", lhs, result))
	case len(insns) == 0:
		return nil, newParseError(expr, "expression has no operator")
	}
	//
	return insns, nil
}
