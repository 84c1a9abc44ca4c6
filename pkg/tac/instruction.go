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

	"github.com/consensys/go-dagalloc/pkg/util"
)

// INDEX is the operator used for indexed (array) access, as in "x = a[i]".
const INDEX = "[]"

// Instruction is a single three-address instruction (quadruple).  This takes
// one of four shapes:
//
//   - binary "r = a op b", where Operator = op, Left = a and Right = b.
//   - unary "r = op a", where Operator = op, Left = a and Right is empty.
//   - indexed "r = a[i]", where Operator = "[]", Left = a and Right = i.
//   - copy "r = a", where Operator and Right are both empty.
type Instruction struct {
	// Name being assigned.
	Result string
	// Operation being performed (if any).
	Operator util.Option[string]
	// First (or only) operand.
	Left string
	// Second operand (if any).
	Right util.Option[string]
}

// NewBinary constructs an instruction "result = left op right".
func NewBinary(result string, op string, left string, right string) Instruction {
	return Instruction{result, util.Some(op), left, util.Some(right)}
}

// NewUnary constructs an instruction "result = op operand".
func NewUnary(result string, op string, operand string) Instruction {
	return Instruction{result, util.Some(op), operand, util.None[string]()}
}

// NewIndex constructs an instruction "result = array[index]".
func NewIndex(result string, array string, index string) Instruction {
	return Instruction{result, util.Some(INDEX), array, util.Some(index)}
}

// NewCopy constructs an instruction "result = source".
func NewCopy(result string, source string) Instruction {
	return Instruction{result, util.None[string](), source, util.None[string]()}
}

// String renders an instruction in its canonical textual form.
func (p Instruction) String() string {
	switch {
	case p.Operator.IsEmpty():
		return fmt.Sprintf("%s = %s", p.Result, p.Left)
	case p.Operator.Unwrap() == INDEX:
		return fmt.Sprintf("%s = %s[%s]", p.Result, p.Left, p.Right.Unwrap())
	case p.Right.IsEmpty():
		return fmt.Sprintf("%s = %s %s", p.Result, p.Operator.Unwrap(), p.Left)
	default:
		return fmt.Sprintf("%s = %s %s %s", p.Result, p.Left, p.Operator.Unwrap(), p.Right.Unwrap())
	}
}

// Decode parses the text of a single three-address instruction.  The
// instruction must contain exactly one "=", whose left-hand side names the
// result.  The right-hand side is either an indexed access "a[i]", or between
// one and three whitespace-separated tokens (copy, unary and binary
// respectively).  Anything else is reported as a FormatError.
func Decode(line string) (Instruction, error) {
	if n := strings.Count(line, "="); n != 1 {
		return Instruction{}, &FormatError{line, fmt.Sprintf("expected exactly one '=', found %d", n)}
	}
	//
	lhs, rhs, _ := strings.Cut(line, "=")
	result := strings.TrimSpace(lhs)
	rhs = strings.TrimSpace(rhs)
	//
	if result == "" {
		return Instruction{}, &FormatError{line, "missing result name"}
	} else if strings.ContainsAny(rhs, "[]") {
		return decodeIndex(line, result, rhs)
	}
	//
	tokens := strings.Fields(rhs)
	//
	switch len(tokens) {
	case 1:
		return NewCopy(result, tokens[0]), nil
	case 2:
		return NewUnary(result, tokens[0], tokens[1]), nil
	case 3:
		return NewBinary(result, tokens[1], tokens[0], tokens[2]), nil
	default:
		return Instruction{}, &FormatError{line, fmt.Sprintf("unsupported operand count %d", len(tokens))}
	}
}

// Decode the right-hand side "name[index]" of an indexed access.
func decodeIndex(line string, result string, rhs string) (Instruction, error) {
	if strings.Count(rhs, "[") != 1 || strings.Count(rhs, "]") != 1 || !strings.HasSuffix(rhs, "]") {
		return Instruction{}, &FormatError{line, "malformed indexed access"}
	}
	//
	name, index, _ := strings.Cut(strings.TrimSuffix(rhs, "]"), "[")
	name = strings.TrimSpace(name)
	index = strings.TrimSpace(index)
	//
	if name == "" || index == "" {
		return Instruction{}, &FormatError{line, "malformed indexed access"}
	}
	//
	return NewIndex(result, name, index), nil
}

// SplitListing splits a listing of three-address code into its instructions,
// one per line.  Surrounding whitespace is trimmed and blank lines are dropped.
func SplitListing(text string) []string {
	var lines []string
	//
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	//
	return lines
}
