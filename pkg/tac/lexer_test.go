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
	"testing"

	"github.com/consensys/go-dagalloc/pkg/util/assert"
)

func TestTokenize_00(t *testing.T) {
	checkTokenize(t, "")
}

func TestTokenize_01(t *testing.T) {
	checkTokenize(t, "x", Token{OPERAND, "x", 0})
}

func TestTokenize_02(t *testing.T) {
	checkTokenize(t, "ab+12",
		Token{OPERAND, "ab", 0}, Token{ADD, "+", 2}, Token{OPERAND, "12", 3})
}

func TestTokenize_03(t *testing.T) {
	checkTokenize(t, "( a - b ) / c",
		Token{LBRACE, "(", 0}, Token{OPERAND, "a", 1}, Token{SUB, "-", 2}, Token{OPERAND, "b", 3},
		Token{RBRACE, ")", 4}, Token{DIV, "/", 5}, Token{OPERAND, "c", 6})
}

func TestTokenize_04(t *testing.T) {
	checkTokenize(t, "x*y", Token{OPERAND, "x", 0}, Token{MUL, "*", 1}, Token{OPERAND, "y", 2})
}

func TestPrecedence(t *testing.T) {
	tokens := Tokenize("+-*/(x")
	assert.Equal(t, []uint{1, 1, 2, 2, 0, 0}, []uint{
		tokens[0].Precedence(), tokens[1].Precedence(), tokens[2].Precedence(),
		tokens[3].Precedence(), tokens[4].Precedence(), tokens[5].Precedence(),
	})
}

func checkTokenize(t *testing.T, expr string, expected ...Token) {
	t.Helper()
	//
	tokens := Tokenize(expr)
	//
	if len(expected) == 0 {
		assert.Equal(t, 0, len(tokens))
	} else {
		assert.Equal(t, expected, tokens)
	}
}
