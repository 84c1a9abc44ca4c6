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
	"strings"
	"unicode"
)

// OPERAND is a maximal run of characters which are neither operators nor
// parentheses (e.g. "x", "42" or "arr").
const OPERAND uint = 0

// ADD represents "+"
const ADD uint = 1

// SUB represents "-"
const SUB uint = 2

// MUL represents "*"
const MUL uint = 3

// DIV represents "/"
const DIV uint = 4

// LBRACE represents "("
const LBRACE uint = 5

// RBRACE represents ")"
const RBRACE uint = 6

// Token is a lexical unit of an infix expression.
type Token struct {
	Kind uint
	// Text of the token.
	Text string
	// Offset of the token within the (whitespace free) expression.
	Offset int
}

// IsOperator checks whether this token is one of the four binary operators.
func (t Token) IsOperator() bool {
	return t.Kind >= ADD && t.Kind <= DIV
}

// Precedence returns the binding strength of an operator token.  Parentheses
// and operands have precedence 0.
func (t Token) Precedence() uint {
	switch t.Kind {
	case MUL, DIV:
		return 2
	case ADD, SUB:
		return 1
	}
	//
	return 0
}

// Scanner is a function which accepts a prefix of some characters, returning
// the length of the matched prefix (or 0 for no match).
type Scanner func(items []rune) uint

// Unit accepts exactly the given sequence of characters.
func Unit(chars ...rune) Scanner {
	return func(items []rune) uint {
		if len(items) < len(chars) {
			return 0
		}
		//
		for i, c := range chars {
			if items[i] != c {
				return 0
			}
		}
		//
		return uint(len(chars))
	}
}

// Or combines zero or more scanners such that the resulting scanner succeeds if
// any of the scanners succeeds.  Scanners are tried in left-to-right order.
func Or(scanners ...Scanner) Scanner {
	return func(items []rune) uint {
		for _, scanner := range scanners {
			if n := scanner(items); n > 0 {
				return n
			}
		}
		// fail
		return 0
	}
}

// NoneOf accepts any single character not in the given set.
func NoneOf(chars string) Scanner {
	return func(items []rune) uint {
		if len(items) != 0 && !strings.ContainsRune(chars, items[0]) {
			return 1
		}
		// fail
		return 0
	}
}

// Many matches zero or more of a given item.
func Many(acceptor Scanner) Scanner {
	return func(items []rune) uint {
		index := uint(0)
		//
		for index < uint(len(items)) {
			n := acceptor(items[index:])
			if n == 0 {
				break
			}
			//
			index += n
		}
		// done
		return index
	}
}

type lexRule struct {
	scanner Scanner
	kind    uint
}

// lexing rules, tried in order.
var rules = []lexRule{
	{Unit('+'), ADD},
	{Unit('-'), SUB},
	{Unit('*'), MUL},
	{Unit('/'), DIV},
	{Unit('('), LBRACE},
	{Unit(')'), RBRACE},
	{Many(NoneOf("+-*/()")), OPERAND},
}

// StripWhitespace removes all whitespace from an expression.
func StripWhitespace(expr string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		//
		return r
	}, expr)
}

// Tokenize splits an expression into tokens.  Whitespace is discarded first, so
// "a b" yields the single operand "ab".  Every character is covered by some
// rule, hence tokenizing cannot fail.
func Tokenize(expr string) []Token {
	var (
		items  = []rune(StripWhitespace(expr))
		tokens []Token
		index  = 0
	)
	//
	for index < len(items) {
		for _, r := range rules {
			if n := int(r.scanner(items[index:])); n > 0 {
				tokens = append(tokens, Token{r.kind, string(items[index : index+n]), index})
				index += n
				//
				break
			}
		}
	}
	//
	return tokens
}
