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

import "fmt"

// FormatError is reported when a line of three-address code does not have one
// of the recognised shapes.  It retains the offending instruction text.
type FormatError struct {
	// Instruction text as originally given.
	Instruction string
	// Reason the instruction was rejected.
	Reason string
}

// Error implements the error interface.
func (p *FormatError) Error() string {
	return fmt.Sprintf("invalid instruction format: '%s' (%s)", p.Instruction, p.Reason)
}

// UnderflowError is reported when an operand or operator stack is popped whilst
// empty.  This arises for dangling operators and unbalanced parentheses.
type UnderflowError struct {
	// Stack which underflowed ("operand" or "operator").
	Stack string
	// Offset of the token being processed when the underflow occurred.
	Offset int
}

// Error implements the error interface.
func (p *UnderflowError) Error() string {
	return fmt.Sprintf("%s stack underflow at offset %d", p.Stack, p.Offset)
}

// DivideByZeroError is reported when a literal expression being evaluated
// divides by zero.
type DivideByZeroError struct {
	// Dividend of the offending division.
	Dividend int64
}

// Error implements the error interface.
func (p *DivideByZeroError) Error() string {
	return fmt.Sprintf("division by zero (%d / 0)", p.Dividend)
}

// ParseError is reported when an expression cannot be translated or evaluated.
// It carries the original expression, and optionally wraps the underlying cause
// (e.g. an UnderflowError).
type ParseError struct {
	// Expression as originally given.
	Expression string
	// Message describing the failure.
	Message string
	// Underlying cause, or nil.
	Cause error
}

// Error implements the error interface.
func (p *ParseError) Error() string {
	if p.Cause != nil {
		return fmt.Sprintf("cannot parse expression '%s': %s", p.Expression, p.Cause.Error())
	}
	//
	return fmt.Sprintf("cannot parse expression '%s': %s", p.Expression, p.Message)
}

// Unwrap returns the underlying cause of this error (if any).
func (p *ParseError) Unwrap() error {
	return p.Cause
}

func newParseError(expr string, msg string) *ParseError {
	return &ParseError{expr, msg, nil}
}

func wrapParseError(expr string, cause error) *ParseError {
	return &ParseError{expr, cause.Error(), cause}
}
