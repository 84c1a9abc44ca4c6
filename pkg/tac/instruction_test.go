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
	"testing"

	"github.com/consensys/go-dagalloc/pkg/util/assert"
)

func TestDecode_01(t *testing.T) {
	checkDecode(t, "t1 = a + b", NewBinary("t1", "+", "a", "b"))
}

func TestDecode_02(t *testing.T) {
	checkDecode(t, "t2 = - a", NewUnary("t2", "-", "a"))
}

func TestDecode_03(t *testing.T) {
	checkDecode(t, "y = x", NewCopy("y", "x"))
}

func TestDecode_04(t *testing.T) {
	checkDecode(t, "x = a[i]", NewIndex("x", "a", "i"))
}

func TestDecode_05(t *testing.T) {
	checkDecode(t, "  x=a [ i ] ", NewIndex("x", "a", "i"))
}

func TestDecode_06(t *testing.T) {
	checkDecode(t, "total   =  sum\t*  12", NewBinary("total", "*", "sum", "12"))
}

func TestDecode_Invalid_01(t *testing.T) {
	checkDecodeFails(t, "a b c d")
}

func TestDecode_Invalid_02(t *testing.T) {
	checkDecodeFails(t, "a = b = c")
}

func TestDecode_Invalid_03(t *testing.T) {
	checkDecodeFails(t, "x = a b c d")
}

func TestDecode_Invalid_04(t *testing.T) {
	checkDecodeFails(t, "x = ")
}

func TestDecode_Invalid_05(t *testing.T) {
	checkDecodeFails(t, " = a")
}

func TestDecode_Invalid_06(t *testing.T) {
	checkDecodeFails(t, "x = a[i")
}

func TestDecode_Invalid_07(t *testing.T) {
	checkDecodeFails(t, "x = a[i][j]")
}

func TestDecode_Invalid_08(t *testing.T) {
	checkDecodeFails(t, "x = [i]")
}

func TestInstruction_String(t *testing.T) {
	for _, line := range []string{"t1 = a + b", "t2 = - a", "y = x", "x = a[i]"} {
		insn, err := Decode(line)
		assert.NoError(t, err)
		assert.Equal(t, line, insn.String())
	}
}

func TestSplitListing(t *testing.T) {
	lines := SplitListing("t1 = a + b\r\n\n   \n  t2 = t1 * c  \n")
	assert.Equal(t, []string{"t1 = a + b", "t2 = t1 * c"}, lines)
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkDecode(t *testing.T, line string, expected Instruction) {
	t.Helper()
	//
	insn, err := Decode(line)
	assert.NoError(t, err)
	assert.Equal(t, expected, insn)
}

func checkDecodeFails(t *testing.T, line string) {
	t.Helper()
	//
	_, err := Decode(line)
	ferr := assert.ErrorAs[*FormatError](t, err)
	assert.Equal(t, line, ferr.Instruction)
	assert.True(t, strings.Contains(err.Error(), line), "message %q missing instruction", err.Error())
}
