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
package util

import (
	"testing"

	"github.com/consensys/go-dagalloc/pkg/util/assert"
)

func TestOption_01(t *testing.T) {
	opt := Some[uint](3)
	//
	assert.True(t, opt.HasValue())
	assert.Equal(t, 3, opt.Unwrap())
	assert.Equal(t, 3, opt.UnwrapOr(7))
	assert.Equal(t, "3", opt.String())
}

func TestOption_02(t *testing.T) {
	opt := None[uint]()
	//
	assert.True(t, opt.IsEmpty())
	assert.Equal(t, 7, opt.UnwrapOr(7))
	assert.Equal(t, "None", opt.String())
}

func TestOption_Equals(t *testing.T) {
	assert.True(t, OptionEquals(Some(1), Some(1)))
	assert.True(t, OptionEquals(None[int](), None[int]()))
	assert.False(t, OptionEquals(Some(1), Some(2)))
	assert.False(t, OptionEquals(Some(0), None[int]()))
}

func TestOption_Unwrap(t *testing.T) {
	defer func() {
		assert.True(t, recover() != nil, "expected panic")
	}()
	//
	None[string]().Unwrap()
}
