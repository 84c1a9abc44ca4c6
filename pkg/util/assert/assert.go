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
package assert

import (
	"errors"
	"reflect"
	"testing"
)

// Equal errors if actual is not equal to expected.  Integers of different
// widths (e.g. an untyped constant and a uint) are compared by value.
func Equal(t *testing.T, expected, actual any, msg ...any) {
	t.Helper()
	//
	if reflect.DeepEqual(expected, actual) || intEqual(expected, actual) {
		return
	}
	//
	t.Errorf("expected: %v, actual: %v", expected, actual)
	report(t, msg...)
}

// True errors if condition is false.
func True(t *testing.T, condition bool, msg ...any) {
	t.Helper()
	//
	if condition {
		return
	}
	//
	t.Errorf("condition is false")
	report(t, msg...)
}

// False errors if condition is true.
func False(t *testing.T, condition bool, msg ...any) {
	t.Helper()
	//
	if !condition {
		return
	}
	//
	t.Errorf("condition is true")
	report(t, msg...)
}

// NoError errors if err is non-nil.
func NoError(t *testing.T, err error) {
	t.Helper()
	//
	if err != nil {
		t.Errorf("unexpected error: %v", err)
		t.FailNow()
	}
}

// ErrorAs errors unless err (or something it wraps) has type E, returning the
// matched error otherwise.
func ErrorAs[E error](t *testing.T, err error) E {
	var target E
	//
	t.Helper()
	//
	if err == nil {
		t.Errorf("expected error of type %T, got nil", target)
		t.FailNow()
	} else if !errors.As(err, &target) {
		t.Errorf("expected error of type %T, got %T (%v)", target, err, err)
		t.FailNow()
	}
	//
	return target
}

func report(t *testing.T, msg ...any) {
	if len(msg) != 0 {
		t.Errorf(msg[0].(string), msg[1:]...)
	}
	//
	t.FailNow()
}

// intEqual returns whether expected and actual are both integers and whether
// they are equal if that is the case.
func intEqual(expected, actual any) bool {
	a, aok := asInt64(expected)
	b, bok := asInt64(actual)
	//
	return aok && bok && a == b
}

func asInt64(x any) (int64, bool) {
	v := reflect.ValueOf(x)
	//
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if v.Uint() > uint64(1<<63-1) {
			return 0, false
		}
		//
		return int64(v.Uint()), true
	}
	//
	return 0, false
}
