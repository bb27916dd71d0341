// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//  http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package couchutil

import (
	"math"
	"net/http"
	"testing"

	"gitlab.com/flimzy/testy"
)

func TestToString(t *testing.T) {
	type tst struct {
		input    interface{}
		expected string
	}
	tests := testy.NewTable()
	tests.Add("string", tst{input: "foo", expected: "foo"})
	tests.Add("empty string", tst{input: "", expected: ""})
	tests.Add("bytes", tst{input: []byte("foo"), expected: "foo"})
	tests.Add("atom", tst{input: Atom("foo"), expected: "foo"})
	tests.Add("int", tst{input: 42, expected: "42"})
	tests.Add("negative int", tst{input: -7, expected: "-7"})
	tests.Add("uint8", tst{input: uint8(200), expected: "200"})
	tests.Add("int64", tst{input: int64(1) << 40, expected: "1099511627776"})
	tests.Add("bool", tst{input: true, expected: "true"})
	tests.Add("float", tst{input: 1.5, expected: "1.5"})
	tests.Add("nil", tst{input: nil, expected: "<nil>"})

	tests.Run(t, func(t *testing.T, tt tst) {
		result := ToString(tt.input)
		if result != tt.expected {
			t.Errorf("Unexpected result: %q, expected %q", result, tt.expected)
		}
		if again := ToString(result); again != result {
			t.Errorf("ToString is not idempotent: %q became %q", result, again)
		}
	})
}

func TestToBytes(t *testing.T) {
	input := []byte("foo")
	if result := ToBytes(input); &result[0] != &input[0] {
		t.Error("Expected byte slice to be returned unaltered")
	}
	if result := string(ToBytes(Atom("bar"))); result != "bar" {
		t.Errorf("Unexpected result: %q", result)
	}
	if result := string(ToBytes(12)); result != "12" {
		t.Errorf("Unexpected result: %q", result)
	}
}

func TestToInteger(t *testing.T) {
	type tst struct {
		input    interface{}
		expected int
		status   int
		err      string
	}
	tests := testy.NewTable()
	tests.Add("int", tst{input: 7, expected: 7})
	tests.Add("int32", tst{input: int32(-3), expected: -3})
	tests.Add("uint16", tst{input: uint16(9), expected: 9})
	tests.Add("string", tst{input: "123", expected: 123})
	tests.Add("negative string", tst{input: "-5", expected: -5})
	tests.Add("bytes", tst{input: []byte("42"), expected: 42})
	tests.Add("max int as int64", tst{input: int64(math.MaxInt), expected: math.MaxInt})
	tests.Add("max int as uint64", tst{input: uint64(math.MaxInt), expected: math.MaxInt})
	tests.Add("uint64 overflow", tst{
		input:  uint64(math.MaxUint64),
		status: http.StatusBadRequest,
		err:    "couchutil: cannot convert uint64 to integer",
	})
	tests.Add("uint overflow", tst{
		input:  uint(math.MaxUint),
		status: http.StatusBadRequest,
		err:    "couchutil: cannot convert uint to integer",
	})
	tests.Add("string overflow", tst{
		input:  "99999999999999999999",
		status: http.StatusBadRequest,
		err:    `couchutil: cannot convert string to integer: strconv.Atoi: parsing "99999999999999999999": value out of range`,
	})
	tests.Add("invalid string", tst{
		input:  "12a",
		status: http.StatusBadRequest,
		err:    `couchutil: cannot convert string to integer: strconv.Atoi: parsing "12a": invalid syntax`,
	})
	tests.Add("empty string", tst{
		input:  "",
		status: http.StatusBadRequest,
		err:    `couchutil: cannot convert string to integer: strconv.Atoi: parsing "": invalid syntax`,
	})
	tests.Add("float", tst{
		input:  1.5,
		status: http.StatusBadRequest,
		err:    "couchutil: cannot convert float64 to integer",
	})
	tests.Add("atom", tst{
		input:  Atom("1"),
		status: http.StatusBadRequest,
		err:    "couchutil: cannot convert couchutil.Atom to integer",
	})

	tests.Run(t, func(t *testing.T, tt tst) {
		result, err := ToInteger(tt.input)
		testy.StatusError(t, tt.err, tt.status, err)
		if result != tt.expected {
			t.Errorf("Unexpected result: %d, expected %d", result, tt.expected)
		}
	})
}

func TestToAtom(t *testing.T) {
	type tst struct {
		input    interface{}
		expected Atom
		status   int
		err      string
	}
	tests := testy.NewTable()
	tests.Add("atom", tst{input: Atom("foo"), expected: "foo"})
	tests.Add("string", tst{input: "foo", expected: "foo"})
	tests.Add("bytes", tst{input: []byte("foo"), expected: "foo"})
	tests.Add("int", tst{
		input:  1,
		status: http.StatusBadRequest,
		err:    "couchutil: cannot convert int to atom",
	})
	tests.Add("nil", tst{
		input:  nil,
		status: http.StatusBadRequest,
		err:    "couchutil: cannot convert <nil> to atom",
	})

	tests.Run(t, func(t *testing.T, tt tst) {
		result, err := ToAtom(tt.input)
		testy.StatusError(t, tt.err, tt.status, err)
		if result != tt.expected {
			t.Errorf("Unexpected result: %q, expected %q", result, tt.expected)
		}
	})
}
