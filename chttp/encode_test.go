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

//go:build !nodocidencode

package chttp

import (
	"testing"
)

func TestEncodeDocID(t *testing.T) {
	tests := []struct {
		Input    string
		Expected string
	}{
		{Input: "foo", Expected: "foo"},
		{Input: "foo/bar", Expected: "foo%2Fbar"},
		{Input: "foo/bar baz", Expected: "foo%2Fbar%20baz"},
		{Input: "_design/foo", Expected: "_design/foo"},
		{Input: "_design/foo bar", Expected: "_design/foo%20bar"},
		{Input: "_design/foo/bar", Expected: "_design/foo%2Fbar"},
		{Input: "_design/_design/foo", Expected: "_design/_design/foo"},
		{Input: "_design", Expected: "_design"},
		{Input: "_local/foo", Expected: "_local%2Ffoo"},
		{Input: "foo@bar.com", Expected: "foo%40bar.com"},
		{Input: "foo+bar@baz.com", Expected: "foo%2Bbar%40baz.com"},
		{Input: "Is this a valid ID?", Expected: "Is%20this%20a%20valid%20ID%3F"},
		{Input: "nón-English-çharacters", Expected: "n%C3%B3n-English-%C3%A7haracters"},
		{Input: "foo+bar & páces?!*,", Expected: "foo%2Bbar%20%26%20p%C3%A1ces%3F%21%2A%2C"},
		{Input: "kivik$1234", Expected: "kivik%241234"},
		{Input: "a-b_c.d~e", Expected: "a-b_c.d~e"},
		{Input: "_users", Expected: "_users"},
		{Input: "", Expected: ""},
	}
	for _, test := range tests {
		result := EncodeDocID(test.Input)
		if result != test.Expected {
			t.Errorf("Unexpected encoded DocID from %s\n\tExpected: %s\n\t  Actual: %s\n", test.Input, test.Expected, result)
		}
	}
}

func TestEncodeDocIDBytes(t *testing.T) {
	if result := EncodeDocID([]byte("_design/foo bar")); result != "_design/foo%20bar" {
		t.Errorf("Unexpected result: %s", result)
	}
}

type docIDString string

func TestEncodeDocIDNamedType(t *testing.T) {
	if result := EncodeDocID(docIDString("a/b")); result != "a%2Fb" {
		t.Errorf("Unexpected result: %s", result)
	}
}
