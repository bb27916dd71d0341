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
	"fmt"
	"math"
	"strconv"
)

// Atom is a symbolic name, such as a bare option flag.
type Atom string

// ToString converts v to a string. Strings, byte slices, Atoms and integers
// are converted directly; anything else is rendered with fmt's default
// format.
func ToString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	case Atom:
		return string(t)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", t)
	}
	return fmt.Sprintf("%v", v)
}

// ToBytes converts v to a byte slice, following the same rules as ToString.
func ToBytes(v interface{}) []byte {
	if b, ok := v.([]byte); ok {
		return b
	}
	return []byte(ToString(v))
}

// ToInteger converts an integer, or the decimal representation of one as a
// string or byte slice, to an int. Any other input is an error.
func ToInteger(v interface{}) (int, error) {
	switch t := v.(type) {
	case int:
		return t, nil
	case int8:
		return int(t), nil
	case int16:
		return int(t), nil
	case int32:
		return int(t), nil
	case int64:
		if t < math.MinInt || t > math.MaxInt {
			return 0, &TypeError{Value: v, Target: "integer"}
		}
		return int(t), nil
	case uint:
		return fromUnsigned(v, uint64(t))
	case uint8:
		return int(t), nil
	case uint16:
		return int(t), nil
	case uint32:
		return fromUnsigned(v, uint64(t))
	case uint64:
		return fromUnsigned(v, t)
	case string:
		return parseInteger(v, t)
	case []byte:
		return parseInteger(v, string(t))
	}
	return 0, &TypeError{Value: v, Target: "integer"}
}

// fromUnsigned converts u to an int, failing if it does not fit.
func fromUnsigned(v interface{}, u uint64) (int, error) {
	if u > math.MaxInt {
		return 0, &TypeError{Value: v, Target: "integer"}
	}
	return int(u), nil
}

func parseInteger(v interface{}, s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, &TypeError{Value: v, Target: "integer", Err: err}
	}
	return i, nil
}

// ToAtom converts an Atom, string or byte slice to an Atom. Any other input
// is an error.
func ToAtom(v interface{}) (Atom, error) {
	switch t := v.(type) {
	case Atom:
		return t, nil
	case string:
		return Atom(t), nil
	case []byte:
		return Atom(t), nil
	}
	return "", &TypeError{Value: v, Target: "atom"}
}
