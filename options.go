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
	"net/http"

	"github.com/pkg/errors"
)

// ErrInvalidOption is returned by ParseOptions when an option is not one of
// the recognized shapes.
var ErrInvalidOption error = &statusError{
	status: http.StatusBadRequest,
	error:  errors.New("couchutil: invalid option"),
}

// ParseOptions normalizes opts into a Proplist. Each option must be one of:
//
//   - an Atom, a bare flag, which becomes (string(flag), true)
//   - a Pair
//   - a [2]interface{} key/value pair, whose key is a string, []byte or Atom
//
// If any option is of another shape, ParseOptions returns ErrInvalidOption
// and no result.
//
// The result lists the options in reverse order, so that when an option is
// repeated, Proplist.Get returns the last one given.
func ParseOptions(opts []interface{}) (Proplist, error) {
	result := make(Proplist, 0, len(opts))
	for _, opt := range opts {
		pair, ok := parseOption(opt)
		if !ok {
			return nil, ErrInvalidOption
		}
		result = append(result, pair)
	}
	return result.reversed(), nil
}

func parseOption(opt interface{}) (Pair, bool) {
	switch t := opt.(type) {
	case Atom:
		return Pair{Key: string(t), Value: true}, true
	case Pair:
		return t, true
	case [2]interface{}:
		switch t[0].(type) {
		case string, []byte, Atom:
			return Pair{Key: ToString(t[0]), Value: t[1]}, true
		}
	}
	return Pair{}, false
}
