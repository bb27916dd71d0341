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
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Query parameters whose values CouchDB expects to be JSON-encoded.
const (
	QueryKey      = "key"
	QueryStartKey = "startkey"
	QueryEndKey   = "endkey"
)

var jsonKeys = map[string]struct{}{
	QueryKey:      {},
	QueryStartKey: {},
	QueryEndKey:   {},
}

// EncodeQuery returns a copy of params in which the values of the key,
// startkey and endkey parameters are replaced by their JSON encoding, as a
// string. All other parameters are left untouched.
//
// Like ParseOptions, the result lists the parameters in reverse order.
func EncodeQuery(params Proplist) (Proplist, error) {
	result := make(Proplist, 0, len(params))
	for _, param := range params {
		if _, ok := jsonKeys[param.Key]; ok {
			value, err := EncodeJSON(param.Value)
			if err != nil {
				return nil, wrapStatus(http.StatusBadRequest, err, "couchutil: encode "+param.Key)
			}
			param.Value = string(value)
		}
		result = append(result, param)
	}
	return result.reversed(), nil
}

// QueryValues converts params into url.Values. Values of the following types
// are supported:
//
//   - string, []byte, Atom
//   - []string
//   - bool
//   - json.Number
//   - int, uint, uint8, uint16, uint32, uint64, int8, int16, int32, int64
//
// Any other type is an error.
func QueryValues(params Proplist) (url.Values, error) {
	query := url.Values{}
	for _, param := range params {
		var values []string
		switch v := param.Value.(type) {
		case string, []byte, Atom:
			values = []string{ToString(v)}
		case []string:
			values = v
		case bool:
			values = []string{fmt.Sprintf("%t", v)}
		case json.Number:
			values = []string{v.String()}
		case int, uint, uint8, uint16, uint32, uint64, int8, int16, int32, int64:
			values = []string{ToString(v)}
		default:
			return nil, statusErrorf(http.StatusBadRequest, "couchutil: invalid type %T for query parameter '%s'", param.Value, param.Key)
		}
		for _, value := range values {
			query.Add(param.Key, value)
		}
	}
	return query, nil
}
