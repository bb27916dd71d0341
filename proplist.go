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
	"net/url"
	"sort"
	"strings"

	kivik "github.com/go-kivik/kivik/v4"
)

// Pair is a single key/value entry of a Proplist.
type Pair struct {
	Key   string
	Value interface{}
}

// Proplist is an ordered list of key/value pairs, used as a lightweight
// mapping. Keys may repeat; lookups return the first match.
//
// A Proplist is also a kivik.Option, so it may be passed directly as query
// parameters to kivik methods.
type Proplist []Pair

var _ kivik.Option = Proplist(nil)

// Get returns the value of the first pair with the given key.
func (p Proplist) Get(key string) (interface{}, bool) {
	for _, pair := range p {
		if pair.Key == key {
			return pair.Value, true
		}
	}
	return nil, false
}

// Keys returns the distinct keys of p, in order of first appearance.
func (p Proplist) Keys() []string {
	seen := make(map[string]struct{}, len(p))
	keys := make([]string, 0, len(p))
	for _, pair := range p {
		if _, ok := seen[pair.Key]; ok {
			continue
		}
		seen[pair.Key] = struct{}{}
		keys = append(keys, pair.Key)
	}
	return keys
}

// Apply sets the pairs of p on target, when target is a
// map[string]interface{} or *url.Values. For a map, the first pair of a
// repeated key wins.
func (p Proplist) Apply(target interface{}) {
	switch t := target.(type) {
	case map[string]interface{}:
		for i := len(p) - 1; i >= 0; i-- {
			t[p[i].Key] = p[i].Value
		}
	case *url.Values:
		if *t == nil {
			*t = url.Values{}
		}
		for _, pair := range p {
			t.Add(pair.Key, ToString(pair.Value))
		}
	}
}

func (p Proplist) String() string {
	parts := make([]string, len(p))
	for i, pair := range p {
		parts[i] = fmt.Sprintf("%s=%v", pair.Key, pair.Value)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func (p Proplist) reversed() Proplist {
	result := make(Proplist, len(p))
	for i, pair := range p {
		result[len(p)-1-i] = pair
	}
	return result
}

// FromOptions collects the parameters set by opts into a Proplist, sorted by
// key. Options which do not set query parameters are ignored.
func FromOptions(opts ...kivik.Option) Proplist {
	params := map[string]interface{}{}
	for _, opt := range opts {
		if opt != nil {
			opt.Apply(params)
		}
	}
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	result := make(Proplist, len(keys))
	for i, key := range keys {
		result[i] = Pair{Key: key, Value: params[key]}
	}
	return result
}

// index returns the value of each key of p, and the keys in order of first
// appearance. For a repeated key, the last value wins.
func (p Proplist) index() (map[string]interface{}, []string) {
	values := make(map[string]interface{}, len(p))
	keys := make([]string, 0, len(p))
	for _, pair := range p {
		if _, ok := values[pair.Key]; !ok {
			keys = append(keys, pair.Key)
		}
		values[pair.Key] = pair.Value
	}
	return values, keys
}

// Merge returns the union of a and b. A key present in only one of them keeps
// its value; for a key present in both, resolve is called with the key and
// both values, and its result is used. Keys of a come first in the result,
// followed by those only in b.
func Merge(resolve func(key string, a, b interface{}) interface{}, a, b Proplist) Proplist {
	aValues, aKeys := a.index()
	bValues, bKeys := b.index()
	result := make(Proplist, 0, len(aKeys)+len(bKeys))
	for _, key := range aKeys {
		value := aValues[key]
		if bValue, ok := bValues[key]; ok {
			value = resolve(key, value, bValue)
		}
		result = append(result, Pair{Key: key, Value: value})
	}
	for _, key := range bKeys {
		if _, ok := aValues[key]; !ok {
			result = append(result, Pair{Key: key, Value: bValues[key]})
		}
	}
	return result
}

// Merge1 merges a and b, preferring the values of a on conflict.
func Merge1(a, b Proplist) Proplist {
	return Merge(func(_ string, value, _ interface{}) interface{} {
		return value
	}, a, b)
}
