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

/*
Package couchutil holds the helpers a CouchDB HTTP client needs to prepare
requests: value coercion, option normalization, view query encoding, proplist
merging and OAuth 1.0a request signing. Document ID encoding, and the
transport-level OAuth authenticator, live in the chttp subpackage.

# Options

Options are given as a slice of loosely typed values, and normalized by
ParseOptions into a Proplist, an ordered list of key/value pairs. Each option
is one of:

  - an Atom, a bare flag, which becomes (flag, true)
  - a Pair
  - a [2]interface{} whose first element is a string, []byte or Atom

A Proplist is also a kivik.Option, so it may be passed directly to kivik
methods as query parameters.

# Query parameters

CouchDB expects the values of the key, startkey and endkey view parameters to
be JSON. EncodeQuery JSON-encodes those, and leaves everything else alone.
QueryValues then renders a Proplist as url.Values. Values of the following
types are supported:

  - bool
  - string, []byte, Atom
  - []string
  - json.Number
  - int, uint, uint8, uint16, uint32, uint64, int8, int16, int32, int64

Passing any other type will return an error.

# JSON

EncodeJSON and DecodeJSON represent JSON objects as Object, an ordered list of
members, so that an empty object and an empty array remain distinct, and
member order survives a round trip.

# OAuth

OAuthHeader signs a request with OAuth 1.0a, using credentials given as a
Proplist. For example:

	name, value, err := couchutil.OAuthHeader("http://localhost:5984/db/doc", "get", couchutil.Proplist{
	    {Key: couchutil.OptionConsumerKey, Value: "key"},
	    {Key: couchutil.OptionConsumerSecret, Value: "secret"},
	})

To sign every request made by an HTTP client instead, use chttp.OAuth.
*/
package couchutil
