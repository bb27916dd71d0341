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

package chttp

import (
	"net/url"
	"strings"
)

const prefixDesign = "_design/"

type rawDocID interface {
	~string | ~[]byte
}

// EncodeDocID encodes a document ID according to CouchDB's path encoding rules.
//
// In particular:
//   - A '_design/' prefix is unaltered, and the remainder is encoded by the
//     same rules.
//   - Everything else is percent-encoded, leaving only unreserved characters
//     (letters, digits, '-', '_', '.', '~') intact.
//
// When built with the 'nodocidencode' tag, the ID is returned unaltered.
func EncodeDocID[T rawDocID](docID T) string {
	if !encodeDocIDs {
		return string(docID)
	}
	return encodeDocID(string(docID))
}

func encodeDocID(docID string) string {
	if strings.HasPrefix(docID, prefixDesign) {
		return prefixDesign + encodeDocID(strings.TrimPrefix(docID, prefixDesign))
	}
	return escape(docID)
}

// escape percent-encodes s per RFC 3986. Space is encoded as %20, not '+'.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
