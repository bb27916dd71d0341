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
	"io"
	"net/http"
	"strings"
	"time"
)

type customTransport func(*http.Request) (*http.Response, error)

var _ http.RoundTripper = customTransport(nil)

func (c customTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return c(req)
}

const (
	testNonce     = "nonce"
	testTimestamp = 1500000000
)

// frozenSigner returns a signer with a fixed nonce and timestamp.
func frozenSigner() *oauthSigner {
	return &oauthSigner{
		nonce: func() string { return testNonce },
		now:   func() time.Time { return time.Unix(testTimestamp, 0) },
	}
}

func testCreds() OAuthCredentials {
	return OAuthCredentials{
		ConsumerKey:    "ck",
		ConsumerSecret: "cs",
		Token:          "tok",
		TokenSecret:    "ts",
	}
}

func Body(str string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(str))
}

// parseOAuthHeader splits an OAuth header value into its key/value pairs.
func parseOAuthHeader(value string) []Param {
	var params []Param
	for _, part := range strings.Split(strings.TrimPrefix(value, "OAuth "), ", ") {
		kv := strings.SplitN(part, "=", 2)
		params = append(params, Param{Key: kv[0], Value: strings.Trim(kv[1], `"`)})
	}
	return params
}
