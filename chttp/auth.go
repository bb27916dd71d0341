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
	"net/http"

	kivik "github.com/go-kivik/kivik/v4"
)

// authenticator is an interface that provides authentication to a server.
type authenticator interface {
	Authenticate(*http.Client)
}

type oauthAuth struct {
	creds   OAuthCredentials
	builder *OAuthHeaderBuilder

	// transport stores the original transport that is overridden by this auth
	// mechanism
	transport http.RoundTripper
}

var (
	_ authenticator     = &oauthAuth{}
	_ http.RoundTripper = &oauthAuth{}
	_ kivik.Option      = (*oauthAuth)(nil)
)

// OAuth returns an option which, when applied to an *http.Client, signs
// every outbound request with an OAuth 1.0a Authorization header.
//
// Example:
//
//	client, err := kivik.New("couch", "http://localhost:5984/", chttp.OAuth(creds))
func OAuth(creds OAuthCredentials) kivik.Option {
	return &oauthAuth{creds: creds}
}

func (a *oauthAuth) Apply(target interface{}) {
	if client, ok := target.(*http.Client); ok {
		// Clone, so the same option may be applied to multiple clients.
		auth := &oauthAuth{
			creds:   a.creds,
			builder: a.builder,
		}
		auth.Authenticate(client)
	}
}

func (a *oauthAuth) String() string {
	return a.creds.String()
}

// Authenticate wraps the client's transport.
func (a *oauthAuth) Authenticate(c *http.Client) {
	a.transport = c.Transport
	if a.transport == nil {
		a.transport = http.DefaultTransport
	}
	c.Transport = a
}

// RoundTrip fulfills the http.RoundTripper interface. It signs a copy of req,
// leaving the original untouched.
func (a *oauthAuth) RoundTrip(req *http.Request) (*http.Response, error) {
	name, value, err := a.builder.Header(req.URL.String(), req.Method, &a.creds)
	if err != nil {
		if req.Body != nil {
			_ = req.Body.Close()
		}
		return nil, err
	}
	signed := req.Clone(req.Context())
	if signed.Header == nil {
		signed.Header = http.Header{}
	}
	signed.Header.Set(name, value)
	return a.transport.RoundTrip(signed)
}
