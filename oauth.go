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
	"crypto/rsa"
	"net/http"

	"github.com/go-kivik/couchutil/chttp"
)

// NewOAuthCredentials builds OAuth credentials from props. Values are
// converted with ToString. Missing credentials are reported by
// OAuthHeader, not here.
func NewOAuthCredentials(props Proplist) (*chttp.OAuthCredentials, error) {
	creds := &chttp.OAuthCredentials{}
	for key, target := range map[string]*string{
		OptionConsumerKey:     &creds.ConsumerKey,
		OptionConsumerSecret:  &creds.ConsumerSecret,
		OptionToken:           &creds.Token,
		OptionTokenSecret:     &creds.TokenSecret,
		OptionSignatureMethod: &creds.SignatureMethod,
	} {
		if v, ok := props.Get(key); ok {
			*target = ToString(v)
		}
	}
	key, err := privateKey(props)
	if err != nil {
		return nil, err
	}
	creds.PrivateKey = key
	return creds, nil
}

func privateKey(props Proplist) (*rsa.PrivateKey, error) {
	pk, ok := props.Get(OptionPrivateKey)
	if !ok {
		return nil, nil
	}
	key, ok := pk.(*rsa.PrivateKey)
	if !ok {
		return nil, statusErrorf(http.StatusBadRequest, "couchutil: option '%s' must be *rsa.PrivateKey, not %T", OptionPrivateKey, pk)
	}
	return key, nil
}

// OAuthHeader returns the OAuth 1.0a Authorization header which signs a
// request for action (delete, get, head, post or put) on rawURL, using the
// credentials in props. See NewOAuthCredentials for the recognized keys.
func OAuthHeader(rawURL, action string, props Proplist) (name, value string, err error) {
	if rawURL == "" {
		return "", "", missingArg("url")
	}
	creds, err := NewOAuthCredentials(props)
	if err != nil {
		return "", "", err
	}
	return chttp.OAuthHeader(rawURL, action, creds)
}
