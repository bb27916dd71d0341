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
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dghubble/oauth1"
	"github.com/google/uuid"
)

const oauthVersion = "1.0"

// OAuthSigner implements the OAuth 1.0a signing algorithm.
type OAuthSigner interface {
	// Sign returns params, extended with the OAuth protocol parameters
	// (oauth_consumer_key, oauth_nonce, oauth_timestamp,
	// oauth_signature_method, oauth_version, oauth_token if a token is set,
	// and oauth_signature). baseURL must not contain a query string.
	Sign(method, baseURL string, params []Param, creds *OAuthCredentials) ([]Param, error)
}

type oauthSigner struct {
	nonce func() string
	now   func() time.Time
}

var _ OAuthSigner = &oauthSigner{}

// NewOAuthSigner returns the default OAuthSigner, which uses a random nonce
// and the current time. It is safe for concurrent use.
func NewOAuthSigner() OAuthSigner {
	return &oauthSigner{}
}

func (s *oauthSigner) genNonce() string {
	if s.nonce != nil {
		return s.nonce()
	}
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func (s *oauthSigner) timestamp() string {
	now := time.Now
	if s.now != nil {
		now = s.now
	}
	return strconv.FormatInt(now().Unix(), 10)
}

func (s *oauthSigner) Sign(method, baseURL string, params []Param, creds *OAuthCredentials) ([]Param, error) {
	sigMethod, err := creds.signatureMethod()
	if err != nil {
		return nil, err
	}
	signed := make([]Param, 0, len(params)+7) // nolint:gomnd
	signed = append(signed, params...)
	signed = append(signed,
		Param{Key: "oauth_consumer_key", Value: creds.ConsumerKey},
		Param{Key: "oauth_nonce", Value: s.genNonce()},
		Param{Key: "oauth_signature_method", Value: sigMethod},
		Param{Key: "oauth_timestamp", Value: s.timestamp()},
		Param{Key: "oauth_version", Value: oauthVersion},
	)
	if creds.Token != "" {
		signed = append(signed, Param{Key: "oauth_token", Value: creds.Token})
	}
	base, err := signatureBase(method, baseURL, signed)
	if err != nil {
		return nil, err
	}
	signature, err := sign(sigMethod, creds, base)
	if err != nil {
		return nil, err
	}
	return append(signed, Param{Key: "oauth_signature", Value: signature}), nil
}

func sign(sigMethod string, creds *OAuthCredentials, base string) (string, error) {
	var signer oauth1.Signer
	switch sigMethod {
	case SignatureMethodPlaintext:
		return escape(creds.ConsumerSecret) + "&" + escape(creds.TokenSecret), nil
	case SignatureMethodHMACSHA1:
		// oauth1.HMACSigner joins the secrets without encoding them.
		signer = &oauth1.HMACSigner{ConsumerSecret: escape(creds.ConsumerSecret)}
		return signer.Sign(escape(creds.TokenSecret), base)
	case SignatureMethodRSASHA1:
		signer = &oauth1.RSASigner{PrivateKey: creds.PrivateKey}
		return signer.Sign(creds.TokenSecret, base)
	}
	return "", initError(http.StatusBadRequest, "chttp: unsupported oauth signature method %q", sigMethod)
}

// signatureBase returns the signature base string, as described in RFC 5849,
// section 3.4.1.
func signatureBase(method, baseURL string, params []Param) (string, error) {
	uri, err := baseStringURI(baseURL)
	if err != nil {
		return "", err
	}
	encoded := make([]Param, len(params))
	for i, p := range params {
		encoded[i] = Param{Key: escape(p.Key), Value: escape(p.Value)}
	}
	sort.Slice(encoded, func(i, j int) bool {
		if encoded[i].Key != encoded[j].Key {
			return encoded[i].Key < encoded[j].Key
		}
		return encoded[i].Value < encoded[j].Value
	})
	pairs := make([]string, len(encoded))
	for i, p := range encoded {
		pairs[i] = p.Key + "=" + p.Value
	}
	return strings.Join([]string{
		strings.ToUpper(method),
		escape(uri),
		escape(strings.Join(pairs, "&")),
	}, "&"), nil
}

// baseStringURI normalizes baseURL per RFC 5849, section 3.4.1.2: scheme and
// host are lowercased, and the default port is dropped.
func baseStringURI(baseURL string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fullError(http.StatusBadRequest, ExitStatusURLMalformed, err)
	}
	scheme := strings.ToLower(u.Scheme)
	host := strings.ToLower(u.Hostname())
	if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}
	if port := u.Port(); port != "" {
		if !(scheme == "http" && port == "80") && !(scheme == "https" && port == "443") {
			host += ":" + port
		}
	}
	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	return scheme + "://" + host + path, nil
}
