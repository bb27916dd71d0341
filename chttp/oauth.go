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
	"crypto/rsa"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// OAuth 1.0a signature methods.
const (
	SignatureMethodPlaintext = "PLAINTEXT"
	SignatureMethodHMACSHA1  = "HMAC-SHA1"
	SignatureMethodRSASHA1   = "RSA-SHA1"
)

// HeaderAuthorization is the name of the header produced by [OAuthHeader].
const HeaderAuthorization = "Authorization"

// OAuthCredentials are the secrets used to sign a request with OAuth 1.0a.
// Token and TokenSecret may be empty for two-legged flows.
type OAuthCredentials struct {
	ConsumerKey    string `json:"consumer_key"    validate:"required"`
	ConsumerSecret string `json:"consumer_secret" validate:"required"`
	Token          string `json:"token"`
	TokenSecret    string `json:"token_secret"`

	// SignatureMethod is one of PLAINTEXT, HMAC-SHA1 or RSA-SHA1. If empty,
	// HMAC-SHA1 is used.
	SignatureMethod string `json:"signature_method"`

	// PrivateKey signs requests when SignatureMethod is RSA-SHA1.
	PrivateKey *rsa.PrivateKey `json:"-" validate:"required_if=SignatureMethod RSA-SHA1"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0] // nolint:gomnd
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

// validate checks that the required credentials are present.
func (c *OAuthCredentials) validate() error {
	if c == nil {
		return initError(http.StatusBadRequest, "chttp: oauth credentials required")
	}
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return initError(http.StatusBadRequest, "chttp: oauth %s required", fieldErrs[0].Field())
	}
	return fullError(http.StatusBadRequest, ExitFailedToInitialize, err)
}

// signatureMethod returns the resolved signature method.
func (c *OAuthCredentials) signatureMethod() (string, error) {
	switch c.SignatureMethod {
	case "":
		return SignatureMethodHMACSHA1, nil
	case SignatureMethodPlaintext, SignatureMethodHMACSHA1, SignatureMethodRSASHA1:
		return c.SignatureMethod, nil
	}
	return "", initError(http.StatusBadRequest, "chttp: unsupported oauth signature method %q", c.SignatureMethod)
}

func (c *OAuthCredentials) String() string {
	return fmt.Sprintf("[OAuth{consumer_key:%s,consumer_secret:%s,token:%s,token_secret:%s}]",
		c.ConsumerKey, strings.Repeat("*", len(c.ConsumerSecret)),
		c.Token, strings.Repeat("*", len(c.TokenSecret)))
}

// Param is a single decoded request parameter.
type Param struct {
	Key   string
	Value string
}

var oauthMethods = map[string]string{
	"delete": http.MethodDelete,
	"get":    http.MethodGet,
	"head":   http.MethodHead,
	"post":   http.MethodPost,
	"put":    http.MethodPut,
}

func oauthMethod(action string) (string, error) {
	if method, ok := oauthMethods[strings.ToLower(action)]; ok {
		return method, nil
	}
	return "", initError(http.StatusMethodNotAllowed, "chttp: unsupported action %q", action)
}

// OAuthHeaderBuilder renders signed OAuth 1.0a Authorization headers.
type OAuthHeaderBuilder struct {
	// Signer produces the signed parameter set. If nil, a signer which
	// generates a random nonce and uses the current time is used.
	Signer OAuthSigner
}

var defaultSigner OAuthSigner = NewOAuthSigner()

func (b *OAuthHeaderBuilder) signer() OAuthSigner {
	if b == nil || b.Signer == nil {
		return defaultSigner
	}
	return b.Signer
}

// OAuthHeader returns the name and value of an OAuth 1.0a Authorization
// header which signs a request for action (one of delete, get, head, post or
// put) on rawURL. A fresh nonce and timestamp are used on every call.
func OAuthHeader(rawURL, action string, creds *OAuthCredentials) (name, value string, err error) {
	return (*OAuthHeaderBuilder)(nil).Header(rawURL, action, creds)
}

// Header returns the name and value of an OAuth 1.0a Authorization header,
// as described by [OAuthHeader]. Query parameters of rawURL are signed, but
// not included in the header value.
func (b *OAuthHeaderBuilder) Header(rawURL, action string, creds *OAuthCredentials) (name, value string, err error) {
	baseURL, query, err := splitURL(rawURL)
	if err != nil {
		return "", "", err
	}
	params, err := parseQuery(query)
	if err != nil {
		return "", "", err
	}
	if err := creds.validate(); err != nil {
		return "", "", err
	}
	sigMethod, err := creds.signatureMethod()
	if err != nil {
		return "", "", err
	}
	method, err := oauthMethod(action)
	if err != nil {
		return "", "", err
	}
	resolved := *creds
	resolved.SignatureMethod = sigMethod
	signed, err := b.signer().Sign(method, baseURL, params, &resolved)
	if err != nil {
		return "", "", err
	}
	return HeaderAuthorization, renderOAuthParams(subtractParams(signed, params)), nil
}

// splitURL returns the URL without its query string or fragment, and the raw
// query string.
func splitURL(rawURL string) (baseURL, query string, err error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", fullError(http.StatusBadRequest, ExitStatusURLMalformed, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", "", fullError(http.StatusBadRequest, ExitStatusURLMalformed, fmt.Errorf("chttp: malformed URL %q", rawURL))
	}
	query = u.RawQuery
	u.RawQuery = ""
	u.ForceQuery = false
	u.Fragment = ""
	u.RawFragment = ""
	u.User = nil
	return u.String(), query, nil
}

// parseQuery decodes an application/x-www-form-urlencoded query string into
// its parameters, preserving their order. Both '&' and ';' separate pairs.
func parseQuery(query string) ([]Param, error) {
	var params []Param
	for query != "" {
		var pair string
		if i := strings.IndexAny(query, "&;"); i >= 0 {
			pair, query = query[:i], query[i+1:]
		} else {
			pair, query = query, ""
		}
		if pair == "" {
			continue
		}
		rawKey, rawValue := pair, ""
		if i := strings.Index(pair, "="); i >= 0 {
			rawKey, rawValue = pair[:i], pair[i+1:]
		}
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return nil, fullError(http.StatusBadRequest, ExitStatusURLMalformed, err)
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, fullError(http.StatusBadRequest, ExitStatusURLMalformed, err)
		}
		params = append(params, Param{Key: key, Value: value})
	}
	return params, nil
}

// subtractParams returns the members of signed which do not exactly match
// any member of query.
func subtractParams(signed, query []Param) []Param {
	exclude := make(map[Param]struct{}, len(query))
	for _, p := range query {
		exclude[p] = struct{}{}
	}
	result := make([]Param, 0, len(signed))
	for _, p := range signed {
		if _, ok := exclude[p]; !ok {
			result = append(result, p)
		}
	}
	return result
}

func renderOAuthParams(params []Param) string {
	sorted := make([]Param, len(params))
	copy(sorted, params)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Key < sorted[j].Key
	})
	parts := make([]string, len(sorted))
	for i, p := range sorted {
		parts[i] = escape(p.Key) + `="` + escape(p.Value) + `"`
	}
	return "OAuth " + strings.Join(parts, ", ")
}
