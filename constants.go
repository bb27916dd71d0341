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

// Version is the current version of this package.
const Version = "1.0.0-prerelease"

// Keys recognized by NewOAuthCredentials.
const (
	// OptionConsumerKey is the OAuth consumer key. Required.
	OptionConsumerKey = "consumer_key"

	// OptionConsumerSecret is the OAuth consumer secret. Required.
	OptionConsumerSecret = "consumer_secret"

	// OptionToken is the OAuth token. Omit for two-legged flows.
	OptionToken = "token"

	// OptionTokenSecret is the OAuth token secret.
	OptionTokenSecret = "token_secret"

	// OptionSignatureMethod is one of PLAINTEXT, HMAC-SHA1 or RSA-SHA1, as a
	// string or Atom. Defaults to HMAC-SHA1.
	OptionSignatureMethod = "signature_method"

	// OptionPrivateKey is an *rsa.PrivateKey, used with RSA-SHA1.
	//
	// Example:
	//
	//    couchutil.OAuthHeader(url, "get", couchutil.Proplist{{Key: couchutil.OptionPrivateKey, Value: key}, ...})
	OptionPrivateKey = "private_key"
)
