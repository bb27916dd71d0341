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

// Package config handles the couchutil configuration file and environment.
package config

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/go-kivik/couchutil"
	"github.com/go-kivik/couchutil/cmd/couchutil/log"
)

const envPrefix = "COUCHUTIL_"

// Config is the full app configuration file.
type Config struct {
	OAuth OAuth `yaml:"oauth"`
	log   log.Logger
}

// OAuth holds OAuth 1.0a credentials.
type OAuth struct {
	ConsumerKey     string `yaml:"consumer_key"`
	ConsumerSecret  string `yaml:"consumer_secret"`
	Token           string `yaml:"token"`
	TokenSecret     string `yaml:"token_secret"`
	SignatureMethod string `yaml:"signature_method"`
	// PrivateKeyFile is the path to a PEM-encoded RSA private key, for use
	// with the RSA-SHA1 signature method.
	PrivateKeyFile string `yaml:"private_key_file"`
}

// New returns an empty configuration object. Call Read() to populate it.
func New() *Config {
	return &Config{}
}

// Read populates c with app configuration found in filename, then applies any
// COUCHUTIL_* environment variables on top. A missing file is not an error.
func (c *Config) Read(filename string, lg log.Logger) error {
	c.log = lg
	if err := c.readYAML(filename); err != nil {
		return err
	}
	env := OAuthFromEnv()
	if env != (OAuth{}) {
		lg.Debug("read oauth credentials from environment")
	}
	c.OAuth.Override(env)
	return nil
}

func (c *Config) readYAML(filename string) error {
	if filename == "" {
		c.log.Debug("no config file specified")
		return nil
	}
	f, err := os.Open(filename)
	if err != nil {
		c.log.Debugf("failed to read config: %s", err)
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(err, "read config")
	}
	defer f.Close() // nolint:errcheck
	if err := yaml.NewDecoder(f).Decode(c); err != nil {
		c.log.Debugf("YAML parse error: %s", err)
		return errors.Wrapf(err, "parse config %q", filename)
	}
	c.log.Debugf("successfully read config file %q", filename)
	return nil
}

// OAuthFromEnv returns the credentials set by the COUCHUTIL_CONSUMER_KEY,
// COUCHUTIL_CONSUMER_SECRET, COUCHUTIL_TOKEN, COUCHUTIL_TOKEN_SECRET,
// COUCHUTIL_SIGNATURE_METHOD and COUCHUTIL_PRIVATE_KEY_FILE environment
// variables.
func OAuthFromEnv() OAuth {
	return OAuth{
		ConsumerKey:     os.Getenv(envPrefix + "CONSUMER_KEY"),
		ConsumerSecret:  os.Getenv(envPrefix + "CONSUMER_SECRET"),
		Token:           os.Getenv(envPrefix + "TOKEN"),
		TokenSecret:     os.Getenv(envPrefix + "TOKEN_SECRET"),
		SignatureMethod: os.Getenv(envPrefix + "SIGNATURE_METHOD"),
		PrivateKeyFile:  os.Getenv(envPrefix + "PRIVATE_KEY_FILE"),
	}
}

// AddFlags registers command line flags which populate o.
func AddFlags(fs *pflag.FlagSet, o *OAuth) {
	fs.StringVar(&o.ConsumerKey, "consumer-key", "", "OAuth consumer key")
	fs.StringVar(&o.ConsumerSecret, "consumer-secret", "", "OAuth consumer secret")
	fs.StringVar(&o.Token, "token", "", "OAuth token")
	fs.StringVar(&o.TokenSecret, "token-secret", "", "OAuth token secret")
	fs.StringVar(&o.SignatureMethod, "signature-method", "", "OAuth signature method: PLAINTEXT, HMAC-SHA1 (default) or RSA-SHA1")
	fs.StringVar(&o.PrivateKeyFile, "private-key", "", "Path to a PEM-encoded RSA private key, for RSA-SHA1")
}

// Override replaces each field of o with the matching field of other, if
// that one is set.
func (o *OAuth) Override(other OAuth) {
	set := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	set(&o.ConsumerKey, other.ConsumerKey)
	set(&o.ConsumerSecret, other.ConsumerSecret)
	set(&o.Token, other.Token)
	set(&o.TokenSecret, other.TokenSecret)
	set(&o.SignatureMethod, other.SignatureMethod)
	set(&o.PrivateKeyFile, other.PrivateKeyFile)
}

// Proplist returns the credentials as options for couchutil.OAuthHeader.
// Unset fields are omitted. If PrivateKeyFile is set, the key is read and
// parsed.
func (o *OAuth) Proplist() (couchutil.Proplist, error) {
	var props couchutil.Proplist
	for _, pair := range []couchutil.Pair{
		{Key: couchutil.OptionConsumerKey, Value: o.ConsumerKey},
		{Key: couchutil.OptionConsumerSecret, Value: o.ConsumerSecret},
		{Key: couchutil.OptionToken, Value: o.Token},
		{Key: couchutil.OptionTokenSecret, Value: o.TokenSecret},
		{Key: couchutil.OptionSignatureMethod, Value: o.SignatureMethod},
	} {
		if pair.Value != "" {
			props = append(props, pair)
		}
	}
	if o.PrivateKeyFile != "" {
		key, err := ReadPrivateKey(o.PrivateKeyFile)
		if err != nil {
			return nil, err
		}
		props = append(props, couchutil.Pair{Key: couchutil.OptionPrivateKey, Value: key})
	}
	return props, nil
}

// ReadPrivateKey reads a PEM-encoded RSA private key, in PKCS #1 or PKCS #8
// form, from filename.
func ReadPrivateKey(filename string) (*rsa.PrivateKey, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "read private key")
	}
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, errors.Errorf("%s: no PEM data found", filename)
	}
	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}
	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: parse private key", filename)
	}
	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.Errorf("%s: %T is not an RSA private key", filename, parsed)
	}
	return key, nil
}
