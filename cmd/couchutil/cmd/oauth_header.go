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

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/go-kivik/couchutil"
	"github.com/go-kivik/couchutil/cmd/couchutil/config"
)

type oauthHeader struct {
	*root
	method string
	flags  config.OAuth
}

func oauthHeaderCmd(r *root) *cobra.Command {
	c := &oauthHeader{
		root: r,
	}
	cmd := &cobra.Command{
		Use:   "oauth-header [url]",
		Short: "Print an OAuth 1.0a Authorization header",
		Long: `Print an OAuth 1.0a Authorization header which signs a request to url.

Credentials are read from the oauth section of the config file, then from
COUCHUTIL_* environment variables, then from command line flags, with later
sources taking precedence.`,
		Args: cobra.ExactArgs(1),
		RunE: c.RunE,
	}
	pf := cmd.Flags()
	pf.StringVarP(&c.method, "method", "X", "get", "Request method: delete, get, head, post or put")
	config.AddFlags(pf, &c.flags)
	return cmd
}

func (c *oauthHeader) RunE(_ *cobra.Command, args []string) error {
	creds := c.conf.OAuth
	creds.Override(c.flags)
	props, err := creds.Proplist()
	if err != nil {
		return err
	}
	c.log.Debugf("signing %s %s", c.method, args[0])
	name, value, err := couchutil.OAuthHeader(args[0], c.method, props)
	if err != nil {
		return err
	}
	c.log.Infof("%s: %s", name, value)
	return nil
}
