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
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-kivik/couchutil"
)

type query struct {
	*root
	json bool
}

func queryCmd(r *root) *cobra.Command {
	c := &query{
		root: r,
	}
	cmd := &cobra.Command{
		Use:   "query [key=value | flag]...",
		Short: "Encode view query parameters",
		Long: `Encode view query parameters as a URL query string.

Each argument is either key=value, or a bare flag, which is set to true. The
values of key, startkey and endkey are JSON-encoded. With --json, every value
is parsed as JSON first.`,
		RunE: c.RunE,
	}
	cmd.Flags().BoolVar(&c.json, "json", false, "Parse values as JSON")
	return cmd
}

func (c *query) RunE(_ *cobra.Command, args []string) error {
	opts := make([]interface{}, 0, len(args))
	for _, arg := range args {
		opt, err := c.option(arg)
		if err != nil {
			return err
		}
		opts = append(opts, opt)
	}
	props, err := couchutil.ParseOptions(opts)
	if err != nil {
		return err
	}
	c.log.Debugf("parsed options: %s", props)
	params, err := couchutil.EncodeQuery(props)
	if err != nil {
		return err
	}
	values, err := couchutil.QueryValues(params)
	if err != nil {
		return err
	}
	c.log.Info(values.Encode())
	return nil
}

func (c *query) option(arg string) (interface{}, error) {
	key, raw, ok := strings.Cut(arg, "=")
	if !ok {
		return couchutil.Atom(arg), nil
	}
	if !c.json {
		return [2]interface{}{key, raw}, nil
	}
	value, err := couchutil.DecodeJSON([]byte(raw))
	if err != nil {
		return nil, err
	}
	return [2]interface{}{key, value}, nil
}
