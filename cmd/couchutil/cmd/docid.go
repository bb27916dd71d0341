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

	"github.com/go-kivik/couchutil/chttp"
)

type docID struct {
	*root
}

func docIDCmd(r *root) *cobra.Command {
	c := &docID{
		root: r,
	}
	return &cobra.Command{
		Use:     "docid [id]...",
		Aliases: []string{"encode-docid"},
		Short:   "Encode document IDs for use in a URL path",
		Long:    "Print each document ID, percent-encoded for use as a CouchDB URL path segment, one per line.",
		Args:    cobra.MinimumNArgs(1),
		RunE:    c.RunE,
	}
}

func (c *docID) RunE(_ *cobra.Command, args []string) error {
	for _, id := range args {
		c.log.Info(chttp.EncodeDocID(id))
	}
	return nil
}
