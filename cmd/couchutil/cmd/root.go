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

// Package cmd implements the couchutil command line tool.
package cmd

import (
	"context"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-kivik/couchutil/chttp"
	"github.com/go-kivik/couchutil/cmd/couchutil/config"
	"github.com/go-kivik/couchutil/cmd/couchutil/log"
)

type root struct {
	confFile string
	debug    bool
	log      log.Logger
	conf     *config.Config
	cmd      *cobra.Command

	// resolveHome is used to resolve ~ in the default config file path
	resolveHome func(string) string
}

// Execute runs the root command, and exits with its exit status. This is
// called by main.main().
func Execute(ctx context.Context) {
	lg := log.New()
	root := rootCmd(lg)
	os.Exit(root.execute(ctx))
}

func (r *root) execute(ctx context.Context) int {
	err := r.cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	r.log.Errorf("Error: %s", err)
	return extractExitCode(err)
}

// extractExitCode returns the curl-style exit status carried by err. Errors
// without one are usage or input errors.
func extractExitCode(err error) int {
	if code := chttp.ExitStatus(err); code != chttp.ExitUnknownFailure {
		return code
	}
	return chttp.ExitFailedToInitialize
}

func resolveHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	usr, err := user.Current()
	if err != nil {
		return path
	}
	return filepath.Join(usr.HomeDir, path[2:])
}

func rootCmd(lg log.Logger) *root {
	r := &root{
		log:         lg,
		conf:        config.New(),
		resolveHome: resolveHome,
	}
	r.cmd = &cobra.Command{
		Use:               "couchutil",
		Short:             "couchutil prepares CouchDB HTTP requests",
		Long:              `This tool encodes document IDs and view query parameters, and signs requests with OAuth 1.0a, the way a CouchDB client would.`,
		PersistentPreRunE: r.init,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	pf := r.cmd.PersistentFlags()
	pf.StringVar(&r.confFile, "config", "~/.couchutil/config", "Path to config file")
	pf.BoolVar(&r.debug, "debug", false, "Enable debug output")

	r.cmd.AddCommand(docIDCmd(r))
	r.cmd.AddCommand(queryCmd(r))
	r.cmd.AddCommand(oauthHeaderCmd(r))
	r.cmd.AddCommand(versionCmd(r))

	return r
}

func (r *root) init(cmd *cobra.Command, _ []string) error {
	r.log.SetOut(cmd.OutOrStdout())
	r.log.SetErr(cmd.ErrOrStderr())
	r.log.SetDebug(r.debug)

	r.log.Debug("Debug mode enabled")

	return r.conf.Read(r.resolveHome(r.confFile), r.log)
}
