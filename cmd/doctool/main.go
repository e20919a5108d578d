// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"io"
	"os"

	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"

	"github.com/walteh/doctool/cmd/doctool/commands"
	"github.com/walteh/doctool/cmd/doctool/opts"
	"github.com/walteh/doctool/pkg/log"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.FromContext(ctx, stdout).Error(err.Error())
		return 1
	}
	return 0
}

// newRootCmd wires the command tree. Shared options are built after flag parsing.
func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	rootOpts := &opts.RootOpts{}

	rootCmd := &cobra.Command{
		Use:   "doctool",
		Short: "Publish Docker and CI scaffolding into an application",
		Long: dedent.Dedent(`
			doctool publishes Docker, Compose and GitHub Actions scaffolding into an
			application and fills in the Docker Hub username and image name.

			Use "doctool publish" for the guided flow. "doctool vendor-publish" copies
			raw assets by tag.`),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger := setupLogging(cmd.ErrOrStderr(), flags.debug)
			ctx := logger.WithContext(cmd.Context())
			cmd.SetContext(ctx)

			built, err := newRootOpts(ctx, cmd, flags)
			if err != nil {
				return err
			}
			*rootOpts = *built
			return nil
		},
	}

	addRootFlags(rootCmd, flags)

	rootCmd.AddCommand(
		commands.NewPublishCmd(rootOpts),
		commands.NewVendorPublishCmd(rootOpts),
		newVersionCmd(),
	)

	return rootCmd
}
