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

package commands

import (
	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/doctool/cmd/doctool/opts"
	"github.com/walteh/doctool/pkg/guided"
	"github.com/walteh/doctool/pkg/rewrite"
	"github.com/walteh/doctool/pkg/stubs"
)

// NewPublishCmd creates the guided publish command
func NewPublishCmd(opts *opts.RootOpts) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish Docker Tools configuration with your Docker Hub details",
		Long: dedent.Dedent(`
			Publish asks for your Docker Hub username and an application name, then:
			1. Publishes the Docker, Compose and GitHub workflow stubs (overwriting)
			2. Replaces {{:docker_username}} and {{:docker_image_name}} in
			   .github/workflows, docker and docker-compose* files`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			setup, err := guided.New(guided.Options{
				Tag:      stubs.Tag,
				Console:  opts.Console,
				Prompter: opts.Prompter,
				Publish:  opts.Publish,
				Fs:       opts.Fs,
				Targets:  rewrite.DefaultTargets(),
			})
			if err != nil {
				return errors.Errorf("creating guided setup: %w", err)
			}

			return setup.Run(cmd.Context(), force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing files (always the case for the stub set)")

	return cmd
}
