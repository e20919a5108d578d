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

	"github.com/walteh/doctool/cmd/doctool/opts"
	"github.com/walteh/doctool/pkg/vendor"
)

// NewVendorPublishCmd creates the raw, tag based publish command
func NewVendorPublishCmd(opts *opts.RootOpts) *cobra.Command {
	var req vendor.Request

	cmd := &cobra.Command{
		Use:   "vendor-publish",
		Short: "Publish raw assets registered under a tag",
		Long: dedent.Dedent(`
			Vendor-publish copies the files registered under a tag into the
			application. Existing files are kept unless --force is given.

			Publishing the raw stub set asks for confirmation first, since its files
			still contain placeholders. Without --tag or --all the available tags are
			listed.`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.Tag == "" && !req.All {
				listTags(opts)
				return nil
			}

			return opts.Publish(cmd.Context(), req)
		},
	}

	cmd.Flags().StringVar(&req.Tag, "tag", "", "tag of the assets to publish")
	cmd.Flags().BoolVar(&req.All, "all", false, "publish every registered tag")
	cmd.Flags().BoolVar(&req.Force, "force", false, "overwrite existing files")
	cmd.MarkFlagsMutuallyExclusive("tag", "all")

	return cmd
}

func listTags(opts *opts.RootOpts) {
	opts.Console.Header("publishable tags")
	for _, tag := range opts.Registry.Tags() {
		opts.Console.Line("   • " + tag)
	}
	opts.Console.Newline()
	opts.Console.Comment("   Use --tag=<tag> to publish one, or --all for everything.")
}
