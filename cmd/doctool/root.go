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
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/doctool/cmd/doctool/opts"
	"github.com/walteh/doctool/pkg/config"
	"github.com/walteh/doctool/pkg/log"
	"github.com/walteh/doctool/pkg/prompt"
	"github.com/walteh/doctool/pkg/stubs"
	"github.com/walteh/doctool/pkg/vendor"
)

const (
	guidedCommand = "doctool publish"
	rawCommand    = "doctool vendor-publish --tag=" + stubs.Tag + " --force"
)

// rootFlags holds the persistent flags
type rootFlags struct {
	configFile string
	basePath   string
	debug      bool
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, f *rootFlags) {
	cmd.PersistentFlags().StringVarP(&f.configFile, "config", "c", config.DefaultPath, "config file path")
	cmd.PersistentFlags().StringVarP(&f.basePath, "base-path", "b", ".", "application root directory")
	cmd.PersistentFlags().BoolVarP(&f.debug, "debug", "d", false, "enable debug logging")
}

// setupLogging builds the structured logger based on flags
func setupLogging(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).Level(level).With().Timestamp().Logger()
}

// newRootOpts creates the shared options once flags are parsed
func newRootOpts(ctx context.Context, cmd *cobra.Command, f *rootFlags) (*opts.RootOpts, error) {
	logger := zerolog.Ctx(ctx)

	cfg, err := loadConfig(ctx, cmd, f)
	if err != nil {
		return nil, err
	}

	basePath, err := resolveBasePath(cmd, f, cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("base_path", basePath).Stringer("config", cfg).Msg("resolved application root")

	console := log.New(cmd.OutOrStdout(), *logger)
	dest := afero.NewBasePathFs(afero.NewOsFs(), basePath)

	registry, err := vendor.NewRegistry(append([]vendor.Group{stubs.Group()}, cfg.Groups()...)...)
	if err != nil {
		return nil, errors.Errorf("building registry: %w", err)
	}

	publisher, err := vendor.NewPublisher(vendor.Options{
		Registry:    registry,
		Destination: dest,
		Console:     console,
		Ignore:      cfg.Ignore,
	})
	if err != nil {
		return nil, errors.Errorf("creating publisher: %w", err)
	}

	prompter := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())

	return &opts.RootOpts{
		Config:   cfg,
		BasePath: basePath,
		Fs:       dest,
		Console:  console,
		Prompter: prompter,
		Registry: registry,
		Publish: vendor.Guard(vendor.GuardOptions{
			Tag:           stubs.Tag,
			GuidedCommand: guidedCommand,
			RawCommand:    rawCommand,
			Console:       console,
			Prompter:      prompter,
		}, publisher.Publish),
	}, nil
}

// loadConfig reads the config file. A missing default file yields an empty config.
func loadConfig(ctx context.Context, cmd *cobra.Command, f *rootFlags) (*config.Config, error) {
	cfg, err := config.LoadConfig(ctx, f.configFile)
	if err == nil {
		return cfg, nil
	}
	if errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config") {
		return config.Default(), nil
	}
	return nil, errors.Errorf("loading config: %w", err)
}

// resolveBasePath picks the flag, then the config's base_path, and checks it is a directory
func resolveBasePath(cmd *cobra.Command, f *rootFlags, cfg *config.Config) (string, error) {
	base := f.basePath
	if !cmd.Flags().Changed("base-path") && cfg.BasePath != "" {
		base = cfg.BasePath
		if !filepath.IsAbs(base) {
			base = filepath.Join(cfg.Dir(), base)
		}
	}

	abs, err := filepath.Abs(base)
	if err != nil {
		return "", errors.Errorf("resolving base path: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", errors.Errorf("base path %s: %w", abs, err)
	}
	if !info.IsDir() {
		return "", errors.Errorf("base path %s is not a directory", abs)
	}

	return abs, nil
}
