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

// Package guided implements the interactive publish flow: ask for the Docker Hub
// username and application name, publish the stubs, then substitute the
// placeholders in the published files.
package guided

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/walteh/doctool/pkg/log"
	"github.com/walteh/doctool/pkg/placeholder"
	"github.com/walteh/doctool/pkg/prompt"
	"github.com/walteh/doctool/pkg/rewrite"
	"github.com/walteh/doctool/pkg/vendor"
	"gitlab.com/tozd/go/errors"
)

const (
	UsernameQuestion = "Masukkan Docker Hub username Anda"
	AppNameQuestion  = "Masukkan nama aplikasi untuk docker image"
)

var (
	ErrEmptyUsername = errors.New("Docker Hub username tidak boleh kosong")
	ErrEmptyAppName  = errors.New("Nama aplikasi tidak boleh kosong")
)

// 🔧 Options configures a Setup
type Options struct {
	Tag      string // asset group holding the stubs
	Console  *log.Console
	Prompter prompt.Prompter
	Publish  vendor.PublishFunc
	Fs       afero.Fs // rooted at the application directory
	Targets  rewrite.Targets
}

// 🚀 Setup runs the guided publish flow
type Setup struct {
	opts     Options
	rewriter *rewrite.Rewriter
}

// 🏭 New creates a Setup
func New(opts Options) (*Setup, error) {
	if opts.Tag == "" {
		return nil, errors.Errorf("tag is required")
	}
	if opts.Console == nil {
		return nil, errors.Errorf("console is required")
	}
	if opts.Prompter == nil {
		return nil, errors.Errorf("prompter is required")
	}
	if opts.Publish == nil {
		return nil, errors.Errorf("publish function is required")
	}
	if opts.Fs == nil {
		return nil, errors.Errorf("filesystem is required")
	}
	return &Setup{
		opts:     opts,
		rewriter: rewrite.New(opts.Fs, opts.Console),
	}, nil
}

// 🏃 Run asks for both values, publishes the stubs with force and rewrites the
// placeholders. The stubs are always overwritten; force is accepted for
// symmetry with vendor-publish.
func (s *Setup) Run(ctx context.Context, force bool) error {
	logger := zerolog.Ctx(ctx)
	c := s.opts.Console

	c.Info("🚀 Publishing Docker Tools configuration...")

	username, err := s.ask(ctx, UsernameQuestion, ErrEmptyUsername)
	if err != nil {
		return err
	}

	appName, err := s.ask(ctx, AppNameQuestion, ErrEmptyAppName)
	if err != nil {
		return err
	}

	values := placeholder.Values{Username: username, AppName: appName}.Trimmed()
	logger.Debug().Str("username", values.Username).Str("app_name", values.AppName).Bool("force", force).Msg("collected values")

	c.Info("📦 Publishing configuration files...")
	c.Warning("Using --force option: existing files will be overwritten")
	c.Line("📝 Publishing stub files and replacing placeholders...")

	if err := s.opts.Publish(ctx, vendor.Request{Tag: s.opts.Tag, Force: true}); err != nil {
		c.Error("Failed to publish configuration files")
		return errors.Errorf("publishing %s: %w", s.opts.Tag, err)
	}

	summary := s.rewriter.Run(ctx, s.opts.Targets, values)
	logger.Debug().Int("modified", summary.Modified).Int("errors", summary.Errors).Msg("placeholders replaced")

	c.Newline()
	c.Success("Docker Tools configuration published successfully!")
	c.Linef("   Docker Hub Username: %s", values.Username)
	c.Linef("   Application Name: %s", values.AppName)

	return nil
}

// ask prompts for a required value. A blank answer returns errEmpty.
func (s *Setup) ask(ctx context.Context, question string, errEmpty error) (string, error) {
	answer, err := s.opts.Prompter.Ask(ctx, question)
	if err != nil {
		return "", errors.Errorf("asking %q: %w", question, err)
	}

	if strings.TrimSpace(answer) == "" {
		return "", errEmpty
	}
	return answer, nil
}
