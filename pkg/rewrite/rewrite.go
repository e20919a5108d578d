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

// Package rewrite substitutes placeholders in published stub files.
//
// Only a fixed set of locations is visited: the immediate regular files of a
// few directories and the root level files matching a glob. Directories are
// never descended into. A failure on one file is reported and the pass moves on.
package rewrite

import (
	"context"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/walteh/doctool/pkg/log"
	"github.com/walteh/doctool/pkg/placeholder"
	"gitlab.com/tozd/go/errors"
)

// 📍 Location is a directory whose immediate files are rewritten
type Location struct {
	Path        string // relative to the application root
	Description string
}

// 🎯 Targets lists every place the rewrite pass visits
type Targets struct {
	Directories []Location
	ComposeGlob string // matched against the application root only
}

// DefaultTargets returns the locations the Docker stubs are published to
func DefaultTargets() Targets {
	return Targets{
		Directories: []Location{
			{Path: filepath.Join(".github", "workflows"), Description: "GitHub workflows"},
			{Path: "docker", Description: "Docker configuration"},
		},
		ComposeGlob: "docker-compose*",
	}
}

// 📊 Summary counts the outcome of a rewrite pass
type Summary struct {
	Modified int
	Errors   int
}

// ✏️ Rewriter rewrites placeholder tokens in place
type Rewriter struct {
	fs       afero.Fs
	console  *log.Console
	failures int
}

// 🏭 New creates a rewriter over fs, which is rooted at the application directory
func New(fs afero.Fs, console *log.Console) *Rewriter {
	return &Rewriter{
		fs:      fs,
		console: console,
	}
}

// 🏃 Run rewrites every target directory, then the compose files
func (r *Rewriter) Run(ctx context.Context, targets Targets, values placeholder.Values) Summary {
	r.failures = 0

	modified := 0
	for _, loc := range targets.Directories {
		modified += r.RewriteDirectory(ctx, loc, values)
	}
	if targets.ComposeGlob != "" {
		modified += r.RewriteGlob(ctx, targets.ComposeGlob, values)
	}

	summary := Summary{Modified: modified, Errors: r.failures}
	zerolog.Ctx(ctx).Debug().
		Int("modified", summary.Modified).
		Int("errors", summary.Errors).
		Msg("rewrite finished")
	return summary
}

// 📂 RewriteDirectory rewrites the immediate regular files of loc and returns
// how many were modified. A missing directory is a warning.
func (r *Rewriter) RewriteDirectory(ctx context.Context, loc Location, values placeholder.Values) int {
	exists, err := afero.DirExists(r.fs, loc.Path)
	if err != nil {
		r.console.Errorf("Error processing directory %s: %v", loc.Path, err)
		r.failures++
		return 0
	}
	if !exists {
		r.console.Warningf("Directory not found: %s", loc.Path)
		return 0
	}

	r.console.Linef("🔄 Processing %s...", loc.Description)

	entries, err := afero.ReadDir(r.fs, loc.Path)
	if err != nil {
		r.console.Errorf("Error processing directory %s: %v", loc.Path, err)
		r.failures++
		return 0
	}

	var files []string
	for _, entry := range entries {
		if entry.Mode().IsRegular() {
			files = append(files, filepath.Join(loc.Path, entry.Name()))
		}
	}

	processed := r.rewriteAll(ctx, files, values)
	if processed > 0 {
		r.console.Linef("   ✓ Processed %d file(s)", processed)
	} else {
		r.console.Line("   ℹ️  No files to process")
	}
	return processed
}

// 🐳 RewriteGlob rewrites the root level files matching pattern
func (r *Rewriter) RewriteGlob(ctx context.Context, pattern string, values placeholder.Values) int {
	r.console.Line("🔄 Processing docker-compose files...")

	matches, err := doublestar.Glob(afero.NewIOFS(r.fs), pattern)
	if err != nil {
		r.console.Errorf("Error matching %s: %v", pattern, err)
		r.failures++
		matches = nil
	}
	sort.Strings(matches)

	var files []string
	for _, match := range matches {
		info, err := r.fs.Stat(match)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, filepath.FromSlash(match))
	}

	processed := r.rewriteAll(ctx, files, values)
	if processed > 0 {
		r.console.Linef("   ✓ Processed %d docker-compose file(s)", processed)
	} else {
		r.console.Line("   ℹ️  No docker-compose files found")
	}
	return processed
}

func (r *Rewriter) rewriteAll(ctx context.Context, files []string, values placeholder.Values) int {
	processed := 0
	for _, file := range files {
		modified, err := r.RewriteFile(ctx, file, values)
		if err != nil {
			r.failures++
			continue
		}
		if modified {
			processed++
		}
	}
	return processed
}

// ✏️ RewriteFile substitutes both tokens in path. The file is only written when
// its content changes. Failures are reported on the console and returned.
func (r *Rewriter) RewriteFile(ctx context.Context, path string, values placeholder.Values) (bool, error) {
	logger := zerolog.Ctx(ctx).With().Str("file", path).Logger()

	content, err := afero.ReadFile(r.fs, path)
	if err != nil {
		r.console.Warningf("Could not read file: %s", path)
		logger.Debug().Err(err).Msg("reading file")
		return false, errors.Errorf("reading %s: %w", path, err)
	}

	result := placeholder.Apply(content, values)
	if placeholder.ContainsLegacy(result.ModifiedContent) {
		r.console.Warningf("%s still contains %s, replace it manually", path, placeholder.LegacyUsernameToken)
	}
	if !result.WasModified {
		logger.Debug().Msg("no placeholders found")
		return false, nil
	}

	info, err := r.fs.Stat(path)
	if err != nil {
		r.console.Errorf("Could not write to file: %s", path)
		return false, errors.Errorf("reading %s: %w", path, err)
	}

	if err := afero.WriteFile(r.fs, path, result.ModifiedContent, info.Mode().Perm()); err != nil {
		r.console.Errorf("Could not write to file: %s", path)
		logger.Debug().Err(err).Msg("writing file")
		return false, errors.Errorf("writing %s: %w", path, err)
	}

	r.console.LogFileOperation(ctx, log.FileOperation{
		Path:         filepath.ToSlash(path),
		Status:       "rewritten",
		IsModified:   true,
		Replacements: result.ReplacementCount,
	})
	return true, nil
}
