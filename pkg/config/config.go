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

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/doctool/pkg/vendor"
)

// 📦 Publish declares an extra asset group published under a tag
type Publish struct {
	Tag  string `json:"tag" yaml:"tag" hcl:"tag,label"`
	From string `json:"from" yaml:"from" hcl:"from"` // relative to the config file's directory
	To   string `json:"to" yaml:"to" hcl:"to"`       // relative to the application root
}

// 📚 Config is the optional project file
type Config struct {
	BasePath string    `json:"base_path,omitempty" yaml:"base_path,omitempty" hcl:"base_path,optional"`
	Ignore   []string  `json:"ignore,omitempty" yaml:"ignore,omitempty" hcl:"ignore,optional"`
	Publish  []Publish `json:"publish,omitempty" yaml:"publish,omitempty" hcl:"publish,block"`

	location string
}

// 🔍 Validate checks the config and normalizes its paths
func (cfg *Config) Validate() error {
	for _, pattern := range cfg.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("ignore: invalid pattern %q", pattern)
		}
	}

	for i := range cfg.Publish {
		p := &cfg.Publish[i]
		if p.Tag == "" {
			return errors.Errorf("publish[%d]: tag is required", i)
		}
		if p.From == "" {
			return errors.Errorf("publish %q: from is required", p.Tag)
		}
		if p.To == "" {
			return errors.Errorf("publish %q: to is required", p.Tag)
		}
		if !filepath.IsLocal(p.From) {
			return errors.Errorf("publish %q: from %q must stay inside the config directory", p.Tag, p.From)
		}
		if !filepath.IsLocal(p.To) {
			return errors.Errorf("publish %q: to %q must stay inside the base path", p.Tag, p.To)
		}
		p.From = filepath.ToSlash(filepath.Clean(p.From))
		p.To = filepath.ToSlash(filepath.Clean(p.To))
	}

	if cfg.BasePath != "" {
		cfg.BasePath = filepath.Clean(cfg.BasePath)
	}

	return nil
}

// 📂 Dir returns the directory the config was loaded from
func (cfg *Config) Dir() string {
	if cfg.location == "" {
		return "."
	}
	return filepath.Dir(cfg.location)
}

// 📦 Groups turns the publish blocks into vendor groups, one per tag, in tag order.
// Sources are read from the config file's directory.
func (cfg *Config) Groups() []vendor.Group {
	byTag := make(map[string][]vendor.Entry)
	for _, p := range cfg.Publish {
		byTag[p.Tag] = append(byTag[p.Tag], vendor.Entry{From: p.From, To: p.To})
	}

	tags := make([]string, 0, len(byTag))
	for tag := range byTag {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	source := os.DirFS(cfg.Dir())
	groups := make([]vendor.Group, 0, len(tags))
	for _, tag := range tags {
		groups = append(groups, vendor.Group{Tag: tag, Source: source, Entries: byTag[tag]})
	}
	return groups
}

// 📝 String returns a short summary of the config
func (cfg *Config) String() string {
	loc := cfg.location
	if loc == "" {
		loc = "<default>"
	}
	return fmt.Sprintf("%s (publish=%d ignore=%d)", loc, len(cfg.Publish), len(cfg.Ignore))
}
