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

// Package stubs ships the Docker, Compose and GitHub Actions stub files.
package stubs

import (
	"embed"

	"github.com/walteh/doctool/pkg/vendor"
)

// Tag is the asset group tag of the Docker stubs
const Tag = "doctool-stubs"

//go:embed files
var files embed.FS

// FS returns the embedded stub tree. Paths are rooted at "files".
func FS() embed.FS {
	return files
}

// Group returns the publish table for the stubs
func Group() vendor.Group {
	return vendor.Group{
		Tag:    Tag,
		Source: files,
		Entries: []vendor.Entry{
			{From: "files/github", To: ".github"},
			{From: "files/docker", To: "docker"},
			{From: "files/docker-compose.yml", To: "docker-compose.yml"},
			{From: "files/docker-compose.prod.yml", To: "docker-compose.prod.yml"},
		},
	}
}
