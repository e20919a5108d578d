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

// Package placeholder knows the tokens embedded in the Docker stub files and how
// to substitute them.
package placeholder

import (
	"strings"

	"github.com/walteh/doctool/pkg/text"
)

const (
	// UsernameToken is replaced with the Docker Hub username.
	UsernameToken = "{{:docker_username}}"

	// ImageNameToken is replaced with the application / image name.
	ImageNameToken = "{{:docker_image_name}}"

	// LegacyUsernameToken is an older spelling of UsernameToken. It is not
	// substituted; stub content must use UsernameToken instead.
	LegacyUsernameToken = "{{:docker_hub_username}}"
)

// 🔑 Values holds the operator supplied substitutions.
type Values struct {
	Username string
	AppName  string
}

// Trimmed returns a copy with surrounding whitespace removed from both values.
func (v Values) Trimmed() Values {
	return Values{
		Username: strings.TrimSpace(v.Username),
		AppName:  strings.TrimSpace(v.AppName),
	}
}

// Rules returns the replacement rules for v, username first.
func (v Values) Rules() []text.Rule {
	return []text.Rule{
		{From: UsernameToken, To: v.Username},
		{From: ImageNameToken, To: v.AppName},
	}
}

// Apply substitutes both tokens in content.
func Apply(content []byte, v Values) *text.Result {
	return text.Replace(content, v.Rules())
}

// Contains reports whether content still holds a recognised token.
func Contains(content []byte) bool {
	s := string(content)
	return strings.Contains(s, UsernameToken) || strings.Contains(s, ImageNameToken)
}

// ContainsLegacy reports whether content holds the legacy username spelling
func ContainsLegacy(content []byte) bool {
	return strings.Contains(string(content), LegacyUsernameToken)
}
