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

package opts

import (
	"github.com/spf13/afero"

	"github.com/walteh/doctool/pkg/config"
	"github.com/walteh/doctool/pkg/log"
	"github.com/walteh/doctool/pkg/prompt"
	"github.com/walteh/doctool/pkg/vendor"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Config   *config.Config
	BasePath string // absolute application root
	Fs       afero.Fs
	Console  *log.Console
	Prompter prompt.Prompter
	Registry *vendor.Registry
	Publish  vendor.PublishFunc // guarded publisher
}
