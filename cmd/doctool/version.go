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
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
)

// buildInfo describes the running binary
type buildInfo struct {
	version  string
	revision string
	built    string
	dirty    bool
}

// readBuildInfo collects module and VCS stamps; "dev" when the binary was not
// built from a tagged module.
func readBuildInfo() buildInfo {
	bi := buildInfo{version: "dev"}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return bi
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		bi.version = v
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			bi.revision = s.Value
		case "vcs.time":
			bi.built = s.Value
		case "vcs.modified":
			bi.dirty = s.Value == "true"
		}
	}
	return bi
}

// 📝 write prints one aligned row per field, skipping unknown VCS stamps
func (bi buildInfo) write(w io.Writer) error {
	revision := bi.revision
	if bi.dirty && revision != "" {
		revision += " (modified)"
	}

	rows := [][2]string{
		{"Version", bi.version},
		{"Revision", revision},
		{"Built", bi.built},
		{"Go", runtime.Version()},
		{"Platform", runtime.GOOS + "/" + runtime.GOARCH},
	}

	var b strings.Builder
	b.WriteString("🚀 doctool version info:\n")
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		fmt.Fprintf(&b, "%-10s %s\n", row[0]+":", row[1])
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		// version never needs the application root or config
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			return readBuildInfo().write(cmd.OutOrStdout())
		},
	}
}
