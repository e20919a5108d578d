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

package log

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsole(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(t *testing.T, console *Console)
		wantLogs []string
	}{
		{
			name: "log_file_operation",
			op: func(t *testing.T, console *Console) {
				console.LogFileOperation(context.Background(), FileOperation{
					Path:   "docker/Dockerfile",
					Status: "copied",
					IsNew:  true,
				})
			},
			wantLogs: []string{
				"✓ docker/Dockerfile                        copied",
			},
		},
		{
			name: "log_messages",
			op: func(t *testing.T, console *Console) {
				console.Info("info message")
				console.Warning("warning message")
				console.Error("error message")
				console.Success("success message")
				console.Line("plain message")
				console.Comment("doctool publish")
			},
			wantLogs: []string{
				"info message",
				"⚠️  warning message",
				"❌ error message",
				"✅ success message",
				"plain message",
				"doctool publish",
			},
		},
		{
			name: "log_formatted_messages",
			op: func(t *testing.T, console *Console) {
				console.Infof("info %s", "test")
				console.Warningf("warning %s", "test")
				console.Errorf("error %s", "test")
				console.Successf("success %s", "test")
				console.Linef("line %d", 1)
			},
			wantLogs: []string{
				"info test",
				"⚠️  warning test",
				"❌ error test",
				"✅ success test",
				"line 1",
			},
		},
		{
			name: "log_header",
			op: func(t *testing.T, console *Console) {
				console.Header("publishing stubs")
			},
			wantLogs: []string{
				"doctool • publishing stubs",
			},
		},
		{
			name: "log_newline",
			op: func(t *testing.T, console *Console) {
				console.Info("first")
				console.Newline()
				console.Info("second")
			},
			wantLogs: []string{
				"first",
				"",
				"second",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			console := New(buf, zerolog.New(zerolog.NewTestWriter(t)))

			tt.op(t, console)

			output := strings.TrimSpace(buf.String())
			lines := strings.Split(output, "\n")

			require.Equal(t, len(tt.wantLogs), len(lines), "number of log lines should match")
			for i, want := range tt.wantLogs {
				assert.Equal(t, want, strings.TrimSpace(lines[i]), "log line %d should match", i)
			}
		})
	}
}

func TestConsoleMirrorsToZerolog(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	structured := &bytes.Buffer{}
	console := New(&bytes.Buffer{}, zerolog.New(structured).Level(zerolog.DebugLevel))

	console.Warning("directory not found")

	assert.Contains(t, structured.String(), `"severity":"warning"`)
	assert.Contains(t, structured.String(), `"message":"directory not found"`)
}

func TestFromContext(t *testing.T) {
	structured := &bytes.Buffer{}
	logger := zerolog.New(structured).Level(zerolog.DebugLevel)
	ctx := logger.WithContext(context.Background())

	console := FromContext(ctx, &bytes.Buffer{})
	console.Line("hello")

	assert.Contains(t, structured.String(), `"message":"hello"`)
}

func TestFileOperationFormatting(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name string
		op   FileOperation
		want string
	}{
		{
			name: "new_file",
			op:   FileOperation{Path: "a.yml", Status: "copied", IsNew: true},
			want: "    ✓ a.yml                                    copied         ",
		},
		{
			name: "modified_file",
			op:   FileOperation{Path: "a.yml", Status: "rewritten", IsModified: true},
			want: "    ⟳ a.yml                                    rewritten      ",
		},
		{
			name: "skipped_file",
			op:   FileOperation{Path: "a.yml", Status: "exists", IsSkipped: true},
			want: "    - a.yml                                    exists         ",
		},
		{
			name: "failed_file",
			op:   FileOperation{Path: "a.yml", Status: "error", IsFailed: true},
			want: "    ✗ a.yml                                    error          ",
		},
		{
			name: "plain_file",
			op:   FileOperation{Path: "a.yml", Status: "unchanged"},
			want: "    • a.yml                                    unchanged      ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			console := New(&bytes.Buffer{}, zerolog.Nop())
			assert.Equal(t, tt.want, console.formatFileOperation(tt.op))
		})
	}
}
