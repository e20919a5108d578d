package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInfoWrite(t *testing.T) {
	tests := []struct {
		name    string
		info    buildInfo
		want    []string
		notWant []string
	}{
		{
			name:    "dev_build_without_vcs",
			info:    buildInfo{version: "dev"},
			want:    []string{"🚀 doctool version info:\n", "Version:   dev\n", "Go:        go"},
			notWant: []string{"Revision:", "Built:"},
		},
		{
			name: "modified_checkout",
			info: buildInfo{version: "v1.2.0", revision: "abc123", built: "2025-01-02T03:04:05Z", dirty: true},
			want: []string{"Version:   v1.2.0\n", "Revision:  abc123 (modified)\n", "Built:     2025-01-02T03:04:05Z\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tt.info.write(&buf))

			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
			for _, notWant := range tt.notWant {
				assert.NotContains(t, buf.String(), notWant)
			}
		})
	}
}
