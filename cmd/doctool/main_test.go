package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/doctool/pkg/guided"
	"github.com/walteh/doctool/pkg/placeholder"
	"github.com/walteh/doctool/pkg/vendor"
)

type cliResult struct {
	code   int
	stdout string
	stderr string
}

func runCLI(t *testing.T, stdin string, args ...string) cliResult {
	t.Helper()

	color.NoColor = true

	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
	var stdout, stderr bytes.Buffer
	code := run(ctx, args, strings.NewReader(stdin), &stdout, &stderr)

	return cliResult{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestPublishCommand(t *testing.T) {
	app := t.TempDir()

	res := runCLI(t, "acme\nwebapp\n", "publish", "--base-path", app, "--config", filepath.Join(app, "missing.hcl"))
	require.Equal(t, 1, res.code, "an explicit config file must exist")
	assert.Contains(t, res.stdout, "❌ loading config")

	res = runCLI(t, "acme\nwebapp\n", "publish", "--base-path", app)
	require.Equal(t, 0, res.code, res.stdout)

	assert.Contains(t, res.stdout, guided.UsernameQuestion)
	assert.Contains(t, res.stdout, guided.AppNameQuestion)
	assert.Contains(t, res.stdout, "✅ Docker Tools configuration published successfully!")
	assert.Contains(t, res.stdout, "   Docker Hub Username: acme")
	assert.Contains(t, res.stdout, "   Application Name: webapp")

	prod := readFile(t, filepath.Join(app, "docker-compose.prod.yml"))
	assert.Contains(t, prod, "image: acme/webapp:latest")

	for _, rel := range []string{".github/workflows/build-images.yml", "docker/Dockerfile", "docker-compose.prod.yml"} {
		assert.False(t, placeholder.Contains([]byte(readFile(t, filepath.Join(app, rel)))), rel)
	}
}

func TestPublishCommandEmptyUsername(t *testing.T) {
	app := t.TempDir()

	res := runCLI(t, "\nwebapp\n", "publish", "--base-path", app)

	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stdout, "❌ Docker Hub username tidak boleh kosong")
	assert.NotContains(t, res.stdout, guided.AppNameQuestion)
	assert.NoFileExists(t, filepath.Join(app, "docker-compose.yml"))
}

func TestVendorPublishCommand(t *testing.T) {
	tests := []struct {
		name      string
		stdin     string
		args      []string
		wantCode  int
		wantOut   []string
		published bool
	}{
		{
			name:     "lists_tags_without_flags",
			args:     []string{"vendor-publish"},
			wantOut:  []string{"doctool • publishable tags", "   • doctool-stubs"},
			wantCode: 0,
		},
		{
			name:     "declined",
			stdin:    "no\n",
			args:     []string{"vendor-publish", "--tag=doctool-stubs"},
			wantOut:  []string{"⚠️  You are about to publish doctool-stubs files that contain placeholders!", vendor.ConfirmQuestion, "✅ Publishing aborted. Use doctool publish for proper setup."},
			wantCode: 0,
		},
		{
			name:     "eof_declines",
			args:     []string{"vendor-publish", "--tag=doctool-stubs"},
			wantOut:  []string{"✅ Publishing aborted. Use doctool publish for proper setup."},
			wantCode: 0,
		},
		{
			name:      "confirmed",
			stdin:     "yes\n",
			args:      []string{"vendor-publish", "--tag=doctool-stubs"},
			wantOut:   []string{"⚠️  Proceeding with raw stub publishing...", "Publishing [doctool-stubs] assets."},
			wantCode:  0,
			published: true,
		},
		{
			name:      "forced",
			args:      []string{"vendor-publish", "--tag=doctool-stubs", "--force"},
			wantOut:   []string{"⚠️  Publishing raw doctool-stubs files with --force option...", "   • {{:docker_username}}"},
			wantCode:  0,
			published: true,
		},
		{
			name:      "all_is_guarded",
			args:      []string{"vendor-publish", "--all", "--force"},
			wantOut:   []string{"⚠️  Publishing raw doctool-stubs files with --force option..."},
			wantCode:  0,
			published: true,
		},
		{
			name:     "unknown_tag",
			args:     []string{"vendor-publish", "--tag=nope"},
			wantOut:  []string{"No publishable resources for tag [nope]."},
			wantCode: 0,
		},
		{
			name:     "tag_and_all_conflict",
			args:     []string{"vendor-publish", "--tag=doctool-stubs", "--all"},
			wantOut:  []string{"❌ "},
			wantCode: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := t.TempDir()

			res := runCLI(t, tt.stdin, append(tt.args, "--base-path", app)...)
			assert.Equal(t, tt.wantCode, res.code, res.stdout)
			for _, want := range tt.wantOut {
				assert.Contains(t, res.stdout, want)
			}

			if tt.published {
				raw := readFile(t, filepath.Join(app, "docker-compose.prod.yml"))
				assert.Contains(t, raw, placeholder.UsernameToken, "raw publish keeps placeholders")
				assert.FileExists(t, filepath.Join(app, ".github", "workflows", "release.yml"))
			} else {
				assert.NoFileExists(t, filepath.Join(app, "docker-compose.prod.yml"))
			}
		})
	}
}

func TestVendorPublishKeepsExistingFiles(t *testing.T) {
	app := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(app, "docker-compose.yml"), []byte("mine"), 0o644))

	res := runCLI(t, "yes\n", "vendor-publish", "--tag=doctool-stubs", "--base-path", app)
	require.Equal(t, 0, res.code, res.stdout)
	assert.Equal(t, "mine", readFile(t, filepath.Join(app, "docker-compose.yml")))

	res = runCLI(t, "", "vendor-publish", "--tag=doctool-stubs", "--force", "--base-path", app)
	require.Equal(t, 0, res.code, res.stdout)
	assert.NotEqual(t, "mine", readFile(t, filepath.Join(app, "docker-compose.yml")))
}

func TestConfigDeclaredGroups(t *testing.T) {
	project := t.TempDir()
	app := filepath.Join(project, "app")
	require.NoError(t, os.MkdirAll(app, 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(project, "team", "docker"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(project, "team", "docker", "Dockerfile"), []byte("FROM team"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(project, "team", "docker", "notes.bak"), []byte("skip"), 0o644))

	configPath := filepath.Join(project, ".doctool.hcl")
	require.NoError(t, os.WriteFile(configPath, []byte(`
base_path = "app"
ignore    = ["**/*.bak"]

publish "team" {
  from = "team/docker"
  to   = "docker"
}
`), 0o644))

	res := runCLI(t, "", "vendor-publish", "--config", configPath)
	require.Equal(t, 0, res.code, res.stdout)
	assert.Contains(t, res.stdout, "   • team")

	res = runCLI(t, "", "vendor-publish", "--tag=team", "--config", configPath)
	require.Equal(t, 0, res.code, res.stdout)
	assert.NotContains(t, res.stdout, vendor.ConfirmQuestion, "other tags are not guarded")

	assert.Equal(t, "FROM team", readFile(t, filepath.Join(app, "docker", "Dockerfile")))
	assert.NoFileExists(t, filepath.Join(app, "docker", "notes.bak"))
}

func TestBasePathMustBeDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	res := runCLI(t, "", "vendor-publish", "--base-path", file)
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stdout, "is not a directory")

	res = runCLI(t, "", "vendor-publish", "--base-path", filepath.Join(file, "missing"))
	assert.Equal(t, 1, res.code)
}

func TestVersionCommand(t *testing.T) {
	res := runCLI(t, "", "version", "--base-path", "/does/not/exist")

	require.Equal(t, 0, res.code, res.stdout)
	assert.Contains(t, res.stdout, "🚀 doctool version info:")
	assert.Contains(t, res.stdout, "Go:        go")
}

func TestDebugLogging(t *testing.T) {
	app := t.TempDir()

	res := runCLI(t, "", "vendor-publish", "--base-path", app, "--debug")
	require.Equal(t, 0, res.code)
	assert.Contains(t, res.stderr, "resolved application root")

	res = runCLI(t, "", "vendor-publish", "--base-path", app)
	require.Equal(t, 0, res.code)
	assert.NotContains(t, res.stderr, "resolved application root")
}
