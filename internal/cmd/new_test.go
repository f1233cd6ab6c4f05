package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackgen/cli/internal/testutil"
)

func TestNewCreateCmd(t *testing.T) {
	cmd := NewCreateCmd()

	assert.Equal(t, "new [name]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	for _, name := range []string{"file", "output", "interactive", "force", "set"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}

func TestNew_FromBundle(t *testing.T) {
	isolate(t)
	dir := filepath.Join(t.TempDir(), "shop")

	out, err := execute(t, "new", "shop", "--output", dir, "--set", "infrastructure=redis")
	require.NoError(t, err)

	for _, p := range []string{
		"Cargo.toml",
		".gitignore",
		"README.md",
		"core/Cargo.toml",
		"application/Cargo.toml",
		"infrastructure/src/cache.rs",
		"api/Cargo.toml",
		"api/src/main.rs",
		"api/src/routes.rs",
		"api/client/package.json",
		"docker-compose.yml",
	} {
		assert.FileExists(t, filepath.Join(dir, p))
	}
	assert.NoDirExists(t, filepath.Join(dir, "api", "router_strategies"))

	entries, err := os.ReadDir(filepath.Join(dir, "migrations"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "sqlx writes one migration file")

	assert.Contains(t, out, "Created")
	assert.Contains(t, out, "shop/")
	assert.Contains(t, out, "Standard router")
	assert.Contains(t, out, "bundle templates")
}

func TestNew_DefaultOutputUnderSetting(t *testing.T) {
	isolate(t)
	parent := t.TempDir()
	t.Setenv("STACKGEN_OUTPUT", parent)

	_, err := execute(t, "new", "demo")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(parent, "demo", "Cargo.toml"))
}

func TestNew_ProjectFile(t *testing.T) {
	isolate(t)
	tmp := t.TempDir()
	file := testutil.WriteFile(t, tmp, "stackgen.yaml", testutil.Text(`
		name: catalog
		database: mongodb
		router_strategy: axum_controller
		frontend: none
		devops:
		  docker_compose: false
	`))
	dir := filepath.Join(tmp, "out")

	out, err := execute(t, "new", "--file", file, "--output", dir)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "api", "src", "controllers", "mod.rs"))
	assert.NoFileExists(t, filepath.Join(dir, "api", "src", "routes.rs"))
	assert.NoDirExists(t, filepath.Join(dir, "migrations"), "mongodb has no migrations")
	assert.NoFileExists(t, filepath.Join(dir, "docker-compose.yml"))
	assert.Contains(t, out, "catalog/")
	assert.Contains(t, out, "AxumController router")
}

func TestNew_CustomTemplates(t *testing.T) {
	isolate(t)
	templatesDir := t.TempDir()
	testutil.WriteTree(t, templatesDir, testutil.MinimalTree())
	dir := filepath.Join(t.TempDir(), "shop")

	out, err := execute(t, "new", "shop", "--templates", templatesDir, "--output", dir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "api", "Cargo.toml"))
	require.NoError(t, err)
	assert.Equal(t, "variant standard for shop\n", string(data))

	data, err = os.ReadFile(filepath.Join(dir, "api", "scripts", "dev.sh"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "{{ not rendered }}")

	assert.Contains(t, out, "filesystem templates")
}

func TestNew_NonEmptyOutput(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "keep.txt", "keep\n")

	_, err := execute(t, "new", "shop", "--output", dir)
	require.Error(t, err)
	assert.Equal(t, ExitValidationError, ExitCodeFromError(err))
	assert.Contains(t, err.Error(), "--force")

	_, err = execute(t, "new", "shop", "--output", dir, "--force")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "keep.txt"))
	assert.FileExists(t, filepath.Join(dir, "Cargo.toml"))
}

func TestNew_Errors(t *testing.T) {
	isolate(t)
	tmp := t.TempDir()

	incomplete := filepath.Join(tmp, "incomplete")
	testutil.WriteTree(t, incomplete, map[string]string{
		"root_project/Cargo.toml.tmpl": "workspace\n",
	})

	broken := filepath.Join(tmp, "broken")
	tree := testutil.MinimalTree()
	tree["core/Cargo.toml.tmpl"] = "{{ .no_such_key }}\n"
	testutil.WriteTree(t, broken, tree)

	tests := []struct {
		name string
		args []string
		code int
	}{
		{"bad override", []string{"--set", "database"}, ExitValidationError},
		{"unknown enum", []string{"--set", "database=oracle"}, ExitValidationError},
		{"invalid name", []string{"1shop"}, ExitValidationError},
		{"missing project file", []string{"--file", filepath.Join(tmp, "none.yaml")}, ExitNotFound},
		{"incomplete templates", []string{"--templates", incomplete}, ExitTemplateError},
		{"broken template", []string{"--templates", broken}, ExitTemplateError},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(tmp, "out", string(rune('a'+i)))
			args := append([]string{"new", "--output", out}, tt.args...)
			_, err := execute(t, args...)
			require.Error(t, err)

			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr), "got %T: %v", err, err)
			assert.Equal(t, tt.code, exitErr.Code, err.Error())
		})
	}
}

func TestNew_GenerationErrorNamesRun(t *testing.T) {
	isolate(t)
	tmp := t.TempDir()

	broken := filepath.Join(tmp, "broken")
	tree := testutil.MinimalTree()
	tree["core/Cargo.toml.tmpl"] = "{{ .no_such_key }}\n"
	testutil.WriteTree(t, broken, tree)

	_, err := execute(t, "new", "demo", "--output", filepath.Join(tmp, "out"),
		"--templates", broken, "--set", "router_strategy=axum_controller")
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "Backend: filesystem")
	assert.Contains(t, msg, "Router: AxumController")
	assert.Contains(t, msg, "Templates: "+broken)
	assert.Less(t, strings.Index(msg, "Backend:"), strings.Index(msg, "Router:"))
}
