package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackgen/cli/internal/testutil"
)

func TestTemplateList_Bundle(t *testing.T) {
	isolate(t)

	out, err := execute(t, "template", "list")
	require.NoError(t, err)

	assert.Contains(t, out, "bundle")
	assert.Contains(t, out, "REGION")
	assert.Contains(t, out, "root_project")
	assert.Contains(t, out, "api/router_strategies/axum_folder_router")
	assert.Contains(t, out, "present")
	assert.Contains(t, out, "optional", "angular has no bundled client")
}

func TestTemplateList_IncompleteDirectory(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	testutil.WriteTree(t, dir, map[string]string{
		"root_project/Cargo.toml.tmpl": "workspace\n",
		"core/Cargo.toml.tmpl":         "core\n",
	})

	out, err := execute(t, "template", "list", "--templates", dir)
	require.Error(t, err)
	assert.Equal(t, ExitTemplateError, ExitCodeFromError(err))
	assert.Contains(t, err.Error(), "application")
	assert.Contains(t, out, "missing")
}

func TestTemplateShow(t *testing.T) {
	isolate(t)

	out, err := execute(t, "template", "show", "core")
	require.NoError(t, err)
	assert.Contains(t, out, "Domain entities")
	assert.Contains(t, out, "Cargo.toml.tmpl")
	assert.Contains(t, out, "src/")

	out, err = execute(t, "template", "show", "api/router_strategies/axum_controller/")
	require.NoError(t, err)
	assert.Contains(t, out, "controllers/")
}

func TestTemplateShow_Errors(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
		code int
	}{
		{"unknown region", []string{"template", "show", "backend"}, ExitNotFound},
		{"absent optional region", []string{"template", "show", "frontend/angular"}, ExitNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.code, ExitCodeFromError(err))
		})
	}

	_, err := execute(t, "template", "show")
	assert.Error(t, err, "region argument is required")
}
