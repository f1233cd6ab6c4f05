// Package testutil provides test helpers for template and CLI tests.
package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/lithammer/dedent"
)

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// WriteTree writes every file of tree under dir. Keys are slash-separated.
func WriteTree(t *testing.T, dir string, tree map[string]string) {
	t.Helper()
	for name, content := range tree {
		WriteFile(t, dir, name, content)
	}
}

// MapFS converts a tree into an in-memory fs.FS.
func MapFS(tree map[string]string) fstest.MapFS {
	m := make(fstest.MapFS, len(tree))
	for name, content := range tree {
		m[name] = &fstest.MapFile{Data: []byte(content), Mode: 0o644}
	}
	return m
}

// ReadTree returns every regular file in fsys keyed by slash-separated path.
func ReadTree(t *testing.T, fsys billy.Filesystem) map[string]string {
	t.Helper()
	out := map[string]string{}
	err := util.Walk(fsys, ".", func(p string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		data, err := util.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		out[strings.TrimPrefix(filepath.ToSlash(p), "./")] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("failed to read tree: %v", err)
	}
	return out
}

// Text strips the common indentation of a multi-line literal and its leading newline.
func Text(s string) string {
	return strings.TrimPrefix(dedent.Dedent(s), "\n")
}

// MinimalTree returns a small but complete template tree covering every
// region the generator reads. The vue frontend is present; angular is not.
func MinimalTree() map[string]string {
	tree := map[string]string{
		"root_project/Cargo.toml.tmpl":        "workspace {{ .name }}\n",
		"root_project/.gitignore.tmpl":        "/target\n",
		"root_project/.env.example.tmpl":      "DB={{ .database }}\n",
		"root_project/.claude/README.md.tmpl": "claude {{ .name }}\n",
		"root_project/.gemini/README.md.tmpl": "gemini {{ .name }}\n",
		"root_project/.gpt/README.md.tmpl":    "gpt {{ .name }}\n",
		"common/README.md.tmpl":               "# {{ .name }}\n",
		"common/STRUCTURE.md.tmpl":            "router {{ .router_strategy }}\n",
		"core/Cargo.toml.tmpl":                "core of {{ .name }}\n",
		"core/src/lib.rs":                     "pub mod models;\n",
		"application/Cargo.toml.tmpl":         "application of {{ .name }}\n",
		"application/src/lib.rs":              "pub mod services;\n",
		"infrastructure/Cargo.toml.tmpl":      "infrastructure of {{ .name }}\n",
		"infrastructure/src/lib.rs.tmpl": Text(`
			{{- range .infrastructure }}
			pub mod {{ . }};
			{{- end }}
		`),
		"api/Cargo.toml.tmpl":            "GENERIC api manifest\n",
		"api/src/state.rs.tmpl":          "auth={{ .auth_type }}\n",
		"api/scripts/dev.sh":             "#!/bin/sh\necho {{ not rendered }}\n",
		"frontend/vue/package.json.tmpl": `{"name": "{{ .name }}-client"}` + "\n",
		"frontend/vue/src/App.vue":       "<li>{{ u.name }}</li>\n",
		"devops/docker-compose.yml.tmpl": "services: {}\n",
		"migrations/init.sql.tmpl":       "-- {{ .database }} via {{ .orm }}\n",
	}
	for _, dir := range []string{"standard", "axum_controller", "axum_folder_router"} {
		base := "api/router_strategies/" + dir
		tree[base+"/Cargo.toml.tmpl"] = "variant " + dir + " for {{ .name }}\n"
		tree[base+"/src/main.rs.tmpl"] = "// " + dir + " {{ .router_strategy }}\n"
		tree[base+"/src/"+dir+"_only.rs"] = dir + "\n"
	}
	return tree
}
