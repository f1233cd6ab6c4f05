package templates

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackgen/cli/internal/testutil"
)

func symlink(t *testing.T, target, link string) {
	t.Helper()
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
}

func TestDirSource_FollowsSymlinks(t *testing.T) {
	tmp := t.TempDir()
	shared := filepath.Join(tmp, "shared")
	testutil.WriteTree(t, shared, map[string]string{
		"models/user.rs.tmpl": "// {{ .name }} user\n",
	})
	root := filepath.Join(tmp, "templates")
	testutil.WriteTree(t, root, map[string]string{
		"core/lib.rs": "pub mod models;\n",
	})
	symlink(t, filepath.Join(shared, "models"), filepath.Join(root, "core", "models"))
	symlink(t, filepath.Join(root, "core", "lib.rs"), filepath.Join(root, "core", "alias.rs"))

	src, ok := NewDirSource(root).Descend("core")
	require.True(t, ok)

	entries, err := src.Entries()
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Path: "alias.rs"},
		{Path: "lib.rs"},
		{Path: "models", IsDir: true},
		{Path: "models/user.rs.tmpl"},
	}, entries)

	dst := memfs.New()
	written, err := NewTreeRenderer(nil).Render(context.Background(), src, dst, "core", testContext(t))
	require.NoError(t, err)
	assert.Contains(t, written, "core/models/user.rs")

	data, err := util.ReadFile(dst, "core/models/user.rs")
	require.NoError(t, err)
	assert.Equal(t, "// demo user\n", string(data))

	data, err = util.ReadFile(dst, "core/alias.rs")
	require.NoError(t, err)
	assert.Equal(t, "pub mod models;\n", string(data))
}

func TestDirSource_LinkCycle(t *testing.T) {
	root := t.TempDir()
	testutil.WriteTree(t, root, map[string]string{"sub/a.txt": "a\n"})
	symlink(t, root, filepath.Join(root, "sub", "loop"))

	_, err := NewDirSource(root).Entries()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "link cycle")
}

func TestDirSource_BrokenLink(t *testing.T) {
	root := t.TempDir()
	testutil.WriteTree(t, root, map[string]string{"a.txt": "a\n"})
	symlink(t, filepath.Join(root, "gone"), filepath.Join(root, "dangling"))

	_, err := NewDirSource(root).Entries()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dangling")
}
