package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/stackgen/cli/internal/errors"
	"github.com/stackgen/cli/internal/testutil"
)

var sampleTree = map[string]string{
	"a.txt.tmpl":        "hello {{ .name }}\n",
	"sub/b.bin":         "\x00\x01\xff",
	"sub/deep/c.txt":    "c\n",
	".hidden/d.md.tmpl": "d\n",
}

// backends returns the same tree served from disk and from memory.
func backends(t *testing.T) map[string]Source {
	t.Helper()
	dir := t.TempDir()
	testutil.WriteTree(t, dir, sampleTree)
	return map[string]Source{
		"filesystem": NewDirSource(dir),
		"bundle":     NewBundleSource(testutil.MapFS(sampleTree)),
	}
}

func TestSource_Parity(t *testing.T) {
	srcs := backends(t)
	fsEntries, err := srcs["filesystem"].Entries()
	require.NoError(t, err)
	bundleEntries, err := srcs["bundle"].Entries()
	require.NoError(t, err)

	assert.ElementsMatch(t, fsEntries, bundleEntries)
	assert.Contains(t, fsEntries, Entry{Path: "sub/deep", IsDir: true})
	assert.Contains(t, fsEntries, Entry{Path: ".hidden/d.md.tmpl"})
}

func TestSource_Operations(t *testing.T) {
	for name, src := range backends(t) {
		t.Run(name, func(t *testing.T) {
			assert.True(t, src.Exists())
			assert.True(t, src.HasFile("sub/b.bin"))
			assert.False(t, src.HasFile("sub"), "directories are not files")
			assert.False(t, src.HasFile("nope.txt"))

			data, err := src.ReadFile("sub/b.bin")
			require.NoError(t, err)
			assert.Equal(t, []byte("\x00\x01\xff"), data)

			_, err = src.ReadFile("nope.txt")
			assert.ErrorIs(t, err, oerrors.ErrNotFound)

			sub, ok := src.Descend("sub")
			require.True(t, ok)
			assert.True(t, sub.Exists())
			assert.True(t, sub.HasFile("deep/c.txt"))

			entries, err := sub.Entries()
			require.NoError(t, err)
			assert.ElementsMatch(t, []Entry{
				{Path: "b.bin"},
				{Path: "deep", IsDir: true},
				{Path: "deep/c.txt"},
			}, entries)
		})
	}
}

func TestSource_DescendMissing(t *testing.T) {
	srcs := backends(t)

	// The filesystem backend always hands back a source and defers the check.
	fsSub, ok := srcs["filesystem"].Descend("missing")
	require.True(t, ok)
	assert.False(t, fsSub.Exists())
	_, err := fsSub.Entries()
	assert.ErrorIs(t, err, oerrors.ErrNotFound)

	// The bundle backend reports absence immediately.
	bundleSub, ok := srcs["bundle"].Descend("missing")
	assert.False(t, ok)
	assert.Nil(t, bundleSub)

	// A file is not a directory to descend into.
	_, ok = srcs["bundle"].Descend("a.txt.tmpl")
	assert.False(t, ok)
}

func TestSource_EntriesRecomputed(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteTree(t, dir, map[string]string{"one.txt": "1"})
	src := NewDirSource(dir)

	first, err := src.Entries()
	require.NoError(t, err)
	assert.Len(t, first, 1)

	testutil.WriteFile(t, dir, "two.txt", "2")
	second, err := src.Entries()
	require.NoError(t, err)
	assert.Len(t, second, 2)
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()

	src, backend := Resolve(dir)
	assert.Equal(t, BackendFilesystem, backend)
	assert.Equal(t, dir, src.String())

	_, backend = Resolve(dir + "/does-not-exist")
	assert.Equal(t, BackendBundle, backend)

	_, backend = Resolve("")
	assert.Equal(t, BackendBundle, backend)
}

func TestBundle_HasEveryRequiredRegion(t *testing.T) {
	src := Bundle()
	require.True(t, src.Exists())

	for _, r := range Regions() {
		if !r.Required {
			continue
		}
		sub, ok := src.Descend(r.Path)
		require.True(t, ok, r.Path)
		assert.True(t, sub.Exists(), r.Path)
	}

	assert.True(t, src.HasFile("root_project/.gitignore.tmpl"), "dotfiles are embedded")
	assert.True(t, src.HasFile("root_project/.claude/README.md.tmpl"), "dot directories are embedded")
	assert.True(t, src.HasFile("devops/docker-compose.yml.tmpl"))
	assert.True(t, src.HasFile("migrations/init.sql.tmpl"))
}
