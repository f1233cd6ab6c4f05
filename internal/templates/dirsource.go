package templates

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	oerrors "github.com/stackgen/cli/internal/errors"
)

// DirSource is a Source backed by a directory on disk.
type DirSource struct {
	fs billy.Filesystem

	// escaped holds the requested path when Descend was asked to leave the root.
	escaped string
}

// NewDirSource returns a source rooted at dir. The directory need not exist.
func NewDirSource(dir string) *DirSource {
	return &DirSource{fs: osfs.New(dir)}
}

// NewFilesystemSource wraps any billy filesystem, such as memfs in tests.
func NewFilesystemSource(fs billy.Filesystem) *DirSource {
	return &DirSource{fs: fs}
}

// Descend always succeeds; existence is checked lazily through Exists.
func (s *DirSource) Descend(rel string) (Source, bool) {
	sub, err := s.fs.Chroot(filepath.FromSlash(rel))
	if err != nil {
		return &DirSource{fs: s.fs, escaped: s.join(rel)}, true
	}
	return &DirSource{fs: sub}, true
}

func (s *DirSource) Exists() bool {
	if s.escaped != "" {
		return false
	}
	info, err := s.fs.Stat(".")
	return err == nil && info.IsDir()
}

func (s *DirSource) HasFile(rel string) bool {
	if s.escaped != "" {
		return false
	}
	info, err := s.fs.Stat(filepath.FromSlash(rel))
	return err == nil && !info.IsDir()
}

func (s *DirSource) ReadFile(rel string) ([]byte, error) {
	if s.escaped != "" {
		return nil, oerrors.WrapPath(oerrors.ErrNotFound, s.escaped, nil)
	}
	data, err := util.ReadFile(s.fs, filepath.FromSlash(rel))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, oerrors.WrapPath(oerrors.ErrNotFound, s.join(rel), nil)
		}
		return nil, fmt.Errorf("reading %s: %w", s.join(rel), err)
	}
	return data, nil
}

// Entries follows symbolic links, so a linked directory is listed and walked
// like a real one. A link back to one of its own ancestors is an error.
func (s *DirSource) Entries() ([]Entry, error) {
	if !s.Exists() {
		return nil, oerrors.WrapPath(oerrors.ErrNotFound, s.String(), nil)
	}

	root, err := s.fs.Stat(".")
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", s.String(), err)
	}
	var entries []Entry
	if err := s.walk("", []os.FileInfo{root}, &entries); err != nil {
		return nil, fmt.Errorf("walking %s: %w", s.String(), err)
	}
	return entries, nil
}

func (s *DirSource) walk(dir string, ancestors []os.FileInfo, entries *[]Entry) error {
	infos, err := s.fs.ReadDir(filepath.FromSlash(dirOrDot(dir)))
	if err != nil {
		return err
	}
	slices.SortFunc(infos, func(a, b os.FileInfo) int { return strings.Compare(a.Name(), b.Name()) })

	for _, info := range infos {
		rel := path.Join(dir, info.Name())
		if info.Mode()&os.ModeSymlink != 0 {
			if info, err = s.fs.Stat(filepath.FromSlash(rel)); err != nil {
				return fmt.Errorf("resolving link %s: %w", rel, err)
			}
		}
		*entries = append(*entries, Entry{Path: rel, IsDir: info.IsDir()})
		if !info.IsDir() {
			continue
		}
		if slices.ContainsFunc(ancestors, func(a os.FileInfo) bool { return os.SameFile(a, info) }) {
			return fmt.Errorf("link cycle at %s", rel)
		}
		if err := s.walk(rel, append(ancestors, info), entries); err != nil {
			return err
		}
	}
	return nil
}

func dirOrDot(dir string) string {
	if dir == "" {
		return "."
	}
	return dir
}

func (s *DirSource) String() string {
	if s.escaped != "" {
		return s.escaped
	}
	return s.fs.Root()
}

func (s *DirSource) join(rel string) string {
	return filepath.Join(s.fs.Root(), filepath.FromSlash(rel))
}
