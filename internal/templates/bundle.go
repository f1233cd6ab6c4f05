package templates

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	oerrors "github.com/stackgen/cli/internal/errors"
)

//go:embed all:bundle
var bundleFS embed.FS

// BundleSource is a Source backed by an immutable fs.FS, normally the
// template bundle compiled into the binary.
type BundleSource struct {
	fsys fs.FS
	root string
}

// Bundle returns the embedded default template tree.
func Bundle() *BundleSource {
	sub, err := fs.Sub(bundleFS, "bundle")
	if err != nil {
		panic(fmt.Sprintf("embedded template bundle: %v", err))
	}
	return NewBundleSource(sub)
}

// NewBundleSource returns a source rooted at the top of fsys.
func NewBundleSource(fsys fs.FS) *BundleSource {
	return &BundleSource{fsys: fsys, root: "."}
}

// Descend returns false when rel is not a directory in the bundle.
func (s *BundleSource) Descend(rel string) (Source, bool) {
	p := s.path(rel)
	info, err := fs.Stat(s.fsys, p)
	if err != nil || !info.IsDir() {
		return nil, false
	}
	return &BundleSource{fsys: s.fsys, root: p}, true
}

func (s *BundleSource) Exists() bool {
	info, err := fs.Stat(s.fsys, s.root)
	return err == nil && info.IsDir()
}

func (s *BundleSource) HasFile(rel string) bool {
	info, err := fs.Stat(s.fsys, s.path(rel))
	return err == nil && !info.IsDir()
}

func (s *BundleSource) ReadFile(rel string) ([]byte, error) {
	data, err := fs.ReadFile(s.fsys, s.path(rel))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, oerrors.WrapPath(oerrors.ErrNotFound, s.display(rel), nil)
		}
		return nil, fmt.Errorf("reading %s: %w", s.display(rel), err)
	}
	return data, nil
}

func (s *BundleSource) Entries() ([]Entry, error) {
	if !s.Exists() {
		return nil, oerrors.WrapPath(oerrors.ErrNotFound, s.String(), nil)
	}

	var entries []Entry
	err := fs.WalkDir(s.fsys, s.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == s.root {
			return nil
		}
		rel := p
		if s.root != "." {
			rel = strings.TrimPrefix(p, s.root+"/")
		}
		entries = append(entries, Entry{Path: rel, IsDir: d.IsDir()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", s.String(), err)
	}
	return entries, nil
}

func (s *BundleSource) String() string {
	return "bundle:" + s.root
}

func (s *BundleSource) path(rel string) string {
	return path.Join(s.root, rel)
}

func (s *BundleSource) display(rel string) string {
	return "bundle:" + s.path(rel)
}
