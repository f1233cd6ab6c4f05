package templates

import (
	"context"
	"io/fs"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	oerrors "github.com/stackgen/cli/internal/errors"
	"github.com/stackgen/cli/internal/project"
)

// RenderOption configures a single Render call.
type RenderOption func(*renderConfig)

type renderConfig struct {
	exclude string
}

// Excluding skips the subtree at prefix, matched by whole path components.
func Excluding(prefix string) RenderOption {
	return func(c *renderConfig) {
		c.exclude = strings.Trim(path.Clean("/"+prefix), "/")
	}
}

func (c *renderConfig) excluded(rel string) bool {
	if c.exclude == "" {
		return false
	}
	return rel == c.exclude || strings.HasPrefix(rel, c.exclude+"/")
}

// TreeRenderer mirrors a Source subtree into a destination filesystem.
type TreeRenderer struct {
	engine *Engine
}

// NewTreeRenderer creates a renderer using engine. A nil engine uses NewEngine.
func NewTreeRenderer(engine *Engine) *TreeRenderer {
	if engine == nil {
		engine = NewEngine()
	}
	return &TreeRenderer{engine: engine}
}

// Render walks src depth-first and writes every entry under dstDir in dst.
// Files ending in Marker are rendered with data and written without the
// marker; all other files are copied byte for byte. It returns the written
// paths relative to the root of dst.
func (r *TreeRenderer) Render(
	ctx context.Context,
	src Source,
	dst billy.Filesystem,
	dstDir string,
	data project.RenderContext,
	opts ...RenderOption,
) ([]string, error) {
	cfg := &renderConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if !src.Exists() {
		return nil, oerrors.WrapPath(oerrors.ErrMissingSubtree, src.String(), nil)
	}
	entries, err := src.Entries()
	if err != nil {
		return nil, err
	}

	if err := mkdir(dst, dstDir); err != nil {
		return nil, err
	}

	values := data.Data()
	var written []string
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		if cfg.excluded(e.Path) {
			continue
		}

		target := path.Join(dstDir, e.Path)
		if e.IsDir {
			if err := mkdir(dst, target); err != nil {
				return written, err
			}
			continue
		}

		out, err := r.produce(src, e.Path, values)
		if err != nil {
			return written, err
		}
		target = strings.TrimSuffix(target, Marker)
		if err := writeFile(dst, target, out); err != nil {
			return written, err
		}
		written = append(written, target)
	}
	return written, nil
}

// RenderFile renders or copies the single file rel of src to dstPath.
// A missing file is reported as a missing required subtree.
func (r *TreeRenderer) RenderFile(
	src Source,
	rel string,
	dst billy.Filesystem,
	dstPath string,
	data project.RenderContext,
) error {
	if !src.HasFile(rel) {
		return oerrors.WrapPath(oerrors.ErrMissingSubtree, path.Join(src.String(), rel), nil)
	}
	out, err := r.produce(src, rel, data.Data())
	if err != nil {
		return err
	}
	return writeFile(dst, dstPath, out)
}

func (r *TreeRenderer) produce(src Source, rel string, values map[string]any) ([]byte, error) {
	content, err := src.ReadFile(rel)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(rel, Marker) {
		return content, nil
	}
	if !utf8.Valid(content) {
		return nil, oerrors.WrapPath(oerrors.ErrEncoding, rel, nil)
	}
	return r.engine.Render(rel, content, values)
}

func mkdir(dst billy.Filesystem, dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if err := dst.MkdirAll(dir, 0o755); err != nil {
		return oerrors.WrapPath(oerrors.ErrFilesystem, dir, err)
	}
	return nil
}

func writeFile(dst billy.Filesystem, name string, content []byte) error {
	if err := mkdir(dst, path.Dir(name)); err != nil {
		return err
	}

	perm := fs.FileMode(0o644)
	if path.Ext(name) == ".sh" {
		perm = 0o755
	}
	if err := util.WriteFile(dst, name, content, perm); err != nil {
		return oerrors.WrapPath(oerrors.ErrFilesystem, name, err)
	}
	return nil
}
