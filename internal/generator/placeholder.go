package generator

import (
	"fmt"
	"path"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	oerrors "github.com/stackgen/cli/internal/errors"
	"github.com/stackgen/cli/internal/project"
)

// PlaceholderText is the README body written for a frontend with no template.
func PlaceholderText(fe project.Frontend) string {
	return fmt.Sprintf("Placeholder for %s project", fe.Tag())
}

func writePlaceholder(dst billy.Filesystem, name string, fe project.Frontend) error {
	return writeRaw(dst, name, []byte(PlaceholderText(fe)))
}

func writeRaw(dst billy.Filesystem, name string, content []byte) error {
	if err := dst.MkdirAll(path.Dir(name), 0o755); err != nil {
		return oerrors.WrapPath(oerrors.ErrFilesystem, path.Dir(name), err)
	}
	if err := util.WriteFile(dst, name, content, 0o644); err != nil {
		return oerrors.WrapPath(oerrors.ErrFilesystem, name, err)
	}
	return nil
}
