package templates

import (
	"github.com/stackgen/cli/internal/output"
)

// Resolve picks the template source for a run. An existing directory at dir
// wins; otherwise the embedded bundle is used.
func Resolve(dir string) (Source, Backend) {
	if dir != "" {
		src := NewDirSource(dir)
		if src.Exists() {
			output.Debug("using template directory", "path", dir)
			return src, BackendFilesystem
		}
		output.Debug("template directory not found, using built-in templates", "path", dir)
	}
	return Bundle(), BackendBundle
}
