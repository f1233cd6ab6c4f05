package output

import (
	"fmt"
	"io"
	"path"
	"slices"
	"strings"

	"github.com/ddddddO/gtree"
)

// RenderFileTree writes the tree of generated files under a root label.
// Paths are slash-separated and relative to the root. Shared directories are merged.
func RenderFileTree(w io.Writer, rootName string, paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	sorted := slices.Clone(paths)
	slices.Sort(sorted)

	root := gtree.NewRoot(strings.TrimSuffix(rootName, "/") + "/")
	for _, p := range sorted {
		parts := strings.Split(path.Clean(p), "/")
		node := root
		for i, part := range parts {
			if i < len(parts)-1 {
				part += "/"
			}
			node = node.Add(part)
		}
	}

	if err := gtree.OutputFromRoot(w, root); err != nil {
		return fmt.Errorf("rendering file tree: %w", err)
	}
	return nil
}
