package templates

// Source is a read-only template tree rooted at a directory. Paths passed to
// and returned from a Source are slash-separated and relative to its root.
type Source interface {
	// Descend returns the source rooted at the subdirectory rel. The boolean
	// is false when the backend can tell the subdirectory does not exist.
	Descend(rel string) (Source, bool)

	// Exists reports whether the root exists and is a directory.
	Exists() bool

	// HasFile reports whether rel names a regular file.
	HasFile(rel string) bool

	// ReadFile returns the bytes of rel. A missing file wraps errors.ErrNotFound.
	ReadFile(rel string) ([]byte, error)

	// Entries enumerates every descendant depth-first in lexical order.
	// The enumeration is recomputed on every call.
	Entries() ([]Entry, error)

	// String describes the source location for messages.
	String() string
}

// Entry is one descendant of a Source.
type Entry struct {
	Path  string
	IsDir bool
}

// Backend names the kind of template source in use.
type Backend string

const (
	// BackendFilesystem reads templates from a directory on disk.
	BackendFilesystem Backend = "filesystem"

	// BackendBundle reads templates compiled into the binary.
	BackendBundle Backend = "bundle"
)
