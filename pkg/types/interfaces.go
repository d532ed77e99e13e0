package types

import (
	"io/fs"
)

// FS is the filesystem interface required for renum operations.
// Production code uses the OS implementation in pkg/filesystem; tests
// substitute an in-memory filesystem.
type FS interface {
	// Stat returns file info for the named file
	Stat(name string) (fs.FileInfo, error)

	// Rename moves a file from oldpath to newpath
	Rename(oldpath, newpath string) error
}
