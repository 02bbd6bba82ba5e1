package sequence

import "os"

// StatFunc resolves size and modification time for a path. [Resolve] is the
// filesystem implementation; tests substitute their own.
type StatFunc func(path string) (size int64, modTime float64)

// Resolve returns the size and modification time of path after following
// any symlinks. A path that does not resolve (dangling link, or a file
// removed since the directory was read) yields (0, BrokenLink), which is
// distinct from an existing empty file (0, <valid time>).
func Resolve(path string) (size int64, modTime float64) {
	fi, err := os.Stat(path)
	if err != nil {
		return 0, BrokenLink
	}
	return fi.Size(), float64(fi.ModTime().UnixNano()) / 1e9
}
