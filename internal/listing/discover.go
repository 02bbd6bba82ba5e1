package listing

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// dirEntry is one visible name inside a directory.
type dirEntry struct {
	name  string
	isDir bool
}

// readDir returns the visible entries of dir sorted by name. Symbolic links
// to directories count as directories.
func (w *Walker) readDir(dir string) ([]dirEntry, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	out := make([]dirEntry, 0, len(des))
	for _, d := range des {
		name := d.Name()
		if !w.visible(name) {
			continue
		}
		isDir := d.IsDir()
		if d.Type()&fs.ModeSymlink != 0 {
			if fi, err := os.Stat(filepath.Join(dir, name)); err == nil && fi.IsDir() {
				isDir = true
			}
		}
		out = append(out, dirEntry{name: name, isDir: isDir})
	}
	return out, nil
}

// visible applies the dotfile rule and the --ignore patterns.
func (w *Walker) visible(name string) bool {
	if !w.cfg.All && strings.HasPrefix(name, ".") {
		return false
	}
	for _, g := range w.ignore {
		if g.Match(name) {
			return false
		}
	}
	return true
}

// realPath resolves dir to an absolute, symlink-free path for cycle checks.
func realPath(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return dir
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}

// joinDisplay joins a directory and a child name the way ls -R shows them.
func joinDisplay(dir, name string) string {
	if strings.HasSuffix(dir, "/") {
		return dir + name
	}
	return dir + "/" + name
}

// reason strips the operation and path from filesystem errors so messages
// read "cannot access x: no such file or directory".
func reason(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}
