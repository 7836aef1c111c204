package util

import (
	"io/fs"
	"path"
	"strings"
	"testing/fstest"
	"time"
)

// TestFS is an in-memory WalkableFS for tests. Names use forward slashes and
// are relative to the root of the map.
type TestFS struct {
	MapFS fstest.MapFS
}

func NewTestFS() *TestFS {
	return &TestFS{
		MapFS: make(fstest.MapFS),
	}
}

// Add stores a file with mode 0644, creating its parent directories.
func (t *TestFS) Add(name, content string) *TestFS {
	_ = t.WriteFile(name, []byte(content), 0644)
	return t
}

func (t *TestFS) Open(name string) (fs.File, error) {
	return t.MapFS.Open(name)
}

func (t *TestFS) Stat(name string) (fs.FileInfo, error) {
	return fs.Stat(t.MapFS, name)
}

func (t *TestFS) ReadFile(name string) ([]byte, error) {
	return fs.ReadFile(t.MapFS, name)
}

func (t *TestFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if dir := path.Dir(name); dir != "." && dir != "" {
		t.ensureDir(dir)
	}

	t.MapFS[name] = &fstest.MapFile{
		Data:    data,
		Mode:    perm,
		ModTime: time.Now(),
	}
	return nil
}

func (t *TestFS) MkdirAll(p string, _ fs.FileMode) error {
	t.ensureDir(p)
	return nil
}

func (t *TestFS) ensureDir(p string) {
	current := ""
	for _, part := range strings.Split(p, "/") {
		if part == "" || part == "." {
			continue
		}
		current = path.Join(current, part)
		if _, exists := t.MapFS[current]; !exists {
			t.MapFS[current] = &fstest.MapFile{
				Mode:    fs.ModeDir | 0755,
				ModTime: time.Now(),
			}
		}
	}
}

// WalkDir walks the map in lexical order. Directories that only exist as the
// parent of some file are visited too.
func (t *TestFS) WalkDir(root string, fn fs.WalkDirFunc) error {
	if root == "" {
		root = "."
	}
	return fs.WalkDir(t.MapFS, root, fn)
}
