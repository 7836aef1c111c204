package util

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

type WritableFS interface {
	fs.FS
	fs.StatFS
	fs.ReadFileFS

	WriteFile(name string, data []byte, perm fs.FileMode) error

	MkdirAll(path string, perm fs.FileMode) error
}

type WalkableFS interface {
	WritableFS

	WalkDir(root string, fn fs.WalkDirFunc) error
}

// OSFS is the host filesystem. Names are ordinary OS paths, relative to the
// working directory unless absolute.
type OSFS struct{}

func (OSFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

func (OSFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (OSFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (OSFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}

func (OSFS) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (OSFS) WalkDir(root string, fn fs.WalkDirFunc) error {
	return filepath.WalkDir(root, fn)
}

func DefaultFS() WalkableFS {
	return OSFS{}
}

// IsWorkflowFile reports whether name has a YAML extension.
func IsWorkflowFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yml" || ext == ".yaml"
}

// FindWorkflows expands paths into workflow files. Directories are walked
// recursively and contribute every YAML file beneath them; files are
// returned as given, whatever their extension. Duplicates are dropped.
func FindWorkflows(fsys WalkableFS, paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			files = append(files, p)
		}
	}

	for _, p := range paths {
		info, err := fsys.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("finding workflows: %w", err)
		}

		if !info.IsDir() {
			add(p)
			continue
		}

		err = fsys.WalkDir(p, func(name string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && IsWorkflowFile(name) {
				add(name)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", p, err)
		}
	}

	return files, nil
}
