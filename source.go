package gorosidl

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Source enumerates interface definition files of one kind.
type Source interface {
	// ListFiles returns the paths of all regular files with the given
	// extension directly inside the source (non-recursive). The order is
	// the source's enumeration order.
	ListFiles(ext string) ([]string, error)

	// Open opens a path previously returned by ListFiles.
	Open(path string) (io.ReadCloser, error)
}

// --- Dir Source (single directory) ---

type dirSource struct {
	path string
}

// Dir creates a Source over a single directory (no recursion). Only
// regular files count; subdirectories and symlinked directories are
// skipped. Enumeration order is lexicographic by file name.
func Dir(path string) (Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrInvalid}
	}
	return &dirSource{path: path}, nil
}

// MustDir is like Dir but panics on error.
func MustDir(path string) Source {
	src, err := Dir(path)
	if err != nil {
		panic(err)
	}
	return src
}

func (s *dirSource) ListFiles(ext string) ([]string, error) {
	entries, err := os.ReadDir(s.path)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ext) {
			continue
		}
		path := filepath.Join(s.path, entry.Name())
		if entry.Type()&fs.ModeSymlink != 0 {
			// Follow the link; keep symlinked files, drop symlinked dirs.
			info, err := os.Stat(path)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
		} else if !entry.Type().IsRegular() {
			continue
		}
		files = append(files, path)
	}
	return files, nil
}

func (s *dirSource) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// --- FS Source (for embed.FS, testing) ---

type fsSource struct {
	name string
	fsys fs.FS
}

// FS creates a Source backed by an fs.FS (e.g., embed.FS), reading the
// files directly at its root. The name is used in error messages.
func FS(name string, fsys fs.FS) Source {
	return &fsSource{name: name, fsys: fsys}
}

func (s *fsSource) ListFiles(ext string) ([]string, error) {
	entries, err := fs.ReadDir(s.fsys, ".")
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ext) {
			continue
		}
		if !entry.Type().IsRegular() {
			continue
		}
		files = append(files, entry.Name())
	}
	return files, nil
}

func (s *fsSource) Open(path string) (io.ReadCloser, error) {
	f, err := s.fsys.Open(path)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: s.name + ":" + path, Err: err}
	}
	return f, nil
}

// --- Multi Source (combines multiple sources) ---

type multiSource struct {
	sources []Source
}

// Multi combines multiple sources into one. ListFiles concatenates in
// source order; Open tries each source until one succeeds.
func Multi(sources ...Source) Source {
	return &multiSource{sources: sources}
}

func (s *multiSource) ListFiles(ext string) ([]string, error) {
	var files []string
	for _, src := range s.sources {
		f, err := src.ListFiles(ext)
		if err != nil {
			return nil, err
		}
		files = append(files, f...)
	}
	return files, nil
}

func (s *multiSource) Open(path string) (io.ReadCloser, error) {
	for _, src := range s.sources {
		r, err := src.Open(path)
		if err == nil {
			return r, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return nil, fs.ErrNotExist
}

// stemFromPath returns the entity name for a file path: the base name
// with the extension stripped.
func stemFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
