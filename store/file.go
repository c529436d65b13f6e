package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultFile is the record path used when none is configured.
const DefaultFile = "game_save.json"

// FileBackend keeps the record in a JSON file.
type FileBackend struct {
	Path string
}

func NewFileBackend(path string) *FileBackend {
	if path == "" {
		path = DefaultFile
	}
	return &FileBackend{Path: path}
}

func (f *FileBackend) Read() ([]byte, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w at %s", ErrRecordNotFound, f.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", f.Path, err)
	}
	return data, nil
}

// FileMode is the permission of a written record. os.CreateTemp opens with
// 0600, so it is set explicitly before the rename.
const FileMode fs.FileMode = 0o644

// Write replaces the file through a temporary file in the same directory, so
// a reader never sees half a record.
func (f *FileBackend) Write(data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(f.Path), filepath.Base(f.Path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(FileMode); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), f.Path)
}
