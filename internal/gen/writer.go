package gen

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Path returns the full path of the file.
func (f *GeneratedFile) Path() string {
	return filepath.Join(f.Dir, f.Filename)
}

// WriteFiles writes all generated files into their directories, creating the
// directories if they don't exist.
func WriteFiles(files []GeneratedFile) error {
	for _, file := range files {
		err := os.MkdirAll(file.Dir, dirPerm)
		if err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}

		err = os.WriteFile(file.Path(), file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}

// FileStatus is the result of comparing a generated file with the disk.
type FileStatus int

const (
	StatusUpToDate FileStatus = iota
	StatusStale
	StatusMissing
)

// String returns a human-readable status name.
func (s FileStatus) String() string {
	switch s {
	case StatusUpToDate:
		return "up to date"
	case StatusStale:
		return "stale"
	case StatusMissing:
		return "missing"
	default:
		return fmt.Sprintf("FileStatus(%d)", int(s))
	}
}

// Compare reports whether the file on disk matches the generated content.
func Compare(file GeneratedFile) (FileStatus, error) {
	onDisk, err := os.ReadFile(file.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return StatusMissing, nil
	}

	if err != nil {
		return StatusStale, fmt.Errorf("reading %s: %w", file.Path(), err)
	}

	if !bytes.Equal(onDisk, file.Content) {
		return StatusStale, nil
	}

	return StatusUpToDate, nil
}
