package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrFileNotFound indicates the import path is missing or unreadable.
	ErrFileNotFound = errors.New("file not found")

	// ErrMissingColumn indicates the header lacks one of the required columns.
	ErrMissingColumn = errors.New("missing column")

	// ErrWrite indicates the export file could not be written.
	ErrWrite = errors.New("write error")

	// ErrNotText indicates the import file is a recognised binary format.
	ErrNotText = errors.New("not a delimited text file")
)

// FileError ties a file operation failure to its path and category.
type FileError struct {
	Op   string
	Path string
	Kind error
	Err  error
}

func (e *FileError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Kind)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Is implements errors.Is support
func (e *FileError) Is(target error) bool {
	return target == e.Kind
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// ColumnError lists the required columns absent from an import header.
type ColumnError struct {
	Path    string
	Missing []string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("missing column in %s: %s", e.Path, strings.Join(e.Missing, ", "))
}

// Is implements errors.Is support
func (e *ColumnError) Is(target error) bool {
	return target == ErrMissingColumn
}
