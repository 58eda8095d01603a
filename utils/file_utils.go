package utils

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
)

// ExpandPath trims the user's input, strips matching quotes left by
// drag-and-drop and expands a leading "~".
func ExpandPath(input string) (string, error) {
	path := strings.TrimSpace(input)
	if len(path) >= 2 {
		if (path[0] == '"' && path[len(path)-1] == '"') || (path[0] == '\'' && path[len(path)-1] == '\'') {
			path = path[1 : len(path)-1]
		}
	}
	if path == "" {
		return "", nil
	}

	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", err
	}
	return filepath.Clean(expanded), nil
}

// ResolvePath expands input and joins relative results onto baseDir.
func ResolvePath(input, baseDir string) (string, error) {
	path, err := ExpandPath(input)
	if err != nil || path == "" {
		return path, err
	}
	if baseDir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	return path, nil
}

func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}
