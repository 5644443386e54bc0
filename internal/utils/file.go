package utils

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// CreateDir creates a single directory and fails if it already exists
func CreateDir(dir string) error {
	return os.Mkdir(dir, 0755)
}

// GetFileExtension returns the lower-cased file extension without the dot
func GetFileExtension(filename string) string {
	ext := filepath.Ext(filename)
	if len(ext) > 0 {
		return strings.ToLower(ext[1:])
	}
	return ""
}

// HasExtension checks filename against a list of extensions, ignoring case
// and a leading dot in the list entries
func HasExtension(filename string, extensions []string) bool {
	ext := GetFileExtension(filename)
	if ext == "" {
		return false
	}
	for _, allowed := range extensions {
		if ext == strings.ToLower(strings.TrimPrefix(allowed, ".")) {
			return true
		}
	}
	return false
}

// BaseName returns the file name without directory and last extension
func BaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ListFiles returns the sorted names of the files directly inside dir.
// Symlinks are followed; a link whose target cannot be resolved is still
// listed so that opening it reports the failure.
func ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		mode := entry.Type()
		if mode&fs.ModeSymlink != 0 {
			info, err := os.Stat(filepath.Join(dir, entry.Name()))
			if err != nil {
				files = append(files, entry.Name())
				continue
			}
			mode = info.Mode().Type()
		}
		if mode.IsRegular() {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}
