// Package input loads cached puzzle inputs from disk.
//
// Inputs live in a cache directory as "<year>_<day>.txt". The package never
// fetches anything over the network; a missing file is reported as
// ErrNotCached so the caller can tell the user where to put it.
package input

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultDir is the cache directory used when none is given.
const DefaultDir = "input_cache"

// ErrNotCached indicates that no input file exists for the requested day.
var ErrNotCached = errors.New("input: puzzle input not cached")

// Path returns the cache file path for year and day under dir.
func Path(dir string, year, day int) string {
	return filepath.Join(dir, fmt.Sprintf("%d_%d.txt", year, day))
}

// Load returns the cached input for year and day.
func Load(dir string, year, day int) (string, error) {
	return ReadFile(Path(dir, year, day))
}

// ReadFile returns the contents of an explicit input file.
func ReadFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrNotCached, path)
	}
	if err != nil {
		return "", fmt.Errorf("input: read %s: %w", path, err)
	}
	return string(raw), nil
}
