package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// FindSources returns the TOML files directly inside dir, sorted by name.
func FindSources(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSourceDirMissing, dir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrSourceDirMissing, dir)
	}

	matches, err := doublestar.Glob(os.DirFS(dir), "*"+sourceExt, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	sort.Strings(matches)

	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		paths = append(paths, filepath.Join(dir, m))
	}
	return paths, nil
}

// OutputName maps a source path to its output file name: "newTrack.toml"
// becomes "newTrack.md".
func OutputName(source string) string {
	return strings.TrimSuffix(filepath.Base(source), sourceExt) + outputExt
}

// CommandName returns the slash command name for a source path.
func CommandName(source string) string {
	return strings.TrimSuffix(filepath.Base(source), sourceExt)
}
