// Package config resolves where the converter reads and writes.
//
// Paths are relative to the plugin root, which is located by walking up
// from the starting directory until one of these is found:
//  1. .claude-plugin/plugin.json
//  2. upstream/commands/conductor/
//
// If neither is found, the starting directory is used.
package config

import (
	"os"
	"path/filepath"
)

const (
	DefaultSourceDir = "upstream/commands/conductor"
	DefaultTargetDir = "commands"

	pluginManifest = ".claude-plugin/plugin.json"
)

// Config holds the converter settings.
type Config struct {
	Root      string
	SourceDir string
	TargetDir string

	DryRun  bool // convert and report without writing
	Check   bool // compare against existing output without writing
	Verbose bool // report substitutions per file
	Preview bool // render converted commands to the terminal
}

// Default returns a Config rooted at root with the default directories.
func Default(root string) Config {
	return Config{
		Root:      root,
		SourceDir: DefaultSourceDir,
		TargetDir: DefaultTargetDir,
	}
}

// Source returns the source directory, joined onto Root unless absolute.
func (c Config) Source() string {
	return c.resolve(c.SourceDir, DefaultSourceDir)
}

// Target returns the target directory, joined onto Root unless absolute.
func (c Config) Target() string {
	return c.resolve(c.TargetDir, DefaultTargetDir)
}

func (c Config) resolve(dir, fallback string) string {
	if dir == "" {
		dir = fallback
	}
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Join(c.Root, filepath.FromSlash(dir))
}

// FindRoot walks from start toward the filesystem root and returns the
// first directory that looks like a plugin root. It returns start when no
// such directory exists.
func FindRoot(start string) string {
	start, err := filepath.Abs(start)
	if err != nil {
		return start
	}

	dir := start
	for {
		if isPluginRoot(dir) {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return start
		}
		dir = parent
	}
}

func isPluginRoot(dir string) bool {
	if fi, err := os.Stat(filepath.Join(dir, filepath.FromSlash(pluginManifest))); err == nil && !fi.IsDir() {
		return true
	}
	if fi, err := os.Stat(filepath.Join(dir, filepath.FromSlash(DefaultSourceDir))); err == nil && fi.IsDir() {
		return true
	}
	return false
}
