// Package convert turns a directory of conductor TOML commands into Claude
// Code Markdown commands.
//
// Files are processed one at a time in filename order. A failure in one
// file is recorded in its Result and never stops the batch; only a missing
// source directory is fatal.
package convert

import (
	"errors"

	"github.com/conductor-claude/conductor/internal/markdown"
)

const (
	sourceExt = ".toml"
	outputExt = ".md"
)

var (
	// ErrSourceDirMissing is returned when the source directory does not exist.
	ErrSourceDirMissing = errors.New("source directory not found")

	// ErrStale marks a check-mode result whose output is missing or out of date.
	ErrStale = errors.New("output out of date")
)

// Result is the outcome of converting one source file.
type Result struct {
	Source string // source file path
	Output string // output file path (set even on failure)
	Err    error

	// Set when conversion succeeded.
	Document      *markdown.Document
	Substitutions map[string]int
}

// OK reports whether the file converted successfully.
func (r Result) OK() bool { return r.Err == nil }

// Summary collects every Result of a batch, in processing order.
type Summary struct {
	Results []Result
}

// Converted returns the number of successful results.
func (s *Summary) Converted() int {
	n := 0
	for _, r := range s.Results {
		if r.OK() {
			n++
		}
	}
	return n
}

// Failed returns the number of failed results.
func (s *Summary) Failed() int {
	return len(s.Results) - s.Converted()
}

// Reporter receives progress from a Converter.
type Reporter interface {
	NoSources(dir string)
	Found(n int)
	Result(r Result)
	Done(s *Summary)
}
