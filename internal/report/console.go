// Package report prints converter progress to the terminal.
package report

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/conductor-claude/conductor/internal/convert"
	"github.com/conductor-claude/conductor/internal/markdown"
)

// Options controls what the console reporter prints.
type Options struct {
	Color   bool
	Verbose bool
	Preview bool
	DryRun  bool // nothing is written
	Check   bool // outputs are compared, not written
	Width   int  // terminal width for previews
}

// Console writes human-readable progress lines.
type Console struct {
	w    io.Writer
	opts Options
}

// NewConsole creates a Console that writes to w.
func NewConsole(w io.Writer, opts Options) *Console {
	return &Console{w: w, opts: opts}
}

func (c *Console) style(s lipgloss.Style, text string) string {
	if !c.opts.Color {
		return text
	}
	return s.Render(text)
}

// NoSources reports a source directory with no TOML files.
func (c *Console) NoSources(dir string) {
	fmt.Fprintln(c.w, c.style(warnStyle, "No TOML files found in "+dir))
}

// Found prints the number of files about to be converted.
func (c *Console) Found(n int) {
	fmt.Fprintln(c.w, c.style(headingStyle, fmt.Sprintf("Found %d command(s) to convert:", n)))
}

// Result prints one line per file, plus substitutions and a preview when
// enabled.
func (c *Console) Result(r convert.Result) {
	name := filepath.Base(r.Source)
	if !r.OK() {
		fmt.Fprintf(c.w, "  %s %s: %v\n", c.style(failStyle, "✗"), name, r.Err)
		return
	}

	out := filepath.Base(r.Output)
	switch {
	case c.opts.Check:
		fmt.Fprintf(c.w, "  %s %s: %s up to date\n", c.style(okStyle, "✓"), name, out)
	case c.opts.DryRun:
		fmt.Fprintf(c.w, "  %s %s -> %s %s\n", c.style(okStyle, "✓"), name, out, c.style(dimStyle, "(dry run)"))
	default:
		fmt.Fprintf(c.w, "  %s %s -> %s\n", c.style(okStyle, "✓"), name, out)
	}

	if c.opts.Verbose && len(r.Substitutions) > 0 {
		fmt.Fprintln(c.w, c.style(dimStyle, "      "+formatSubstitutions(r.Substitutions)))
	}
	if c.opts.Preview && r.Document != nil {
		fmt.Fprintln(c.w, markdown.Preview(convert.CommandName(r.Source), r.Document, c.opts.Width))
	}
}

// Done prints the failure count, if any, and the completion message.
func (c *Console) Done(s *convert.Summary) {
	fmt.Fprintln(c.w)
	if s.Failed() > 0 {
		fmt.Fprintln(c.w, c.style(warnStyle,
			fmt.Sprintf("%d converted, %d failed", s.Converted(), s.Failed())))
	}
	fmt.Fprintln(c.w, c.style(okStyle, "Conversion complete!"))
}

// formatSubstitutions renders counts as "external-editor×1, templates×2",
// sorted by rule name.
func formatSubstitutions(counts map[string]int) string {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s×%d", name, counts[name]))
	}
	return strings.Join(parts, ", ")
}
