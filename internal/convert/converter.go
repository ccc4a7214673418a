package convert

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/conductor-claude/conductor/internal/adapt"
	"github.com/conductor-claude/conductor/internal/command"
	"github.com/conductor-claude/conductor/internal/config"
	"github.com/conductor-claude/conductor/internal/markdown"
)

// Output is a converted command.
type Output struct {
	Text          string
	Document      *markdown.Document
	Substitutions map[string]int
}

// ConvertFile decodes the TOML command at path and renders it as a
// Markdown command.
func ConvertFile(path string) (*Output, error) {
	def, err := command.Load(path)
	if err != nil {
		return nil, err
	}

	prompt := strings.TrimSpace(def.PromptOrDefault())
	rules := adapt.DefaultRules()
	doc := &markdown.Document{
		Description:  def.DescriptionOrDefault(),
		AllowedTools: markdown.AllowedTools,
		Body:         adapt.Apply(prompt, rules),
	}
	return &Output{
		Text:          markdown.Render(doc.Description, doc.Body),
		Document:      doc,
		Substitutions: adapt.Count(prompt, rules),
	}, nil
}

// Converter runs a batch conversion.
type Converter struct {
	cfg      config.Config
	reporter Reporter
}

// New creates a Converter. A nil reporter discards progress.
func New(cfg config.Config, reporter Reporter) *Converter {
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &Converter{cfg: cfg, reporter: reporter}
}

// Run converts every source file. The returned error is non-nil only for
// fatal problems (missing source directory, unwritable target directory,
// cancellation); per-file failures are carried in the Summary.
func (c *Converter) Run(ctx context.Context) (*Summary, error) {
	sourceDir := c.cfg.Source()
	targetDir := c.cfg.Target()

	sources, err := FindSources(sourceDir)
	if err != nil {
		return nil, err
	}

	summary := &Summary{}
	if len(sources) == 0 {
		c.reporter.NoSources(sourceDir)
		return summary, nil
	}

	c.reporter.Found(len(sources))

	if c.writes() {
		if err := os.MkdirAll(targetDir, 0755); err != nil {
			return nil, fmt.Errorf("creating target directory: %w", err)
		}
	}

	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		res := c.convertOne(src, filepath.Join(targetDir, OutputName(src)))
		summary.Results = append(summary.Results, res)
		c.reporter.Result(res)
	}

	c.reporter.Done(summary)
	return summary, nil
}

func (c *Converter) writes() bool {
	return !c.cfg.DryRun && !c.cfg.Check
}

func (c *Converter) convertOne(src, out string) Result {
	res := Result{Source: src, Output: out}

	conv, err := ConvertFile(src)
	if err != nil {
		res.Err = err
		return res
	}

	switch {
	case c.cfg.Check:
		err = checkOutput(out, conv)
	case c.cfg.DryRun:
	default:
		err = os.WriteFile(out, []byte(conv.Text), 0644)
	}
	if err != nil {
		res.Err = err
		return res
	}

	res.Document = conv.Document
	res.Substitutions = conv.Substitutions
	return res
}

// checkOutput compares the existing file at path to the expected text.
func checkOutput(path string, want *Output) error {
	got, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s is missing", ErrStale, filepath.Base(path))
		}
		return err
	}
	if bytes.Equal(got, []byte(want.Text)) {
		return nil
	}

	doc := want.Document
	existing, err := markdown.Parse(got)
	switch {
	case err != nil:
		return fmt.Errorf("%w: %v", ErrStale, err)
	case existing.Description != doc.Description:
		return fmt.Errorf("%w: description is %q, want %q", ErrStale, existing.Description, doc.Description)
	case existing.AllowedTools != doc.AllowedTools:
		return fmt.Errorf("%w: allowed-tools is %q, want %q", ErrStale, existing.AllowedTools, doc.AllowedTools)
	default:
		return fmt.Errorf("%w: body differs", ErrStale)
	}
}

type nopReporter struct{}

func (nopReporter) NoSources(string) {}
func (nopReporter) Found(int)        {}
func (nopReporter) Result(Result)    {}
func (nopReporter) Done(*Summary)    {}
