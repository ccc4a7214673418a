// Package markdown renders Claude Code slash-command files and reads them
// back.
//
// A command file is a Markdown document with a YAML frontmatter block:
//
//	---
//	description: Start a new track
//	allowed-tools: Read, Write, Edit, Bash, Glob, Grep
//	---
//
//	<prompt>
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
)

// AllowedTools is the fixed tool set granted to every converted command.
const AllowedTools = "Read, Write, Edit, Bash, Glob, Grep"

const delimiter = "---"

// Document is a parsed command file.
type Document struct {
	Description  string `yaml:"description"`
	AllowedTools string `yaml:"allowed-tools"`
	Body         string `yaml:"-"`
}

// Render produces the command file text. The description is written
// verbatim; body is expected to be already trimmed.
func Render(description, body string) string {
	var b strings.Builder
	b.WriteString(delimiter + "\n")
	b.WriteString("description: " + description + "\n")
	b.WriteString("allowed-tools: " + AllowedTools + "\n")
	b.WriteString(delimiter + "\n")
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n")
	return b.String()
}

// Parse reads a command file produced by Render.
func Parse(data []byte) (*Document, error) {
	var doc Document
	body, err := frontmatter.MustParse(bytes.NewReader(data), &doc)
	if err != nil {
		return nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	doc.Body = strings.TrimSpace(string(body))
	return &doc, nil
}
