package markdown

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Preview renders a command for terminal display. The frontmatter is shown
// as a heading and quote rather than as raw YAML. On renderer failure the
// unstyled Markdown is returned.
func Preview(name string, doc *Document, width int) string {
	if width < 40 {
		width = 80
	}

	var md strings.Builder
	md.WriteString("# /" + name + "\n\n")
	if doc.Description != "" {
		md.WriteString("> " + doc.Description + "\n\n")
	}
	md.WriteString(doc.Body)
	src := md.String()

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width-4),
	)
	if err != nil {
		return src
	}
	out, err := r.Render(src)
	if err != nil {
		return src
	}
	return strings.TrimRight(out, "\n")
}
