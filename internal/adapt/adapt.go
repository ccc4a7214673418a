// Package adapt rewrites Gemini CLI specific references in command prompts
// to their Claude Code equivalents.
package adapt

import "strings"

// Rule is a literal, case-sensitive substring replacement.
type Rule struct {
	Name string
	Old  string
	New  string
}

const (
	geminiTemplates = "~/.gemini/extensions/conductor/templates/"
	claudeTemplates = "${CLAUDE_PLUGIN_ROOT}/templates/"

	editorSentence = `Gemini CLI built-in option "Modify with external editor" (if present), or with your favorite external editor`
	editorGeneric  = "your favorite external editor"
)

// DefaultRules returns the replacements applied to every prompt, in order.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "templates", Old: geminiTemplates, New: claudeTemplates},
		{Name: "ignore-file", Old: ".geminiignore", New: ".claudeignore"},
		{Name: "external-editor", Old: editorSentence, New: editorGeneric},
	}
}

// Apply runs each rule over the output of the previous one. Every
// occurrence is replaced; there is no pattern matching.
func Apply(text string, rules []Rule) string {
	for _, r := range rules {
		if r.Old == "" {
			continue
		}
		text = strings.ReplaceAll(text, r.Old, r.New)
	}
	return text
}

// Count reports how many times each rule would fire against text, keyed
// by rule name. Rules that would not fire are omitted. Counts are taken
// sequentially, so a rule sees the output of the rules before it.
func Count(text string, rules []Rule) map[string]int {
	counts := make(map[string]int)
	for _, r := range rules {
		if r.Old == "" {
			continue
		}
		if n := strings.Count(text, r.Old); n > 0 {
			counts[r.Name] = n
			text = strings.ReplaceAll(text, r.Old, r.New)
		}
	}
	return counts
}
