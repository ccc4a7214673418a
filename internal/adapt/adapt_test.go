package adapt

import (
	"strings"
	"testing"
)

func TestApply_Example(t *testing.T) {
	in := `Use ~/.gemini/extensions/conductor/templates/track.md and see .geminiignore. ` +
		`Gemini CLI built-in option "Modify with external editor" (if present), or with your favorite external editor.`
	want := "Use ${CLAUDE_PLUGIN_ROOT}/templates/track.md and see .claudeignore. your favorite external editor."

	if got := Apply(in, DefaultRules()); got != want {
		t.Errorf("Apply() = %q, want %q", got, want)
	}
}

func TestApply_ReplacesEveryOccurrence(t *testing.T) {
	const n = 5
	in := strings.Repeat("~/.gemini/extensions/conductor/templates/x.md ", n)

	got := Apply(in, DefaultRules())

	if strings.Contains(got, "~/.gemini/extensions/conductor/templates/") {
		t.Errorf("original prefix still present: %q", got)
	}
	if c := strings.Count(got, "${CLAUDE_PLUGIN_ROOT}/templates/"); c != n {
		t.Errorf("replacement count = %d, want %d", c, n)
	}
}

func TestApply_CaseSensitive(t *testing.T) {
	in := ".GeminiIgnore and .GEMINIIGNORE"
	if got := Apply(in, DefaultRules()); got != in {
		t.Errorf("Apply() = %q, want unchanged", got)
	}
}

func TestApply_EditorSentenceStrictlyLiteral(t *testing.T) {
	// Whitespace variants are left alone.
	in := `Gemini CLI built-in option  "Modify with external editor" (if present), or with your favorite external editor`
	if got := Apply(in, DefaultRules()); got != in {
		t.Errorf("Apply() = %q, want unchanged", got)
	}
}

func TestApply_Ordered(t *testing.T) {
	rules := []Rule{
		{Name: "a", Old: "foo", New: "bar"},
		{Name: "b", Old: "bar", New: "baz"},
	}
	if got := Apply("foo", rules); got != "baz" {
		t.Errorf("Apply() = %q, want %q", got, "baz")
	}
}

func TestApply_EmptyOldSkipped(t *testing.T) {
	rules := []Rule{{Name: "empty", Old: "", New: "x"}}
	if got := Apply("abc", rules); got != "abc" {
		t.Errorf("Apply() = %q, want %q", got, "abc")
	}
}

func TestCount(t *testing.T) {
	in := ".geminiignore .geminiignore ~/.gemini/extensions/conductor/templates/a"
	counts := Count(in, DefaultRules())

	if counts["templates"] != 1 {
		t.Errorf("templates = %d, want 1", counts["templates"])
	}
	if counts["ignore-file"] != 2 {
		t.Errorf("ignore-file = %d, want 2", counts["ignore-file"])
	}
	if _, ok := counts["external-editor"]; ok {
		t.Error("external-editor should be absent")
	}
}
