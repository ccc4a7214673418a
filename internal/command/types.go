// Package command decodes conductor command definitions.
//
// A command definition is a TOML file with two optional top-level keys:
//
//	description = "Start a new track"
//	prompt = """
//	...
//	"""
//
// Other keys are ignored.
package command

// DefaultDescription is used when a definition has no description key.
const DefaultDescription = "No description provided"

// Definition is the decoded form of one command file. The Has* fields
// record whether the key was present in the source, independent of its value.
type Definition struct {
	Description    string
	Prompt         string
	HasDescription bool
	HasPrompt      bool
}

// DescriptionOrDefault returns the description, or DefaultDescription when
// the key was absent. A present but empty description is returned as-is.
func (d *Definition) DescriptionOrDefault() string {
	if !d.HasDescription {
		return DefaultDescription
	}
	return d.Description
}

// PromptOrDefault returns the prompt, or "" when the key was absent.
func (d *Definition) PromptOrDefault() string {
	if !d.HasPrompt {
		return ""
	}
	return d.Prompt
}
