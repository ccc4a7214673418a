package command

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ErrDecode is wrapped by every error caused by malformed source content.
var ErrDecode = errors.New("invalid command definition")

type rawDefinition struct {
	Description string `toml:"description"`
	Prompt      string `toml:"prompt"`
}

// Decode parses a TOML command definition.
func Decode(data []byte) (*Definition, error) {
	var raw rawDefinition
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return &Definition{
		Description:    raw.Description,
		Prompt:         raw.Prompt,
		HasDescription: md.IsDefined("description"),
		HasPrompt:      md.IsDefined("prompt"),
	}, nil
}

// Load reads and decodes the command definition at path.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Decode(data)
}
