package prompt

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultName is the template filename looked up when the caller does not
// choose one.
const DefaultName = "command_synthesis.txt"

//go:embed command_synthesis.txt
var embeddedTemplate string

// Default returns the embedded system prompt template.
func Default() string { return embeddedTemplate }

// Load reads the named template from dir. When the default name is requested
// and no such file exists, the embedded template is returned instead; a
// missing custom template is an error.
func Load(dir, name string) (string, error) {
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && name == DefaultName {
			return embeddedTemplate, nil
		}
		return "", fmt.Errorf("loading prompt template %s: %w", path, err)
	}
	return string(data), nil
}

// Render substitutes the {shell} and {cwd} placeholders in a template. An
// empty cwd renders as "~".
func Render(template, shell, cwd string) string {
	if cwd == "" {
		cwd = "~"
	}
	return strings.NewReplacer("{shell}", shell, "{cwd}", cwd).Replace(template)
}
