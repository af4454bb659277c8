// Package artifacts holds the static files written alongside the generated
// records: prompts, the environment file, the example notebook and the
// activation rules. Only the version placeholder is substituted.
package artifacts

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"strings"
)

// VersionPlaceholder is replaced with the package version.
const VersionPlaceholder = "${BMAD_VERSION}"

//go:embed templates
var templates embed.FS

// Substitute replaces the first occurrence of placeholder in tmpl with value.
// Later occurrences are left untouched.
func Substitute(tmpl, placeholder, value string) string {
	return strings.Replace(tmpl, placeholder, value, 1)
}

// SystemPrompt returns the WARP system prompt.
func SystemPrompt() ([]byte, error) {
	return templates.ReadFile("templates/system.md")
}

// ContextPrompt returns the context prompt template. Its {{...}} markers
// are filled in by WARP, not here.
func ContextPrompt() ([]byte, error) {
	return templates.ReadFile("templates/context-template.md")
}

// Environment returns the env file with the version substituted.
func Environment(version string) ([]byte, error) {
	raw, err := templates.ReadFile("templates/bmad.env")
	if err != nil {
		return nil, err
	}
	return []byte(Substitute(string(raw), VersionPlaceholder, version)), nil
}

// Notebook returns the example notebook, indented with two spaces.
func Notebook() ([]byte, error) {
	raw, err := templates.ReadFile("templates/notebook.json")
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(raw), "", "  "); err != nil {
		return nil, fmt.Errorf("indenting notebook: %w", err)
	}
	return buf.Bytes(), nil
}
