// Package schemagen produces JSON Schemas for the documents the installer
// writes, reflected from their Go types.
package schemagen

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/invopop/jsonschema"

	"github.com/lucaschallamel/BMAD-METHOD/internal/transform"
	"github.com/lucaschallamel/BMAD-METHOD/internal/warp"
)

const draft = "https://json-schema.org/draft/2020-12/schema"

var documents = map[string]func() any{
	"agent":    func() any { return &transform.AgentDocument{} },
	"workflow": func() any { return &transform.WorkflowDocument{} },
	"manifest": func() any { return &warp.Manifest{} },
}

// Names returns the documents a schema can be generated for, sorted.
func Names() []string {
	names := make([]string, 0, len(documents))
	for n := range documents {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Generate returns the indented JSON Schema for the named document.
func Generate(name string) ([]byte, error) {
	newDoc, ok := documents[name]
	if !ok {
		return nil, fmt.Errorf("unknown document %q (known: %v)", name, Names())
	}

	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            false,
	}
	schema := reflector.Reflect(newDoc())
	schema.Version = draft
	schema.ID = jsonschema.ID("bmad-warp/" + name + ".schema.json")

	out, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s schema: %w", name, err)
	}
	return out, nil
}
