package mapping

import (
	"maps"
	"slices"
)

// ConfigTemplateName is the templates key holding the WARP config file body.
const ConfigTemplateName = "warp-config"

// document is the top-level shape of the registry source.
type document struct {
	Integration Registry `yaml:"warp-integration"`
}

// Registry is the loaded, read-only integration registry.
type Registry struct {
	Version      string              `yaml:"version"`
	Installation Installation        `yaml:"installation"`
	Templates    map[string]Template `yaml:"templates"`
	AgentMapping AgentMapping        `yaml:"agent-mapping"`

	source string
}

// Installation lists the directories created before anything is written.
type Installation struct {
	Directories []Directory `yaml:"directories"`
}

// Directory is one directory to create, relative to the install root.
type Directory struct {
	Path        string `yaml:"path"`
	Description string `yaml:"description"`
}

// Template is a static text body with placeholders.
type Template struct {
	Content string `yaml:"content"`
}

// AgentMapping holds the per-agent override table.
type AgentMapping struct {
	Rules map[string]Rule `yaml:"mapping-rules"`
}

// Rule is a registry entry as written in the source.
type Rule struct {
	WarpType     string            `yaml:"warp-type"`
	Capabilities []string          `yaml:"capabilities"`
	Environment  map[string]string `yaml:"environment"`
}

// Override is the per-agent override handed to the transformer.
// The zero value means "no entry".
type Override struct {
	TargetType   string
	Capabilities []string
	Environment  map[string]string
}

// TypeOr returns the override's target type, or fallback when unset.
func (o Override) TypeOr(fallback string) string {
	if o.TargetType == "" {
		return fallback
	}
	return o.TargetType
}

// Lookup returns a copy of the entry for id, or the zero Override when the
// registry has no entry. It never fails.
func (r *Registry) Lookup(id string) Override {
	if r == nil {
		return Override{}
	}
	rule, ok := r.AgentMapping.Rules[id]
	if !ok {
		return Override{}
	}
	return Override{
		TargetType:   rule.WarpType,
		Capabilities: slices.Clone(rule.Capabilities),
		Environment:  maps.Clone(rule.Environment),
	}
}

// Directories returns the directories to create, in declaration order.
func (r *Registry) Directories() []Directory {
	if r == nil {
		return nil
	}
	return slices.Clone(r.Installation.Directories)
}

// ConfigTemplate returns the WARP config template body.
func (r *Registry) ConfigTemplate() (string, bool) {
	if r == nil {
		return "", false
	}
	t, ok := r.Templates[ConfigTemplateName]
	return t.Content, ok
}

// AgentIDs returns the ids with registry entries, sorted.
func (r *Registry) AgentIDs() []string {
	if r == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(r.AgentMapping.Rules))
}

// Source describes where the registry was read from.
func (r *Registry) Source() string {
	if r == nil {
		return ""
	}
	return r.source
}
