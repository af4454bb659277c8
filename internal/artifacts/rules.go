package artifacts

// RulesDocument is the shape of .warp/rules/bmad-rules.yaml.
type RulesDocument struct {
	Version string             `yaml:"version"`
	Rules   map[string]RuleSet `yaml:"rules"`
}

type RuleSet struct {
	Description string    `yaml:"description"`
	Patterns    []Pattern `yaml:"patterns"`
}

// Pattern sets one of Pattern, Context or Event as its matcher.
type Pattern struct {
	Pattern string            `yaml:"pattern,omitempty"`
	Context string            `yaml:"context,omitempty"`
	Event   string            `yaml:"event,omitempty"`
	Action  string            `yaml:"action"`
	Params  map[string]string `yaml:"params"`
}

// Rules returns the activation, context-detection and workflow-trigger rules.
func Rules() RulesDocument {
	return RulesDocument{
		Version: "1.0",
		Rules: map[string]RuleSet{
			"agent-activation": {
				Description: "Rules for activating BMAD agents",
				Patterns: []Pattern{
					{Pattern: `@(\w+)`, Action: "activate-agent", Params: map[string]string{"agent": "$1"}},
					{Pattern: `/bmad (\w+)`, Action: "activate-agent", Params: map[string]string{"agent": "$1"}},
				},
			},
			"context-detection": {
				Description: "Detect context for automatic agent activation",
				Patterns: []Pattern{
					{Context: "error-in-code", Action: "suggest-agent", Params: map[string]string{"agent": "dev"}},
					{Context: "planning-discussion", Action: "suggest-agent", Params: map[string]string{"agent": "analyst"}},
				},
			},
			"workflow-triggers": {
				Description: "Automatic workflow triggers",
				Patterns: []Pattern{
					{Event: "new-project", Action: "suggest-workflow", Params: map[string]string{"workflow": "fullstack-agile-workflow"}},
				},
			},
		},
	}
}
