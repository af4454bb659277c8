package descriptor

// DefaultIcon is used when an agent declares no icon.
const DefaultIcon = "🤖"

// Profile is the optional-field schema of an agent metadata block.
// Every field may be absent; WithDefaults fills the fallbacks.
type Profile struct {
	Name           string         `mapstructure:"agentName"`
	Title          string         `mapstructure:"title"`
	Description    string         `mapstructure:"description"`
	Icon           string         `mapstructure:"icon"`
	WhenToUse      string         `mapstructure:"whenToUse"`
	RoleDefinition string         `mapstructure:"roleDefinition"`
	Keywords       []string       `mapstructure:"keywords"`
	Tools          []any          `mapstructure:"tools"`
	Workflows      []any          `mapstructure:"workflows"`
	Templates      []any          `mapstructure:"templates"`
	Tasks          []any          `mapstructure:"tasks"`
	Startup        map[string]any `mapstructure:"startup"`
	Instructions   string         `mapstructure:"instructions"`
	Constraints    []any          `mapstructure:"constraints"`
}

// WithDefaults returns a copy of p with every absent field replaced by its
// fallback. Name and Title fall back to the agent id.
func (p Profile) WithDefaults(id string) Profile {
	out := p
	if out.Name == "" {
		out.Name = id
	}
	if out.Title == "" {
		out.Title = id
	}
	if out.Icon == "" {
		out.Icon = DefaultIcon
	}
	out.Keywords = orEmpty(out.Keywords)
	out.Tools = orEmpty(out.Tools)
	out.Workflows = orEmpty(out.Workflows)
	out.Templates = orEmpty(out.Templates)
	out.Tasks = orEmpty(out.Tasks)
	out.Constraints = orEmpty(out.Constraints)
	if out.Startup == nil {
		out.Startup = map[string]any{}
	}
	return out
}

// Workflow is the optional-field schema of a workflow file.
type Workflow struct {
	ID               string   `mapstructure:"id"`
	Name             string   `mapstructure:"name"`
	Type             string   `mapstructure:"type"`
	Description      string   `mapstructure:"description"`
	Category         string   `mapstructure:"category"`
	Tags             []string `mapstructure:"tags"`
	Stages           []any    `mapstructure:"stages"`
	PrimaryAgent     string   `mapstructure:"primaryAgent"`
	SupportingAgents []any    `mapstructure:"supportingAgents"`
	Handoffs         []any    `mapstructure:"handoffs"`
}

// Workflow fallbacks.
const (
	DefaultWorkflowID       = "unknown"
	DefaultWorkflowName     = "Unnamed Workflow"
	DefaultWorkflowType     = "sequential"
	DefaultWorkflowCategory = "general"
	DefaultPrimaryAgent     = "bmad-orchestrator"
)

// WithDefaults returns a copy of w with every absent field replaced by its fallback.
func (w Workflow) WithDefaults() Workflow {
	out := w
	if out.ID == "" {
		out.ID = DefaultWorkflowID
	}
	if out.Name == "" {
		out.Name = DefaultWorkflowName
	}
	if out.Type == "" {
		out.Type = DefaultWorkflowType
	}
	if out.Category == "" {
		out.Category = DefaultWorkflowCategory
	}
	if out.PrimaryAgent == "" {
		out.PrimaryAgent = DefaultPrimaryAgent
	}
	out.Tags = orEmpty(out.Tags)
	out.Stages = orEmpty(out.Stages)
	out.SupportingAgents = orEmpty(out.SupportingAgents)
	out.Handoffs = orEmpty(out.Handoffs)
	return out
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
