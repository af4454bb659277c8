package transform

// AgentDocument is the top-level shape of .warp/agents/<id>.yaml.
type AgentDocument struct {
	Agent AgentRecord `yaml:"agent" json:"agent"`
}

// AgentRecord is the WARP configuration of one agent.
type AgentRecord struct {
	ID           string             `yaml:"id" json:"id"`
	Name         string             `yaml:"name" json:"name"`
	Type         string             `yaml:"type" json:"type"`
	Version      string             `yaml:"version" json:"version"`
	Metadata     AgentMetadata      `yaml:"metadata" json:"metadata"`
	Warp         WarpSettings       `yaml:"warp" json:"warp"`
	Capabilities []string           `yaml:"capabilities" json:"capabilities"`
	Tools        []any              `yaml:"tools" json:"tools"`
	Activation   Activation         `yaml:"activation" json:"activation"`
	Behavior     Behavior           `yaml:"behavior" json:"behavior"`
	Integrations AgentIntegrations  `yaml:"integrations" json:"integrations"`
	WarpDrive    WarpDriveArtifacts `yaml:"warp-drive" json:"warp-drive"`
}

type AgentMetadata struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Icon        string `yaml:"icon" json:"icon"`
	WhenToUse   string `yaml:"whenToUse" json:"whenToUse"`
}

// WarpSettings are the structural sections every agent gets unchanged.
type WarpSettings struct {
	MultiAgent    MultiAgent    `yaml:"multi-agent" json:"multi-agent"`
	Models        Models        `yaml:"models" json:"models"`
	Notifications Notifications `yaml:"notifications" json:"notifications"`
	Context       ContextPolicy `yaml:"context" json:"context"`
}

type MultiAgent struct {
	Enabled       bool `yaml:"enabled" json:"enabled"`
	CanCoordinate bool `yaml:"can-coordinate" json:"can-coordinate"`
	SharedContext bool `yaml:"shared-context" json:"shared-context"`
}

type Models struct {
	Default           string   `yaml:"default" json:"default"`
	Allowed           []string `yaml:"allowed" json:"allowed"`
	SelectionStrategy string   `yaml:"selection-strategy" json:"selection-strategy"`
}

type Notifications struct {
	Enabled  bool     `yaml:"enabled" json:"enabled"`
	Triggers []string `yaml:"triggers" json:"triggers"`
}

type ContextPolicy struct {
	Persistent bool     `yaml:"persistent" json:"persistent"`
	Shared     bool     `yaml:"shared" json:"shared"`
	Includes   []string `yaml:"includes" json:"includes"`
}

type Activation struct {
	Commands        []string `yaml:"commands" json:"commands"`
	Triggers        []string `yaml:"triggers" json:"triggers"`
	ContextTriggers []string `yaml:"context-triggers" json:"context-triggers"`
}

type Behavior struct {
	Startup      map[string]any `yaml:"startup" json:"startup"`
	Instructions string         `yaml:"instructions" json:"instructions"`
	Constraints  []any          `yaml:"constraints" json:"constraints"`
}

type AgentIntegrations struct {
	MemoryBank MemoryBank `yaml:"memory-bank" json:"memory-bank"`
	Workflows  []any      `yaml:"workflows" json:"workflows"`
	Templates  []any      `yaml:"templates" json:"templates"`
	Tasks      []any      `yaml:"tasks" json:"tasks"`
}

type MemoryBank struct {
	Enabled    bool `yaml:"enabled" json:"enabled"`
	AutoUpdate bool `yaml:"auto-update" json:"auto-update"`
}

// WarpDriveArtifacts references files generated for the agent and the
// environment it runs with.
type WarpDriveArtifacts struct {
	Notebooks   []string          `yaml:"notebooks" json:"notebooks"`
	Prompts     []string          `yaml:"prompts" json:"prompts"`
	Environment map[string]string `yaml:"environment" json:"environment"`
}

// WorkflowDocument is the top-level shape of .warp/workflows/<file>.yaml.
type WorkflowDocument struct {
	Workflow WorkflowRecord `yaml:"workflow" json:"workflow"`
}

// WorkflowRecord is the WARP configuration of one workflow.
type WorkflowRecord struct {
	ID           string               `yaml:"id" json:"id"`
	Name         string               `yaml:"name" json:"name"`
	Version      string               `yaml:"version" json:"version"`
	Type         string               `yaml:"type" json:"type"`
	Metadata     WorkflowMetadata     `yaml:"metadata" json:"metadata"`
	Warp         ExecutionPolicy      `yaml:"warp" json:"warp"`
	Stages       []any                `yaml:"stages" json:"stages"`
	Agents       AgentAssignment      `yaml:"agents" json:"agents"`
	Triggers     WorkflowTriggers     `yaml:"triggers" json:"triggers"`
	Integrations WorkflowIntegrations `yaml:"integrations" json:"integrations"`
}

type WorkflowMetadata struct {
	Description string   `yaml:"description" json:"description"`
	Category    string   `yaml:"category" json:"category"`
	Tags        []string `yaml:"tags" json:"tags"`
}

// ExecutionPolicy is injected into every workflow regardless of its source.
// The values are data for WARP; this engine never enforces them.
type ExecutionPolicy struct {
	Execution     Execution     `yaml:"execution" json:"execution"`
	Context       ContextFlow   `yaml:"context" json:"context"`
	ErrorHandling ErrorHandling `yaml:"error-handling" json:"error-handling"`
}

type Execution struct {
	Mode        string      `yaml:"mode" json:"mode"`
	Timeout     int64       `yaml:"timeout" json:"timeout"` // milliseconds
	RetryPolicy RetryPolicy `yaml:"retry-policy" json:"retry-policy"`
}

type RetryPolicy struct {
	Enabled     bool   `yaml:"enabled" json:"enabled"`
	MaxAttempts int    `yaml:"max-attempts" json:"max-attempts"`
	Backoff     string `yaml:"backoff" json:"backoff"`
}

type ContextFlow struct {
	Propagation bool `yaml:"propagation" json:"propagation"`
	Isolation   bool `yaml:"isolation" json:"isolation"`
	Persistence bool `yaml:"persistence" json:"persistence"`
}

type ErrorHandling struct {
	Strategy        string   `yaml:"strategy" json:"strategy"`
	Notifications   bool     `yaml:"notifications" json:"notifications"`
	RecoveryActions []string `yaml:"recovery-actions" json:"recovery-actions"`
}

type AgentAssignment struct {
	Primary    string `yaml:"primary" json:"primary"`
	Supporting []any  `yaml:"supporting" json:"supporting"`
	Handoffs   []any  `yaml:"handoffs" json:"handoffs"`
}

type WorkflowTriggers struct {
	Manual      []ManualTrigger `yaml:"manual" json:"manual"`
	Automatic   []any           `yaml:"automatic" json:"automatic"`
	Conditional []any           `yaml:"conditional" json:"conditional"`
}

// ManualTrigger sets exactly one of Command or UIAction.
type ManualTrigger struct {
	Command  string `yaml:"command,omitempty" json:"command,omitempty"`
	UIAction string `yaml:"ui-action,omitempty" json:"ui-action,omitempty"`
}

type WorkflowIntegrations struct {
	MemoryBank MemoryBankAccess `yaml:"memory-bank" json:"memory-bank"`
}

type MemoryBankAccess struct {
	Read  []string `yaml:"read" json:"read"`
	Write []string `yaml:"write" json:"write"`
}
