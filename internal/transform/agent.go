package transform

import (
	"fmt"
	"maps"
	"slices"

	"dario.cat/mergo"

	"github.com/lucaschallamel/BMAD-METHOD/internal/descriptor"
	"github.com/lucaschallamel/BMAD-METHOD/internal/heuristic"
	"github.com/lucaschallamel/BMAD-METHOD/internal/mapping"
)

// RecordVersion is the schema version stamped on every generated record.
const RecordVersion = "1.0.0"

// FallbackType is the agent type used when the registry has no override.
const FallbackType = "general-agent"

// Environment keys the engine always sets on an agent.
const (
	EnvAgent   = "BMAD_AGENT"
	EnvVersion = "BMAD_VERSION"
)

var (
	defaultModel  = "gpt-4"
	allowedModels = []string{"gpt-4", "claude-3", "gemini-pro"}

	notificationTriggers = []string{
		"user-input-required",
		"task-completed",
		"error-occurred",
		"decision-needed",
	}

	contextIncludes = []string{
		"project-context",
		"memory-bank",
		"active-tasks",
		"conversation-history",
	}
)

// Transform builds the WARP record for agent id. Profile values win over
// fallbacks; the override supplies type and capabilities. version is the
// package version recorded in the agent environment.
func Transform(id string, profile descriptor.Profile, override mapping.Override, version string) AgentDocument {
	p := profile.WithDefaults(id)

	return AgentDocument{Agent: AgentRecord{
		ID:      id,
		Name:    p.Name,
		Type:    override.TypeOr(FallbackType),
		Version: RecordVersion,
		Metadata: AgentMetadata{
			Title:       p.Title,
			Description: p.Description,
			Icon:        p.Icon,
			WhenToUse:   p.WhenToUse,
		},
		Warp:         defaultWarpSettings(),
		Capabilities: cloneOrEmpty(override.Capabilities),
		Tools:        deepCopy(p.Tools),
		Activation: Activation{
			Commands:        ActivationCommands(id),
			Triggers:        heuristic.ExtractTriggers(p),
			ContextTriggers: heuristic.ExtractContextTriggers(p),
		},
		Behavior: Behavior{
			Startup:      deepCopy(p.Startup),
			Instructions: p.Instructions,
			Constraints:  deepCopy(p.Constraints),
		},
		Integrations: AgentIntegrations{
			MemoryBank: MemoryBank{Enabled: true, AutoUpdate: true},
			Workflows:  deepCopy(p.Workflows),
			Templates:  deepCopy(p.Templates),
			Tasks:      deepCopy(p.Tasks),
		},
		WarpDrive: WarpDriveArtifacts{
			Notebooks: []string{
				fmt.Sprintf("examples/%s-examples.ipynb", id),
				fmt.Sprintf("tutorials/%s-tutorial.ipynb", id),
			},
			Prompts: []string{
				fmt.Sprintf("%s-system.md", id),
				fmt.Sprintf("%s-context.md", id),
			},
			Environment: agentEnvironment(id, version, override.Environment),
		},
	}}
}

// ActivationCommands returns the two command aliases that activate an agent.
func ActivationCommands(id string) []string {
	return []string{"@" + id, "/bmad " + id}
}

func defaultWarpSettings() WarpSettings {
	return WarpSettings{
		MultiAgent: MultiAgent{Enabled: true, CanCoordinate: true, SharedContext: true},
		Models: Models{
			Default:           defaultModel,
			Allowed:           slices.Clone(allowedModels),
			SelectionStrategy: "auto",
		},
		Notifications: Notifications{
			Enabled:  true,
			Triggers: slices.Clone(notificationTriggers),
		},
		Context: ContextPolicy{
			Persistent: true,
			Shared:     true,
			Includes:   slices.Clone(contextIncludes),
		},
	}
}

// agentEnvironment sets the engine keys and fills in registry extras that
// do not collide with them.
func agentEnvironment(id, version string, extra map[string]string) map[string]string {
	env := map[string]string{
		EnvAgent:   id,
		EnvVersion: version,
	}
	if len(extra) > 0 {
		// Merging two map[string]string values cannot fail.
		_ = mergo.Merge(&env, maps.Clone(extra))
	}
	return env
}

func cloneOrEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return slices.Clone(s)
}
