package transform

import (
	"slices"

	"github.com/lucaschallamel/BMAD-METHOD/internal/descriptor"
)

// Execution policy injected into every workflow.
const (
	WorkflowTimeoutMillis = 3600000 // 1 hour
	WorkflowMaxAttempts   = 3
	WorkflowBackoff       = "exponential"
	WorkflowErrorStrategy = "continue"
)

var recoveryActions = []string{"retry", "skip", "manual-intervention"}

// ConvertWorkflow builds the WARP record for a workflow file. Whatever the
// source says about execution, the fixed policy is applied.
func ConvertWorkflow(src descriptor.Workflow) WorkflowDocument {
	w := src.WithDefaults()

	return WorkflowDocument{Workflow: WorkflowRecord{
		ID:      w.ID,
		Name:    w.Name,
		Version: RecordVersion,
		Type:    w.Type,
		Metadata: WorkflowMetadata{
			Description: w.Description,
			Category:    w.Category,
			Tags:        slices.Clone(w.Tags),
		},
		Warp:   DefaultExecutionPolicy(),
		Stages: deepCopy(w.Stages),
		Agents: AgentAssignment{
			Primary:    w.PrimaryAgent,
			Supporting: deepCopy(w.SupportingAgents),
			Handoffs:   deepCopy(w.Handoffs),
		},
		Triggers: WorkflowTriggers{
			Manual: []ManualTrigger{
				{Command: "/run " + w.ID},
				{UIAction: "Run " + w.Name},
			},
			Automatic:   []any{},
			Conditional: []any{},
		},
		Integrations: WorkflowIntegrations{
			MemoryBank: MemoryBankAccess{
				Read:  []string{"project-context", "active-tasks"},
				Write: []string{"progress", "decisions"},
			},
		},
	}}
}

// DefaultExecutionPolicy returns the policy every workflow carries.
func DefaultExecutionPolicy() ExecutionPolicy {
	return ExecutionPolicy{
		Execution: Execution{
			Mode:    "sequential",
			Timeout: WorkflowTimeoutMillis,
			RetryPolicy: RetryPolicy{
				Enabled:     true,
				MaxAttempts: WorkflowMaxAttempts,
				Backoff:     WorkflowBackoff,
			},
		},
		Context: ContextFlow{
			Propagation: true,
			Isolation:   false,
			Persistence: true,
		},
		ErrorHandling: ErrorHandling{
			Strategy:        WorkflowErrorStrategy,
			Notifications:   true,
			RecoveryActions: slices.Clone(recoveryActions),
		},
	}
}
