package transform

import (
	"testing"

	"github.com/lucaschallamel/BMAD-METHOD/internal/descriptor"
)

func TestConvertWorkflow_InjectsPolicy(t *testing.T) {
	rec := ConvertWorkflow(descriptor.Workflow{}).Workflow

	exec := rec.Warp.Execution
	if exec.Timeout != WorkflowTimeoutMillis {
		t.Errorf("Timeout = %d, want %d", exec.Timeout, WorkflowTimeoutMillis)
	}
	if !exec.RetryPolicy.Enabled || exec.RetryPolicy.MaxAttempts != WorkflowMaxAttempts {
		t.Errorf("RetryPolicy = %+v", exec.RetryPolicy)
	}
	if exec.RetryPolicy.Backoff != WorkflowBackoff {
		t.Errorf("Backoff = %q, want %q", exec.RetryPolicy.Backoff, WorkflowBackoff)
	}
	if rec.Warp.ErrorHandling.Strategy != WorkflowErrorStrategy {
		t.Errorf("Strategy = %q, want %q", rec.Warp.ErrorHandling.Strategy, WorkflowErrorStrategy)
	}
	if len(rec.Warp.ErrorHandling.RecoveryActions) != 3 {
		t.Errorf("RecoveryActions = %v, want 3 entries", rec.Warp.ErrorHandling.RecoveryActions)
	}
}

func TestConvertWorkflow_Defaults(t *testing.T) {
	rec := ConvertWorkflow(descriptor.Workflow{}).Workflow

	if rec.ID != descriptor.DefaultWorkflowID || rec.Name != descriptor.DefaultWorkflowName {
		t.Errorf("ID/Name = %q/%q", rec.ID, rec.Name)
	}
	if rec.Type != descriptor.DefaultWorkflowType {
		t.Errorf("Type = %q, want %q", rec.Type, descriptor.DefaultWorkflowType)
	}
	if rec.Agents.Primary != descriptor.DefaultPrimaryAgent {
		t.Errorf("Primary = %q, want %q", rec.Agents.Primary, descriptor.DefaultPrimaryAgent)
	}
	if rec.Stages == nil || rec.Agents.Supporting == nil || rec.Agents.Handoffs == nil {
		t.Error("collections should be empty, not nil")
	}
}

func TestConvertWorkflow_FromSource(t *testing.T) {
	src := descriptor.Workflow{
		ID:               "brownfield",
		Name:             "Brownfield Service",
		Type:             "brownfield",
		Category:         "maintenance",
		Stages:           []any{map[string]any{"id": "analyze"}},
		PrimaryAgent:     "architect",
		SupportingAgents: []any{"dev"},
	}
	rec := ConvertWorkflow(src).Workflow

	if rec.ID != "brownfield" || rec.Type != "brownfield" {
		t.Errorf("ID/Type = %q/%q", rec.ID, rec.Type)
	}
	if rec.Metadata.Category != "maintenance" {
		t.Errorf("Category = %q", rec.Metadata.Category)
	}
	if len(rec.Stages) != 1 || rec.Agents.Primary != "architect" {
		t.Errorf("Stages/Primary = %v/%q", rec.Stages, rec.Agents.Primary)
	}
	manual := rec.Triggers.Manual
	if len(manual) != 2 || manual[0].Command != "/run brownfield" || manual[1].UIAction != "Run Brownfield Service" {
		t.Errorf("Manual = %+v", manual)
	}
}

func TestConvertWorkflow_SelfContained(t *testing.T) {
	stage := map[string]any{"agent": "pm", "creates": []any{"prd.md"}}
	handoff := map[string]any{"from": "pm", "to": "architect"}
	src := descriptor.Workflow{
		ID:               "greenfield",
		Stages:           []any{stage},
		SupportingAgents: []any{map[string]any{"id": "qa"}},
		Handoffs:         []any{handoff},
	}

	rec := ConvertWorkflow(src).Workflow

	stage["agent"] = "changed"
	stage["creates"].([]any)[0] = "changed"
	handoff["to"] = "changed"
	src.SupportingAgents[0].(map[string]any)["id"] = "changed"

	got := rec.Stages[0].(map[string]any)
	if got["agent"] != "pm" {
		t.Errorf("Stages[0][agent] = %v, want pm", got["agent"])
	}
	if created := got["creates"].([]any)[0]; created != "prd.md" {
		t.Errorf("Stages[0][creates][0] = %v, want prd.md", created)
	}
	if to := rec.Agents.Handoffs[0].(map[string]any)["to"]; to != "architect" {
		t.Errorf("Handoffs[0][to] = %v, want architect", to)
	}
	if id := rec.Agents.Supporting[0].(map[string]any)["id"]; id != "qa" {
		t.Errorf("Supporting[0][id] = %v, want qa", id)
	}
}
