package warp

import (
	"context"
	"errors"
	"fmt"
	"path"

	"github.com/spf13/afero"

	"github.com/lucaschallamel/BMAD-METHOD/internal/descriptor"
	"github.com/lucaschallamel/BMAD-METHOD/internal/logger"
	"github.com/lucaschallamel/BMAD-METHOD/internal/mapping"
	"github.com/lucaschallamel/BMAD-METHOD/internal/transform"
)

// ManifestFile is the agent manifest name inside the agents directory.
const ManifestFile = "manifest.yaml"

// ItemState is the terminal state of one item in a batch.
type ItemState string

const (
	StateRecorded ItemState = "recorded" // emitted and added to the manifest
	StateSkipped  ItemState = "skipped"  // no source document
	StateFailed   ItemState = "failed"   // read or write failed
)

// Outcome records what happened to one item. Warnings are non-fatal
// problems of an item that was still recorded.
type Outcome struct {
	ID       string
	State    ItemState
	Warnings []error
	Err      error
}

// Manifest indexes every agent record written in a run.
type Manifest struct {
	Agents map[string]ManifestEntry `yaml:"agents" json:"agents"`
}

// ManifestEntry points at one emitted agent record.
type ManifestEntry struct {
	Name string `yaml:"name" json:"name"`
	Type string `yaml:"type" json:"type"`
	Path string `yaml:"path" json:"path"` // relative to the WARP directory
}

// AgentReport is the result of SetupAgents.
type AgentReport struct {
	Manifest Manifest
	Outcomes []Outcome
}

// Count returns the number of outcomes in state s.
func (r *AgentReport) Count(s ItemState) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.State == s {
			n++
		}
	}
	return n
}

// SetupAgents converts each agent in ids, in order, and writes the manifest
// once every item has been handled. Per-item problems never stop the loop;
// the returned error is reserved for the manifest write.
func (in *Installer) SetupAgents(ctx context.Context, ids []string, reg *mapping.Registry) (*AgentReport, error) {
	if reg == nil {
		return nil, errors.New("setting up agents: registry not loaded")
	}
	log := logger.FromContext(ctx)

	report := &AgentReport{Manifest: Manifest{Agents: map[string]ManifestEntry{}}}
	for _, id := range ids {
		outcome, entry := in.setupAgent(log, id, reg)
		if outcome.State == StateRecorded {
			report.Manifest.Agents[id] = entry
		}
		report.Outcomes = append(report.Outcomes, outcome)
	}

	manifestPath := in.targetPath("agents", ManifestFile)
	if err := in.writeYAML(manifestPath, report.Manifest); err != nil {
		return report, fmt.Errorf("writing agent manifest: %w", err)
	}
	log.Info("Created agent manifest", "agents", len(report.Manifest.Agents))
	return report, nil
}

// setupAgent runs the pipeline for a single agent.
func (in *Installer) setupAgent(log logger.Logger, id string, reg *mapping.Registry) (Outcome, ManifestEntry) {
	src, ok := in.FindAgentPath(id)
	if !ok {
		return Outcome{ID: id, State: StateSkipped}, ManifestEntry{}
	}

	data, err := afero.ReadFile(in.fs, src)
	if err != nil {
		log.Warn("Failed to read agent", "agent", id, "error", err)
		return Outcome{ID: id, State: StateFailed, Err: err}, ManifestEntry{}
	}

	parsed := descriptor.Parse(data)
	for _, w := range parsed.Warnings {
		log.Warn("Failed to parse agent metadata", "agent", id, "error", w)
	}

	doc := transform.Transform(id, parsed.Profile, reg.Lookup(id), in.version)

	rel := path.Join("agents", id+".yaml")
	if err := in.writeYAML(in.targetPath(rel), doc); err != nil {
		log.Warn("Failed to write agent", "agent", id, "error", err)
		return Outcome{ID: id, State: StateFailed, Warnings: parsed.Warnings, Err: err}, ManifestEntry{}
	}
	log.Info("Created WARP agent", "agent", id)

	return Outcome{ID: id, State: StateRecorded, Warnings: parsed.Warnings}, ManifestEntry{
		Name: doc.Agent.Name,
		Type: doc.Agent.Type,
		Path: rel,
	}
}
