package warp

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/lucaschallamel/BMAD-METHOD/internal/artifacts"
	"github.com/lucaschallamel/BMAD-METHOD/internal/logger"
	"github.com/lucaschallamel/BMAD-METHOD/internal/mapping"
)

// Options selects what Setup converts.
type Options struct {
	// Agent limits the run to a single agent id. Empty means every agent
	// found in the project.
	Agent string
}

// SetupReport summarizes a full install.
type SetupReport struct {
	RegistrySource string
	Directories    []string
	Files          []string // static files written, relative to the root
	Agents         *AgentReport
	Workflows      *WorkflowReport
}

// Setup installs the complete WARP integration. The registry is loaded
// first and a load failure aborts the run before anything is written.
func (in *Installer) Setup(ctx context.Context, loader *mapping.Loader, opts Options) (*SetupReport, error) {
	log := logger.FromContext(ctx)
	log.Info("Setting up WARP Terminal Editor integration", "root", in.root)

	reg, err := loader.Load()
	if err != nil {
		return nil, err
	}
	report := &SetupReport{RegistrySource: reg.Source()}

	for _, dir := range reg.Directories() {
		full := filepath.Join(in.root, dir.Path)
		if err := in.fs.MkdirAll(full, dirPerm); err != nil {
			return report, fmt.Errorf("creating %s: %w", dir.Path, err)
		}
		report.Directories = append(report.Directories, dir.Path)
		log.Debug("Created directory", "path", dir.Path, "description", dir.Description)
	}

	if err := in.writeConfig(reg, report); err != nil {
		return report, err
	}

	ids := []string{opts.Agent}
	if opts.Agent == "" {
		if ids, err = in.AgentIDs(); err != nil {
			return report, err
		}
	}
	if report.Agents, err = in.SetupAgents(ctx, ids, reg); err != nil {
		return report, err
	}
	if report.Workflows, err = in.SetupWorkflows(ctx); err != nil {
		return report, err
	}

	steps := []func(*SetupReport) error{
		in.writeRules,
		in.writePrompts,
		in.writeNotebook,
		in.writeEnvironment,
	}
	for _, step := range steps {
		if err := step(report); err != nil {
			return report, err
		}
	}

	log.Info("WARP integration setup complete",
		"agents", len(report.Agents.Manifest.Agents),
		"workflows", len(report.Workflows.Converted()))
	return report, nil
}

// emit writes data under the WARP directory and records it on the report.
func (in *Installer) emit(report *SetupReport, data []byte, elem ...string) error {
	path := in.targetPath(elem...)
	if err := in.writeFile(path, data); err != nil {
		return err
	}
	report.Files = append(report.Files, in.rel(path))
	return nil
}

func (in *Installer) rel(path string) string {
	if r, err := filepath.Rel(in.root, path); err == nil {
		return filepath.ToSlash(r)
	}
	return path
}

func (in *Installer) writeConfig(reg *mapping.Registry, report *SetupReport) error {
	tmpl, ok := reg.ConfigTemplate()
	if !ok {
		return errors.New("registry has no warp-config template")
	}
	content := artifacts.Substitute(tmpl, artifacts.VersionPlaceholder, in.version)
	return in.emit(report, []byte(content), "config.yaml")
}

func (in *Installer) writeRules(report *SetupReport) error {
	path := in.targetPath("rules", "bmad-rules.yaml")
	if err := in.writeYAML(path, artifacts.Rules()); err != nil {
		return err
	}
	report.Files = append(report.Files, in.rel(path))
	return nil
}

func (in *Installer) writePrompts(report *SetupReport) error {
	system, err := artifacts.SystemPrompt()
	if err != nil {
		return fmt.Errorf("loading system prompt: %w", err)
	}
	if err := in.emit(report, system, "prompts", "system.md"); err != nil {
		return err
	}
	tmpl, err := artifacts.ContextPrompt()
	if err != nil {
		return fmt.Errorf("loading context prompt: %w", err)
	}
	return in.emit(report, tmpl, "prompts", "context-template.md")
}

func (in *Installer) writeNotebook(report *SetupReport) error {
	nb, err := artifacts.Notebook()
	if err != nil {
		return err
	}
	return in.emit(report, nb, "notebooks", "bmad-examples.ipynb")
}

func (in *Installer) writeEnvironment(report *SetupReport) error {
	env, err := artifacts.Environment(in.version)
	if err != nil {
		return fmt.Errorf("loading environment template: %w", err)
	}
	return in.emit(report, env, "env", "bmad.env")
}
