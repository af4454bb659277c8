package warp

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/lucaschallamel/BMAD-METHOD/internal/descriptor"
	"github.com/lucaschallamel/BMAD-METHOD/internal/logger"
	"github.com/lucaschallamel/BMAD-METHOD/internal/transform"
)

// WorkflowReport is the result of SetupWorkflows. Outcome ids are the
// workflow file names.
type WorkflowReport struct {
	Outcomes []Outcome
}

// Converted returns the file names of workflows that were written.
func (r *WorkflowReport) Converted() []string {
	var names []string
	for _, o := range r.Outcomes {
		if o.State == StateRecorded {
			names = append(names, o.ID)
		}
	}
	return names
}

// SetupWorkflows converts every *.yaml file in the BMAD workflows directory.
// A missing directory is not an error. Files that fail to read, parse or
// write are logged and skipped.
func (in *Installer) SetupWorkflows(ctx context.Context) (*WorkflowReport, error) {
	log := logger.FromContext(ctx)
	report := &WorkflowReport{}

	dir := in.sourcePath("workflows")
	ok, err := afero.DirExists(in.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", dir, err)
	}
	if !ok {
		return report, nil
	}

	files, err := in.glob(dir, "*.yaml")
	if err != nil {
		return nil, err
	}

	for _, file := range files {
		if err := in.setupWorkflow(dir, file); err != nil {
			log.Warn("Failed to convert workflow", "workflow", file, "error", err)
			report.Outcomes = append(report.Outcomes, Outcome{ID: file, State: StateFailed, Err: err})
			continue
		}
		log.Info("Created WARP workflow", "workflow", strings.TrimSuffix(file, ".yaml"))
		report.Outcomes = append(report.Outcomes, Outcome{ID: file, State: StateRecorded})
	}
	return report, nil
}

func (in *Installer) setupWorkflow(dir, file string) error {
	data, err := afero.ReadFile(in.fs, filepath.Join(dir, file))
	if err != nil {
		return fmt.Errorf("reading %s: %w", file, err)
	}
	wf, err := descriptor.ParseWorkflow(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", file, err)
	}
	return in.writeYAML(in.targetPath("workflows", file), transform.ConvertWorkflow(wf))
}
