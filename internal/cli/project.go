package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/lucaschallamel/BMAD-METHOD/internal/config"
	"github.com/lucaschallamel/BMAD-METHOD/internal/mapping"
	"github.com/lucaschallamel/BMAD-METHOD/internal/warp"
)

// project bundles the installer and registry loader for one command run.
type project struct {
	installer *warp.Installer
	loader    *mapping.Loader
}

// openProject resolves dir and registryPath, falling back to the saved
// settings for whichever flag is empty.
func openProject(dir, registryPath string) (*project, error) {
	settings, err := config.Current()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		dir = settings.InstallDir
	}
	if registryPath == "" {
		registryPath = settings.Registry
	}

	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving install directory %s: %w", dir, err)
	}

	fs := afero.NewOsFs()
	return &project{
		installer: warp.New(fs, root, buildVersion),
		loader:    mapping.NewLoader(fs, registryPath),
	}, nil
}
