package warp

import (
	"context"
	"fmt"
	"slices"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"go.yaml.in/yaml/v3"

	"github.com/lucaschallamel/BMAD-METHOD/internal/logger"
	"github.com/lucaschallamel/BMAD-METHOD/internal/transform"
	"github.com/lucaschallamel/BMAD-METHOD/internal/version"
)

// InstallStatus describes an existing WARP integration.
type InstallStatus struct {
	Installed        bool     `json:"installed"`
	Agents           []string `json:"agents"`            // manifest ids, sorted
	InstalledVersion string   `json:"installed_version"` // BMAD_VERSION from the env file
	CurrentVersion   string   `json:"current_version"`
	Outdated         bool     `json:"outdated"`
}

// Status reads back the agent manifest and environment file. A project
// without a manifest reports Installed=false and no error.
func (in *Installer) Status(ctx context.Context) (*InstallStatus, error) {
	log := logger.FromContext(ctx)
	st := &InstallStatus{CurrentVersion: in.version}

	manifestPath := in.targetPath("agents", ManifestFile)
	ok, err := afero.Exists(in.fs, manifestPath)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", manifestPath, err)
	}
	if !ok {
		return st, nil
	}
	st.Installed = true

	data, err := afero.ReadFile(in.fs, manifestPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", manifestPath, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", manifestPath, err)
	}
	for id := range m.Agents {
		st.Agents = append(st.Agents, id)
	}
	slices.Sort(st.Agents)

	env, err := in.readEnv()
	if err != nil {
		log.Warn("Failed to read environment file", "error", err)
		return st, nil
	}
	st.InstalledVersion = env[transform.EnvVersion]
	if st.InstalledVersion == "" {
		return st, nil
	}
	outdated, err := version.IsOutdated(st.InstalledVersion, in.version)
	if err != nil {
		log.Debug("Versions not comparable", "installed", st.InstalledVersion, "current", in.version, "error", err)
		return st, nil
	}
	st.Outdated = outdated
	return st, nil
}

func (in *Installer) readEnv() (map[string]string, error) {
	f, err := in.fs.Open(in.targetPath("env", "bmad.env"))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return godotenv.Parse(f)
}
