// Package branding provides compile-time identity values for the CLI.
//
// branding.yaml is embedded with //go:embed; values missing from it fall
// back to the hard defaults below.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
	SourceDir   string `yaml:"source_dir"`
	TargetDir   string `yaml:"target_dir"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:     "bmad-warp",
			DisplayName: "BMAD-WARP",
			Description: "Generate WARP terminal agent configuration from BMAD agents and workflows",
			HomeDir:     ".bmad-warp",
			EnvPrefix:   "BMAD_WARP",
			GoModule:    "github.com/lucaschallamel/BMAD-METHOD",
			SourceDir:   ".bmad-core",
			TargetDir:   ".warp",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "bmad-warp").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".bmad-warp").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "BMAD_WARP").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// SourceDir returns the BMAD core directory inside an install root (".bmad-core").
func SourceDir() string { load(); return defaults.SourceDir }

// TargetDir returns the WARP directory inside an install root (".warp").
func TargetDir() string { load(); return defaults.TargetDir }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("REGISTRY") → "BMAD_WARP_REGISTRY".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
