package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/lucaschallamel/BMAD-METHOD/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyInstallDir = "install_dir"
	KeyRegistry   = "registry"
	KeyLogLevel   = "log_level"
)

// Settings are the user-level defaults for setup runs.
type Settings struct {
	// InstallDir is the project root containing .bmad-core.
	InstallDir string `mapstructure:"install_dir" validate:"required"`
	// Registry overrides the embedded mapping registry. Empty uses the
	// embedded one.
	Registry string `mapstructure:"registry"`
	LogLevel string `mapstructure:"log_level" validate:"oneof=debug info warn error disabled"`
}

var defaults = map[string]string{
	KeyInstallDir: ".",
	KeyRegistry:   "",
	KeyLogLevel:   "info",
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Keys returns every known setting key, sorted.
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Dir returns the path to the config directory (~/.bmad-warp/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.bmad-warp/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
// BMAD_WARP_INSTALL_DIR, BMAD_WARP_REGISTRY and BMAD_WARP_LOG_LEVEL
// override the file.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()
	for k, v := range defaults {
		viper.SetDefault(k, v)
	}

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Current returns the effective settings, validated.
func Current() (*Settings, error) {
	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decoding settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks field constraints.
func (s *Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid setting %s=%q: must satisfy %s", fe.Field(), fe.Value(), constraint(fe))
		}
		return fmt.Errorf("validating settings: %w", err)
	}
	return nil
}

func constraint(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + " " + fe.Param()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set validates and writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !slices.Contains(Keys(), key) {
		return fmt.Errorf("unknown key %q (known: %v)", key, Keys())
	}

	candidate, err := Current()
	if err != nil {
		candidate = &Settings{InstallDir: defaults[KeyInstallDir], LogLevel: defaults[KeyLogLevel]}
	}
	switch key {
	case KeyInstallDir:
		candidate.InstallDir = value
	case KeyRegistry:
		candidate.Registry = value
	case KeyLogLevel:
		candidate.LogLevel = value
	}
	if err := candidate.Validate(); err != nil {
		return err
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
