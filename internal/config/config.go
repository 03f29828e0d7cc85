package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ConfigFileName is looked up in the source directory passed to Load.
const ConfigFileName = "sqlfhir.yaml"

// Environment variable overrides, applied after the file is read.
const (
	EnvOutputDir = "SQLFHIR_OUTPUT_DIR"
	EnvStatus    = "SQLFHIR_STATUS"
	EnvPublisher = "SQLFHIR_PUBLISHER"
)

// ProjectConfig holds project-level defaults for library generation.
// Annotations in individual SQL files always take precedence over
// these values.
type ProjectConfig struct {
	OutputDir string `yaml:"output_dir"`
	Status    string `yaml:"status"`
	Publisher string `yaml:"publisher"`
}

// Load reads sqlfhir.yaml from the given directory and applies
// environment overrides. A missing file returns ErrConfigNotFound;
// callers typically fall back to FromEnvironment in that case.
func Load(sourcePath string) (*ProjectConfig, error) {
	configPath := filepath.Join(sourcePath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", configPath, err)
	}
	cfg.applyEnvOverrides()
	return &cfg, nil
}

// FromEnvironment builds a config from environment variables alone.
// Used when no config file is present.
func FromEnvironment() *ProjectConfig {
	cfg := &ProjectConfig{}
	cfg.applyEnvOverrides()
	return cfg
}

func (c *ProjectConfig) applyEnvOverrides() {
	if v := os.Getenv(EnvOutputDir); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv(EnvStatus); v != "" {
		c.Status = v
	}
	if v := os.Getenv(EnvPublisher); v != "" {
		c.Publisher = v
	}
}
