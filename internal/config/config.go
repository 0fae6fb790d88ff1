/*
PURPOSE:
  Defines the configuration structure and loading logic for Prompt Runner.
  Adheres to "Config IS Code" philosophy.

REQUIREMENTS:
  User-specified:
  - Allow configuration of the target endpoint, models, prompt categories,
    and output file locations.

  Implementation-discovered:
  - Needs to support YAML parsing.
  - CLI flags override file values; the file itself is optional.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/engine
  - Dependencies: gopkg.in/yaml.v3 (standard for Go config)

ERROR HANDLING:
  - Returns explicit error if config file is invalid.
  - A missing config file is not an error; defaults apply.

IMPLEMENTATION RULES:
  - Config struct tags should support yaml.
  - Defaults should be sensible (local Ollama, benchmarks/ prompt dir).

USAGE:
  cfg, err := config.Load("runner.yaml")

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new tuning parameters.
*/

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the full configuration for Prompt Runner.
type Config struct {
	// BaseURL is the serving endpoint, e.g. http://localhost:11434
	BaseURL string `yaml:"base_url"`
	// Models to benchmark. Overridable via --models.
	Models []string `yaml:"models"`
	// Category restricts the run to one prompt category. Empty means all.
	Category string `yaml:"category"`
	// PromptsDir holds one JSON prompt file per category.
	PromptsDir string `yaml:"prompts_dir"`
	// LedgerFile is the append-only CSV accumulating one row per success.
	LedgerFile string `yaml:"ledger_file"`
	// JSONLFile, when set, mirrors every recorded result as one JSON line.
	JSONLFile string `yaml:"jsonl_file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:    "http://localhost:11434",
		Models:     []string{"gemma3:4b"},
		PromptsDir: "benchmarks",
		LedgerFile: "results/all_benchmarks.csv",
	}
}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches for default files in order.
// If no file found, returns default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
	} else {
		// Search for defaults
		defaults := []string{"runner.yaml", "prompt_runner.yaml"}
		found := false
		for _, name := range defaults {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name // record which file we loaded
				found = true
				break
			}
		}
		if !found {
			// No config file found, return default
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}
