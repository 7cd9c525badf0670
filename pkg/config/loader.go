package config

import (
	"fmt"
	"log/slog"
	"os"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"

	"github.com/codeready-toolchain/traceline/pkg/version"
)

// Load reads an optional traceline.yaml, expands environment variables,
// merges it over the builtin defaults (user values win), validates, and
// returns ready-to-use configuration. An empty path or a missing file
// yields the builtin defaults.
func Load(path string) (*Config, error) {
	userCfg := &TracelineYAMLConfig{}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			slog.Info("Config file not found, using builtin defaults", "path", path)
		case err != nil:
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(ExpandEnv(data), userCfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	masking := BuiltinMaskingConfig()
	if userCfg.Masking != nil {
		if err := mergo.Merge(&masking, *userCfg.Masking, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge masking config: %w", err)
		}
	}

	if err := validate(userCfg, &masking); err != nil {
		return nil, err
	}

	slog.Info("Configuration loaded",
		"version", version.Full(),
		"path", path,
		"agent_names", len(userCfg.AgentNames),
		"masking_patterns", len(masking.Patterns),
		"masking_enabled", masking.IsMaskingEnabled())

	return &Config{
		AgentNames: NewAgentNameRegistry(userCfg.AgentNames),
		Masking:    masking,
	}, nil
}

// validate rejects configuration that would silently misbehave at
// timeline-build time.
func validate(cfg *TracelineYAMLConfig, masking *MaskingConfig) error {
	for id, name := range cfg.AgentNames {
		if id == "" {
			return fmt.Errorf("agent_names: empty agent id is not allowed")
		}
		if name == "" {
			return fmt.Errorf("agent_names: display name for %q must not be empty", id)
		}
	}
	for name, p := range masking.Patterns {
		if p.Pattern == "" {
			return fmt.Errorf("masking.patterns.%s: pattern must not be empty", name)
		}
	}
	return nil
}
