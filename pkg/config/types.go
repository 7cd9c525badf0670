// Package config loads the viewer configuration: the agent display-name
// table and the tool-result masking patterns. Builtin defaults are
// merged with an optional user YAML overlay; user values win.
package config

// TracelineYAMLConfig represents the complete traceline.yaml file structure.
type TracelineYAMLConfig struct {
	AgentNames map[string]string `yaml:"agent_names"`
	Masking    *MaskingConfig    `yaml:"masking"`
}

// MaskingConfig holds tool-result redaction settings.
type MaskingConfig struct {
	Enabled  *bool                     `yaml:"enabled,omitempty"`
	Patterns map[string]MaskingPattern `yaml:"patterns,omitempty"`
}

// MaskingPattern is one named regex replacement applied to tool-result
// content before display.
type MaskingPattern struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
	Description string `yaml:"description,omitempty"`
}

// IsMaskingEnabled resolves the tri-state Enabled flag; masking defaults
// to on when patterns exist.
func (c *MaskingConfig) IsMaskingEnabled() bool {
	if c == nil {
		return false
	}
	if c.Enabled != nil {
		return *c.Enabled
	}
	return len(c.Patterns) > 0
}

// Config is the resolved, ready-to-use configuration.
type Config struct {
	AgentNames *AgentNameRegistry
	Masking    MaskingConfig
}
