// Package masking redacts sensitive material (API keys, tokens,
// passwords) from tool-result content before it reaches the rendering
// layer. Patterns come from configuration; all are compiled eagerly at
// construction and invalid ones are logged and skipped, so a bad user
// pattern degrades masking coverage instead of breaking the viewer.
package masking

import (
	"log/slog"
	"regexp"
	"sort"

	"github.com/codeready-toolchain/traceline/pkg/config"
)

// compiledPattern holds a pre-compiled regex pattern with its replacement.
type compiledPattern struct {
	name        string
	regex       *regexp.Regexp
	replacement string
}

// Service applies data masking to tool-result content. Created once and
// stateless aside from compiled patterns; safe for concurrent use.
type Service struct {
	enabled  bool
	patterns []compiledPattern
}

// NewService compiles the configured patterns into a masking service.
// Patterns are applied in sorted name order so masking is deterministic
// when replacements overlap.
func NewService(cfg config.MaskingConfig) *Service {
	s := &Service{enabled: cfg.IsMaskingEnabled()}

	names := make([]string, 0, len(cfg.Patterns))
	for name := range cfg.Patterns {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		p := cfg.Patterns[name]
		compiled, err := regexp.Compile(p.Pattern)
		if err != nil {
			slog.Error("Failed to compile masking pattern, skipping",
				"pattern", name, "error", err)
			continue
		}
		s.patterns = append(s.patterns, compiledPattern{
			name:        name,
			regex:       compiled,
			replacement: p.Replacement,
		})
	}

	slog.Info("Masking service initialized",
		"enabled", s.enabled,
		"compiled_patterns", len(s.patterns))

	return s
}

// MaskContent applies all compiled patterns to the given content and
// returns the redacted form. When masking is disabled the content passes
// through untouched.
func (s *Service) MaskContent(content string) string {
	if !s.enabled || content == "" {
		return content
	}
	for _, p := range s.patterns {
		content = p.regex.ReplaceAllString(content, p.replacement)
	}
	return content
}
