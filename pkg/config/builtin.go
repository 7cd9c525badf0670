package config

// builtinMaskingPatterns are the default redactions applied to
// tool-result content. User patterns with the same name override these.
var builtinMaskingPatterns = map[string]MaskingPattern{
	"api_key": {
		Pattern:     `(?i)(api[_-]?key\s*[=:]\s*)\S+`,
		Replacement: "${1}***MASKED***",
		Description: "API key assignments in key=value or key: value form",
	},
	"bearer_token": {
		Pattern:     `(?i)(bearer\s+)[a-zA-Z0-9._\-]+`,
		Replacement: "${1}***MASKED***",
		Description: "Bearer tokens in authorization headers",
	},
	"password": {
		Pattern:     `(?i)(password\s*[=:]\s*)\S+`,
		Replacement: "${1}***MASKED***",
		Description: "Password assignments in key=value or key: value form",
	},
}

// BuiltinMaskingConfig returns the default masking configuration with a
// fresh pattern map on every call, so callers can mutate freely.
func BuiltinMaskingConfig() MaskingConfig {
	patterns := make(map[string]MaskingPattern, len(builtinMaskingPatterns))
	for name, p := range builtinMaskingPatterns {
		patterns[name] = p
	}
	return MaskingConfig{Patterns: patterns}
}
