package mcpconfig

import (
	"fmt"
	"regexp"
	"strings"
)

// ValidationError represents a single validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationResult holds the result of validating a config file.
type ValidationResult struct {
	Valid    bool              `json:"valid"`
	Errors   []ValidationError `json:"errors,omitempty"`
	Warnings []ValidationError `json:"warnings,omitempty"`
}

// Regular expressions for validation
var (
	serverNamePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_.-]*$`)
	envVarPattern     = regexp.MustCompile(`^[A-Z_][A-Z0-9_]*$`)
)

// Validate checks a parsed config against the schema rules.
func Validate(cfg *Config) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if len(cfg.McpServers) == 0 {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "mcpServers",
			Message: "no servers configured",
		})
	}

	for name, sc := range cfg.McpServers {
		prefix := "mcpServers." + name
		if !serverNamePattern.MatchString(name) {
			result.Errors = append(result.Errors, ValidationError{
				Field:   prefix,
				Message: "server name must be alphanumeric with _ . - separators",
			})
		}
		if strings.TrimSpace(sc.Command) == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   prefix + ".command",
				Message: "command is required",
			})
		}
		for _, arg := range sc.Args {
			if strings.TrimSpace(arg) == "" {
				result.Warnings = append(result.Warnings, ValidationError{
					Field:   prefix + ".args",
					Message: "empty argument",
				})
			}
		}
		for key := range sc.Env {
			if !envVarPattern.MatchString(key) {
				result.Warnings = append(result.Warnings, ValidationError{
					Field:   prefix + ".env." + key,
					Message: "environment variable names are conventionally UPPER_SNAKE_CASE",
				})
			}
		}
	}

	if len(result.Errors) > 0 {
		result.Valid = false
	}
	return result
}
