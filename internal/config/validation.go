package config

import (
	"fmt"
	"strings"

	"github.com/conneroisu/devutils/internal/logging"
)

// MaxPrecision bounds percentage.precision; float64 has no more meaningful
// decimal digits than this.
const MaxPrecision = 15

// MaxTokenLength bounds generate.token_length.
const MaxTokenLength = 4096

// ValidationError represents a configuration validation error with suggestions
type ValidationError struct {
	Field       string
	Value       interface{}
	Message     string
	Suggestions []string
}

func (ve *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: %s", ve.Field, ve.Message)
	if len(ve.Suggestions) > 0 {
		msg += " (" + strings.Join(ve.Suggestions, "; ") + ")"
	}
	return msg
}

func validateConfig(config *Config) error {
	if _, err := logging.ParseLevel(config.Log.Level); err != nil {
		return &ValidationError{
			Field:       "log.level",
			Value:       config.Log.Level,
			Message:     err.Error(),
			Suggestions: []string{"use one of debug, info, warn, error"},
		}
	}

	switch config.Log.Format {
	case "text", "json":
	default:
		return &ValidationError{
			Field:       "log.format",
			Value:       config.Log.Format,
			Message:     fmt.Sprintf("unknown log format %q", config.Log.Format),
			Suggestions: []string{"use text or json"},
		}
	}

	if err := validateEditor(config.Editor); err != nil {
		return err
	}

	if config.List.Separator == "" {
		return &ValidationError{
			Field:   "list.separator",
			Message: "separator cannot be empty",
		}
	}

	if err := ValidatePrecision(config.Percentage.Precision); err != nil {
		return &ValidationError{Field: "percentage.precision", Value: config.Percentage.Precision, Message: err.Error()}
	}

	if config.Generate.TokenLength < 1 || config.Generate.TokenLength > MaxTokenLength {
		return &ValidationError{
			Field:   "generate.token_length",
			Value:   config.Generate.TokenLength,
			Message: fmt.Sprintf("token length %d is not in range 1-%d", config.Generate.TokenLength, MaxTokenLength),
		}
	}

	return nil
}

// ValidatePrecision checks a decimal precision.
func ValidatePrecision(precision int) error {
	if precision < 0 || precision > MaxPrecision {
		return fmt.Errorf("precision %d is not in range 0-%d", precision, MaxPrecision)
	}
	return nil
}

// The editor command is split on whitespace and executed directly, never
// through a shell.
func validateEditor(editor string) error {
	if editor == "" {
		return nil
	}

	dangerousChars := []string{";", "&", "|", "$", "`", "<", ">"}
	for _, char := range dangerousChars {
		if strings.Contains(editor, char) {
			return &ValidationError{
				Field:       "editor",
				Value:       editor,
				Message:     fmt.Sprintf("editor contains shell metacharacter %s", char),
				Suggestions: []string{"give the editor binary and its arguments only, e.g. \"code --wait\""},
			}
		}
	}

	return nil
}
