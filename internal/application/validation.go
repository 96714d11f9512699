package application

import (
	"fmt"
	"strings"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// ValidateIndex checks that a list index is not negative. Upper bounds are
// checked against the document when the edit is applied.
func ValidateIndex(fieldName string, index int) error {
	if index < 0 {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must not be negative, got: %d", formatFieldName(fieldName), index),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "exportPath" -> "export path")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"path":       "path",
		"section":    "section",
		"field":      "field",
		"index":      "index",
		"exportPath": "export path",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}
