// Package schema checks serialized résumé documents against the JSON Schema
// they are persisted and exported with.
package schema

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume.schema.json
var resumeSchema string

var schemaLoader = gojsonschema.NewStringLoader(resumeSchema)

// Document returns the raw JSON Schema of a résumé document
func Document() string {
	return resumeSchema
}

// ValidationError lists every place a document deviates from the schema
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("document does not match schema:")
	for _, err := range ve.Errors {
		fmt.Fprintf(&sb, " %s: %s;", err.Field, err.Message)
	}
	return strings.TrimSuffix(sb.String(), ";")
}

// ValidateDocument validates serialized JSON against the résumé schema.
// Malformed JSON is reported as a plain error, schema violations as
// *ValidationError.
func ValidateDocument(data []byte) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("failed to validate document: %w", err)
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
