package interview

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Embedded schema names.
const (
	schemaQuestion  = "schemas/question.json"
	schemaScorecard = "schemas/scorecard.json"
)

// FieldError is one schema violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// SchemaError lists the violations found in a model reply. It unwraps to ErrGenerationFailed.
type SchemaError struct {
	Schema string
	Errors []FieldError
}

func (e *SchemaError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return fmt.Sprintf("reply does not match %s: %s", e.Schema, strings.Join(parts, "; "))
}

func (e *SchemaError) Unwrap() error {
	return ErrGenerationFailed
}

// validateReply checks the JSON document against an embedded schema.
func validateReply(schemaName, document string) error {
	raw, err := schemaFS.ReadFile(schemaName)
	if err != nil {
		return fmt.Errorf("load schema %s: %w", schemaName, err)
	}
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(raw),
		gojsonschema.NewStringLoader(document),
	)
	if err != nil {
		return fmt.Errorf("%w: validate reply: %v", ErrGenerationFailed, err)
	}
	if result.Valid() {
		return nil
	}
	schemaErr := &SchemaError{Schema: schemaName}
	for _, re := range result.Errors() {
		schemaErr.Errors = append(schemaErr.Errors, FieldError{Field: re.Field(), Message: re.Description()})
	}
	return schemaErr
}

// decodeReply extracts the first JSON object from reply, validates it and unmarshals it into v.
func decodeReply(reply, schemaName string, v any) error {
	span, ok := firstObject(reply)
	if !ok {
		return fmt.Errorf("%w: no json object in reply", ErrGenerationFailed)
	}
	if err := validateReply(schemaName, span); err != nil {
		return err
	}
	return ExtractJSON(span, v)
}
