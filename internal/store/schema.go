package store

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/khrees2412/quickcv/pkg/models"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume.schema.json
var resumeSchema []byte

var schemaLoader = gojsonschema.NewBytesLoader(resumeSchema)

// FieldError is a single schema violation
type FieldError struct {
	Field   string
	Message string
}

// SchemaError lists every violation found in a snapshot. It matches
// ErrSchemaMismatch with errors.Is.
type SchemaError struct {
	Errors []FieldError
	Cause  error
}

func (e *SchemaError) Error() string {
	var sb strings.Builder
	sb.WriteString(ErrSchemaMismatch.Error())
	if e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}
	for _, fe := range e.Errors {
		sb.WriteString(fmt.Sprintf("; %s: %s", fe.Field, fe.Message))
	}
	return sb.String()
}

func (e *SchemaError) Is(target error) bool {
	return target == ErrSchemaMismatch
}

func (e *SchemaError) Unwrap() error {
	return e.Cause
}

// Decode validates raw snapshot JSON against the resume schema and the
// model's date invariants, then decodes it.
func Decode(raw []byte) (models.Resume, error) {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return models.Resume{}, &SchemaError{Cause: err}
	}

	if !result.Valid() {
		schemaErr := &SchemaError{Errors: make([]FieldError, 0, len(result.Errors()))}
		for _, desc := range result.Errors() {
			field := desc.Field()
			if field == "" {
				field = "(root)"
			}
			schemaErr.Errors = append(schemaErr.Errors, FieldError{Field: field, Message: desc.Description()})
		}
		return models.Resume{}, schemaErr
	}

	var r models.Resume
	if err := json.Unmarshal(raw, &r); err != nil {
		return models.Resume{}, &SchemaError{Cause: err}
	}
	if err := r.Validate(); err != nil {
		return models.Resume{}, &SchemaError{Cause: err}
	}
	return r.Normalize(), nil
}
