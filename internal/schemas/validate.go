// Package schemas provides JSON Schema validation for CV documents.
package schemas

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed cv.schema.json
var cvSchema []byte

// CVSchema returns the embedded CV document schema
func CVSchema() []byte {
	return cvSchema
}

// rootField labels violations on the document itself
const rootField = "(root)"

// FieldError is one schema violation. Field is a dotted path such as experience.0.startDate.
type FieldError struct {
	Field   string
	Type    string
	Message string
}

// ValidationError lists every violation found in a document
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "schema validation failed (%d problems):", len(ve.Errors))
	for _, fe := range ve.Errors {
		fmt.Fprintf(&sb, "\n  - %s: %s", fe.Field, fe.Message)
	}
	return sb.String()
}

// SchemaLoadError means the schema itself could not be read or compiled
type SchemaLoadError struct {
	Source string
	Cause  error
}

func (e *SchemaLoadError) Error() string {
	return fmt.Sprintf("invalid schema %s: %v", e.Source, e.Cause)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// Validator checks JSON documents against one compiled schema. It is safe for concurrent use.
type Validator struct {
	schema *gojsonschema.Schema
}

// NewValidator compiles schema. source names it in errors.
func NewValidator(source string, schema []byte) (*Validator, error) {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schema))
	if err != nil {
		return nil, &SchemaLoadError{Source: source, Cause: err}
	}
	return &Validator{schema: compiled}, nil
}

// Validate returns a *ValidationError listing violations, or another error when document is not JSON
func (v *Validator) Validate(document []byte) error {
	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(document))
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" || field == rootField {
			field = rootField
		}
		ve.Errors = append(ve.Errors, FieldError{
			Field:   field,
			Type:    desc.Type(),
			Message: desc.Description(),
		})
	}
	return ve
}

var cvValidator = sync.OnceValues(func() (*Validator, error) {
	return NewValidator("cv.schema.json", cvSchema)
})

// ValidateCV validates raw CV JSON against the embedded schema
func ValidateCV(document []byte) error {
	v, err := cvValidator()
	if err != nil {
		return err
	}
	return v.Validate(document)
}

// ValidateCVFile validates a CV JSON file on disk against the embedded schema
func ValidateCVFile(path string) error {
	document, err := readJSONFile(path)
	if err != nil {
		return err
	}
	return ValidateCV(document)
}

// ValidateJSON validates the JSON file at jsonPath against the JSON Schema file at schemaPath
func ValidateJSON(schemaPath, jsonPath string) error {
	schema, err := readFile("schema", schemaPath)
	if err != nil {
		return err
	}
	document, err := readJSONFile(jsonPath)
	if err != nil {
		return err
	}

	v, err := NewValidator(schemaPath, schema)
	if err != nil {
		return err
	}
	return v.Validate(document)
}

func readJSONFile(path string) ([]byte, error) {
	return readFile("JSON", path)
}

func readFile(kind, path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s file not found: %s", kind, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s file %s: %w", kind, path, err)
	}
	return content, nil
}
