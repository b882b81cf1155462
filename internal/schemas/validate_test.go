package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalCV = `{
	"personal": {"name": "Ada Lovelace", "title": "Engineer", "headline": "h", "summary": "s", "email": "ada@example.com", "location": "London, UK", "linkedIn": "https://linkedin.com/in/ada"},
	"international": {"headline": "", "countries": []},
	"highlights": [],
	"experience": [
		{"id": "exp_1", "company": "Acme", "position": "Engineer", "location": "Berlin, Germany", "startDate": "2020-01", "endDate": null, "description": "", "achievements": [], "type": "full-time"}
	],
	"education": [],
	"skills": {"categories": []},
	"projects": [],
	"certifications": [],
	"languages": []
}`

func mutate(t *testing.T, fn func(doc map[string]any)) []byte {
	t.Helper()
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(minimalCV), &doc))
	fn(doc)
	out, err := json.Marshal(doc)
	require.NoError(t, err)
	return out
}

func firstExperience(doc map[string]any) map[string]any {
	return doc["experience"].([]any)[0].(map[string]any)
}

func TestCVSchema_IsValidJSON(t *testing.T) {
	var v map[string]any
	require.NoError(t, json.Unmarshal(CVSchema(), &v))
	assert.Equal(t, "object", v["type"])
	assert.Contains(t, v, "definitions")
}

func TestValidateCV_Valid(t *testing.T) {
	assert.NoError(t, ValidateCV([]byte(minimalCV)))
}

func TestValidateCV_MissingSection(t *testing.T) {
	doc := mutate(t, func(doc map[string]any) {
		delete(doc, "projects")
	})

	err := ValidateCV(doc)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	require.Len(t, validationErr.Errors, 1)
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
	assert.Contains(t, validationErr.Errors[0].Message, "projects")
}

func TestValidateCV_BadDates(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value any
	}{
		{name: "month out of range", field: "startDate", value: "2020-13"},
		{name: "year only", field: "startDate", value: "2020"},
		{name: "free text end", field: "endDate", value: "present"},
		{name: "numeric", field: "startDate", value: 2020},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mutate(t, func(doc map[string]any) {
				firstExperience(doc)[tt.field] = tt.value
			})

			err := ValidateCV(doc)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "experience.0."+tt.field)
		})
	}
}

func TestValidateCV_FullDateAccepted(t *testing.T) {
	doc := mutate(t, func(doc map[string]any) {
		firstExperience(doc)["startDate"] = "2020-01-15"
		firstExperience(doc)["endDate"] = "2021-02-01"
	})
	assert.NoError(t, ValidateCV(doc))
}

func TestValidateCV_EmploymentTypeEnum(t *testing.T) {
	doc := mutate(t, func(doc map[string]any) {
		firstExperience(doc)["type"] = "internship"
	})

	err := ValidateCV(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "experience.0.type")
}

func TestValidateCV_MalformedJSON(t *testing.T) {
	err := ValidateCV([]byte("{ invalid json }"))
	require.Error(t, err)
	_, isValidation := err.(*ValidationError)
	assert.False(t, isValidation)
}

func TestValidateCVFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "cv.json")
	require.NoError(t, os.WriteFile(path, []byte(minimalCV), 0644))

	assert.NoError(t, ValidateCVFile(path))

	err := ValidateCVFile(filepath.Join(tmpDir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSON_Files(t *testing.T) {
	tmpDir := t.TempDir()
	schemaPath := filepath.Join(tmpDir, "schema.json")
	jsonPath := filepath.Join(tmpDir, "doc.json")

	schema := `{"type": "object", "required": ["name"], "properties": {"name": {"type": "string"}}}`
	require.NoError(t, os.WriteFile(schemaPath, []byte(schema), 0644))

	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"name": "cvkit"}`), 0644))
	assert.NoError(t, ValidateJSON(schemaPath, jsonPath))

	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"name": 42}`), 0644))
	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)
	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Equal(t, "name", validationErr.Errors[0].Field)

	err = ValidateJSON(filepath.Join(tmpDir, "nope.json"), jsonPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema file not found")
}

func TestValidationError_Format(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{
		{Field: "experience.0.startDate", Message: "Does not match pattern"},
		{Field: "(root)", Message: "projects is required"},
	}}

	msg := err.Error()
	assert.True(t, strings.HasPrefix(msg, "schema validation failed (2 problems):"))
	assert.Contains(t, msg, "\n  - experience.0.startDate: Does not match pattern")
	assert.Contains(t, msg, "\n  - (root): projects is required")
}

func TestNewValidator_InvalidSchema(t *testing.T) {
	_, err := NewValidator("broken.json", []byte(`{"type": 12}`))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "broken.json", loadErr.Source)
}

func TestValidator_ReportsType(t *testing.T) {
	v, err := NewValidator("inline", []byte(`{"type": "object", "required": ["id"]}`))
	require.NoError(t, err)

	err = v.Validate([]byte(`{}`))
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Errors, 1)
	assert.Equal(t, "required", ve.Errors[0].Type)
}
