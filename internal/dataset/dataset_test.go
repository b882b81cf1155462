package dataset

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/cvkit/internal/dates"
	"github.com/jonathan/cvkit/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_EmbeddedRecordIsValid(t *testing.T) {
	record, err := Default()
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.NotEmpty(t, record.Personal.Name)
	assert.NotEmpty(t, record.Experience)
	assert.NotEmpty(t, record.Projects)

	again, err := Default()
	require.NoError(t, err)
	assert.Same(t, record, again, "embedded record should be parsed once")
}

func TestMustDefault_DoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = MustDefault()
	})
}

func TestDefault_EmbeddedOrdering(t *testing.T) {
	record := MustDefault()

	require.NotEmpty(t, record.Experience)
	first := record.Experience[0]
	assert.True(t, first.IsCurrent(), "most recent experience should be listed first")
}

func TestParse_SchemaValidationFailure(t *testing.T) {
	_, err := Parse([]byte(`{"personal": {"name": "Ada"}}`))
	require.Error(t, err)

	loadErr, ok := err.(*LoadError)
	require.True(t, ok, "error should be LoadError type")
	assert.Contains(t, loadErr.Error(), "schema validation failed")

	var validationErr *schemas.ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := Parse([]byte("{ invalid json }"))
	require.Error(t, err)

	_, ok := err.(*LoadError)
	assert.True(t, ok, "error should be LoadError type")
}

func TestLoadFile_RoundTripsEmbedded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.json")
	require.NoError(t, os.WriteFile(path, Embedded(), 0644))

	record, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, MustDefault(), record)
}

func TestLoadFile_FileNotFound(t *testing.T) {
	_, err := LoadFile("nonexistent_file.json")
	require.Error(t, err)

	loadErr, ok := err.(*LoadError)
	require.True(t, ok, "error should be LoadError type")
	assert.Contains(t, loadErr.Error(), "failed to read file")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestResolve(t *testing.T) {
	record, err := Resolve("")
	require.NoError(t, err)
	assert.Same(t, MustDefault(), record)

	_, err = Resolve("/nonexistent/cv.json")
	assert.Error(t, err)
}

func TestParse_ImpossibleCalendarDate(t *testing.T) {
	tests := []struct {
		name string
		old  string
		new  string
		want string
	}{
		{"experience start", `"startDate": "2022-04"`, `"startDate": "2020-02-30"`, "experience exp_payflow startDate"},
		{"project end", `"endDate": "2022-06"`, `"endDate": "2022-06-31"`, "project proj_ledger endDate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Contains(t, string(Embedded()), tt.old)
			data := bytes.Replace(Embedded(), []byte(tt.old), []byte(tt.new), 1)

			record, err := Parse(data)
			require.Error(t, err)
			assert.Nil(t, record)

			var loadErr *LoadError
			require.ErrorAs(t, err, &loadErr)
			assert.Equal(t, "invalid date", loadErr.Message)
			assert.ErrorIs(t, err, dates.ErrInvalidDateFormat)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParse_FullDatesAccepted(t *testing.T) {
	data := bytes.Replace(Embedded(), []byte(`"startDate": "2022-04"`), []byte(`"startDate": "2022-04-15"`), 1)

	record, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "2022-04-15", record.Experience[0].StartDate)
}
