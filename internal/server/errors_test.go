package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jonathan/cvkit/internal/dates"
	"github.com/jonathan/cvkit/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	_, dateErr := dates.ParseYearMonth("2020-13")
	_, rangeErr := dates.CalculateDuration("2021-01", ptr("2020-01"), nil)
	require.Error(t, dateErr)
	require.Error(t, rangeErr)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"not found", &ErrNotFound{Resource: "project", ID: "x"}, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", &ErrNotFound{Resource: "experience"}), http.StatusNotFound},
		{"validation", &ErrValidation{Field: "count", Message: "bad"}, http.StatusBadRequest},
		{"invalid date", dateErr, http.StatusBadRequest},
		{"range", rangeErr, http.StatusBadRequest},
		{"other", errors.New("boom"), http.StatusInternalServerError},
		{"dataset date", &ErrDataset{Cause: fmt.Errorf("experience x: %w", dateErr)}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrNotFound_Error(t *testing.T) {
	assert.Equal(t, "project not found: p1", (&ErrNotFound{Resource: "project", ID: "p1"}).Error())
	assert.Equal(t, "current position not found", (&ErrNotFound{Resource: "current position"}).Error())
}

func TestFromValidator(t *testing.T) {
	q := types.RecentExperienceQuery{Count: 500}
	err := fromValidator(q.Validate())

	var ve *ErrValidation
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Count", ve.Field)
	assert.Contains(t, ve.Message, "max")
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func ptr(s string) *string { return &s }
