// Package server provides the read-only HTTP JSON API over the CV dataset.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/cvkit/internal/dates"
)

// ErrNotFound indicates the requested resource does not exist in the dataset
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrDataset wraps a failure computed from the served record rather than from request input
type ErrDataset struct {
	Cause error
}

func (e *ErrDataset) Error() string {
	return fmt.Sprintf("dataset error: %v", e.Cause)
}

func (e *ErrDataset) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		datasetErr *ErrDataset
		notFound   *ErrNotFound
		validation *ErrValidation
		fields     validator.ValidationErrors
		badDate    *dates.InvalidDateFormatError
		badRange   *dates.RangeError
	)

	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &datasetErr):
		return http.StatusInternalServerError
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &validation), errors.As(err, &fields):
		return http.StatusBadRequest
	case errors.As(err, &badDate), errors.As(err, &badRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fromValidator converts the first validator failure into an ErrValidation
func fromValidator(err error) error {
	var fields validator.ValidationErrors
	if !errors.As(err, &fields) || len(fields) == 0 {
		return err
	}
	fe := fields[0]
	msg := fmt.Sprintf("failed %q check", fe.Tag())
	if fe.Param() != "" {
		msg = fmt.Sprintf("failed %q check (%s)", fe.Tag(), fe.Param())
	}
	return &ErrValidation{Field: fe.Field(), Message: msg}
}
