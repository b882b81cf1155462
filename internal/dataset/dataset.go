// Package dataset provides the CV record bundled into the binary and loaders for override files.
// The embedded record is parsed and validated once per process.
package dataset

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/jonathan/cvkit/internal/schemas"
	"github.com/jonathan/cvkit/internal/types"
)

//go:embed cv.json
var embedded []byte

var (
	defaultOnce   sync.Once
	defaultRecord *types.CVRecord
	defaultErr    error
)

// Embedded returns the raw bundled CV JSON
func Embedded() []byte {
	return embedded
}

// Default returns the bundled CV record. The result is shared and must be treated as read-only.
func Default() (*types.CVRecord, error) {
	defaultOnce.Do(func() {
		defaultRecord, defaultErr = Parse(embedded)
	})
	return defaultRecord, defaultErr
}

// MustDefault returns the bundled CV record, panicking if it is malformed.
// Intended for startup.
func MustDefault() *types.CVRecord {
	record, err := Default()
	if err != nil {
		panic(fmt.Sprintf("embedded CV dataset is invalid: %v", err))
	}
	return record
}

// Parse validates raw CV JSON against the CV schema and decodes it
func Parse(data []byte) (*types.CVRecord, error) {
	if err := schemas.ValidateCV(data); err != nil {
		return nil, &LoadError{
			Message: "schema validation failed",
			Cause:   err,
		}
	}

	var record types.CVRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	if err := checkDates(&record); err != nil {
		return nil, &LoadError{
			Message: "invalid date",
			Cause:   err,
		}
	}

	return &record, nil
}

// LoadFile reads and parses a CV dataset from disk
func LoadFile(path string) (*types.CVRecord, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}
	return Parse(content)
}

// Resolve returns the record at path, or the bundled record when path is empty
func Resolve(path string) (*types.CVRecord, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}
