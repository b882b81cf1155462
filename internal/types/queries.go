package types

import "github.com/go-playground/validator/v10"

// MaxRecentCount caps the number of entries a recent-experience query may ask for
const MaxRecentCount = 100

// RecentExperienceQuery represents a request for the most recent experience entries.
type RecentExperienceQuery struct {
	Count int `json:"count" validate:"min=0,max=100"`
}

// FormatDateQuery represents a request to format a single date. An empty Date means "Present".
type FormatDateQuery struct {
	Date string `json:"date,omitempty" validate:"omitempty,max=32"`
}

// DurationQuery represents a request for the duration between two dates.
// An empty End means the duration runs until now.
type DurationQuery struct {
	Start string `json:"start" validate:"required,max=32"`
	End   string `json:"end,omitempty" validate:"omitempty,max=32"`
}

// LookupQuery represents a request for a single entry by ID.
type LookupQuery struct {
	ID string `json:"id" validate:"required,max=128,printascii"`
}

var queryValidator = validator.New()

// Validate validates the RecentExperienceQuery using the validator.
func (q *RecentExperienceQuery) Validate() error {
	return queryValidator.Struct(q)
}

// Validate validates the FormatDateQuery using the validator.
func (q *FormatDateQuery) Validate() error {
	return queryValidator.Struct(q)
}

// Validate validates the DurationQuery using the validator.
func (q *DurationQuery) Validate() error {
	return queryValidator.Struct(q)
}

// Validate validates the LookupQuery using the validator.
func (q *LookupQuery) Validate() error {
	return queryValidator.Struct(q)
}

// EndPtr returns End as an optional date, nil when empty.
func (q *DurationQuery) EndPtr() *string {
	if q.End == "" {
		return nil
	}
	end := q.End
	return &end
}

// DatePtr returns Date as an optional date, nil when empty.
func (q *FormatDateQuery) DatePtr() *string {
	if q.Date == "" {
		return nil
	}
	date := q.Date
	return &date
}
