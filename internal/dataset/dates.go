package dataset

import (
	"fmt"

	"github.com/jonathan/cvkit/internal/dates"
	"github.com/jonathan/cvkit/internal/types"
)

// checkDates parses every date in record. The schema only checks shape, so impossible
// calendar dates such as 2020-02-30 are caught here.
func checkDates(record *types.CVRecord) error {
	check := func(kind, id, field, value string) error {
		if _, err := dates.ParseYearMonth(value); err != nil {
			return fmt.Errorf("%s %s %s: %w", kind, id, field, err)
		}
		return nil
	}
	checkOptional := func(kind, id, field string, value *string) error {
		if value == nil || *value == "" {
			return nil
		}
		return check(kind, id, field, *value)
	}

	for _, exp := range record.Experience {
		if err := check("experience", exp.ID, "startDate", exp.StartDate); err != nil {
			return err
		}
		if err := checkOptional("experience", exp.ID, "endDate", exp.EndDate); err != nil {
			return err
		}
	}
	for _, edu := range record.Education {
		if err := check("education", edu.ID, "startDate", edu.StartDate); err != nil {
			return err
		}
		if err := check("education", edu.ID, "endDate", edu.EndDate); err != nil {
			return err
		}
	}
	for _, proj := range record.Projects {
		if err := check("project", proj.ID, "startDate", proj.StartDate); err != nil {
			return err
		}
		if err := checkOptional("project", proj.ID, "endDate", proj.EndDate); err != nil {
			return err
		}
	}
	for _, cert := range record.Certifications {
		if err := check("certification", cert.ID, "issueDate", cert.IssueDate); err != nil {
			return err
		}
		if err := checkOptional("certification", cert.ID, "expiryDate", cert.ExpiryDate); err != nil {
			return err
		}
	}
	return nil
}
