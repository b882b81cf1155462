// Package cv provides the read-only queries over a CV record: recent and current experience,
// featured projects, years of experience and grouping by country.
package cv

import (
	"fmt"

	"github.com/jonathan/cvkit/internal/dates"
	"github.com/jonathan/cvkit/internal/types"
)

// DefaultRecentCount is the number of entries RecentExperience callers ask for by default
const DefaultRecentCount = 3

// Service answers queries against one immutable CV record. It is safe for concurrent use.
type Service struct {
	record *types.CVRecord
	clock  dates.Clock
}

// Option configures a Service
type Option func(*Service)

// WithClock sets the clock used for open-ended durations and years of experience
func WithClock(clock dates.Clock) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// New creates a Service over record. A nil record behaves as an empty CV.
func New(record *types.CVRecord, opts ...Option) *Service {
	if record == nil {
		record = &types.CVRecord{}
	}
	s := &Service{
		record: record,
		clock:  dates.SystemClock{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Record returns the underlying record. Callers must not modify it.
func (s *Service) Record() *types.CVRecord {
	return s.record
}

// Clock returns the clock the service computes "now" from
func (s *Service) Clock() dates.Clock {
	return s.clock
}

// RecentExperience returns the first count entries in dataset order, which is most recent first.
// A count larger than the list returns every entry; a negative count returns none.
func (s *Service) RecentExperience(count int) []types.Experience {
	count = max(0, min(count, len(s.record.Experience)))
	recent := make([]types.Experience, count)
	copy(recent, s.record.Experience)
	return recent
}

// FeaturedProjects returns projects flagged as featured, in dataset order
func (s *Service) FeaturedProjects() []types.Project {
	featured := make([]types.Project, 0)
	for _, p := range s.record.Projects {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured
}

// CurrentPosition returns the first experience entry without an end date
func (s *Service) CurrentPosition() (*types.Experience, bool) {
	for _, exp := range s.record.Experience {
		if exp.IsCurrent() {
			current := exp
			return &current, true
		}
	}
	return nil, false
}

// TotalYearsOfExperience returns the current calendar year minus the year of the earliest start
// date. Months are ignored, so a start in December of last year counts as one year.
func (s *Service) TotalYearsOfExperience() (int, error) {
	if len(s.record.Experience) == 0 {
		return 0, nil
	}

	var earliest dates.YearMonth
	for i, exp := range s.record.Experience {
		start, err := dates.ParseYearMonth(exp.StartDate)
		if err != nil {
			return 0, fmt.Errorf("experience %s: %w", exp.ID, err)
		}
		if i == 0 || start.Before(earliest) {
			earliest = start
		}
	}

	return s.clock.Now().Year() - earliest.Year, nil
}

// ExperienceByCountry groups experience by the country of its location. Groups appear in the
// order their country is first seen; entries keep dataset order within a group.
func (s *Service) ExperienceByCountry() []types.CountryGroup {
	groups := make([]types.CountryGroup, 0)
	index := make(map[string]int)

	for _, exp := range s.record.Experience {
		country := exp.Country()
		i, ok := index[country]
		if !ok {
			i = len(groups)
			index[country] = i
			groups = append(groups, types.CountryGroup{Country: country})
		}
		groups[i].Experience = append(groups[i].Experience, exp)
	}

	return groups
}

// ExperienceByID returns the experience entry with the given ID
func (s *Service) ExperienceByID(id string) (*types.Experience, bool) {
	for _, exp := range s.record.Experience {
		if exp.ID == id {
			found := exp
			return &found, true
		}
	}
	return nil, false
}

// ProjectByID returns the project with the given ID
func (s *Service) ProjectByID(id string) (*types.Project, bool) {
	for _, p := range s.record.Projects {
		if p.ID == id {
			found := p
			return &found, true
		}
	}
	return nil, false
}

// FormatDate renders an optional CV date, "Present" when nil
func (s *Service) FormatDate(date *string) (string, error) {
	return dates.FormatDate(date)
}

// Duration renders the span between two CV dates using the service clock for an open end
func (s *Service) Duration(start string, end *string) (string, error) {
	return dates.CalculateDuration(start, end, s.clock)
}

// ExperienceTimeline returns every experience entry with its rendered range and duration
func (s *Service) ExperienceTimeline() ([]types.TimelineEntry, error) {
	timeline := make([]types.TimelineEntry, 0, len(s.record.Experience))

	for _, exp := range s.record.Experience {
		start, err := dates.FormatDate(&exp.StartDate)
		if err != nil {
			return nil, fmt.Errorf("experience %s: %w", exp.ID, err)
		}
		end, err := dates.FormatDate(exp.EndDate)
		if err != nil {
			return nil, fmt.Errorf("experience %s: %w", exp.ID, err)
		}
		duration, err := s.Duration(exp.StartDate, exp.EndDate)
		if err != nil {
			return nil, fmt.Errorf("experience %s: %w", exp.ID, err)
		}

		timeline = append(timeline, types.TimelineEntry{
			Experience: exp,
			Start:      start,
			End:        end,
			Duration:   duration,
		})
	}

	return timeline, nil
}
