package server

import (
	"net/http"
	"strconv"

	"github.com/jonathan/cvkit/internal/types"
)

// HealthResponse represents the response for /health
type HealthResponse struct {
	Status      string `json:"status"`
	Experiences int    `json:"experiences"`
	Projects    int    `json:"projects"`
}

// FormatDateResponse represents the response for /dates/format
type FormatDateResponse struct {
	Date      string `json:"date,omitempty"`
	Formatted string `json:"formatted"`
}

// DurationResponse represents the response for /dates/duration
type DurationResponse struct {
	Start    string `json:"start"`
	End      string `json:"end,omitempty"`
	Duration string `json:"duration"`
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	record := s.svc.Record()
	s.jsonResponse(w, http.StatusOK, HealthResponse{
		Status:      "ok",
		Experiences: len(record.Experience),
		Projects:    len(record.Projects),
	})
}

// handleCV returns the full dataset
func (s *Server) handleCV(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.svc.Record())
}

// handleRecentExperience returns the first ?count= experience entries
func (s *Server) handleRecentExperience(w http.ResponseWriter, r *http.Request) {
	query := types.RecentExperienceQuery{Count: s.recentCount}
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			s.writeError(w, r, &ErrValidation{Field: "count", Message: "must be an integer"})
			return
		}
		query.Count = n
	}
	if err := query.Validate(); err != nil {
		s.writeError(w, r, fromValidator(err))
		return
	}

	s.jsonResponse(w, http.StatusOK, s.svc.RecentExperience(query.Count))
}

// handleCurrentPosition returns the ongoing position, 404 when there is none
func (s *Server) handleCurrentPosition(w http.ResponseWriter, r *http.Request) {
	exp, ok := s.svc.CurrentPosition()
	if !ok {
		s.writeError(w, r, &ErrNotFound{Resource: "current position"})
		return
	}
	s.jsonResponse(w, http.StatusOK, exp)
}

func (s *Server) handleYears(w http.ResponseWriter, r *http.Request) {
	years, err := s.svc.TotalYearsOfExperience()
	if err != nil {
		s.writeError(w, r, &ErrDataset{Cause: err})
		return
	}
	s.jsonResponse(w, http.StatusOK, types.YearsOfExperience{Years: years})
}

func (s *Server) handleByCountry(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.svc.ExperienceByCountry())
}

func (s *Server) handleTimeline(w http.ResponseWriter, r *http.Request) {
	entries, err := s.svc.ExperienceTimeline()
	if err != nil {
		s.writeError(w, r, &ErrDataset{Cause: err})
		return
	}
	s.jsonResponse(w, http.StatusOK, entries)
}

// handleExperience returns a single experience entry by ID
func (s *Server) handleExperience(w http.ResponseWriter, r *http.Request) {
	query := types.LookupQuery{ID: r.PathValue("id")}
	if err := query.Validate(); err != nil {
		s.writeError(w, r, fromValidator(err))
		return
	}

	exp, ok := s.svc.ExperienceByID(query.ID)
	if !ok {
		s.writeError(w, r, &ErrNotFound{Resource: "experience", ID: query.ID})
		return
	}
	s.jsonResponse(w, http.StatusOK, exp)
}

func (s *Server) handleFeaturedProjects(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.svc.FeaturedProjects())
}

// handleProject returns a single project by ID
func (s *Server) handleProject(w http.ResponseWriter, r *http.Request) {
	query := types.LookupQuery{ID: r.PathValue("id")}
	if err := query.Validate(); err != nil {
		s.writeError(w, r, fromValidator(err))
		return
	}

	project, ok := s.svc.ProjectByID(query.ID)
	if !ok {
		s.writeError(w, r, &ErrNotFound{Resource: "project", ID: query.ID})
		return
	}
	s.jsonResponse(w, http.StatusOK, project)
}

// handleFormatDate formats ?date=, or reports "Present" when it is absent
func (s *Server) handleFormatDate(w http.ResponseWriter, r *http.Request) {
	query := types.FormatDateQuery{Date: r.URL.Query().Get("date")}
	if err := query.Validate(); err != nil {
		s.writeError(w, r, fromValidator(err))
		return
	}

	formatted, err := s.svc.FormatDate(query.DatePtr())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, FormatDateResponse{Date: query.Date, Formatted: formatted})
}

// handleDuration measures ?start= to ?end=, or to now when end is absent
func (s *Server) handleDuration(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := types.DurationQuery{Start: q.Get("start"), End: q.Get("end")}
	if err := query.Validate(); err != nil {
		s.writeError(w, r, fromValidator(err))
		return
	}

	duration, err := s.svc.Duration(query.Start, query.EndPtr())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, DurationResponse{Start: query.Start, End: query.End, Duration: duration})
}
