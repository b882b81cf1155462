// Package types provides type definitions for the CV dataset and the derived views built from it.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// UnknownCountry is the country bucket for locations without a "City, Country" pattern
const UnknownCountry = "Unknown"

// EmploymentType is the kind of engagement for an experience entry
type EmploymentType string

// Employment types accepted by the dataset schema
const (
	EmploymentFullTime  EmploymentType = "full-time"
	EmploymentContract  EmploymentType = "contract"
	EmploymentFreelance EmploymentType = "freelance"
)

// CVRecord is the root aggregate holding all résumé content
type CVRecord struct {
	Personal       Personal        `json:"personal"`
	International  International   `json:"international"`
	Highlights     []string        `json:"highlights"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Skills         Skills          `json:"skills"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
	Languages      []Language      `json:"languages"`
}

// Personal holds the candidate profile
type Personal struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Headline string `json:"headline"`
	Summary  string `json:"summary"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedIn"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
	Photo    string `json:"photo,omitempty"`
}

// International summarizes work abroad
type International struct {
	Headline  string                 `json:"headline"`
	Countries []InternationalCountry `json:"countries"`
}

// InternationalCountry is one country in the international summary
type InternationalCountry struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Years       string `json:"years"`
	Description string `json:"description"`
	Flag        string `json:"flag,omitempty"`
}

// Experience represents a single employment entry.
// A nil EndDate means the engagement is ongoing.
type Experience struct {
	ID           string         `json:"id"`
	Company      string         `json:"company"`
	Position     string         `json:"position"`
	Location     string         `json:"location"`
	StartDate    string         `json:"startDate"`
	EndDate      *string        `json:"endDate"`
	Description  string         `json:"description"`
	Achievements []string       `json:"achievements"`
	Technologies []string       `json:"technologies,omitempty"`
	Type         EmploymentType `json:"type"`
}

// IsCurrent reports whether the experience has no end date
func (e Experience) IsCurrent() bool {
	return e.EndDate == nil
}

// Country returns the last comma-separated token of Location, trimmed.
// Locations without a comma, or with an empty trailing token, map to UnknownCountry.
func (e Experience) Country() string {
	idx := strings.LastIndex(e.Location, ",")
	if idx < 0 {
		return UnknownCountry
	}
	country := strings.TrimSpace(e.Location[idx+1:])
	if country == "" {
		return UnknownCountry
	}
	return country
}

// Education represents a degree or course of study
type Education struct {
	ID          string   `json:"id"`
	Institution string   `json:"institution"`
	Degree      string   `json:"degree"`
	Field       string   `json:"field"`
	Location    string   `json:"location"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	GPA         string   `json:"gpa,omitempty"`
	Honors      []string `json:"honors,omitempty"`
	Description string   `json:"description,omitempty"`
}

// Skill is a named skill with optional proficiency
type Skill struct {
	Name              string `json:"name"`
	Proficiency       string `json:"proficiency,omitempty"`
	YearsOfExperience int    `json:"yearsOfExperience,omitempty"`
}

// SkillCategory groups skills under a heading
type SkillCategory struct {
	Category string  `json:"category"`
	Skills   []Skill `json:"skills"`
}

// Skills holds all skill categories
type Skills struct {
	Categories []SkillCategory `json:"categories"`
}

// Project represents a portfolio project.
// A nil EndDate means the project is ongoing.
type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Role         string   `json:"role"`
	Technologies []string `json:"technologies"`
	StartDate    string   `json:"startDate"`
	EndDate      *string  `json:"endDate"`
	URL          string   `json:"url,omitempty"`
	GitHub       string   `json:"github,omitempty"`
	Highlights   []string `json:"highlights"`
	Featured     bool     `json:"featured"`
}

// IsOngoing reports whether the project has no end date
func (p Project) IsOngoing() bool {
	return p.EndDate == nil
}

// Certification represents a professional certification
type Certification struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Issuer        string  `json:"issuer"`
	IssueDate     string  `json:"issueDate"`
	ExpiryDate    *string `json:"expiryDate,omitempty"`
	CredentialID  string  `json:"credentialId,omitempty"`
	CredentialURL string  `json:"credentialUrl,omitempty"`
}

// Language is a spoken language with proficiency
type Language struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency"`
}
