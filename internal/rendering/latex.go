package rendering

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"text/template"

	"github.com/jonathan/cvkit/internal/cv"
	"github.com/jonathan/cvkit/internal/dates"
)

//go:embed templates/cv.tex.tmpl
var templateFS embed.FS

const defaultTemplate = "templates/cv.tex.tmpl"

// TemplateData is the structure passed to the LaTeX template. All strings are already escaped.
type TemplateData struct {
	Name       string
	Title      string
	Email      string
	Phone      string
	Location   string
	LinkedIn   string
	GitHub     string
	Summary    string
	Highlights []string
	TotalYears int
	Companies  []CompanySection
	Projects   []ProjectSection
	Education  []EducationSection
	Skills     []SkillSection
	Languages  []string
}

// CompanySection represents a company with one or more roles, in dataset order
type CompanySection struct {
	Company string
	Roles   []RoleSection
}

// RoleSection represents one experience entry within a company
type RoleSection struct {
	Position     string
	Location     string
	Dates        string // e.g. "Sep 2019 - Mar 2022"
	Duration     string // e.g. "2 years 6 months"
	Achievements []string
}

// ProjectSection represents a featured project
type ProjectSection struct {
	Name        string
	Description string
	Dates       string
	Highlights  []string
}

// EducationSection represents one education entry
type EducationSection struct {
	Institution string
	Degree      string
	Field       string
	Dates       string
}

// SkillSection represents a skill category
type SkillSection struct {
	Category string
	Names    []string
}

// RenderLaTeX renders the CV behind svc. An empty templatePath uses the bundled template.
func RenderLaTeX(svc *cv.Service, templatePath string) (string, error) {
	tmpl, err := loadTemplate(templatePath)
	if err != nil {
		return "", err
	}

	data, err := BuildTemplateData(svc)
	if err != nil {
		return "", &RenderError{Stage: StageData, Cause: err}
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", &RenderError{Stage: StageExecute, Path: templatePath, Cause: err}
	}

	return result.String(), nil
}

// loadTemplate reads the template at path, or the bundled template when path is empty
func loadTemplate(path string) (*template.Template, error) {
	var (
		content []byte
		err     error
	)
	if path == "" {
		content, err = templateFS.ReadFile(defaultTemplate)
	} else {
		content, err = os.ReadFile(path)
	}
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("template file not found: %w", err)
		}
		return nil, &RenderError{Stage: StageLoad, Path: path, Cause: err}
	}

	tmpl, err := template.New("cv").Funcs(template.FuncMap{
		"escape": EscapeLaTeX,
		"join":   strings.Join,
	}).Parse(string(content))
	if err != nil {
		return nil, &RenderError{Stage: StageParse, Path: path, Cause: err}
	}
	return tmpl, nil
}

// BuildTemplateData converts the CV behind svc into escaped template data
func BuildTemplateData(svc *cv.Service) (*TemplateData, error) {
	record := svc.Record()
	p := record.Personal

	years, err := svc.TotalYearsOfExperience()
	if err != nil {
		return nil, fmt.Errorf("failed to compute years of experience: %w", err)
	}

	companies, err := groupByCompany(svc)
	if err != nil {
		return nil, fmt.Errorf("failed to format experience: %w", err)
	}

	projects := make([]ProjectSection, 0)
	for _, proj := range svc.FeaturedProjects() {
		span, err := formatSpan(proj.StartDate, proj.EndDate)
		if err != nil {
			return nil, fmt.Errorf("project %s: %w", proj.ID, err)
		}
		projects = append(projects, ProjectSection{
			Name:        EscapeLaTeX(proj.Name),
			Description: EscapeLaTeX(proj.Description),
			Dates:       span,
			Highlights:  escapeAll(proj.Highlights),
		})
	}

	education := make([]EducationSection, 0, len(record.Education))
	for _, edu := range record.Education {
		end := edu.EndDate
		span, err := formatSpan(edu.StartDate, &end)
		if err != nil {
			return nil, fmt.Errorf("education %s: %w", edu.ID, err)
		}
		education = append(education, EducationSection{
			Institution: EscapeLaTeX(edu.Institution),
			Degree:      EscapeLaTeX(edu.Degree),
			Field:       EscapeLaTeX(edu.Field),
			Dates:       span,
		})
	}

	skills := make([]SkillSection, 0, len(record.Skills.Categories))
	for _, cat := range record.Skills.Categories {
		names := make([]string, len(cat.Skills))
		for i, s := range cat.Skills {
			names[i] = EscapeLaTeX(s.Name)
		}
		skills = append(skills, SkillSection{Category: EscapeLaTeX(cat.Category), Names: names})
	}

	languages := make([]string, len(record.Languages))
	for i, l := range record.Languages {
		languages[i] = EscapeLaTeX(fmt.Sprintf("%s (%s)", l.Language, l.Proficiency))
	}

	return &TemplateData{
		Name:       EscapeLaTeX(p.Name),
		Title:      EscapeLaTeX(p.Title),
		Email:      EscapeLaTeX(p.Email),
		Phone:      EscapeLaTeX(p.Phone),
		Location:   EscapeLaTeX(p.Location),
		LinkedIn:   p.LinkedIn,
		GitHub:     p.GitHub,
		Summary:    EscapeLaTeX(p.Summary),
		Highlights: escapeAll(record.Highlights),
		TotalYears: years,
		Companies:  companies,
		Projects:   projects,
		Education:  education,
		Skills:     skills,
		Languages:  languages,
	}, nil
}

// formatSpan renders a date range with a LaTeX en dash
func formatSpan(start string, end *string) (string, error) {
	span, err := dates.FormatRange(start, end)
	if err != nil {
		return "", err
	}
	return strings.Replace(span, " - ", " -- ", 1), nil
}

// groupByCompany groups timeline entries under their company, keeping the order companies
// are first seen and the dataset order of roles within each company
func groupByCompany(svc *cv.Service) ([]CompanySection, error) {
	timeline, err := svc.ExperienceTimeline()
	if err != nil {
		return nil, err
	}

	companies := make([]CompanySection, 0)
	index := make(map[string]int)

	for _, entry := range timeline {
		exp := entry.Experience
		i, seen := index[exp.Company]
		if !seen {
			i = len(companies)
			index[exp.Company] = i
			companies = append(companies, CompanySection{Company: EscapeLaTeX(exp.Company)})
		}

		companies[i].Roles = append(companies[i].Roles, RoleSection{
			Position:     EscapeLaTeX(exp.Position),
			Location:     EscapeLaTeX(exp.Location),
			Dates:        entry.Start + " -- " + entry.End,
			Duration:     entry.Duration,
			Achievements: escapeAll(exp.Achievements),
		})
	}

	return companies, nil
}
