// Package observability provides formatted, human-readable output for CLI commands.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cvkit/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for CLI commands
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most n runes, marking the cut with "..."
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// writeExperience appends a short block for one experience entry
func writeExperience(sb *strings.Builder, exp types.Experience) {
	sb.WriteString(fmt.Sprintf("%s — %s\n", exp.Position, exp.Company))
	end := "present"
	if exp.EndDate != nil {
		end = *exp.EndDate
	}
	sb.WriteString(fmt.Sprintf("    %s to %s, %s\n", exp.StartDate, end, exp.Location))
	if len(exp.Technologies) > 0 {
		sb.WriteString(fmt.Sprintf("    Tech: %s\n", strings.Join(exp.Technologies, ", ")))
	}
}

// PrintExperience outputs a list of experience entries under title.
func (p *Printer) PrintExperience(title string, entries []types.Experience) {
	if len(entries) == 0 {
		p.printBox(title, "No experience entries")
		return
	}

	var sb strings.Builder
	for i, exp := range entries {
		sb.WriteString(fmt.Sprintf("#%d  ", i+1))
		writeExperience(&sb, exp)
		if i < len(entries)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCurrentPosition outputs the ongoing position, or a notice when there is none.
func (p *Printer) PrintCurrentPosition(exp *types.Experience) {
	if exp == nil {
		p.printBox("CURRENT POSITION", "No current position")
		return
	}

	var sb strings.Builder
	writeExperience(&sb, *exp)
	if exp.Description != "" {
		sb.WriteString("\n" + exp.Description + "\n")
	}

	count := min(len(exp.Achievements), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", exp.Achievements[i]))
	}
	if len(exp.Achievements) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(exp.Achievements)-maxItemsToShow))
	}

	p.printBox("CURRENT POSITION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintProjects outputs projects under title.
func (p *Printer) PrintProjects(title string, projects []types.Project) {
	if len(projects) == 0 {
		p.printBox(title, "No projects")
		return
	}

	var sb strings.Builder
	for i, proj := range projects {
		status := ""
		if proj.IsOngoing() {
			status = " [ongoing]"
		}
		sb.WriteString(fmt.Sprintf("%s (%s)%s\n", proj.Name, proj.Role, status))
		sb.WriteString(fmt.Sprintf("    %s\n", proj.Description))
		if len(proj.Technologies) > 0 {
			sb.WriteString(fmt.Sprintf("    Tech: %s\n", strings.Join(proj.Technologies, ", ")))
		}
		if link := firstNonEmpty(proj.URL, proj.GitHub); link != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", link))
		}
		if i < len(projects)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCountryGroups outputs experience grouped by country.
func (p *Printer) PrintCountryGroups(groups []types.CountryGroup) {
	if len(groups) == 0 {
		p.printBox("EXPERIENCE BY COUNTRY", "No experience entries")
		return
	}

	var sb strings.Builder
	for _, g := range groups {
		sb.WriteString(fmt.Sprintf("%s (%d)\n", g.Country, len(g.Experience)))
		for _, exp := range g.Experience {
			sb.WriteString(fmt.Sprintf("  • %s at %s\n", exp.Position, exp.Company))
		}
	}

	p.printBox("EXPERIENCE BY COUNTRY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTimeline outputs experience with rendered dates and durations.
func (p *Printer) PrintTimeline(entries []types.TimelineEntry) {
	if len(entries) == 0 {
		p.printBox("TIMELINE", "No experience entries")
		return
	}

	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("%s - %s  %s\n", e.Start, e.End, e.Experience.Company))
		sb.WriteString(fmt.Sprintf("    %s, %s\n", e.Experience.Position, e.Duration))
	}

	p.printBox("TIMELINE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintYears outputs the total years of experience.
func (p *Printer) PrintYears(name string, years int) {
	unit := "years"
	if years == 1 {
		unit = "year"
	}
	p.printBox("TOTAL EXPERIENCE", fmt.Sprintf("%s: %d %s", name, years, unit))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
