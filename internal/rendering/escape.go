// Package rendering renders a CV record into a LaTeX document from a text/template.
package rendering

import "strings"

// latexReplacer escapes \ { } $ & % # ^ _ ~ in a single pass
var latexReplacer = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`$`, `\$`,
	`&`, `\&`,
	`%`, `\%`,
	`#`, `\#`,
	`^`, `\textasciicircum{}`,
	`_`, `\_`,
	`~`, `\textasciitilde{}`,
)

// EscapeLaTeX escapes special LaTeX characters in text
func EscapeLaTeX(text string) string {
	if text == "" {
		return ""
	}
	return latexReplacer.Replace(text)
}

// escapeAll escapes every element of texts into a new slice
func escapeAll(texts []string) []string {
	out := make([]string, len(texts))
	for i, t := range texts {
		out[i] = EscapeLaTeX(t)
	}
	return out
}
