package rendering

import (
	"bufio"
	"fmt"
	"regexp"
	"strings"
)

var (
	// latexCommandPattern matches \cmd{content} and \x{content}
	latexCommandPattern = regexp.MustCompile(`\\([a-zA-Z]+|.)\{[^}]*\}`)
	// commentPattern matches an unescaped % comment through end of line
	commentPattern = regexp.MustCompile(`(^|[^\\])%.*$`)
)

// LineIssue reports a rendered line whose visible text exceeds the limit
type LineIssue struct {
	Line  int `json:"line"`
	Chars int `json:"chars"`
	Max   int `json:"max"`
}

func (i LineIssue) String() string {
	return fmt.Sprintf("line %d has %d characters, maximum is %d", i.Line, i.Chars, i.Max)
}

// CheckLineLengths returns every line of latex whose visible text is longer than maxChars.
// Comment lines are skipped; a non-positive maxChars disables the check.
func CheckLineLengths(latex string, maxChars int) []LineIssue {
	if maxChars <= 0 {
		return nil
	}

	var issues []LineIssue
	scanner := bufio.NewScanner(strings.NewReader(latex))
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		if strings.HasPrefix(strings.TrimSpace(line), "%") {
			continue
		}

		stripped := commentPattern.ReplaceAllString(line, "$1")
		if n := visibleChars(stripped); n > maxChars {
			issues = append(issues, LineIssue{Line: lineNum, Chars: n, Max: maxChars})
		}
	}

	return issues
}

// visibleChars approximates the printed width of a LaTeX line by keeping only command arguments
func visibleChars(line string) int {
	processed := latexCommandPattern.ReplaceAllStringFunc(line, func(match string) string {
		start := strings.Index(match, "{")
		end := strings.LastIndex(match, "}")
		if start >= 0 && end > start {
			return match[start+1 : end]
		}
		return ""
	})
	return len([]rune(strings.TrimSpace(processed)))
}
