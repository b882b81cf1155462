package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLaTeX(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "plain", input: "Built distributed systems", want: "Built distributed systems"},
		{name: "backslash", input: `a\b`, want: `a\textbackslash{}b`},
		{name: "braces", input: "text{with}braces", want: `text\{with\}braces`},
		{name: "dollar", input: "cost $100", want: `cost \$100`},
		{name: "ampersand", input: "R&D", want: `R\&D`},
		{name: "percent", input: "60% fewer incidents", want: `60\% fewer incidents`},
		{name: "hash", input: "C#", want: `C\#`},
		{name: "caret", input: "x^2", want: `x\textasciicircum{}2`},
		{name: "underscore", input: "snake_case", want: `snake\_case`},
		{name: "tilde", input: "~/bin", want: `\textasciitilde{}/bin`},
		{name: "no double escape", input: `\{`, want: `\textbackslash{}\{`},
		{name: "unicode kept", input: "Zürich", want: "Zürich"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeLaTeX(tt.input))
		})
	}
}

func TestEscapeAll(t *testing.T) {
	out := escapeAll([]string{"a_b", "c"})
	assert.Equal(t, []string{`a\_b`, "c"}, out)
	assert.Empty(t, escapeAll(nil))
}
