package facade

import "strings"

// reply mirrors the rough shape of the real facade's JSON document.
type reply struct {
	ID      string  `json:"id"`
	Success bool    `json:"success"`
	Reason  string  `json:"reason,omitempty"`
	Result  []issue `json:"result"`
}

type issue struct {
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// checkSource runs the stub's deterministic checks. These are deliberately
// shallow — enough to give demos believable diagnostics, nothing like the
// real compiler.
func checkSource(source string) []issue {
	issues := []issue{}

	if !strings.Contains(source, "//@version=") {
		issues = append(issues, issue{
			Line:     1,
			Column:   1,
			Severity: "warning",
			Message:  "missing //@version= directive",
		})
	}

	if line, col, ok := firstUnbalanced(source); ok {
		issues = append(issues, issue{
			Line:     line,
			Column:   col,
			Severity: "error",
			Message:  "unbalanced bracket",
		})
	}

	return issues
}

func hasErrors(issues []issue) bool {
	for _, is := range issues {
		if is.Severity == "error" {
			return true
		}
	}
	return false
}

// firstUnbalanced scans round and square brackets and reports the position
// of the first close without a matching open, or of the first unclosed open
// when the script ends with brackets still pending.
func firstUnbalanced(source string) (line, col int, found bool) {
	type pos struct{ line, col int }
	var stack []struct {
		ch byte
		at pos
	}

	line = 1
	col = 0
	for i := 0; i < len(source); i++ {
		ch := source[i]
		col++
		switch ch {
		case '\n':
			line++
			col = 0
		case '(', '[':
			stack = append(stack, struct {
				ch byte
				at pos
			}{ch, pos{line, col}})
		case ')', ']':
			want := byte('(')
			if ch == ']' {
				want = '['
			}
			if len(stack) == 0 || stack[len(stack)-1].ch != want {
				return line, col, true
			}
			stack = stack[:len(stack)-1]
		}
	}

	if len(stack) > 0 {
		at := stack[0].at
		return at.line, at.col, true
	}
	return 0, 0, false
}
