package errors

import (
	"strings"
	"testing"

	"github.com/see-reach/seereach/internal/token"
)

const sampleSource = `fn main(x: int) -> int {
  return y
}`

func TestCompilerErrorFormat(t *testing.T) {
	err := NewCompilerError(token.Position{Line: 2, Column: 10}, "undefined variable \"y\"", sampleSource, "")
	out := err.Format(false)

	if !strings.Contains(out, "Error at line 2:10") {
		t.Errorf("missing position header in %q", out)
	}
	if !strings.Contains(out, "return y") {
		t.Errorf("missing source line in %q", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("missing caret in %q", out)
	}
	if !strings.Contains(out, "undefined variable") {
		t.Errorf("missing message in %q", out)
	}
}

func TestCompilerErrorWithFile(t *testing.T) {
	err := NewCompilerError(token.Position{Line: 1, Column: 1}, "boom", sampleSource, "main.sr")
	out := err.Format(false)
	if !strings.Contains(out, "Error in main.sr:1:1") {
		t.Errorf("missing file header in %q", out)
	}
}

func TestCaretColumn(t *testing.T) {
	err := NewCompilerError(token.Position{Line: 2, Column: 10}, "msg", sampleSource, "")
	lines := strings.Split(err.Format(false), "\n")
	// Header, source line, caret line, message.
	if len(lines) < 3 {
		t.Fatalf("unexpected format shape: %q", lines)
	}
	caretLine := lines[2]
	// "%4d | " prefix is 7 runes wide; column 10 puts the caret at index 16.
	if idx := strings.Index(caretLine, "^"); idx != 7+10-1 {
		t.Errorf("caret at index %d, want %d in %q", idx, 7+10-1, caretLine)
	}
}

func TestFormatErrorsWithContextMultiple(t *testing.T) {
	errs := []*CompilerError{
		NewCompilerError(token.Position{Line: 1, Column: 1}, "first", sampleSource, ""),
		NewCompilerError(token.Position{Line: 2, Column: 3}, "second", sampleSource, ""),
	}
	out := FormatErrorsWithContext(errs, 1, false)
	if !strings.Contains(out, "Compilation failed with 2 error(s)") {
		t.Errorf("missing summary header in %q", out)
	}
	if !strings.Contains(out, "[Error 1 of 2]") || !strings.Contains(out, "[Error 2 of 2]") {
		t.Errorf("missing per-error headers in %q", out)
	}
}

func TestFormatErrorsWithContextSingle(t *testing.T) {
	errs := []*CompilerError{NewCompilerError(token.Position{Line: 1, Column: 1}, "only", sampleSource, "")}
	out := FormatErrorsWithContext(errs, 1, false)
	if strings.Contains(out, "Compilation failed") {
		t.Errorf("single error should not carry the multi-error header: %q", out)
	}
}

func TestFormatWithContext(t *testing.T) {
	err := NewCompilerError(token.Position{Line: 2, Column: 3}, "msg", sampleSource, "")
	out := err.FormatWithContext(1, false)
	if !strings.Contains(out, "fn main") || !strings.Contains(out, "}") {
		t.Errorf("context lines missing in %q", out)
	}
}

func TestExecutionError(t *testing.T) {
	pos := token.Position{Line: 3, Column: 7}
	stack := NewStackTrace()
	stack = append(stack, NewStackFrame("main", "", &pos))
	stack = append(stack, NewStackFrame("helper", "", &pos))

	err := NewExecutionError("DivisionByZero", "division by zero", pos, stack)
	out := err.Error()
	if !strings.Contains(out, "DivisionByZero at 3:7: division by zero") {
		t.Errorf("missing header in %q", out)
	}
	// Most recent call first.
	helperIdx := strings.Index(out, "helper")
	mainIdx := strings.Index(out, "main")
	if helperIdx == -1 || mainIdx == -1 || helperIdx > mainIdx {
		t.Errorf("stack should list helper before main: %q", out)
	}
}

func TestStackTrace(t *testing.T) {
	pos := token.Position{Line: 1, Column: 2}

	if got := NewStackTrace().String(); got != "" {
		t.Errorf("empty stack renders %q, want empty", got)
	}

	st := NewStackTrace()
	st = append(st, NewStackFrame("outer", "", &pos))
	st = append(st, NewStackFrame("inner", "", &pos))
	want := "inner [line: 1, column: 2]\nouter [line: 1, column: 2]"
	if got := st.String(); got != want {
		t.Errorf("stack renders %q, want %q", got, want)
	}

	if got := NewStackFrame("f", "", nil).String(); got != "f" {
		t.Errorf("frame without position renders %q, want %q", got, "f")
	}
}
