package diag

import "testing"

func TestRenderer_FormatIssue_PathOnly(t *testing.T) {
	issue := NewIssue(Error, E_MISSING_FIELD, `missing required field "y"`).
		WithPath("data.json", "$.y").
		Build()

	out := NewRenderer().FormatIssue(issue)
	want := "data.json $.y: error[E_MISSING_FIELD]: missing required field \"y\""
	if out != want {
		t.Errorf("FormatIssue() = %q; want %q", out, want)
	}
}

func TestRenderer_FormatIssue_Unknown(t *testing.T) {
	issue := NewIssue(Error, E_INTERNAL, "something went wrong").Build()
	out := NewRenderer().FormatIssue(issue)
	if out[:len("<unknown>")] != "<unknown>" {
		t.Errorf("FormatIssue() = %q; want prefix <unknown>", out)
	}
}

func TestRenderer_FormatIssue_Hint(t *testing.T) {
	issue := NewIssue(Error, E_MISSING_FIELD, "missing field").
		WithPath("data.json", "$.y").
		WithHint("add the field").
		Build()

	out := NewRenderer().FormatIssue(issue)
	if !containsSubstring(out, "hint: add the field") {
		t.Errorf("FormatIssue() missing hint: %q", out)
	}
}

func TestRenderer_FormatIssue_DistinguishFatal(t *testing.T) {
	issue := NewIssue(Fatal, E_INTERNAL, "internal error").Build()

	defaultOut := NewRenderer().FormatIssue(issue)
	if !containsSubstring(defaultOut, "error[E_INTERNAL]") {
		t.Errorf("default renderer should map fatal to error label: %q", defaultOut)
	}

	distinguishOut := NewRenderer(WithDistinguishFatal(true)).FormatIssue(issue)
	if !containsSubstring(distinguishOut, "fatal[E_INTERNAL]") {
		t.Errorf("WithDistinguishFatal renderer should preserve fatal label: %q", distinguishOut)
	}
}

func TestRenderer_FormatResult_MultipleIssues(t *testing.T) {
	c := NewCollector(NoLimit)
	c.Collect(NewIssue(Error, E_MISSING_FIELD, "first").WithPath("a.json", "$.a").Build())
	c.Collect(NewIssue(Error, E_UNEXPECTED_FIELD, "second").WithPath("a.json", "$.b").Build())

	out := NewRenderer().FormatResult(c.Result())
	if !containsSubstring(out, "first") || !containsSubstring(out, "second") {
		t.Errorf("FormatResult() missing an issue: %q", out)
	}
}

func containsSubstring(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
