package diag

import "testing"

func TestOK(t *testing.T) {
	r := OK()
	if !r.OK() {
		t.Error("OK().OK() = false; want true")
	}
	if r.Len() != 0 {
		t.Errorf("OK().Len() = %d; want 0", r.Len())
	}
}

func TestResult_Errors(t *testing.T) {
	c := NewCollector(NoLimit)
	c.Collect(NewIssue(Fatal, E_INTERNAL, "fatal issue").Build())
	c.Collect(NewIssue(Error, E_MISSING_FIELD, "error issue").Build())
	c.Collect(NewIssue(Warning, E_UNEXPECTED_FIELD, "warning issue").Build())

	result := c.Result()
	if result.OK() {
		t.Error("OK() = true; want false")
	}

	errs := result.ErrorsSlice()
	if len(errs) != 2 {
		t.Fatalf("ErrorsSlice() len = %d; want 2", len(errs))
	}

	msgs := result.Messages()
	if len(msgs) != 2 {
		t.Fatalf("Messages() len = %d; want 2", len(msgs))
	}
}

func TestResult_BySeverity(t *testing.T) {
	c := NewCollector(NoLimit)
	c.Collect(NewIssue(Warning, E_UNEXPECTED_FIELD, "w1").Build())
	c.Collect(NewIssue(Warning, E_UNEXPECTED_FIELD, "w2").Build())
	c.Collect(NewIssue(Info, E_UNEXPECTED_FIELD, "i1").Build())

	result := c.Result()
	warnings := result.BySeveritySlice(Warning)
	if len(warnings) != 2 {
		t.Errorf("BySeveritySlice(Warning) len = %d; want 2", len(warnings))
	}
}

func TestResult_IssuesAtLeastAsSevereAs(t *testing.T) {
	c := NewCollector(NoLimit)
	c.Collect(NewIssue(Fatal, E_INTERNAL, "fatal").Build())
	c.Collect(NewIssue(Error, E_MISSING_FIELD, "error").Build())
	c.Collect(NewIssue(Warning, E_UNEXPECTED_FIELD, "warning").Build())
	c.Collect(NewIssue(Hint, E_UNEXPECTED_FIELD, "hint").Build())

	result := c.Result()
	atLeastError := result.IssuesAtLeastAsSevereAsSlice(Error)
	if len(atLeastError) != 2 {
		t.Errorf("IssuesAtLeastAsSevereAsSlice(Error) len = %d; want 2", len(atLeastError))
	}
}

func TestResult_String_OK(t *testing.T) {
	if OK().String() != "OK" {
		t.Errorf("String() = %q; want %q", OK().String(), "OK")
	}
}

func TestResult_String_WithErrors(t *testing.T) {
	c := NewCollector(NoLimit)
	c.Collect(NewIssue(Error, E_MISSING_FIELD, "missing field y").Build())
	s := c.Result().String()
	if s == "OK" {
		t.Error("String() = \"OK\"; want error summary")
	}
}

func TestResult_LimitReached(t *testing.T) {
	c := NewCollector(1)
	c.Collect(NewIssue(Error, E_MISSING_FIELD, "first").Build())
	c.Collect(NewIssue(Error, E_MISSING_FIELD, "second").Build())

	result := c.Result()
	if !result.LimitReached() {
		t.Error("LimitReached() = false; want true")
	}
	if result.DroppedCount() != 1 {
		t.Errorf("DroppedCount() = %d; want 1", result.DroppedCount())
	}
}
