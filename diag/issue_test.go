package diag

import (
	"testing"

	"github.com/lambda-lang/core/location"
)

func testIssue() Issue {
	return NewIssue(Error, E_TYPE_MISMATCH, "expected int, got string").
		WithPath("data.json", "$.y").
		WithDetails(ExpectedGot("int", "string")...).
		Build()
}

func TestNewIssue(t *testing.T) {
	issue := testIssue()

	if issue.Severity() != Error {
		t.Errorf("Severity() = %v; want Error", issue.Severity())
	}
	if issue.Code() != E_TYPE_MISMATCH {
		t.Errorf("Code() = %v; want E_TYPE_MISMATCH", issue.Code())
	}
	if issue.Message() != "expected int, got string" {
		t.Errorf("Message() = %q", issue.Message())
	}
	if !issue.IsValid() {
		t.Error("IsValid() = false; want true")
	}
	if issue.IsZero() {
		t.Error("IsZero() = true; want false")
	}
}

func TestNewIssue_PanicsOnInvalidSeverity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on invalid severity")
		}
	}()
	NewIssue(Severity(255), E_TYPE_MISMATCH, "msg")
}

func TestNewIssue_PanicsOnZeroCode(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on zero code")
		}
	}()
	NewIssue(Error, Code{}, "msg")
}

func TestNewIssue_PanicsOnEmptyMessage(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on empty message")
		}
	}()
	NewIssue(Error, E_TYPE_MISMATCH, "")
}

func TestIssue_Classification(t *testing.T) {
	instanceOnly := NewIssue(Error, E_MISSING_FIELD, "missing field").
		WithPath("data.json", "$.y").
		Build()
	if !instanceOnly.IsInstanceOnly() {
		t.Error("IsInstanceOnly() = false; want true")
	}
	if instanceOnly.IsSchemaOnly() || instanceOnly.IsHybrid() {
		t.Error("expected instance-only classification")
	}

	schemaOnly := NewIssue(Error, E_SCHEMA_SYNTAX, "unexpected token").
		WithSpan(location.Span{}).
		Build()
	if schemaOnly.HasSpan() {
		t.Error("zero span should not count as HasSpan")
	}
}

func TestIssue_Related(t *testing.T) {
	issue := NewIssue(Error, E_DUPLICATE_TYPE, `type "Point" already defined`).
		WithRelated(location.RelatedInfo{Message: "previous definition here"}).
		Build()

	related := issue.Related()
	if len(related) != 1 {
		t.Fatalf("Related() len = %d; want 1", len(related))
	}
	related[0].Message = "mutated"
	if issue.Related()[0].Message == "mutated" {
		t.Error("Related() did not return a defensive copy")
	}
}

func TestIssue_Details_DefensiveCopy(t *testing.T) {
	issue := testIssue()
	details := issue.Details()
	details[0].Value = "mutated"
	if issue.Details()[0].Value == "mutated" {
		t.Error("Details() did not return a defensive copy")
	}
}

func TestIssue_Clone(t *testing.T) {
	issue := testIssue()
	clone := issue.Clone()

	if clone.Message() != issue.Message() || clone.Code() != issue.Code() {
		t.Error("Clone() did not preserve scalar fields")
	}

	clone.details[0].Value = "mutated"
	if issue.details[0].Value == "mutated" {
		t.Error("Clone() shares underlying details slice with original")
	}
}

func TestIssue_ZeroValue(t *testing.T) {
	var zero Issue
	if !zero.IsZero() {
		t.Error("zero-value Issue.IsZero() = false; want true")
	}
	if zero.IsValid() {
		t.Error("zero-value Issue.IsValid() = true; want false")
	}
}

func TestFromIssue_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on zero issue")
		}
	}()
	FromIssue(Issue{})
}

func TestFromIssue_PreservesAndAugments(t *testing.T) {
	child := testIssue()
	augmented := FromIssue(child).
		WithPath("data.json", "$.car"+child.Path()).
		Build()

	if augmented.Code() != child.Code() {
		t.Error("FromIssue did not preserve code")
	}
	if augmented.Path() == child.Path() {
		t.Error("WithPath did not override path")
	}
}
