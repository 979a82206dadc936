package paramval_test

import (
	"fmt"
	"strings"
	"testing"

	paramval "github.com/paramval/paramval"
)

func TestIssues_ErrorSummary(t *testing.T) {
	iss := paramval.Issues{
		{Path: "[a]", Code: paramval.CodeInvalidType, Message: "[a] must be of type string"},
		{Path: "[b]", Code: paramval.CodeRequired, Message: "[b] is a required integer"},
		{Path: "[c]", Code: paramval.CodeTooSmall, Message: "[c] must be greater than or equal to 1"},
		{Path: "[d]", Code: paramval.CodeTooBig, Message: "[d] must be less than or equal to 9"},
	}
	s := iss.Error()
	if !strings.Contains(s, "[a] must be of type string") {
		t.Fatalf("summary should show leading issues: %q", s)
	}
	if !strings.Contains(s, "(total 4)") {
		t.Fatalf("summary should report the total: %q", s)
	}
	if paramval.Issues(nil).Error() != "" {
		t.Fatalf("empty issues should render empty")
	}
}

func TestAppendIssues_InitializesNil(t *testing.T) {
	iss := paramval.AppendIssues(nil, paramval.Issue{Code: paramval.CodeRequired})
	if len(iss) != 1 {
		t.Fatalf("expected one issue, got %d", len(iss))
	}
}

func TestAsIssues(t *testing.T) {
	iss := paramval.Issues{{Code: paramval.CodePattern}}
	wrapped := fmt.Errorf("processing failed: %w", iss)
	got, ok := paramval.AsIssues(wrapped)
	if !ok || len(got) != 1 || got[0].Code != paramval.CodePattern {
		t.Fatalf("expected issues extracted from wrapped error")
	}
	if _, ok := paramval.AsIssues(nil); ok {
		t.Fatalf("nil error must not extract")
	}
	if _, ok := paramval.AsIssues(fmt.Errorf("plain")); ok {
		t.Fatalf("plain error must not extract")
	}
}
