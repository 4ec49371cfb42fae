package layouterr

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := New(CodeInvalidPercent, "percent must be in [0, 1], got %g", 1.5)
	want := "INVALID_PERCENT: percent must be in [0, 1], got 1.5"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	wrapped := Wrap(CodeInternal, errors.New("boom"), "engine panicked")
	if got := wrapped.Error(); got != "INTERNAL_ERROR: engine panicked: boom" {
		t.Errorf("Error() = %q", got)
	}
}

func TestIsAndGetCode(t *testing.T) {
	err := New(CodeInvalidNodeID, "node removed")
	if !Is(err, CodeInvalidNodeID) {
		t.Error("Is() missed a direct code")
	}
	if Is(err, CodeInvalidPercent) {
		t.Error("Is() matched the wrong code")
	}

	deep := fmt.Errorf("layout failed: %w", err)
	if !Is(deep, CodeInvalidNodeID) {
		t.Error("Is() did not unwrap")
	}
	if got := GetCode(deep); got != CodeInvalidNodeID {
		t.Errorf("GetCode() = %q, want %q", got, CodeInvalidNodeID)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestUnwrapPreservesCause(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(CodeMeasure, cause, "callback failed")
	if !errors.Is(err, cause) {
		t.Error("errors.Is did not reach the cause")
	}
}

func TestClassPredicates(t *testing.T) {
	tests := []struct {
		code    Code
		invalid bool
		missing bool
	}{
		{CodeInvalidPercent, true, false},
		{CodeInvalidLength, true, false},
		{CodeInvalidGridLine, true, false},
		{CodeInvalidGridSpan, true, false},
		{CodeInvalidNodeID, false, true},
		{CodeChildIndexOutOfBounds, false, false},
		{CodeInternal, false, false},
	}
	for _, tc := range tests {
		err := New(tc.code, "x")
		if got := IsInvalidValue(err); got != tc.invalid {
			t.Errorf("IsInvalidValue(%s) = %v, want %v", tc.code, got, tc.invalid)
		}
		if got := IsMissingKey(err); got != tc.missing {
			t.Errorf("IsMissingKey(%s) = %v, want %v", tc.code, got, tc.missing)
		}
	}
}

func TestChildIndexOutOfBounds(t *testing.T) {
	err := ChildIndexOutOfBounds(5, 2)
	if !Is(err, CodeChildIndexOutOfBounds) {
		t.Fatal("wrong code")
	}
	var detail *ChildIndexError
	if !errors.As(err, &detail) {
		t.Fatal("detail not reachable via errors.As")
	}
	if detail.ChildIndex != 5 || detail.ChildCount != 2 {
		t.Errorf("detail = %+v", detail)
	}
	var base *Error
	if !errors.As(err, &base) {
		t.Error("base *Error not reachable via errors.As")
	}
}
