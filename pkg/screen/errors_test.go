// ABOUTME: Tests for the transition error taxonomy
// ABOUTME: Verifies errors.Is reaches both the class sentinel and the cause

package screen

import (
	"errors"
	"strings"
	"testing"
)

func TestError_IsClassAndCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("EIO")
	tests := []struct {
		name  string
		err   error
		class error
	}{
		{name: "io", err: ioError("enter alternate screen", cause), class: ErrIO},
		{name: "platform", err: platformError("enable raw mode", cause), class: ErrPlatform},
		{name: "composition", err: compositionError("enter alternate screen in raw mode", cause), class: ErrComposition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if !errors.Is(tt.err, tt.class) {
				t.Errorf("errors.Is(%v, class) = false", tt.err)
			}
			if !errors.Is(tt.err, cause) {
				t.Errorf("errors.Is(%v, cause) = false", tt.err)
			}
			var se *Error
			if !errors.As(tt.err, &se) {
				t.Fatalf("errors.As(*Error) = false")
			}
			if !strings.Contains(tt.err.Error(), se.Op) {
				t.Errorf("Error() = %q, want it to mention op %q", tt.err.Error(), se.Op)
			}
		})
	}
}

func TestError_CompositionKeepsInnerClass(t *testing.T) {
	t.Parallel()

	inner := platformError("enable raw mode", ErrRawModeUnsupported)
	err := compositionError("enter alternate screen in raw mode", inner)

	for _, target := range []error{ErrComposition, ErrPlatform, ErrRawModeUnsupported} {
		if !errors.Is(err, target) {
			t.Errorf("errors.Is(err, %v) = false", target)
		}
	}
	if errors.Is(err, ErrIO) {
		t.Error("composition of a platform failure must not match ErrIO")
	}
}
