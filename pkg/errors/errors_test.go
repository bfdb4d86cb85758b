package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindUnknownElementType, "unknown element type"},
		{KindUnboundEventType, "unbound event type"},
		{KindUnknownPopupType, "unknown popup type"},
		{KindInvalidParentType, "invalid parent type"},
		{KindUnsupportedFormat, "unsupported format"},
		{KindMissingWidgetForEdit, "missing widget for edit"},
		{KindConfig, "config"},
		{KindStore, "store"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestErrorFormatting(t *testing.T) {
	err := &Error{
		Op:      "factory.Create",
		Kind:    KindUnknownElementType,
		Element: "main_window",
		Err:     errors.New("no builder registered"),
	}
	msg := err.Error()
	for _, want := range []string{"factory.Create", "unknown element type", "main_window", "no builder registered"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}
}

func TestErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := E("reader.Read", KindUnknown, inner)
	if !errors.Is(err, inner) {
		t.Error("errors.Is should see through Error.Unwrap")
	}
}

func TestKindOf(t *testing.T) {
	err := Errorf("config.Load", KindUnsupportedFormat, "extension %q", ".yaml")
	if got := KindOf(err); got != KindUnsupportedFormat {
		t.Errorf("KindOf = %v, want %v", got, KindUnsupportedFormat)
	}

	wrapped := fmt.Errorf("loading: %w", err)
	if !IsKind(wrapped, KindUnsupportedFormat) {
		t.Error("IsKind should see through fmt.Errorf wrapping")
	}

	if got := KindOf(errors.New("plain")); got != KindUnknown {
		t.Errorf("KindOf(plain) = %v, want KindUnknown", got)
	}
}

func TestLogHandler(t *testing.T) {
	var buf strings.Builder
	h := &LogHandler{Verbose: true, Out: &buf}
	h.HandleError(&Error{Op: "admin.Administrate", Kind: KindStore, Err: errors.New("closed")})
	if !strings.Contains(buf.String(), "admin.Administrate") {
		t.Errorf("log output missing op: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "[store]") {
		t.Errorf("log output missing kind: %q", buf.String())
	}
}
