package utils

import (
	"strings"
	"testing"
	"unicode/utf8"

	"go.uber.org/zap"
)

func TestTruncateTextWithinLimit(t *testing.T) {
	tp := NewTextProcessor(zap.NewNop())

	if got := tp.TruncateText("short", 100); got != "short" {
		t.Errorf("text within limit must pass through, got %q", got)
	}
	if got := tp.TruncateText("anything", 0); got != "anything" {
		t.Errorf("zero limit disables truncation, got %q", got)
	}
}

func TestTruncateTextCutsAtLimit(t *testing.T) {
	tp := NewTextProcessor(zap.NewNop())

	long := strings.Repeat("a", 100)
	got := tp.TruncateText(long, 10)
	if !strings.HasPrefix(got, strings.Repeat("a", 10)) {
		t.Errorf("truncated prefix wrong: %q", got)
	}
	if !strings.Contains(got, "truncated") {
		t.Errorf("truncation marker missing: %q", got)
	}
}

func TestTruncateTextKeepsValidUTF8(t *testing.T) {
	tp := NewTextProcessor(zap.NewNop())

	// Cut in the middle of a multi-byte rune
	got := tp.TruncateText("日本語のテキスト", 4)
	if !utf8.ValidString(got) {
		t.Errorf("truncated text must stay valid UTF-8: %q", got)
	}
}

func TestSanitizeUTF8DropsInvalidBytes(t *testing.T) {
	tp := NewTextProcessor(zap.NewNop())

	got := tp.SanitizeUTF8("ok\xffok")
	if !utf8.ValidString(got) {
		t.Errorf("sanitized text must be valid UTF-8: %q", got)
	}
	if !strings.Contains(got, "okok") && got != "okok" {
		t.Errorf("valid bytes must survive: %q", got)
	}
}
