package errors

import (
	"fmt"
	"testing"
)

func TestMasonryError(t *testing.T) {
	err := New(ErrCodeUnresolvedType, "unknown card type")
	if err.Code != ErrCodeUnresolvedType {
		t.Errorf("expected code %s, got %s", ErrCodeUnresolvedType, err.Code)
	}

	cause := fmt.Errorf("underlying error")
	wrapped := Wrap(cause, ErrCodeConfigInvalid, "parse failed")

	if wrapped.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	if !Is(wrapped, ErrCodeConfigInvalid) {
		t.Error("Is should return true for matching code")
	}

	if Is(wrapped, ErrCodeConfigNotFound) {
		t.Error("Is should return false for non-matching code")
	}

	detailed := err.WithDetail("type", "foo").WithDetail("index", 3)
	if detailed.Details["type"] != "foo" {
		t.Error("WithDetail should add details")
	}
}

func TestGetCodeThroughFmtWrap(t *testing.T) {
	inner := ConfigNotFound("/tmp/masonry.yml")
	outer := fmt.Errorf("loading dashboard: %w", inner)

	if got := GetCode(outer); got != ErrCodeConfigNotFound {
		t.Errorf("expected %s, got %s", ErrCodeConfigNotFound, got)
	}
	if GetCode(nil) != "" {
		t.Error("nil error should have no code")
	}
	if Is(fmt.Errorf("plain"), "") {
		t.Error("plain errors should not match the empty code")
	}
}

func TestErrorConstructors(t *testing.T) {
	err := UnresolvedType("foo")
	if err.Code != ErrCodeUnresolvedType {
		t.Errorf("expected code %s, got %s", ErrCodeUnresolvedType, err.Code)
	}
	if err.Details["type"] != "foo" {
		t.Error("UnresolvedType should include type detail")
	}

	err = UnknownTheme("solarized")
	if err.Details["theme"] != "solarized" {
		t.Error("UnknownTheme should include theme detail")
	}

	err = FeedFailed("ws://localhost", fmt.Errorf("refused"))
	if err.Cause == nil || err.Details["source"] != "ws://localhost" {
		t.Error("FeedFailed should wrap the cause and record the source")
	}
}
