package faults_test

import (
	"errors"
	"strings"
	"testing"

	"reel/internal/faults"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := faults.Wrap(faults.ErrRemote, "catalog", "search", "upstream failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, faults.ErrRemote) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"catalog", "search", "upstream failed"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapDefaultsToRemoteMarker(t *testing.T) {
	err := faults.Wrap(nil, "catalog", "trending", "", errors.New("io"))
	if !errors.Is(err, faults.ErrRemote) {
		t.Fatalf("expected default remote marker, got %v", err)
	}
}

func TestMessageStripsMarkerPrefix(t *testing.T) {
	err := faults.Wrap(faults.ErrNotFound, "catalog", "detail", "invalid id", nil)
	msg := faults.Message(err)
	if strings.HasPrefix(msg, "not found:") {
		t.Fatalf("expected marker prefix stripped, got %q", msg)
	}
	if !strings.Contains(msg, "invalid id") {
		t.Fatalf("expected detail retained, got %q", msg)
	}
	if faults.Message(nil) != "" {
		t.Fatal("expected empty message for nil error")
	}
}
