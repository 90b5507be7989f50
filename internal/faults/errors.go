// Package faults defines the error taxonomy shared by the reel data layer.
//
// Callers classify failures with errors.Is against the exported sentinels:
// configuration problems halt before any network call, remote failures carry
// the upstream message for display, and parse failures are always recovered
// locally by falling back to defaults.
package faults

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfiguration marks a fatal setup problem such as a missing API key.
	ErrConfiguration = errors.New("configuration error")
	// ErrRemote marks a non-success response from the catalog service.
	ErrRemote = errors.New("remote error")
	// ErrNotFound marks an id that cannot be resolved to a catalog item.
	ErrNotFound = errors.New("not found")
	// ErrNoResults marks a query that matched nothing where a result is required.
	ErrNoResults = errors.New("no results")
	// ErrParse marks malformed persisted or imported data.
	ErrParse = errors.New("parse error")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrRemote
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Message returns a display-ready message for a propagated error.
func Message(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, marker := range []error{ErrConfiguration, ErrRemote, ErrNotFound, ErrNoResults, ErrParse} {
		prefix := marker.Error() + ": "
		if strings.HasPrefix(msg, prefix) {
			return strings.TrimPrefix(msg, prefix)
		}
	}
	return msg
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "failure"
	}
	return strings.Join(parts, ": ")
}
