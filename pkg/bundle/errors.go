package bundle

import (
	"fmt"
	"strings"
)

// NotFoundError indicates that a bundle name or path could not be
// resolved. Available carries the sorted names of bundles that do exist
// under the root, for user-facing suggestions.
type NotFoundError struct {
	Name      string   // Requested bundle name, empty when the root itself is missing
	Path      string   // Path that was expected to exist
	Available []string // Sorted names of bundles present under the root
}

func (e *NotFoundError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("bundle root %q does not exist", e.Path)
	}
	if len(e.Available) > 0 {
		return fmt.Sprintf("bundle %q not found (available: %s)", e.Name, strings.Join(e.Available, ", "))
	}
	return fmt.Sprintf("bundle %q not found", e.Name)
}

// ValidationError indicates that a bundle's manifest is structurally
// malformed. It carries the error-level findings that blocked use.
type ValidationError struct {
	Bundle   string
	Findings []Finding
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Findings))
	for _, f := range e.Findings {
		msgs = append(msgs, f.Message)
	}
	return fmt.Sprintf("bundle %q is invalid: %s", e.Bundle, strings.Join(msgs, "; "))
}
