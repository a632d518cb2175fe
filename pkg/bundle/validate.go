package bundle

import (
	"fmt"
	"os"
	"unicode"
)

// descriptionCeiling is the longest description accepted without a warning.
const descriptionCeiling = 1024

// Severity classifies a validation finding
type Severity int

const (
	// SeverityWarning marks a cosmetic issue that does not block use
	SeverityWarning Severity = iota
	// SeverityError marks a structural issue that blocks use
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Finding is a single validation observation about a bundle
type Finding struct {
	Severity Severity
	Message  string
}

// ValidationResult carries the findings of validating one bundle
type ValidationResult struct {
	Bundle   string
	Findings []Finding
}

// Valid reports whether the bundle has no error-level findings
func (r *ValidationResult) Valid() bool {
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			return false
		}
	}
	return true
}

// Errors returns only the error-level findings
func (r *ValidationResult) Errors() []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			out = append(out, f)
		}
	}
	return out
}

// Err converts the result into a ValidationError when any error-level
// finding is present, and nil otherwise.
func (r *ValidationResult) Err() error {
	errs := r.Errors()
	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Bundle: r.Bundle, Findings: errs}
}

func (r *ValidationResult) addError(format string, args ...any) {
	r.Findings = append(r.Findings, Finding{Severity: SeverityError, Message: fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) addWarning(format string, args ...any) {
	r.Findings = append(r.Findings, Finding{Severity: SeverityWarning, Message: fmt.Sprintf(format, args...)})
}

// Validate checks a bundle's manifest. Structural absence (missing or
// empty manifest) is an error; content-quality issues in the frontmatter
// are warnings only.
func Validate(b *Bundle) *ValidationResult {
	result := &ValidationResult{Bundle: b.Name}

	info, err := os.Stat(b.ManifestPath)
	if err != nil || info.IsDir() {
		result.addError("manifest file missing at %s", b.ManifestPath)
		return result
	}
	if info.Size() == 0 {
		result.addError("manifest file %s is empty", b.ManifestPath)
		return result
	}

	content, err := os.ReadFile(b.ManifestPath)
	if err != nil {
		result.addError("manifest file %s is unreadable: %v", b.ManifestPath, err)
		return result
	}

	md, present, err := ParseMetadata(content)
	if err != nil {
		result.addWarning("frontmatter is malformed: %v", err)
		return result
	}
	if !present {
		result.addWarning("manifest has no frontmatter block")
		return result
	}

	if md.Name == "" {
		result.addWarning("frontmatter is missing the name key")
	} else if md.Name != b.Name {
		result.addWarning("frontmatter name %q does not match directory name %q", md.Name, b.Name)
	}

	switch {
	case md.Description == "":
		result.addWarning("frontmatter is missing the description key")
	case len(md.Description) > descriptionCeiling:
		result.addWarning("description exceeds %d characters", descriptionCeiling)
	case containsControlChars(md.Description):
		result.addWarning("description contains control characters")
	}

	return result
}

func containsControlChars(s string) bool {
	for _, r := range s {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			return true
		}
	}
	return false
}
