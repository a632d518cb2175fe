package presenter

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	presenter := New()
	assert.NotNil(t, presenter)
	assert.Equal(t, os.Stdout, presenter.output)
	assert.Equal(t, os.Stderr, presenter.errorOutput)
	assert.False(t, presenter.quiet)
}

func TestNewWithOptions(t *testing.T) {
	var output, errorOutput bytes.Buffer
	presenter := NewWithOptions(&output, &errorOutput, ColorNever)

	assert.Equal(t, &output, presenter.output)
	assert.Equal(t, &errorOutput, presenter.errorOutput)
	assert.Equal(t, ColorNever, presenter.colorMode)
}

func TestDetectColorMode(t *testing.T) {
	tests := []struct {
		name          string
		noColor       string
		skillpackColr string
		expected      ColorMode
	}{
		{"NO_COLOR set", "1", "", ColorNever},
		{"SKILLPACK_COLOR always", "", "always", ColorAlways},
		{"SKILLPACK_COLOR force", "", "force", ColorAlways},
		{"SKILLPACK_COLOR never", "", "never", ColorNever},
		{"SKILLPACK_COLOR off", "", "off", ColorNever},
		{"SKILLPACK_COLOR auto", "", "auto", ColorAuto},
		{"default", "", "", ColorAuto},
		{"invalid value", "", "invalid", ColorAuto},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Unsetenv("NO_COLOR")
			os.Unsetenv("SKILLPACK_COLOR")

			if tt.noColor != "" {
				os.Setenv("NO_COLOR", tt.noColor)
			}
			if tt.skillpackColr != "" {
				os.Setenv("SKILLPACK_COLOR", tt.skillpackColr)
			}

			result := detectColorMode()
			assert.Equal(t, tt.expected, result)

			os.Unsetenv("NO_COLOR")
			os.Unsetenv("SKILLPACK_COLOR")
		})
	}
}

func TestErrorOutput(t *testing.T) {
	var errorOutput bytes.Buffer
	presenter := NewWithOptions(nil, &errorOutput, ColorNever)

	err := errors.New("test error")
	presenter.Error(err, "test context")
	assert.Contains(t, errorOutput.String(), "[ERROR] test context: test error")

	errorOutput.Reset()
	presenter.Error(err, "")
	assert.Contains(t, errorOutput.String(), "[ERROR] test error")

	errorOutput.Reset()
	presenter.Error(nil, "ignored")
	assert.Empty(t, errorOutput.String())
}

func TestMessagesRespectQuiet(t *testing.T) {
	var output bytes.Buffer
	presenter := NewWithOptions(&output, nil, ColorNever)

	presenter.Success("done")
	presenter.Warning("careful")
	presenter.Info("note")
	assert.Contains(t, output.String(), "✓ done")
	assert.Contains(t, output.String(), "⚠ careful")
	assert.Contains(t, output.String(), "note")

	output.Reset()
	presenter.SetQuiet(true)
	assert.True(t, presenter.IsQuiet())

	presenter.Success("done")
	presenter.Warning("careful")
	presenter.Info("note")
	presenter.Section("section")
	presenter.Separator()
	assert.Empty(t, output.String())
}

func TestSection(t *testing.T) {
	var output bytes.Buffer
	presenter := NewWithOptions(&output, nil, ColorNever)

	presenter.Section("Bundles")

	lines := strings.Split(strings.TrimRight(output.String(), "\n"), "\n")
	assert.Equal(t, "Bundles", lines[0])
	assert.Equal(t, strings.Repeat("-", len("Bundles")), lines[1])
}
