package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillpack-dev/skillpack/pkg/bundle"
	"github.com/skillpack-dev/skillpack/pkg/installer"
	"github.com/skillpack-dev/skillpack/pkg/packager"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "not found",
			err:      &bundle.NotFoundError{Name: "ghost"},
			expected: exitUsage,
		},
		{
			name:     "wrapped not found",
			err:      errors.Wrap(&bundle.NotFoundError{Name: "ghost"}, "resolving"),
			expected: exitUsage,
		},
		{
			name:     "validation",
			err:      &bundle.ValidationError{Bundle: "broken"},
			expected: exitUsage,
		},
		{
			name:     "read failure",
			err:      &packager.IOError{Path: "/nope", Cause: errors.New("denied")},
			expected: exitIO,
		},
		{
			name:     "write failure",
			err:      &packager.WriteError{Path: "/nope", Cause: errors.New("denied")},
			expected: exitIO,
		},
		{
			name:     "unsupported symlink",
			err:      &installer.UnsupportedOperationError{Op: "symlink", Cause: errors.New("no")},
			expected: exitIO,
		},
		{
			name:     "unclassified",
			err:      errors.New("something else"),
			expected: exitUsage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, exitCodeFor(tt.err))
		})
	}
}

func TestGetInstallConfigFromFlags(t *testing.T) {
	require.NoError(t, installCmd.Flags().Set("symlink", "true"))
	defer installCmd.Flags().Set("symlink", "false")

	config := getInstallConfigFromFlags(installCmd, []string{"beta-skill", "/tmp/proj"})
	assert.True(t, config.Symlink)
	assert.Equal(t, "/tmp/proj", config.TargetDir)

	config = getInstallConfigFromFlags(installCmd, []string{"beta-skill"})
	assert.Empty(t, config.TargetDir)
}

func TestAvailableBundleNames(t *testing.T) {
	repoRoot := t.TempDir()
	for _, name := range []string{"beta-skill", "alpha"} {
		dir := filepath.Join(repoRoot, "skills", name)
		require.NoError(t, os.MkdirAll(dir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "SKILL.md"), []byte("# "+name+"\n"), 0o644))
	}

	previous := viper.GetString("root")
	viper.Set("root", filepath.Join(repoRoot, "skills"))
	defer viper.Set("root", previous)

	assert.Equal(t, []string{"alpha", "beta-skill"}, availableBundleNames())
}

func TestBundleArgs(t *testing.T) {
	check := bundleArgs(cobra.ExactArgs(1))
	cmd := &cobra.Command{Use: "load"}

	assert.NoError(t, check(cmd, []string{"alpha"}))
	assert.Error(t, check(cmd, []string{}))
	assert.Error(t, check(cmd, []string{"alpha", "beta"}))
}
