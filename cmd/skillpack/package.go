package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillpack-dev/skillpack/pkg/bundle"
	"github.com/skillpack-dev/skillpack/pkg/packager"
	"github.com/skillpack-dev/skillpack/pkg/presenter"
	"github.com/skillpack-dev/skillpack/pkg/workspace"
)

type PackageConfig struct {
	OutputDir string
}

func NewPackageConfig() *PackageConfig {
	return &PackageConfig{
		OutputDir: "",
	}
}

var packageCmd = &cobra.Command{
	Use:   "package <name>",
	Short: "Archive a bundle into a distributable zip file",
	Long: `Archive the named bundle's directory into <repo_root>/dist/<name>.zip,
excluding OS metadata files, bytecode caches, and version-control
directories. Extracting the archive reproduces <name>/... .

Examples:
  skillpack package domain-modelling
  skillpack package domain-modelling -o /tmp/out`,
	Args: bundleArgs(cobra.ExactArgs(1)),
	Run: func(cmd *cobra.Command, args []string) {
		config := getPackageConfigFromFlags(cmd)
		packageBundleCmd(cmd.Context(), args[0], config)
	},
}

func init() {
	defaults := NewPackageConfig()
	packageCmd.Flags().StringP("output", "o", defaults.OutputDir, "Output directory for the archive (default: <repo_root>/dist)")
}

func getPackageConfigFromFlags(cmd *cobra.Command) *PackageConfig {
	config := NewPackageConfig()
	if output, err := cmd.Flags().GetString("output"); err == nil {
		config.OutputDir = output
	}
	return config
}

func packageBundleCmd(ctx context.Context, name string, config *PackageConfig) {
	locator, ws, err := newLocator(ctx)
	if err != nil {
		fail(err, "Failed to resolve workspace")
	}

	b, err := locator.Resolve(ctx, name)
	if err != nil {
		fail(err, "Failed to resolve bundle")
	}

	artifact, err := packageOne(ctx, b, ws, config.OutputDir)
	if err != nil {
		fail(err, fmt.Sprintf("Failed to package bundle '%s'", name))
	}

	presenter.Success(fmt.Sprintf("Packaged %s to %s", name, artifact.Path))
	printEntries(artifact)
}

// packageOne validates a bundle and archives it. Validation gates
// packaging so a bundle with a missing or empty manifest never produces
// an artifact.
func packageOne(ctx context.Context, b *bundle.Bundle, ws *workspace.Workspace, outputDir string) (*packager.Artifact, error) {
	if err := bundle.Validate(b).Err(); err != nil {
		return nil, err
	}

	if outputDir == "" {
		outputDir = ws.DistDir
	}

	p, err := packager.New()
	if err != nil {
		return nil, err
	}

	return p.Package(ctx, b, outputDir)
}

func printEntries(artifact *packager.Artifact) {
	presenter.Info(fmt.Sprintf("%d entries:", len(artifact.Entries)))
	for _, entry := range artifact.Entries {
		presenter.Info("  " + entry)
	}
}
