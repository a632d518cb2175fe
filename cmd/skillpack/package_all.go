package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skillpack-dev/skillpack/pkg/presenter"
)

var packageAllCmd = &cobra.Command{
	Use:   "package-all",
	Short: "Archive every bundle under the skills root",
	Long: `Archive every bundle under the skills root, strictly sequentially and
fail-fast: the first failing bundle aborts the run, leaving artifacts
only for the bundles that preceded it. Partial distribution sets are a
correctness hazard, so no best-effort continuation is attempted.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		config := getPackageConfigFromFlags(cmd)
		packageAllBundlesCmd(cmd.Context(), config)
	},
}

func init() {
	defaults := NewPackageConfig()
	packageAllCmd.Flags().StringP("output", "o", defaults.OutputDir, "Output directory for the archives (default: <repo_root>/dist)")
}

func packageAllBundlesCmd(ctx context.Context, config *PackageConfig) {
	locator, ws, err := newLocator(ctx)
	if err != nil {
		fail(err, "Failed to resolve workspace")
	}

	bundles, err := locator.List(ctx)
	if err != nil {
		fail(err, "Failed to list bundles")
	}

	if len(bundles) == 0 {
		presenter.Info("No bundles found")
		return
	}

	packaged := 0
	for _, b := range bundles {
		artifact, err := packageOne(ctx, b, ws, config.OutputDir)
		if err != nil {
			presenter.Error(err, fmt.Sprintf("Aborting: bundle '%s' failed after %d archive(s)", b.Name, packaged))
			os.Exit(exitCodeFor(err))
		}

		packaged++
		presenter.Success(fmt.Sprintf("Packaged %s to %s", b.Name, artifact.Path))
	}

	presenter.Info(fmt.Sprintf("Packaged %d bundle(s)", packaged))
}
