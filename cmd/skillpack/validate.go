package main

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/skillpack-dev/skillpack/pkg/bundle"
	"github.com/skillpack-dev/skillpack/pkg/presenter"
)

type ValidateConfig struct {
	All bool
}

func NewValidateConfig() *ValidateConfig {
	return &ValidateConfig{
		All: false,
	}
}

var validateCmd = &cobra.Command{
	Use:   "validate [name]",
	Short: "Validate bundle manifests",
	Long: `Validate a bundle's manifest: the file must exist and be non-empty,
and its frontmatter (when present) should carry a name matching the
directory and a non-empty description. Content-quality issues are
warnings; only a missing or empty manifest blocks use.

Examples:
  skillpack validate domain-modelling
  skillpack validate --all`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := getValidateConfigFromFlags(cmd)
		if config.All {
			validateAllBundlesCmd(cmd.Context())
			return
		}
		if len(args) == 0 {
			cmd.Help()
			printAvailableBundles()
			os.Exit(exitUsage)
		}
		validateBundleCmd(cmd.Context(), args[0])
	},
}

func init() {
	defaults := NewValidateConfig()
	validateCmd.Flags().Bool("all", defaults.All, "Validate every bundle under the skills root")
}

func getValidateConfigFromFlags(cmd *cobra.Command) *ValidateConfig {
	config := NewValidateConfig()
	if all, err := cmd.Flags().GetBool("all"); err == nil {
		config.All = all
	}
	return config
}

func validateBundleCmd(ctx context.Context, name string) {
	locator, _, err := newLocator(ctx)
	if err != nil {
		fail(err, "Failed to resolve workspace")
	}

	b, err := locator.Resolve(ctx, name)
	if err != nil {
		fail(err, "Failed to resolve bundle")
	}

	result := bundle.Validate(b)
	reportFindings(result)

	if !result.Valid() {
		os.Exit(exitUsage)
	}
	presenter.Success(fmt.Sprintf("Bundle '%s' is valid", name))
}

func validateAllBundlesCmd(ctx context.Context) {
	locator, _, err := newLocator(ctx)
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

	var combined *multierror.Error
	for _, b := range bundles {
		result := bundle.Validate(b)
		reportFindings(result)
		combined = multierror.Append(combined, result.Err())
	}

	if err := combined.ErrorOrNil(); err != nil {
		presenter.Error(err, fmt.Sprintf("%d of %d bundle(s) failed validation", len(combined.Errors), len(bundles)))
		os.Exit(exitUsage)
	}

	presenter.Success(fmt.Sprintf("All %d bundle(s) are valid", len(bundles)))
}

func reportFindings(result *bundle.ValidationResult) {
	for _, f := range result.Findings {
		message := fmt.Sprintf("%s: %s", result.Bundle, f.Message)
		if f.Severity == bundle.SeverityError {
			presenter.Error(fmt.Errorf("%s", message), "")
		} else {
			presenter.Warning(message)
		}
	}
}
