package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skillpack-dev/skillpack/pkg/installer"
	"github.com/skillpack-dev/skillpack/pkg/presenter"
)

type InstallConfig struct {
	TargetDir string
	Symlink   bool
}

func NewInstallConfig() *InstallConfig {
	return &InstallConfig{
		TargetDir: "",
		Symlink:   false,
	}
}

var installCmd = &cobra.Command{
	Use:   "install <name> [target_dir]",
	Short: "Install a bundle into a project's command directory",
	Long: `Install the named bundle's manifest into a target project's
.claude/commands directory. The command filename is derived from the
bundle name by stripping a known trailing suffix (for example,
"beta-skill" installs as "beta.md").

By default the manifest is copied; with --symlink the destination is a
symlink to the manifest's absolute path. The target directory defaults
to the current working directory.

Examples:
  skillpack install domain-modelling
  skillpack install domain-modelling ~/projects/app
  skillpack install beta-skill /tmp/proj --symlink`,
	Args: bundleArgs(cobra.RangeArgs(1, 2)),
	Run: func(cmd *cobra.Command, args []string) {
		config := getInstallConfigFromFlags(cmd, args)
		installBundleCmd(cmd.Context(), args[0], config)
	},
}

func init() {
	defaults := NewInstallConfig()
	installCmd.Flags().Bool("symlink", defaults.Symlink, "Symlink the manifest instead of copying it")
}

func getInstallConfigFromFlags(cmd *cobra.Command, args []string) *InstallConfig {
	config := NewInstallConfig()
	if symlink, err := cmd.Flags().GetBool("symlink"); err == nil {
		config.Symlink = symlink
	}
	if len(args) > 1 {
		config.TargetDir = args[1]
	}
	return config
}

func installBundleCmd(ctx context.Context, name string, config *InstallConfig) {
	locator, _, err := newLocator(ctx)
	if err != nil {
		fail(err, "Failed to resolve workspace")
	}

	b, err := locator.Resolve(ctx, name)
	if err != nil {
		fail(err, "Failed to resolve bundle")
	}

	targetDir := config.TargetDir
	if targetDir == "" {
		targetDir, err = os.Getwd()
		if err != nil {
			fail(err, "Failed to determine working directory")
		}
	}

	mode := installer.ModeCopy
	if config.Symlink {
		mode = installer.ModeSymlink
	}

	location, err := installer.Install(ctx, b, installer.Target{Dir: targetDir, Mode: mode})
	if err != nil {
		fail(err, fmt.Sprintf("Failed to install bundle '%s'", name))
	}

	presenter.Success(fmt.Sprintf("Installed %s (%s) to %s", name, location.Mode, location.Path))
	presenter.Info(fmt.Sprintf("Invoke it as /%s", location.CommandName))
}
