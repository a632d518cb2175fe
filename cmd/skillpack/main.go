package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/skillpack-dev/skillpack/pkg/bundle"
	"github.com/skillpack-dev/skillpack/pkg/installer"
	"github.com/skillpack-dev/skillpack/pkg/logger"
	"github.com/skillpack-dev/skillpack/pkg/packager"
	"github.com/skillpack-dev/skillpack/pkg/presenter"
	"github.com/skillpack-dev/skillpack/pkg/workspace"
)

// Exit codes reported by every command.
const (
	exitOK    = 0
	exitUsage = 1 // usage error, unknown bundle, failed validation
	exitIO    = 2 // read/write/permission failure
)

func init() {
	// Environment variables
	viper.SetEnvPrefix("SKILLPACK")
	viper.AutomaticEnv()

	// Config file support
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.skillpack")
	viper.AddConfigPath(".")

	// Load config file if it exists (ignore errors if it doesn't)
	_ = viper.ReadInConfig()
}

var rootCmd = &cobra.Command{
	Use:   "skillpack",
	Short: "Manage, install, and package skill bundles",
	Long: `skillpack is a local filesystem utility for skill bundles: directories
holding a Markdown manifest plus optional references/ supporting files.

It loads a bundle's manifest to stdout, installs it into a project's
.claude/commands directory (copy or symlink), and packages bundles into
distributable zip archives.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if level := viper.GetString("log_level"); level != "" {
			if err := logger.SetLogLevel(level); err != nil {
				presenter.Warning(fmt.Sprintf("Invalid log level %q, using default", level))
			}
		}
		logger.SetLogFormat(viper.GetString("log_format"))
		presenter.SetQuiet(viper.GetBool("quiet"))
	},
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
		printAvailableBundles()
		os.Exit(exitUsage)
	},
}

func main() {
	rootCmd.PersistentFlags().String("root", "", "Skills root directory (default: auto-detected)")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text or json)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-essential output")

	viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))

	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(packageCmd)
	rootCmd.AddCommand(packageAllCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}
}

// resolveWorkspace computes the workspace layout for this invocation.
// Nothing is cached across runs.
func resolveWorkspace(ctx context.Context) (*workspace.Workspace, error) {
	return workspace.Resolve(ctx, viper.GetString("root"))
}

// newLocator resolves the workspace and returns a locator over its skills root.
func newLocator(ctx context.Context) (*bundle.Locator, *workspace.Workspace, error) {
	ws, err := resolveWorkspace(ctx)
	if err != nil {
		return nil, nil, err
	}
	return bundle.NewLocator(bundle.WithRoot(ws.SkillsRoot)), ws, nil
}

// bundleArgs wraps a positional-argument check so that a bare invocation
// of a name-taking subcommand also enumerates the available bundles
// alongside cobra's usage output.
func bundleArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			printAvailableBundles()
		}
		return check(cmd, args)
	}
}

// exitCodeFor maps the error taxonomy to process exit codes.
func exitCodeFor(err error) int {
	var (
		notFound    *bundle.NotFoundError
		validation  *bundle.ValidationError
		ioErr       *packager.IOError
		writeErr    *packager.WriteError
		unsupported *installer.UnsupportedOperationError
	)

	switch {
	case errors.As(err, &notFound), errors.As(err, &validation):
		return exitUsage
	case errors.As(err, &ioErr), errors.As(err, &writeErr), errors.As(err, &unsupported):
		return exitIO
	default:
		return exitUsage
	}
}

// fail reports an error through the presenter and exits with the mapped
// code. When the error is a bundle miss, the available names are listed
// as suggestions.
func fail(err error, context string) {
	presenter.Error(err, context)

	var notFound *bundle.NotFoundError
	if errors.As(err, &notFound) && len(notFound.Available) > 0 {
		presenter.Info("")
		presenter.Info("Available bundles:")
		for _, name := range notFound.Available {
			presenter.Info("  " + name)
		}
	}

	os.Exit(exitCodeFor(err))
}

// printAvailableBundles best-effort lists bundle names beneath usage output.
func printAvailableBundles() {
	names := availableBundleNames()
	if len(names) == 0 {
		return
	}

	presenter.Info("")
	presenter.Info("Available bundles:")
	for _, name := range names {
		presenter.Info("  " + name)
	}
}

// availableBundleNames returns the sorted bundle names under the skills
// root, or nil when the workspace cannot be resolved.
func availableBundleNames() []string {
	ctx := context.Background()

	locator, _, err := newLocator(ctx)
	if err != nil {
		return nil
	}

	names, err := locator.Names(ctx)
	if err != nil {
		return nil
	}
	return names
}
