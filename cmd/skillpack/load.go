package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/skillpack-dev/skillpack/pkg/bundle"
	"github.com/skillpack-dev/skillpack/pkg/presenter"
)

type LoadConfig struct {
	BodyOnly bool
}

func NewLoadConfig() *LoadConfig {
	return &LoadConfig{
		BodyOnly: false,
	}
}

var loadCmd = &cobra.Command{
	Use:   "load <name>",
	Short: "Write a bundle's manifest to stdout",
	Long: `Write the named bundle's manifest file to standard output, verbatim.
With --body the YAML frontmatter block is stripped first.

The output is suitable for piping or embedding as configuration:

  skillpack load domain-modelling > prompt.md`,
	Args: bundleArgs(cobra.ExactArgs(1)),
	Run: func(cmd *cobra.Command, args []string) {
		config := getLoadConfigFromFlags(cmd)
		loadBundleCmd(cmd.Context(), args[0], config)
	},
}

func init() {
	defaults := NewLoadConfig()
	loadCmd.Flags().Bool("body", defaults.BodyOnly, "Strip the frontmatter block and emit only the manifest body")
}

func getLoadConfigFromFlags(cmd *cobra.Command) *LoadConfig {
	config := NewLoadConfig()
	if body, err := cmd.Flags().GetBool("body"); err == nil {
		config.BodyOnly = body
	}
	return config
}

func loadBundleCmd(ctx context.Context, name string, config *LoadConfig) {
	locator, _, err := newLocator(ctx)
	if err != nil {
		fail(err, "Failed to resolve workspace")
	}

	b, err := locator.Resolve(ctx, name)
	if err != nil {
		fail(err, "Failed to resolve bundle")
	}

	content, err := b.ReadContent()
	if err != nil {
		fail(err, "Failed to read bundle manifest")
	}

	if config.BodyOnly {
		content = []byte(bundle.Body(string(content)))
	}

	if _, err := os.Stdout.Write(content); err != nil {
		presenter.Error(err, "Failed to write manifest to stdout")
		os.Exit(exitIO)
	}
}
