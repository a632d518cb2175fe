package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/skillpack-dev/skillpack/pkg/installer"
	"github.com/skillpack-dev/skillpack/pkg/presenter"
)

type ShowConfig struct {
	Format string
}

func NewShowConfig() *ShowConfig {
	return &ShowConfig{
		Format: "text",
	}
}

// bundleDetail is the serializable view printed by the show command
type bundleDetail struct {
	Name        string   `yaml:"name"`
	CommandName string   `yaml:"command_name"`
	Directory   string   `yaml:"directory"`
	Manifest    string   `yaml:"manifest"`
	Description string   `yaml:"description,omitempty"`
	Supporting  []string `yaml:"supporting,omitempty"`
}

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a bundle's manifest path, metadata, and supporting files",
	Args:  bundleArgs(cobra.ExactArgs(1)),
	Run: func(cmd *cobra.Command, args []string) {
		config := getShowConfigFromFlags(cmd)
		showBundleCmd(cmd.Context(), args[0], config)
	},
}

func init() {
	defaults := NewShowConfig()
	showCmd.Flags().StringP("format", "f", defaults.Format, "Output format (text or yaml)")
}

func getShowConfigFromFlags(cmd *cobra.Command) *ShowConfig {
	config := NewShowConfig()
	if format, err := cmd.Flags().GetString("format"); err == nil {
		config.Format = format
	}
	return config
}

func showBundleCmd(ctx context.Context, name string, config *ShowConfig) {
	locator, _, err := newLocator(ctx)
	if err != nil {
		fail(err, "Failed to resolve workspace")
	}

	b, err := locator.Resolve(ctx, name)
	if err != nil {
		fail(err, "Failed to resolve bundle")
	}

	manifest, err := b.Manifest()
	if err != nil {
		fail(err, "Failed to resolve bundle manifest")
	}

	detail := bundleDetail{
		Name:        b.Name,
		CommandName: installer.DeriveCommandName(b.Name),
		Directory:   b.Root,
		Manifest:    manifest,
		Supporting:  b.Supporting(),
	}
	detail.Description = describe(b)
	if detail.Description == "-" {
		detail.Description = ""
	}

	switch config.Format {
	case "yaml":
		out, err := yaml.Marshal(detail)
		if err != nil {
			fail(err, "Failed to render bundle detail")
		}
		os.Stdout.Write(out)
	default:
		presenter.Section(detail.Name)
		presenter.Info(fmt.Sprintf("Command:   /%s", detail.CommandName))
		presenter.Info(fmt.Sprintf("Directory: %s", detail.Directory))
		presenter.Info(fmt.Sprintf("Manifest:  %s", detail.Manifest))
		if detail.Description != "" {
			presenter.Info(fmt.Sprintf("Description: %s", detail.Description))
		}
		if len(detail.Supporting) > 0 {
			presenter.Info("Supporting files:")
			for _, path := range detail.Supporting {
				presenter.Info("  " + path)
			}
		}
	}
}
