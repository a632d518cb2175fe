package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/skillpack-dev/skillpack/pkg/bundle"
	"github.com/skillpack-dev/skillpack/pkg/presenter"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all bundles under the skills root",
	Long:  `List all bundles with their names, descriptions, and directory paths.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		listBundlesCmd(cmd.Context())
	},
}

func listBundlesCmd(ctx context.Context) {
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

	sort.Slice(bundles, func(i, j int) bool {
		return bundles[i].Name < bundles[j].Name
	})

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDIRECTORY\tDESCRIPTION")
	fmt.Fprintln(tw, "----\t---------\t-----------")

	for _, b := range bundles {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", b.Name, b.Root, truncateDescription(describe(b), 60))
	}

	tw.Flush()
}

// truncateDescription shortens a description to at most max characters,
// counting runes so multi-byte text is never cut mid-character.
func truncateDescription(description string, max int) string {
	runes := []rune(description)
	if len(runes) <= max {
		return description
	}
	return string(runes[:max-3]) + "..."
}

// describe best-effort extracts the frontmatter description of a bundle.
func describe(b *bundle.Bundle) string {
	content, err := b.ReadContent()
	if err != nil {
		return "-"
	}

	md, present, err := bundle.ParseMetadata(content)
	if err != nil || !present || md.Description == "" {
		return "-"
	}

	return md.Description
}
