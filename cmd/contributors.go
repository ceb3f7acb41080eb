package cmd

import (
	"github.com/gbb-community/showcase/core"
	"github.com/gbb-community/showcase/internal/contract"
	"github.com/spf13/cobra"
)

// contributorsCmd merges collector output into the community roster.
var contributorsCmd = &cobra.Command{
	Use:   "contributors <data-file>",
	Short: "Show the community contributor roster ranked by contributions.",
	Long: `Merge per-repository contributor lists into one deduplicated roster.

Each contributor appears once regardless of how many repositories they
touched, with:
- Total contributions summed across all repositories
- The list of repositories they contributed to
- Their most recent commit across the whole portfolio
- A geographic region derived from their profile location

Examples:
  # Show the top contributors
  showcase contributors data/contributors.json

  # Export the full roster to CSV
  showcase contributors data/contributors.json --limit 500 --output csv --output-file roster.csv`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteContributors(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot build contributor roster", err)
		}
	},
}
