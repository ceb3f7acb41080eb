package cmd

import (
	"github.com/gbb-community/showcase/core"
	"github.com/gbb-community/showcase/internal/contract"
	"github.com/spf13/cobra"
)

// sweepCmd finds stale content pages.
var sweepCmd = &cobra.Command{
	Use:   "sweep <content-dir>",
	Short: "Find content pages past their freshness thresholds.",
	Long: `Scan a markdown content directory for stale pages.

Each page's YAML frontmatter declares owner, status and last_updated.
Pages are flagged by how long ago they were updated:
- medium:   more than 90 days
- high:     more than 120 days
- critical: more than 180 days, or no usable last_updated date at all

Deprecated pages are skipped; they are expected to go unmaintained.

Examples:
  # Sweep the docs tree
  showcase sweep content/

  # Export findings for the review board
  showcase sweep content/ --output csv --output-file stale.csv`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSweep(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot sweep content", err)
		}
	},
}
