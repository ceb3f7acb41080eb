package cmd

import (
	"github.com/gbb-community/showcase/core"
	"github.com/gbb-community/showcase/internal/contract"
	"github.com/spf13/cobra"
)

// stateCmd derives catalog lifecycle states.
var stateCmd = &cobra.Command{
	Use:   "state <data-file>",
	Short: "Derive the catalog lifecycle state for each repository.",
	Long: `Evaluate every repository against the catalog state machine.

States:
- not-in-catalog: no catalog metadata, or enabled is false
- published:      enabled and reviewed within its review cycle
- needs-review:   enabled but strictly past its review cycle
- deprecated:     maturity is deprecated, regardless of review recency

States are derived fresh on every run from the metadata and the current
time; nothing is stored back.

Examples:
  # Review the whole portfolio
  showcase state data/repos.json

  # Feed the review queue to another tool
  showcase state data/repos.json --output json

  # Check a single catalog file
  showcase state .gbbcatalog.yml`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteState(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot derive catalog states", err)
		}
	},
}
