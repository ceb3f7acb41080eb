package cmd

import (
	"github.com/gbb-community/showcase/core"
	"github.com/gbb-community/showcase/internal/contract"
	"github.com/spf13/cobra"
)

// reposCmd classifies repositories into showcase categories.
var reposCmd = &cobra.Command{
	Use:   "repos <data-file>",
	Short: "Classify repositories into categories and asset types.",
	Long: `Classify each repository by its curated topics.

Topics drive both axes of classification:
- Category: ai, data, infrastructure, security, app-development or other
- Asset type: demo, workshop, tool, template, library or code

Repositories without recognizable topics fall back to sensible defaults.
The --legacy flag switches to the older keyword classifier that scans the
name, description and topics as free text and uses the primary language
as a final hint.

Examples:
  # Classify with topic matching
  showcase repos data/repos.json

  # Group the text output by category
  showcase repos data/repos.json --group-by category

  # Compare against the legacy keyword classifier
  showcase repos data/repos.json --legacy --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRepos(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot classify repositories", err)
		}
	},
}
