package cmd

import (
	"fmt"
	"os"

	"github.com/gbb-community/showcase/core"
	"github.com/spf13/cobra"
)

// validateCmd validates catalog metadata documents.
var validateCmd = &cobra.Command{
	Use:   "validate [catalog-file]",
	Short: "Validate a catalog metadata document.",
	Long: `Check a .gbbcatalog.yml (or .json) document against the catalog rules.

All violated rules are reported, one per line, so a document can be fixed
in a single pass. The process exits with status 1 when the document is
invalid, which makes this command suitable as a CI gate on catalog
changes.

Rules checked:
- schema_version present and supported
- catalog block present
- enabled is a boolean
- owner, display_name and description are non-empty strings
- maturity is one of incubating, production, deprecated
- last_reviewed, when present, is a valid YYYY-MM-DD date
- review_cycle_days, when present, is a positive number

Examples:
  # Validate a file
  showcase validate .gbbcatalog.yml

  # Validate an inline document
  showcase validate --data '{"schema_version": 1, "catalog": {...}}'`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteValidate(rootCtx, cfg); err != nil {
			_, _ = fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}
