package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/gbb-community/showcase/internal/contract"
	"github.com/gbb-community/showcase/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteStates outputs catalog lifecycle states per repository.
func WriteStates(states []schema.RepoState, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, states)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeStateCSV(csvWriter, states)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeStateTable(states, cfg, w)
		}, "Wrote table")
	}
}

// writeStateTable generates and writes the human-readable table.
func writeStateTable(states []schema.RepoState, cfg *contract.Config, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Repo", "State", "Maturity", "Days Since Review", "Cycle", "Needs Review"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	needsReview := 0
	var data [][]string
	for _, s := range states {
		days := "-"
		if s.DaysSince >= 0 {
			days = strconv.Itoa(s.DaysSince)
		}
		if s.NeedsReview {
			needsReview++
		}
		data = append(data, []string{
			contract.TruncatePath(s.Repo, getMaxTableNameWidth(cfg)),
			contract.GetStateLabel(s.State, cfg.Color),
			string(s.Maturity),
			days,
			strconv.Itoa(s.CycleDays),
			strconv.FormatBool(s.NeedsReview),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(writer, "Evaluated %d repositories (%d need review)\n", len(states), needsReview)
	return err
}

// writeStateCSV writes lifecycle states in CSV format.
func writeStateCSV(w *csv.Writer, states []schema.RepoState) error {
	header := []string{"repo", "state", "maturity", "days_since_review", "review_cycle_days", "needs_review"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, s := range states {
		row := []string{
			s.Repo,
			string(s.State),
			string(s.Maturity),
			strconv.Itoa(s.DaysSince),
			strconv.Itoa(s.CycleDays),
			strconv.FormatBool(s.NeedsReview),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
