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

// WriteFindings outputs the stale-content sweep results.
func WriteFindings(findings []schema.StaleFinding, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, findings)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeFindingCSV(csvWriter, findings)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeFindingTable(findings, cfg, w)
		}, "Wrote table")
	}
}

// writeFindingTable generates and writes the human-readable table.
func writeFindingTable(findings []schema.StaleFinding, cfg *contract.Config, writer io.Writer) error {
	if len(findings) == 0 {
		_, err := fmt.Fprintln(writer, "No stale content found")
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Path", "Title", "Owner", "Last Updated", "Days Stale", "Severity"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, f := range findings {
		days := "unknown"
		if f.DaysStale >= 0 {
			days = strconv.Itoa(f.DaysStale)
		}
		updated := f.LastUpdated
		if updated == "" {
			updated = "-"
		}
		data = append(data, []string{
			contract.TruncatePath(f.Path, getMaxTableNameWidth(cfg)),
			f.Title,
			f.Owner,
			updated,
			days,
			contract.GetSeverityLabel(f.Severity, cfg.Color),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(writer, "Found %d stale pages\n", len(findings))
	return err
}

// writeFindingCSV writes sweep findings in CSV format.
func writeFindingCSV(w *csv.Writer, findings []schema.StaleFinding) error {
	header := []string{"path", "title", "owner", "status", "last_updated", "days_stale", "severity"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, f := range findings {
		row := []string{
			f.Path,
			f.Title,
			f.Owner,
			string(f.Status),
			f.LastUpdated,
			strconv.Itoa(f.DaysStale),
			string(f.Severity),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
