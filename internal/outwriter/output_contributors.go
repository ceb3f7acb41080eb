package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gbb-community/showcase/internal/contract"
	"github.com/gbb-community/showcase/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteContributors outputs the merged roster, dispatching based on the
// output format configured.
func WriteContributors(roster []schema.MergedContributor, cfg *contract.Config) error {
	roster = limitTo(roster, cfg.ResultLimit)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, roster)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeContributorCSV(csvWriter, roster)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeContributorTable(roster, cfg, w)
		}, "Wrote table")
	}
}

// writeContributorTable generates and writes the human-readable table.
func writeContributorTable(roster []schema.MergedContributor, cfg *contract.Config, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Rank", "Login", "Region", "Contribs", "Repos", "Latest Commit"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	totalContribs := 0
	for i, c := range roster {
		latest := "-"
		if c.LatestCommit != nil {
			latest = fmt.Sprintf("%s (%s)", c.LatestCommit.Repo, c.LatestCommit.Date)
		}
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncatePath(c.Login, getMaxTableNameWidth(cfg)),
			string(c.Region),
			strconv.Itoa(c.TotalContributions),
			strconv.Itoa(c.RepoCount),
			latest,
		})
		totalContribs += c.TotalContributions
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(writer, "Showing top %d contributors (total contributions: %d)\n", len(roster), totalContribs)
	return err
}

// writeContributorCSV writes the roster in CSV format.
func writeContributorCSV(w *csv.Writer, roster []schema.MergedContributor) error {
	header := []string{"rank", "login", "region", "total_contributions", "repo_count", "repositories", "latest_commit_repo", "latest_commit_date"}
	if err := w.Write(header); err != nil {
		return err
	}
	for i, c := range roster {
		var commitRepo, commitDate string
		if c.LatestCommit != nil {
			commitRepo = c.LatestCommit.Repo
			commitDate = c.LatestCommit.Date
		}
		row := []string{
			strconv.Itoa(i + 1),
			c.Login,
			string(c.Region),
			strconv.Itoa(c.TotalContributions),
			strconv.Itoa(c.RepoCount),
			strings.Join(c.Repositories, ";"),
			commitRepo,
			commitDate,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
