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

// WriteRepositories outputs categorized repositories, dispatching based on
// the output format configured. When cfg.GroupBy is set, a grouped summary
// is printed instead of the flat listing.
func WriteRepositories(repos []schema.CategorizedRepository, cfg *contract.Config) error {
	if cfg.GroupBy != "" && cfg.Output == schema.TextOut {
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeGroupSummary(repos, cfg, w)
		}, "Wrote table")
	}

	repos = limitTo(repos, cfg.ResultLimit)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, repos)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeRepositoryCSV(csvWriter, repos)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRepositoryTable(repos, cfg, w)
		}, "Wrote table")
	}
}

// writeRepositoryTable generates and writes the human-readable table.
func writeRepositoryTable(repos []schema.CategorizedRepository, cfg *contract.Config, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Name", "Category", "Type", "Lang", "Stars", "Topics"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	var data [][]string
	for _, r := range repos {
		topics := strings.Join(r.NormalizedTopics(), ", ")
		data = append(data, []string{
			contract.TruncatePath(r.Name, getMaxTableNameWidth(cfg)),
			fmt.Sprintf("%s %s", r.CategoryDescriptor.Icon, r.CategoryDescriptor.Label),
			r.AssetTypeDescriptor.Label,
			r.PrimaryLanguage,
			strconv.Itoa(r.Stars),
			contract.TruncatePath(topics, 40),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(writer, "Classified %d repositories\n", len(repos))
	return err
}

// writeGroupSummary prints repository counts per category or asset type,
// with every bucket present even when empty.
func writeGroupSummary(repos []schema.CategorizedRepository, cfg *contract.Config, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	var data [][]string
	if cfg.GroupBy == "type" {
		table.Header([]string{"Asset Type", "Count", "Repositories"})
		groups := groupNamesByAssetType(repos)
		for _, at := range schema.AssetTypeOrder {
			names := groups[at]
			data = append(data, []string{
				at.Descriptor().Label,
				strconv.Itoa(len(names)),
				contract.TruncatePath(strings.Join(names, ", "), 60),
			})
		}
	} else {
		table.Header([]string{"Category", "Count", "Repositories"})
		groups := groupNamesByCategory(repos)
		for _, cat := range schema.CategoryOrder {
			names := groups[cat]
			data = append(data, []string{
				fmt.Sprintf("%s %s", cat.Descriptor().Icon, cat.Descriptor().Label),
				strconv.Itoa(len(names)),
				contract.TruncatePath(strings.Join(names, ", "), 60),
			})
		}
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeRepositoryCSV writes classified repositories in CSV format.
func writeRepositoryCSV(w *csv.Writer, repos []schema.CategorizedRepository) error {
	header := []string{"name", "category", "asset_type", "primary_language", "stars", "archived", "topics"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range repos {
		row := []string{
			r.Name,
			string(r.Category),
			string(r.AssetType),
			r.PrimaryLanguage,
			strconv.Itoa(r.Stars),
			strconv.FormatBool(r.Archived),
			strings.Join(r.NormalizedTopics(), ";"),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func groupNamesByCategory(repos []schema.CategorizedRepository) map[schema.Category][]string {
	groups := make(map[schema.Category][]string)
	for _, r := range repos {
		groups[r.Category] = append(groups[r.Category], r.Name)
	}
	return groups
}

func groupNamesByAssetType(repos []schema.CategorizedRepository) map[schema.AssetType][]string {
	groups := make(map[schema.AssetType][]string)
	for _, r := range repos {
		groups[r.AssetType] = append(groups[r.AssetType], r.Name)
	}
	return groups
}
