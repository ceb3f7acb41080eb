// Package core has core logic for region detection, contributor
// aggregation, repository classification and catalog lifecycle.
package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gbb-community/showcase/internal/catstore"
	"github.com/gbb-community/showcase/internal/contract"
	"github.com/gbb-community/showcase/internal/loader"
	"github.com/gbb-community/showcase/internal/outwriter"
	"github.com/gbb-community/showcase/schema"
)

// ExecutorFunc defines the function signature for executing different commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// ExecuteContributors merges per-repository contributor lists into the
// community roster and prints it. It serves as the main entry point for
// the 'contributors' command.
func ExecuteContributors(_ context.Context, cfg *contract.Config) error {
	data, err := loader.LoadContributorData(cfg.InputPath)
	if err != nil {
		return err
	}
	roster := MergeContributors(data)

	recordContributorRun(cfg, data, roster)

	return outwriter.WriteContributors(roster, cfg)
}

// ExecuteRepos classifies repositories into categories and asset types and
// prints them. It serves as the main entry point for the 'repos' command.
func ExecuteRepos(_ context.Context, cfg *contract.Config) error {
	repos, err := loader.LoadRepositories(cfg.InputPath)
	if err != nil {
		return err
	}
	categorized := CategorizeRepositories(repos, cfg.Legacy)

	recordRepoRun(cfg, categorized)

	return outwriter.WriteRepositories(categorized, cfg)
}

// ExecuteState derives the catalog lifecycle state for each repository and
// prints the result. It serves as the main entry point for the 'state'
// command. A YAML input path is treated as a single catalog file, so one
// entry can be checked without materializing a repository list.
func ExecuteState(_ context.Context, cfg *contract.Config) error {
	var repos []schema.Repository
	var err error
	if isCatalogFilePath(cfg.InputPath) {
		f, ferr := loader.LoadCatalogFile(cfg.InputPath)
		if ferr != nil {
			return ferr
		}
		repos = []schema.Repository{{
			Name:    f.Catalog.DisplayName,
			Catalog: &f.Catalog,
		}}
	} else {
		repos, err = loader.LoadRepositories(cfg.InputPath)
		if err != nil {
			return err
		}
	}
	states := EvaluateStates(repos, cfg.Now)
	return outwriter.WriteStates(states, cfg)
}

// isCatalogFilePath reports whether a state input path points at a single
// catalog file rather than a repository list.
func isCatalogFilePath(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".yml") || strings.HasSuffix(lower, ".yaml")
}

// ExecuteValidate validates a catalog metadata document and prints every
// violation, one per line. A non-nil error means the document is invalid
// or could not be read.
func ExecuteValidate(_ context.Context, cfg *contract.Config) error {
	var doc map[string]any
	var err error
	switch {
	case cfg.RawData != "":
		doc, err = loader.ParseCatalogDocument([]byte(cfg.RawData), true)
	case cfg.InputPath != "":
		doc, err = loader.LoadCatalogDocument(cfg.InputPath)
	default:
		return errors.New("a catalog file path or --data document is required")
	}
	if err != nil {
		return err
	}

	violations := ValidateCatalogDocument(doc)
	if len(violations) == 0 {
		fmt.Println("Catalog document is valid")
		return nil
	}
	for _, v := range violations {
		fmt.Println(v)
	}
	return fmt.Errorf("catalog document has %d violations", len(violations))
}

// ExecuteSweep scans a content directory for stale pages and prints the
// findings. It serves as the main entry point for the 'sweep' command.
func ExecuteSweep(_ context.Context, cfg *contract.Config) error {
	entries, err := loader.ScanContentDir(cfg.InputPath, func(path string, perr error) {
		contract.LogWarn(fmt.Sprintf("skipping %s", path), perr)
	})
	if err != nil {
		return err
	}
	findings := SweepContent(entries, cfg.Now)
	return outwriter.WriteFindings(findings, cfg)
}

// recordContributorRun persists one aggregation run to the snapshot store.
// Persistence is best effort; failures are logged and never abort the
// command.
func recordContributorRun(cfg *contract.Config, data *schema.ContributorData, roster []schema.MergedContributor) {
	store := catstore.Manager.GetSnapshotStore()
	if store == nil {
		return
	}

	params := map[string]any{
		"command": "contributors",
		"input":   cfg.InputPath,
		"limit":   cfg.ResultLimit,
	}
	runID, err := store.BeginRun(cfg.Now, params)
	if err != nil {
		contract.LogWarn("beginning snapshot run", err)
		return
	}
	for _, merged := range roster {
		if err := store.RecordContributor(runID, merged); err != nil {
			contract.LogWarn(fmt.Sprintf("recording contributor %s", merged.Login), err)
		}
	}
	if err := store.EndRun(runID, time.Now(), len(data.Repositories), len(roster)); err != nil {
		contract.LogWarn("ending snapshot run", err)
	}
}

// recordRepoRun persists one classification run to the snapshot store.
func recordRepoRun(cfg *contract.Config, categorized []schema.CategorizedRepository) {
	store := catstore.Manager.GetSnapshotStore()
	if store == nil {
		return
	}

	params := map[string]any{
		"command": "repos",
		"input":   cfg.InputPath,
		"legacy":  cfg.Legacy,
	}
	runID, err := store.BeginRun(cfg.Now, params)
	if err != nil {
		contract.LogWarn("beginning snapshot run", err)
		return
	}
	for _, repo := range categorized {
		state := CatalogState(repo.Catalog, repo.PushedAt, cfg.Now)
		if err := store.RecordRepository(runID, repo, state); err != nil {
			contract.LogWarn(fmt.Sprintf("recording repository %s", repo.Name), err)
		}
	}
	if err := store.EndRun(runID, time.Now(), len(categorized), 0); err != nil {
		contract.LogWarn("ending snapshot run", err)
	}
}
