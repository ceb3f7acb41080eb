// Package loader reads the materialized input records the collector wrote
// to disk and hands parsed structures to core. No network access happens
// here or anywhere else in the tool.
package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gbb-community/showcase/schema"
)

// LoadContributorData reads the aggregator input from a JSON file.
func LoadContributorData(path string) (*schema.ContributorData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read contributor data %q: %w", path, err)
	}
	var data schema.ContributorData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse contributor data %q: %w", path, err)
	}
	return &data, nil
}

// LoadRepositories reads a repository list from a JSON file. Both a bare
// array and a {"repositories": [...]} wrapper are accepted.
func LoadRepositories(path string) ([]schema.Repository, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read repository data %q: %w", path, err)
	}

	var repos []schema.Repository
	if err := json.Unmarshal(raw, &repos); err == nil {
		return repos, nil
	}

	var wrapper struct {
		Repositories []schema.Repository `json:"repositories"`
	}
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to parse repository data %q: %w", path, err)
	}
	return wrapper.Repositories, nil
}
