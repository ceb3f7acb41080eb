package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/gbb-community/showcase/schema"
	"gopkg.in/yaml.v3"
)

// LoadCatalogFile parses a .gbbcatalog.yml (or .json) file into the typed
// shape used for state derivation.
func LoadCatalogFile(path string) (*schema.CatalogFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %q: %w", path, err)
	}
	var f schema.CatalogFile
	if isJSONPath(path) {
		err = json.Unmarshal(raw, &f)
	} else {
		err = yaml.Unmarshal(raw, &f)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %q: %w", path, err)
	}
	return &f, nil
}

// LoadCatalogDocument parses a catalog file into the raw map form the
// validator works on, so type violations survive parsing and can be
// reported instead of being coerced away.
func LoadCatalogDocument(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %q: %w", path, err)
	}
	return ParseCatalogDocument(raw, isJSONPath(path))
}

// ParseCatalogDocument parses raw catalog bytes into the validator's map
// form. asJSON selects the JSON decoder; otherwise YAML is used (which also
// accepts JSON input).
func ParseCatalogDocument(raw []byte, asJSON bool) (map[string]any, error) {
	doc := make(map[string]any)
	var err error
	if asJSON {
		err = json.Unmarshal(raw, &doc)
	} else {
		err = yaml.Unmarshal(raw, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog document: %w", err)
	}
	return doc, nil
}

func isJSONPath(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".json")
}
