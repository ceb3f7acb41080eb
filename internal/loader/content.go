package loader

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gbb-community/showcase/schema"
	"gopkg.in/yaml.v3"
)

var frontmatterDelim = []byte("---")

// ScanContentDir walks a content directory and parses the YAML frontmatter
// of every markdown file into a ContentEntry. Files without frontmatter are
// skipped; a file whose frontmatter fails to parse is reported via the
// warn callback and skipped rather than aborting the whole sweep.
func ScanContentDir(dir string, warn func(path string, err error)) ([]schema.ContentEntry, error) {
	var entries []schema.ContentEntry

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".md") {
			return nil
		}

		entry, ok, perr := parseContentFile(path)
		if perr != nil {
			if warn != nil {
				warn(path, perr)
			}
			return nil
		}
		if ok {
			entries = append(entries, entry)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan content directory %q: %w", dir, err)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return entries, nil
}

// parseContentFile extracts the frontmatter block between the leading "---"
// fences and decodes it. The second return is false when the file has no
// frontmatter at all.
func parseContentFile(path string) (schema.ContentEntry, bool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return schema.ContentEntry{}, false, err
	}

	trimmed := bytes.TrimLeft(raw, "\uFEFF\r\n ")
	if !bytes.HasPrefix(trimmed, frontmatterDelim) {
		return schema.ContentEntry{}, false, nil
	}
	rest := trimmed[len(frontmatterDelim):]
	end := bytes.Index(rest, append([]byte("\n"), frontmatterDelim...))
	if end < 0 {
		return schema.ContentEntry{}, false, fmt.Errorf("unterminated frontmatter")
	}

	var entry schema.ContentEntry
	if err := yaml.Unmarshal(rest[:end], &entry); err != nil {
		return schema.ContentEntry{}, false, fmt.Errorf("invalid frontmatter: %w", err)
	}
	entry.Path = path
	return entry, true, nil
}
