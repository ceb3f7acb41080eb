package contract

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/gbb-community/showcase/schema"
)

// Color variables for console output.
var (
	CriticalColor = color.New(color.FgRed, color.Bold)
	HighColor     = color.New(color.FgMagenta, color.Bold)
	ModerateColor = color.New(color.FgYellow)
	LowColor      = color.New(color.FgCyan)
	OKColor       = color.New(color.FgGreen)
)

// GetStateLabel returns a colored label for a catalog lifecycle state.
// When colored is false the plain state string is returned, which is what
// the CSV and JSON writers use.
func GetStateLabel(state schema.CatalogState, colored bool) string {
	text := string(state)
	if !colored {
		return text
	}
	switch state {
	case schema.StatePublished:
		return OKColor.Sprint(text)
	case schema.StateNeedsReview:
		return ModerateColor.Sprint(text)
	case schema.StateDeprecated:
		return CriticalColor.Sprint(text)
	default: // not-in-catalog
		return LowColor.Sprint(text)
	}
}

// GetSeverityLabel returns a colored label for a stale severity.
func GetSeverityLabel(severity schema.StaleSeverity, colored bool) string {
	text := string(severity)
	if !colored {
		return text
	}
	switch severity {
	case schema.SeverityCritical:
		return CriticalColor.Sprint(text)
	case schema.SeverityHigh:
		return HighColor.Sprint(text)
	default: // medium
		return ModerateColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It returns os.Stdout when the path is empty.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetSnapshotDBFilePath returns the path to the SQLite DB file for snapshot
// storage.
func GetSnapshotDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".showcase_snapshots.db"
	}
	return filepath.Join(homeDir, ".showcase_snapshots.db")
}

// TruncatePath shortens a path for table display, keeping the trailing
// segments which carry the most signal.
func TruncatePath(path string, maxWidth int) string {
	if maxWidth <= 3 || len(path) <= maxWidth {
		return path
	}
	return "..." + path[len(path)-(maxWidth-3):]
}
