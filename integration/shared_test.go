//go:build basic || database

package integration

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	// sharedShowcasePath holds the path to a shared showcase binary built once for all tests.
	sharedShowcasePath string

	// buildOnce ensures we only build the binary once.
	buildOnce sync.Once

	// buildMutex protects the shared binary path.
	buildMutex sync.Mutex

	// tempDir holds the temp directory for cleanup.
	tempDir string
)

// TestMain handles setup and cleanup for all integration tests.
func TestMain(m *testing.M) {
	// Run all tests
	code := m.Run()

	// Cleanup the shared binary after all tests
	if tempDir != "" {
		_ = os.RemoveAll(tempDir)
	}

	os.Exit(code)
}

// getShowcaseBinary returns the path to the showcase binary, building it once if needed.
func getShowcaseBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		// Create a temp directory for the binary
		var err error
		tempDir, err = os.MkdirTemp("", "showcase-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		showcasePath := filepath.Join(tempDir, "showcase")
		buildCmd := exec.Command("go", "build", "-o", showcasePath, "./cmd/showcase")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		err = buildCmd.Run()
		if err != nil {
			panic(fmt.Sprintf("failed to build showcase: %v", err))
		}

		sharedShowcasePath = showcasePath
	})

	return sharedShowcasePath
}

// runShowcaseCommand runs the built binary with the given arguments from
// the given working directory.
func runShowcaseCommand(t *testing.T, dir string, args ...string) (string, error) {
	showcasePath := getShowcaseBinary()
	cmd := exec.Command(showcasePath, args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
	}
	return string(output), err
}
