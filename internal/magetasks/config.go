package magetasks

import (
	"os"
	"path/filepath"
)

// Build locations for the doctor binary. The version ldflags in BuildAll
// are rooted at ModulePath, so it must match go.mod.
var (
	// ModulePath is the Go module path.
	ModulePath = "github.com/dkoosis/doctor"

	// BinPath is the output path for built binaries.
	BinPath = "./bin/doctor"

	// ProjectRoot is the root directory of the project.
	ProjectRoot string
)

// Initialize sets up the magetasks package.
// Call this from the Magefile init() function.
func Initialize() error {
	var err error
	ProjectRoot, err = os.Getwd()
	if err != nil {
		return err
	}

	// Ensure bin directory exists
	binDir := filepath.Join(ProjectRoot, "bin")
	if err := os.MkdirAll(binDir, 0o750); err != nil {
		return err
	}

	return nil
}
