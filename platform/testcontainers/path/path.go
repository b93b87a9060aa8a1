package path

import (
	"os"
	"path/filepath"
)

// GetProjectRoot walks up from the working directory to the first directory
// holding a go.mod file.
func GetProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		panic("failed to get working directory: " + err.Error())
	}

	for {
		_, err = os.Stat(filepath.Join(dir, "go.mod"))
		if err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			panic("project root not found (no go.mod above " + dir + ")")
		}

		dir = parent
	}
}

// MigrationsDir is the goose migrations directory of the project.
func MigrationsDir() string {
	return filepath.Join(GetProjectRoot(), "migrations")
}
