package files

import (
	"os"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
)

const (
	// DefaultDirName defines the folder under the user's home directory.
	DefaultDirName = ".prio"

	// HomeEnv overrides where prio keeps its persisted store.
	HomeEnv = "PRIO_HOME"
)

// ResolveBasePath determines where prio keeps its data, defaulting to ~/.prio.
// The location can be overridden by exporting PRIO_HOME.
func ResolveBasePath() (string, error) {
	if override, ok := os.LookupEnv(HomeEnv); ok {
		override = strings.TrimSpace(override)
		if override != "" {
			return NormalizePath(override)
		}
	}

	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultDirName), nil
}

// NormalizePath expands a leading ~ to the current user's home directory.
func NormalizePath(input string) (string, error) {
	return homedir.Expand(strings.TrimSpace(input))
}
