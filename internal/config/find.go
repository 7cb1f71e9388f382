package config

import (
	"os"
	"path/filepath"
)

var configFilenames = []string{
	".roku-lint.yaml",
	".roku-lint.yml",
	".roku-lint.toml",
	".roku-lint.json",
}

// Find walks upward from startDir looking for a rule-set file. It
// returns the first hit, or "" when none exists up to the filesystem
// root.
func Find(startDir string) string {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return ""
	}
	for {
		for _, name := range configFilenames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
