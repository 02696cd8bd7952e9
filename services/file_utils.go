package services

import (
	"os"
	"path/filepath"
	"strings"
)

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	replacer := strings.NewReplacer("..", "_", "/", "_", "\\", "_")
	return replacer.Replace(name)
}

// resolveArtifact finds the artifact for a job id inside dir: the exact
// expected filename first, then the first directory entry (sorted name
// order) whose name begins with the id. Empty string when nothing matches.
func resolveArtifact(dir, exactName, jobID string) string {
	path := filepath.Join(dir, exactName)
	if _, err := os.Stat(path); err == nil {
		return path
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasPrefix(entry.Name(), jobID) {
			return filepath.Join(dir, entry.Name())
		}
	}
	return ""
}
