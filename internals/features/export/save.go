package export

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// DefaultFilename is used when a caller hands an artifact off without
// naming it.
const DefaultFilename = "rapport-relationnel.pdf"

// Save writes a rendered artifact to disk. It is independent of Render:
// callers may render without saving (HTTP download) or save a previously
// rendered artifact.
func Save(artifact []byte, filename string) (string, error) {
	if len(artifact) == 0 {
		return "", errors.New("export: empty artifact")
	}
	if strings.TrimSpace(filename) == "" {
		filename = DefaultFilename
	}
	path := filepath.Clean(filename)
	if err := os.WriteFile(path, artifact, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
