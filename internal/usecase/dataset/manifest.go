package dataset

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/scholarmill/paperscreen/internal/domain"
)

// manifest is the on-disk training manifest format.
type manifest struct {
	Documents []manifestEntry `yaml:"documents"`
}

type manifestEntry struct {
	Path  string `yaml:"path"`
	Label int    `yaml:"label"`
}

// LoadManifest reads the labeled training set from a YAML manifest.
// Relative document paths are resolved against the manifest's directory.
func LoadManifest(path string) ([]domain.Document, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %v: %w", path, err, domain.ErrManifestInvalid)
	}
	if len(m.Documents) == 0 {
		return nil, fmt.Errorf("manifest %s lists no documents: %w", path, domain.ErrManifestInvalid)
	}

	base := filepath.Dir(path)
	docs := make([]domain.Document, 0, len(m.Documents))
	for i, entry := range m.Documents {
		if entry.Path == "" {
			return nil, fmt.Errorf("manifest entry %d has no path: %w", i, domain.ErrManifestInvalid)
		}
		if entry.Label != 0 && entry.Label != 1 {
			return nil, fmt.Errorf("manifest entry %d has label %d, expected 0 or 1: %w",
				i, entry.Label, domain.ErrManifestInvalid)
		}

		docPath := entry.Path
		if !filepath.IsAbs(docPath) {
			docPath = filepath.Join(base, docPath)
		}
		docs = append(docs, domain.Document{Path: docPath, Label: entry.Label})
	}
	return docs, nil
}
