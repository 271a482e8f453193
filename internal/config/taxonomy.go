package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// TaxonomyEntry is one category bucket with its matching keywords, in
// declaration order. Order is significant: classification is first match wins.
type TaxonomyEntry struct {
	Category string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
}

type taxonomyFile struct {
	Categories []TaxonomyEntry `yaml:"categories"`
}

// LoadTaxonomyFile parses an optional taxonomy override file. The file lists
// category buckets in priority order; a missing fallback bucket is appended
// by the classifier itself.
func LoadTaxonomyFile(path string) ([]TaxonomyEntry, error) {
	cleanPath := filepath.Clean(strings.TrimSpace(path))
	if cleanPath == "" || cleanPath == "." {
		return nil, fmt.Errorf("taxonomy file path is empty")
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy file %s: %w", cleanPath, err)
	}

	var parsed taxonomyFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse taxonomy file %s: %w", cleanPath, err)
	}

	entries := make([]TaxonomyEntry, 0, len(parsed.Categories))
	for _, entry := range parsed.Categories {
		name := strings.TrimSpace(entry.Category)
		if name == "" {
			continue
		}
		keywords := make([]string, 0, len(entry.Keywords))
		for _, kw := range entry.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" {
				keywords = append(keywords, kw)
			}
		}
		entries = append(entries, TaxonomyEntry{Category: name, Keywords: keywords})
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("taxonomy file %s defines no categories", cleanPath)
	}
	return entries, nil
}
