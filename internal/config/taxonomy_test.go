package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTaxonomy(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "taxonomy.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write taxonomy file: %v", err)
	}
	return path
}

func TestLoadTaxonomyFile(t *testing.T) {
	path := writeTaxonomy(t, `
categories:
  - category: text-generation
    keywords: [" LLM ", "Chat", ""]
  - category: ""
    keywords: ["ignored"]
  - category: computer-vision
    keywords: ["detection"]
`)

	entries, err := LoadTaxonomyFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Category != "text-generation" {
		t.Fatalf("order not preserved: %+v", entries)
	}
	if len(entries[0].Keywords) != 2 || entries[0].Keywords[0] != "llm" || entries[0].Keywords[1] != "chat" {
		t.Fatalf("keywords not normalized: %+v", entries[0].Keywords)
	}
}

func TestLoadTaxonomyFileEmptyPath(t *testing.T) {
	if _, err := LoadTaxonomyFile("   "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestLoadTaxonomyFileMissing(t *testing.T) {
	if _, err := LoadTaxonomyFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadTaxonomyFileNoCategories(t *testing.T) {
	path := writeTaxonomy(t, "categories: []\n")
	if _, err := LoadTaxonomyFile(path); err == nil {
		t.Fatal("expected error for empty taxonomy")
	}
}

func TestLoadTaxonomyFileBadYAML(t *testing.T) {
	path := writeTaxonomy(t, "categories: [unterminated\n")
	if _, err := LoadTaxonomyFile(path); err == nil {
		t.Fatal("expected parse error")
	}
}
