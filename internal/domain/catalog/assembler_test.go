package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

type fakeProvider struct {
	record    *ProviderRecord
	recordErr error

	papers    Fragment[[]Paper]
	spaces    Fragment[[]map[string]any]
	tree      Fragment[*DependencyTree]
	details   Fragment[*TechnicalDetails]
	citation  Fragment[*string]
	downloads Fragment[DownloadStats]

	fetchCalls int
}

func (f *fakeProvider) FetchModel(ctx context.Context, id string) (*ProviderRecord, error) {
	f.fetchCalls++
	if f.recordErr != nil {
		return nil, f.recordErr
	}
	return f.record, nil
}

func (f *fakeProvider) FetchPapers(ctx context.Context, id string) Fragment[[]Paper] {
	return f.papers
}

func (f *fakeProvider) FetchSpaces(ctx context.Context, id string) Fragment[[]map[string]any] {
	return f.spaces
}

func (f *fakeProvider) FetchTree(ctx context.Context, id string) Fragment[*DependencyTree] {
	return f.tree
}

func (f *fakeProvider) FetchTechnicalDetails(ctx context.Context, id string) Fragment[*TechnicalDetails] {
	return f.details
}

func (f *fakeProvider) FetchCitation(ctx context.Context, id string) Fragment[*string] {
	return f.citation
}

func (f *fakeProvider) FetchDownloads(ctx context.Context, id string) Fragment[DownloadStats] {
	return f.downloads
}

func happyProvider() *fakeProvider {
	citation := "@misc{demo}"
	return &fakeProvider{
		record: &ProviderRecord{
			ID:           "acme/demo-llm",
			Author:       "acme",
			Description:  "An LLM for tests",
			Tags:         []string{"text-generation"},
			PipelineTag:  "text-generation",
			Likes:        42,
			LastModified: "2025-06-01T10:00:00.000Z",
			URL:          "https://huggingface.co/acme/demo-llm",
		},
		papers:    OkFragment([]Paper{{Title: "Demo Paper", URL: "/papers/1234"}}),
		spaces:    OkFragment([]map[string]any{{"id": "acme/space"}}),
		tree:      OkFragment(&DependencyTree{Finetunes: []string{"acme/demo-ft"}}),
		details:   OkFragment(&TechnicalDetails{Architecture: "transformer", Safetensors: true}),
		citation:  OkFragment(&citation),
		downloads: OkFragment(DownloadStats{Downloads: 1000}),
	}
}

func TestAssembleMergesFragments(t *testing.T) {
	provider := happyProvider()
	assembler := NewAssembler(provider, DefaultTaxonomy(), zerolog.Nop())

	model, err := assembler.Assemble(context.Background(), "acme/demo-llm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if model.ID != "acme/demo-llm" || model.Name != "acme/demo-llm" {
		t.Fatalf("unexpected identity: id=%s name=%s", model.ID, model.Name)
	}
	if model.Source != SourceHuggingFace {
		t.Fatalf("expected huggingface source, got %s", model.Source)
	}
	if model.Category != "text-generation" {
		t.Fatalf("expected text-generation category, got %s", model.Category)
	}
	if model.Downloads != 1000 {
		t.Fatalf("expected merged downloads, got %d", model.Downloads)
	}
	if len(model.Papers) != 1 || model.Papers[0].Title != "Demo Paper" {
		t.Fatalf("papers not merged: %+v", model.Papers)
	}
	if model.ModelTree == nil || len(model.ModelTree.Finetunes) != 1 {
		t.Fatalf("tree not merged: %+v", model.ModelTree)
	}
	if model.Citation == nil || *model.Citation != "@misc{demo}" {
		t.Fatalf("citation not merged: %v", model.Citation)
	}
	if model.LastUpdated == nil {
		t.Fatal("expected parsed last updated timestamp")
	}
	if model.ModelType != ModelTypeDownloadable {
		t.Fatalf("expected downloadable type, got %s", model.ModelType)
	}
}

func TestAssembleExtractorFailureDegrades(t *testing.T) {
	provider := happyProvider()
	provider.papers = FailedFragment[[]Paper](nil, errors.New("papers blew up"))
	provider.downloads = FailedFragment(DownloadStats{}, errors.New("downloads blew up"))

	assembler := NewAssembler(provider, DefaultTaxonomy(), zerolog.Nop())
	model, err := assembler.Assemble(context.Background(), "acme/demo-llm")
	if err != nil {
		t.Fatalf("extractor failure must not propagate: %v", err)
	}

	if model.Papers != nil {
		t.Fatalf("expected empty papers default, got %+v", model.Papers)
	}
	if model.Downloads != 0 {
		t.Fatalf("expected zero downloads default, got %d", model.Downloads)
	}
	// Unaffected extractors still contribute.
	if model.Citation == nil {
		t.Fatal("citation should survive other extractor failures")
	}
}

func TestAssembleBaseFetchFailurePropagates(t *testing.T) {
	provider := happyProvider()
	provider.recordErr = errors.New("model not found")

	assembler := NewAssembler(provider, DefaultTaxonomy(), zerolog.Nop())
	if _, err := assembler.Assemble(context.Background(), "acme/missing"); err == nil {
		t.Fatal("expected base fetch error to propagate")
	}
}

func TestAssembleIdempotent(t *testing.T) {
	provider := happyProvider()
	assembler := NewAssembler(provider, DefaultTaxonomy(), zerolog.Nop())

	first, err := assembler.Assemble(context.Background(), "acme/demo-llm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := assembler.Assemble(context.Background(), "acme/demo-llm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.Category != second.Category || first.Downloads != second.Downloads || first.ID != second.ID {
		t.Fatalf("assembly not idempotent: %+v vs %+v", first, second)
	}
}

func TestParseProviderTime(t *testing.T) {
	if got := parseProviderTime("2025-06-01T10:00:00.000Z"); got == nil {
		t.Fatal("expected millisecond layout to parse")
	}
	if got := parseProviderTime("2025-06-01T10:00:00Z"); got == nil {
		t.Fatal("expected RFC3339 to parse")
	}
	if got := parseProviderTime("not-a-time"); got != nil {
		t.Fatalf("expected nil for garbage input, got %v", got)
	}
	if got := parseProviderTime(""); got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
}
