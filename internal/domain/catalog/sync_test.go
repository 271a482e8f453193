package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

type fakeBulkSource struct {
	name      string
	summaries []Summary
	err       error
}

func (f *fakeBulkSource) Name() string { return f.name }

func (f *fakeBulkSource) ListModels(ctx context.Context) ([]Summary, error) {
	return f.summaries, f.err
}

func TestSyncAllCreatesMinimalRecords(t *testing.T) {
	repo := newFakeRepo()
	source := &fakeBulkSource{name: "huggingface", summaries: []Summary{
		{ID: "acme/a", Name: "acme/a", Source: SourceHuggingFace, URL: "https://huggingface.co/acme/a", Downloads: 5},
		{ID: "", Name: "skipped"},
		{ID: "acme/b", Name: "acme/b", Source: SourceHuggingFace},
	}}
	sync := NewSyncService(repo, []BulkSource{source}, 2, zerolog.Nop())

	results := sync.SyncAll(context.Background())
	if len(results) != 1 {
		t.Fatalf("expected one source result, got %d", len(results))
	}
	if results[0].Stored != 2 || results[0].Failed != 0 {
		t.Fatalf("unexpected result: %+v", results[0])
	}

	created := repo.models["acme/a"]
	if created == nil {
		t.Fatal("expected minimal record for acme/a")
	}
	if created.Category != FallbackCategory {
		t.Fatalf("bulk records default to fallback category, got %s", created.Category)
	}
	if created.HuggingFaceURL != "https://huggingface.co/acme/a" {
		t.Fatalf("source URL not routed: %+v", created)
	}
}

func TestSyncAllRoutesReplicateURL(t *testing.T) {
	repo := newFakeRepo()
	source := &fakeBulkSource{name: "replicate", summaries: []Summary{
		{ID: "acme/r", Name: "r", Source: SourceReplicate, URL: "https://replicate.com/acme/r", ModelType: ModelTypeAPI},
	}}
	sync := NewSyncService(repo, []BulkSource{source}, 1, zerolog.Nop())

	sync.SyncAll(context.Background())

	created := repo.models["acme/r"]
	if created == nil {
		t.Fatal("expected record for acme/r")
	}
	if created.ReplicateURL == "" || created.HuggingFaceURL != "" {
		t.Fatalf("replicate URL not routed: %+v", created)
	}
	if created.ModelType != ModelTypeAPI {
		t.Fatalf("expected api model type, got %s", created.ModelType)
	}
}

func TestSyncAllPreservesEnrichment(t *testing.T) {
	repo := newFakeRepo()
	citation := "@misc{kept}"
	repo.models["acme/a"] = &Model{
		ID:        "acme/a",
		Name:      "acme/a",
		Category:  "text-generation",
		Citation:  &citation,
		Downloads: 100,
	}
	source := &fakeBulkSource{name: "huggingface", summaries: []Summary{
		{ID: "acme/a", Name: "acme/a", Source: SourceHuggingFace, Downloads: 500},
	}}
	sync := NewSyncService(repo, []BulkSource{source}, 1, zerolog.Nop())

	sync.SyncAll(context.Background())

	updated := repo.models["acme/a"]
	if updated.Citation == nil || *updated.Citation != "@misc{kept}" {
		t.Fatalf("bulk pass clobbered enrichment: %+v", updated)
	}
	if updated.Category != "text-generation" {
		t.Fatalf("bulk pass clobbered category: %s", updated.Category)
	}
	if updated.Downloads != 500 {
		t.Fatalf("summary fields should refresh, got %d", updated.Downloads)
	}
}

func TestSyncAllSourceFailureIsolated(t *testing.T) {
	repo := newFakeRepo()
	broken := &fakeBulkSource{name: "replicate", err: errors.New("upstream down")}
	healthy := &fakeBulkSource{name: "huggingface", summaries: []Summary{
		{ID: "acme/a", Name: "acme/a", Source: SourceHuggingFace},
	}}
	sync := NewSyncService(repo, []BulkSource{broken, healthy}, 2, zerolog.Nop())

	results := sync.SyncAll(context.Background())
	if len(results) != 2 {
		t.Fatalf("expected two results, got %d", len(results))
	}

	var brokenResult, healthyResult SourceResult
	for _, r := range results {
		switch r.Source {
		case "replicate":
			brokenResult = r
		case "huggingface":
			healthyResult = r
		}
	}
	if brokenResult.Err == nil {
		t.Fatal("expected error result for broken source")
	}
	if healthyResult.Stored != 1 {
		t.Fatalf("healthy source must not be starved: %+v", healthyResult)
	}
	if repo.models["acme/a"] == nil {
		t.Fatal("healthy source record missing")
	}
}
