package catalog

import (
	"testing"
)

func TestClassifyFirstBucketWins(t *testing.T) {
	taxonomy := DefaultTaxonomy()

	// "chat" hits text-generation before any later bucket can match.
	got := taxonomy.Classify(ClassifySignals{
		Tags:        []string{"text-generation", "chat"},
		PipelineTag: "text-to-image",
	})
	if got != "text-generation" {
		t.Fatalf("expected text-generation, got %s", got)
	}
}

func TestClassifyUsesAllSignals(t *testing.T) {
	taxonomy := DefaultTaxonomy()

	cases := []struct {
		name    string
		signals ClassifySignals
		want    string
	}{
		{
			name:    "pipeline tag only",
			signals: ClassifySignals{PipelineTag: "text-to-speech"},
			want:    "text-to-speech",
		},
		{
			name:    "description only",
			signals: ClassifySignals{Description: "A Stable-Diffusion checkpoint for art"},
			want:    "image-generation",
		},
		{
			name:    "model name only",
			signals: ClassifySignals{Name: "openai/whisper-stt-large"},
			want:    "speech-to-text",
		},
		{
			name:    "tags only",
			signals: ClassifySignals{Tags: []string{"object-detection", "coco"}},
			want:    "computer-vision",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := taxonomy.Classify(tc.signals); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestClassifyFallback(t *testing.T) {
	taxonomy := DefaultTaxonomy()

	got := taxonomy.Classify(ClassifySignals{
		Description: "something entirely unrelated",
		Name:        "acme/widget",
	})
	if got != FallbackCategory {
		t.Fatalf("expected %s, got %s", FallbackCategory, got)
	}

	if got := taxonomy.Classify(ClassifySignals{}); got != FallbackCategory {
		t.Fatalf("expected %s for empty signals, got %s", FallbackCategory, got)
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	taxonomy := DefaultTaxonomy()

	got := taxonomy.Classify(ClassifySignals{Description: "An LLM fine-tuned for dialogue"})
	if got != "text-generation" {
		t.Fatalf("expected text-generation, got %s", got)
	}
}

func TestNewTaxonomySkipsFallbackBucket(t *testing.T) {
	taxonomy := NewTaxonomy([]TaxonomyBucket{
		{Category: "other", Keywords: []string{"anything"}},
		{Category: "custom", Keywords: []string{"CUSTOM-KEYWORD"}},
	})

	categories := taxonomy.Categories()
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %v", categories)
	}
	if categories[0] != "custom" || categories[1] != FallbackCategory {
		t.Fatalf("unexpected category order: %v", categories)
	}

	// Keywords are lowercased at construction time.
	if got := taxonomy.Classify(ClassifySignals{Description: "has custom-keyword inside"}); got != "custom" {
		t.Fatalf("expected custom, got %s", got)
	}
}

func TestCategoriesEndWithFallback(t *testing.T) {
	categories := DefaultTaxonomy().Categories()
	if len(categories) != 10 {
		t.Fatalf("expected 10 categories, got %d: %v", len(categories), categories)
	}
	if categories[len(categories)-1] != FallbackCategory {
		t.Fatalf("expected fallback last, got %v", categories)
	}
}
