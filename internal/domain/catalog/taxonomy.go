package catalog

import (
	"strings"
)

// FallbackCategory is returned when no keyword bucket matches.
const FallbackCategory = "other"

// TaxonomyBucket is one category with its keyword set. Bucket order is the
// tie-break: the first bucket with a matching keyword wins.
type TaxonomyBucket struct {
	Category string
	Keywords []string
}

// Taxonomy is the immutable category table. It is built once at startup and
// never mutated afterwards.
type Taxonomy struct {
	buckets []TaxonomyBucket
}

// defaultBuckets mirrors the catalog's fixed category table.
var defaultBuckets = []TaxonomyBucket{
	{Category: "text-generation", Keywords: []string{
		"text-generation", "gpt", "llm", "language-model", "chat", "completion",
		"text2text", "summarization", "translation",
	}},
	{Category: "image-generation", Keywords: []string{
		"text-to-image", "image-generation", "stable-diffusion", "gan",
		"text2image", "diffusion", "dalle", "midjourney",
	}},
	{Category: "image-to-text", Keywords: []string{
		"image-to-text", "image-captioning", "ocr", "optical-character-recognition",
		"visual-question-answering", "image2text",
	}},
	{Category: "text-to-speech", Keywords: []string{
		"text-to-speech", "tts", "speech-synthesis", "voice-generation",
		"text2speech", "audio-generation",
	}},
	{Category: "speech-to-text", Keywords: []string{
		"speech-to-text", "speech-recognition", "transcription", "stt",
		"voice-recognition", "speech2text",
	}},
	{Category: "audio-generation", Keywords: []string{
		"audio-generation", "music-generation", "sound-generation",
		"audio-synthesis", "music-synthesis",
	}},
	{Category: "computer-vision", Keywords: []string{
		"object-detection", "image-classification", "face-detection",
		"semantic-segmentation", "pose-estimation", "image-recognition",
	}},
	{Category: "video-generation", Keywords: []string{
		"text-to-video", "video-generation", "animation", "motion-synthesis",
		"text2video",
	}},
	{Category: "multimodal", Keywords: []string{
		"multimodal", "vision-language", "audio-visual", "multi-task",
		"cross-modal",
	}},
}

// DefaultTaxonomy returns the built-in category table.
func DefaultTaxonomy() *Taxonomy {
	return NewTaxonomy(defaultBuckets)
}

// NewTaxonomy builds a taxonomy from ordered buckets. The input is copied so
// callers cannot mutate the table after construction.
func NewTaxonomy(buckets []TaxonomyBucket) *Taxonomy {
	copied := make([]TaxonomyBucket, 0, len(buckets))
	for _, b := range buckets {
		if b.Category == FallbackCategory {
			continue
		}
		keywords := make([]string, len(b.Keywords))
		for i, kw := range b.Keywords {
			keywords[i] = strings.ToLower(kw)
		}
		copied = append(copied, TaxonomyBucket{Category: b.Category, Keywords: keywords})
	}
	return &Taxonomy{buckets: copied}
}

// Categories returns the category names in declaration order, fallback last.
func (t *Taxonomy) Categories() []string {
	names := make([]string, 0, len(t.buckets)+1)
	for _, b := range t.buckets {
		names = append(names, b.Category)
	}
	return append(names, FallbackCategory)
}

// ClassifySignals carries the free-text inputs for classification.
type ClassifySignals struct {
	Description string
	Tags        []string
	PipelineTag string
	Name        string
}

// Classify maps the signals to a single category. Buckets are checked in
// declaration order and the first keyword substring match wins; when nothing
// matches the fallback category is returned.
func (t *Taxonomy) Classify(signals ClassifySignals) string {
	blob := strings.ToLower(strings.Join([]string{
		signals.Description,
		strings.Join(signals.Tags, " "),
		signals.PipelineTag,
		signals.Name,
	}, " "))

	for _, bucket := range t.buckets {
		for _, keyword := range bucket.Keywords {
			if keyword != "" && strings.Contains(blob, keyword) {
				return bucket.Category
			}
		}
	}
	return FallbackCategory
}
