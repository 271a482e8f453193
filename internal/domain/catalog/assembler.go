package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Fragment is a best-effort extraction result. When Err is non-nil, Value
// holds the extractor's documented empty default; the failure never
// propagates past the extractor.
type Fragment[T any] struct {
	Value T
	Err   error
}

// OkFragment wraps a successful extraction.
func OkFragment[T any](value T) Fragment[T] {
	return Fragment[T]{Value: value}
}

// FailedFragment wraps a failed extraction with its empty default.
func FailedFragment[T any](def T, err error) Fragment[T] {
	return Fragment[T]{Value: def, Err: err}
}

// ProviderRecord is the typed base record returned by the provider's model
// endpoint, mapped explicitly from provider JSON.
type ProviderRecord struct {
	ID              string           `json:"id"`
	Author          string           `json:"author"`
	Description     string           `json:"description"`
	Tags            []string         `json:"tags"`
	PipelineTag     string           `json:"pipeline_tag"`
	Likes           int64            `json:"likes"`
	LastModified    string           `json:"lastModified"`
	MaskToken       string           `json:"mask_token"`
	WidgetData      []map[string]any `json:"widgetData"`
	Config          map[string]any   `json:"config"`
	CardData        map[string]any   `json:"cardData"`
	Metrics         map[string]any   `json:"metrics"`
	DiscussionCount int64            `json:"discussionCount"`
	PullRequests    []map[string]any `json:"pullRequests"`
	Gated           bool             `json:"gated"`
	Private         bool             `json:"private"`
	Siblings        []map[string]any `json:"siblings"`
	Tasks           []string         `json:"tasks"`
	Files           []map[string]any `json:"files"`
	ModelIndex      map[string]any   `json:"modelIndex"`
	Libraries       []string         `json:"libraries"`

	// URL is the provider page for the model, filled by the client.
	URL string `json:"-"`
}

// Provider exposes the base-record fetch plus the six independent metadata
// extractors. FetchModel is the only call allowed to fail; the extractors
// absorb their failures into fragments.
type Provider interface {
	FetchModel(ctx context.Context, id string) (*ProviderRecord, error)
	FetchPapers(ctx context.Context, id string) Fragment[[]Paper]
	FetchSpaces(ctx context.Context, id string) Fragment[[]map[string]any]
	FetchTree(ctx context.Context, id string) Fragment[*DependencyTree]
	FetchTechnicalDetails(ctx context.Context, id string) Fragment[*TechnicalDetails]
	FetchCitation(ctx context.Context, id string) Fragment[*string]
	FetchDownloads(ctx context.Context, id string) Fragment[DownloadStats]
}

// Assembler orchestrates the enrichment fan-out and merges the fragments into
// one Model. Given a fixed provider snapshot it is idempotent.
type Assembler struct {
	provider Provider
	taxonomy *Taxonomy
	log      zerolog.Logger
}

func NewAssembler(provider Provider, taxonomy *Taxonomy, log zerolog.Logger) *Assembler {
	return &Assembler{
		provider: provider,
		taxonomy: taxonomy,
		log:      log.With().Str("component", "model-assembler").Logger(),
	}
}

// Assemble fetches, enriches and classifies one model. A provider not-found
// is the only failure surfaced to the caller; extractor failures degrade to
// their empty defaults.
func (a *Assembler) Assemble(ctx context.Context, id string) (*Model, error) {
	record, err := a.provider.FetchModel(ctx, id)
	if err != nil {
		return nil, err
	}

	var (
		papers    Fragment[[]Paper]
		spaces    Fragment[[]map[string]any]
		tree      Fragment[*DependencyTree]
		details   Fragment[*TechnicalDetails]
		citation  Fragment[*string]
		downloads Fragment[DownloadStats]
	)

	// The six extractors have no ordering dependency; run them concurrently
	// and join before merging.
	var wg sync.WaitGroup
	wg.Add(6)
	go func() { defer wg.Done(); papers = a.provider.FetchPapers(ctx, id) }()
	go func() { defer wg.Done(); spaces = a.provider.FetchSpaces(ctx, id) }()
	go func() { defer wg.Done(); tree = a.provider.FetchTree(ctx, id) }()
	go func() { defer wg.Done(); details = a.provider.FetchTechnicalDetails(ctx, id) }()
	go func() { defer wg.Done(); citation = a.provider.FetchCitation(ctx, id) }()
	go func() { defer wg.Done(); downloads = a.provider.FetchDownloads(ctx, id) }()
	wg.Wait()

	a.logFragmentFailures(id, map[string]error{
		"papers":            papers.Err,
		"spaces":            spaces.Err,
		"tree":              tree.Err,
		"technical_details": details.Err,
		"citation":          citation.Err,
		"downloads":         downloads.Err,
	})

	category := a.taxonomy.Classify(ClassifySignals{
		Description: record.Description,
		Tags:        record.Tags,
		PipelineTag: record.PipelineTag,
		Name:        id,
	})

	model := &Model{
		ID:                 id,
		Name:               id,
		Creator:            record.Author,
		Source:             SourceHuggingFace,
		Category:           category,
		Description:        record.Description,
		HuggingFaceURL:     record.URL,
		BenchmarkMetrics:   record.Metrics,
		Tags:               record.Tags,
		LastUpdated:        parseProviderTime(record.LastModified),
		Downloads:          downloads.Value.Downloads,
		Likes:              record.Likes,
		ModelType:          ModelTypeDownloadable,
		Papers:             papers.Value,
		Spaces:             spaces.Value,
		ModelTree:          tree.Value,
		TechnicalDetails:   details.Value,
		Citation:           citation.Value,
		PipelineTag:        record.PipelineTag,
		MaskToken:          record.MaskToken,
		WidgetData:         record.WidgetData,
		Config:             record.Config,
		CardData:           record.CardData,
		DiscussionCount:    record.DiscussionCount,
		PullRequests:       record.PullRequests,
		Gated:              record.Gated,
		Private:            record.Private,
		Siblings:           record.Siblings,
		Tasks:              record.Tasks,
		Files:              record.Files,
		ModelIndex:         record.ModelIndex,
		AvailableLibraries: record.Libraries,
		// CreatedAt/UpdatedAt are assigned by the persistence layer.
	}
	return model, nil
}

func (a *Assembler) logFragmentFailures(id string, failures map[string]error) {
	for name, err := range failures {
		if err != nil {
			a.log.Warn().Err(err).Str("model_id", id).Str("extractor", name).Msg("extractor degraded to empty default")
		}
	}
}

var providerTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
}

// parseProviderTime maps provider timestamp strings to the canonical type.
// Parse failures yield nil rather than an error.
func parseProviderTime(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	for _, layout := range providerTimeLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return &ts
		}
	}
	return nil
}
