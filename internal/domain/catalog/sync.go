package catalog

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// Summary is the minimal field set a bulk listing yields for one model.
type Summary struct {
	ID          string
	Name        string
	Creator     string
	Source      ModelSource
	Description string
	URL         string
	Tags        []string
	Downloads   int64
	Likes       int64
	ModelType   ModelType
}

// BulkSource lists models from one provider for the background scrape.
type BulkSource interface {
	Name() string
	ListModels(ctx context.Context) ([]Summary, error)
}

// SyncService runs the bulk catalog refresh across all configured sources.
// It only touches the summary fields, so enrichment data gathered by the
// on-demand pipeline survives a bulk pass.
type SyncService struct {
	repo           Repository
	sources        []BulkSource
	maxConcurrency int
	log            zerolog.Logger
}

func NewSyncService(repo Repository, sources []BulkSource, maxConcurrency int, log zerolog.Logger) *SyncService {
	if maxConcurrency <= 0 {
		maxConcurrency = 1
	}
	return &SyncService{
		repo:           repo,
		sources:        sources,
		maxConcurrency: maxConcurrency,
		log:            log.With().Str("component", "catalog-sync").Logger(),
	}
}

// SourceResult reports one source's bulk pass.
type SourceResult struct {
	Source string
	Stored int
	Failed int
	Err    error
}

// SyncAll lists every source and upserts the results. Source failures are
// logged and skipped; one broken provider must not starve the others.
func (s *SyncService) SyncAll(ctx context.Context) []SourceResult {
	sem := make(chan struct{}, s.maxConcurrency)
	results := make([]SourceResult, len(s.sources))
	var wg sync.WaitGroup

	for i, source := range s.sources {
		wg.Add(1)
		go func(idx int, src BulkSource) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			results[idx] = s.syncSource(ctx, src)
		}(i, source)
	}
	wg.Wait()
	return results
}

func (s *SyncService) syncSource(ctx context.Context, source BulkSource) SourceResult {
	result := SourceResult{Source: source.Name()}
	summaries, err := source.ListModels(ctx)
	if err != nil {
		s.log.Error().Err(err).Str("source", source.Name()).Msg("bulk listing failed")
		result.Err = err
		return result
	}

	for _, summary := range summaries {
		if summary.ID == "" {
			continue
		}
		if err := s.applySummary(ctx, summary); err != nil {
			s.log.Warn().Err(err).Str("source", source.Name()).Str("model_id", summary.ID).Msg("bulk upsert failed")
			result.Failed++
			continue
		}
		result.Stored++
	}
	s.log.Info().Str("source", source.Name()).Int("models", result.Stored).Int("failed", result.Failed).Msg("bulk sync finished")
	return result
}

// applySummary creates a minimal record on first sight, or refreshes the
// summary fields of an existing one without clobbering enrichment data.
func (s *SyncService) applySummary(ctx context.Context, summary Summary) error {
	existing, err := s.repo.GetByID(ctx, summary.ID)
	if err != nil {
		return err
	}

	if existing == nil {
		model := &Model{
			ID:          summary.ID,
			Name:        summary.Name,
			Creator:     summary.Creator,
			Source:      summary.Source,
			Category:    FallbackCategory,
			Description: summary.Description,
			Tags:        summary.Tags,
			Downloads:   summary.Downloads,
			Likes:       summary.Likes,
			ModelType:   summary.ModelType,
		}
		switch summary.Source {
		case SourceReplicate:
			model.ReplicateURL = summary.URL
		default:
			model.HuggingFaceURL = summary.URL
		}
		return s.repo.Upsert(ctx, model)
	}

	existing.Name = summary.Name
	if summary.Description != "" {
		existing.Description = summary.Description
	}
	if summary.Creator != "" {
		existing.Creator = summary.Creator
	}
	if len(summary.Tags) > 0 {
		existing.Tags = summary.Tags
	}
	if summary.Downloads > 0 {
		existing.Downloads = summary.Downloads
	}
	if summary.Likes > 0 {
		existing.Likes = summary.Likes
	}
	return s.repo.Upsert(ctx, existing)
}
