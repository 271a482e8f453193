package catalog

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"modelhub-server/internal/domain/query"
	"modelhub-server/internal/utils/platformerrors"
)

// FetchStatus reports how a model was obtained.
type FetchStatus string

const (
	// StatusCached means the record was served from storage, no network call.
	StatusCached FetchStatus = "cached"
	// StatusFetched means the record was assembled live and persisted.
	StatusFetched FetchStatus = "fetched"
	// StatusFetchedUnpersisted means assembly succeeded but the write-back
	// failed; the response still carries the fresh record.
	StatusFetchedUnpersisted FetchStatus = "fetched_unpersisted"
)

// FetchResult is the gateway response: the record plus how it was obtained.
type FetchResult struct {
	Status FetchStatus `json:"status"`
	Model  *Model      `json:"model"`
}

// Service is the cache/persistence gateway in front of the assembler. It also
// carries the plain catalog CRUD used by the admin surface.
type Service struct {
	repo      Repository
	assembler *Assembler
	log       zerolog.Logger
	inflight  singleflight.Group
}

func NewService(repo Repository, assembler *Assembler, log zerolog.Logger) *Service {
	return &Service{
		repo:      repo,
		assembler: assembler,
		log:       log.With().Str("component", "catalog-service").Logger(),
	}
}

// GetOrFetch serves a model from storage when cached, otherwise assembles it
// live. Concurrent misses for the same identifier are coalesced into one
// provider round trip.
func (s *Service) GetOrFetch(ctx context.Context, id string) (*FetchResult, error) {
	cached, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		return &FetchResult{Status: StatusCached, Model: cached}, nil
	}

	result, err, _ := s.inflight.Do(id, func() (any, error) {
		return s.fetchAndPersist(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return result.(*FetchResult), nil
}

// Refresh bypasses the cache check and re-runs assembly unconditionally.
func (s *Service) Refresh(ctx context.Context, id string) (*FetchResult, error) {
	return s.fetchAndPersist(ctx, id)
}

// fetchAndPersist assembles a model and attempts the write-back. A failed
// write degrades the status instead of failing the request: the scrape is the
// expensive part, so the caller still gets the fresh data.
func (s *Service) fetchAndPersist(ctx context.Context, id string) (*FetchResult, error) {
	model, err := s.assembler.Assemble(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Upsert(ctx, model); err != nil {
		s.log.Error().Err(err).Str("model_id", id).Msg("persisting assembled model failed, returning unpersisted data")
		return &FetchResult{Status: StatusFetchedUnpersisted, Model: model}, nil
	}
	return &FetchResult{Status: StatusFetched, Model: model}, nil
}

// Get returns a stored model without touching the provider.
func (s *Service) Get(ctx context.Context, id string) (*Model, error) {
	model, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if model == nil {
		return nil, platformerrors.NewErrorWithContext(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound,
			"model not found", nil, "aa0d8b9c-33fd-4b5a-9cc1-2b6fb1e0c27d", map[string]any{"model_id": id})
	}
	return model, nil
}

// List returns models matching the filter plus the unpaginated total.
func (s *Service) List(ctx context.Context, filter ModelFilter, p *query.Pagination) ([]*Model, int64, error) {
	return s.repo.List(ctx, filter, p)
}

// Create inserts an admin-supplied record.
func (s *Service) Create(ctx context.Context, model *Model) error {
	if model.ID == "" {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"model id is required", nil, "3f1f2e74-6f0e-4f3a-8872-0be1de0c2f41")
	}
	if model.Category == "" {
		model.Category = FallbackCategory
	}
	return s.repo.Upsert(ctx, model)
}

// Update replaces a stored record, keeping the identifier immutable.
func (s *Service) Update(ctx context.Context, id string, model *Model) (*Model, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	model.ID = existing.ID
	model.CreatedAt = existing.CreatedAt
	if err := s.repo.Upsert(ctx, model); err != nil {
		return nil, err
	}
	return model, nil
}

// Delete removes a stored record.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
