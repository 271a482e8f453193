package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"modelhub-server/internal/domain/query"
	"modelhub-server/internal/utils/platformerrors"
)

type fakeRepo struct {
	models    map[string]*Model
	getErr    error
	upsertErr error

	getCalls    int
	upsertCalls int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{models: make(map[string]*Model)}
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (*Model, error) {
	r.getCalls++
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.models[id], nil
}

func (r *fakeRepo) Upsert(ctx context.Context, model *Model) error {
	r.upsertCalls++
	if r.upsertErr != nil {
		return r.upsertErr
	}
	r.models[model.ID] = model
	return nil
}

func (r *fakeRepo) List(ctx context.Context, filter ModelFilter, p *query.Pagination) ([]*Model, int64, error) {
	out := make([]*Model, 0, len(r.models))
	for _, m := range r.models {
		out = append(out, m)
	}
	return out, int64(len(out)), nil
}

func (r *fakeRepo) Delete(ctx context.Context, id string) error {
	delete(r.models, id)
	return nil
}

func newTestService(repo Repository, provider Provider) *Service {
	assembler := NewAssembler(provider, DefaultTaxonomy(), zerolog.Nop())
	return NewService(repo, assembler, zerolog.Nop())
}

func TestGetOrFetchCacheHit(t *testing.T) {
	repo := newFakeRepo()
	repo.models["acme/demo-llm"] = &Model{ID: "acme/demo-llm", Category: "text-generation"}
	provider := happyProvider()
	service := newTestService(repo, provider)

	result, err := service.GetOrFetch(context.Background(), "acme/demo-llm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != StatusCached {
		t.Fatalf("expected cached status, got %s", result.Status)
	}
	if provider.fetchCalls != 0 {
		t.Fatalf("cache hit must not touch the provider, got %d calls", provider.fetchCalls)
	}
}

func TestGetOrFetchMissAssemblesAndPersists(t *testing.T) {
	repo := newFakeRepo()
	provider := happyProvider()
	service := newTestService(repo, provider)

	result, err := service.GetOrFetch(context.Background(), "acme/demo-llm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != StatusFetched {
		t.Fatalf("expected fetched status, got %s", result.Status)
	}
	if provider.fetchCalls != 1 {
		t.Fatalf("expected one provider call, got %d", provider.fetchCalls)
	}
	if repo.models["acme/demo-llm"] == nil {
		t.Fatal("assembled model was not persisted")
	}
}

func TestGetOrFetchPersistFailureDegrades(t *testing.T) {
	repo := newFakeRepo()
	repo.upsertErr = errors.New("disk full")
	provider := happyProvider()
	service := newTestService(repo, provider)

	result, err := service.GetOrFetch(context.Background(), "acme/demo-llm")
	if err != nil {
		t.Fatalf("persistence failure must not fail the request: %v", err)
	}
	if result.Status != StatusFetchedUnpersisted {
		t.Fatalf("expected fetched_unpersisted, got %s", result.Status)
	}
	if result.Model == nil || result.Model.ID != "acme/demo-llm" {
		t.Fatalf("expected fresh model in degraded result, got %+v", result.Model)
	}
}

func TestGetOrFetchNotFoundPropagates(t *testing.T) {
	repo := newFakeRepo()
	provider := happyProvider()
	provider.recordErr = platformerrors.NewError(context.Background(), platformerrors.LayerInfrastructure,
		platformerrors.ErrorTypeNotFound, "model missing", nil, "")
	service := newTestService(repo, provider)

	_, err := service.GetOrFetch(context.Background(), "acme/missing")
	if err == nil {
		t.Fatal("expected not-found error")
	}
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
		t.Fatalf("expected not-found type, got %v", err)
	}
	if repo.upsertCalls != 0 {
		t.Fatal("nothing should be persisted on a failed fetch")
	}
}

func TestRefreshBypassesCache(t *testing.T) {
	repo := newFakeRepo()
	repo.models["acme/demo-llm"] = &Model{ID: "acme/demo-llm", Category: "other", Downloads: 1}
	provider := happyProvider()
	service := newTestService(repo, provider)

	result, err := service.Refresh(context.Background(), "acme/demo-llm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != StatusFetched {
		t.Fatalf("expected fetched status on refresh, got %s", result.Status)
	}
	if provider.fetchCalls != 1 {
		t.Fatalf("refresh must call the provider, got %d calls", provider.fetchCalls)
	}
	if repo.models["acme/demo-llm"].Downloads != 1000 {
		t.Fatalf("refresh did not overwrite the stored record: %+v", repo.models["acme/demo-llm"])
	}
}

func TestGetNotFound(t *testing.T) {
	service := newTestService(newFakeRepo(), happyProvider())

	_, err := service.Get(context.Background(), "acme/absent")
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestCreateRequiresID(t *testing.T) {
	service := newTestService(newFakeRepo(), happyProvider())

	err := service.Create(context.Background(), &Model{Name: "nameless"})
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateDefaultsCategory(t *testing.T) {
	repo := newFakeRepo()
	service := newTestService(repo, happyProvider())

	if err := service.Create(context.Background(), &Model{ID: "acme/manual"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.models["acme/manual"].Category != FallbackCategory {
		t.Fatalf("expected fallback category, got %s", repo.models["acme/manual"].Category)
	}
}

func TestUpdateKeepsIdentity(t *testing.T) {
	repo := newFakeRepo()
	repo.models["acme/demo-llm"] = &Model{ID: "acme/demo-llm", Category: "text-generation"}
	service := newTestService(repo, happyProvider())

	updated, err := service.Update(context.Background(), "acme/demo-llm", &Model{ID: "acme/other", Name: "renamed"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ID != "acme/demo-llm" {
		t.Fatalf("identifier must be immutable, got %s", updated.ID)
	}
}
