package tutorial

import (
	"context"

	"modelhub-server/internal/domain/query"
	"modelhub-server/internal/utils/platformerrors"
)

// Service carries tutorial CRUD.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, t *Tutorial) error {
	if t.Title == "" || t.Content == "" {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"tutorial title and content are required", nil, "2b7c8e53-95b2-4f0a-a9a3-3a2e9d7c41b6")
	}
	return s.repo.Create(ctx, t)
}

func (s *Service) Get(ctx context.Context, id uint) (*Tutorial, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound,
			"tutorial not found", nil, "a4e8c2f1-67b9-4d9e-8c35-1f2d3e4a5b6c")
	}
	return t, nil
}

func (s *Service) Update(ctx context.Context, id uint, t *Tutorial) (*Tutorial, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	t.ID = existing.ID
	t.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) List(ctx context.Context, filter Filter, p *query.Pagination) ([]*Tutorial, int64, error) {
	return s.repo.List(ctx, filter, p)
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
