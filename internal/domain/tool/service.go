package tool

import (
	"context"

	"github.com/google/uuid"

	"modelhub-server/internal/domain/query"
	"modelhub-server/internal/utils/platformerrors"
)

// Service carries tool catalog CRUD.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, t *Tool) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Name == "" {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"tool name is required", nil, "9d4a4a8e-24f7-47fb-8c6e-6a4e1b30c9d2")
	}
	return s.repo.Create(ctx, t)
}

func (s *Service) Get(ctx context.Context, id string) (*Tool, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound,
			"tool not found", nil, "7e0d4b67-41b5-4c89-b0d3-2bfa4ff3a8e1")
	}
	return t, nil
}

func (s *Service) Update(ctx context.Context, id string, t *Tool) (*Tool, error) {
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

func (s *Service) List(ctx context.Context, filter Filter, p *query.Pagination) ([]*Tool, int64, error) {
	return s.repo.List(ctx, filter, p)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
