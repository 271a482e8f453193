package newsletter

import (
	"context"

	"github.com/google/uuid"

	"modelhub-server/internal/domain/query"
	"modelhub-server/internal/utils/platformerrors"
)

// Service carries newsletter issue CRUD.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, n *Newsletter) error {
	if n.Subject == "" {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"newsletter subject is required", nil, "6c1f2a85-9b34-4ce2-9f07-4e5a6b7c8d9e")
	}
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return s.repo.Create(ctx, n)
}

func (s *Service) Get(ctx context.Context, id string) (*Newsletter, error) {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound,
			"newsletter not found", nil, "1a2b3c4d-5e6f-4a8b-9c0d-e1f2a3b4c5d6")
	}
	return n, nil
}

func (s *Service) Update(ctx context.Context, id string, n *Newsletter) (*Newsletter, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	n.ID = existing.ID
	n.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *Service) List(ctx context.Context, p *query.Pagination) ([]*Newsletter, int64, error) {
	return s.repo.List(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
