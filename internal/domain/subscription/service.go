package subscription

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"modelhub-server/internal/domain/query"
	"modelhub-server/internal/utils/platformerrors"
)

// planPrices is the fixed monthly price per plan.
var planPrices = map[string]decimal.Decimal{
	"free":       decimal.Zero,
	"pro":        decimal.NewFromInt(19),
	"enterprise": decimal.NewFromInt(99),
}

// Service manages subscription records.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Subscribe opens an active subscription for a known plan.
func (s *Service) Subscribe(ctx context.Context, userID uint, plan string) (*Subscription, error) {
	price, ok := planPrices[plan]
	if !ok {
		return nil, platformerrors.NewErrorWithContext(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"unknown subscription plan", nil, "4b5c6d7e-8f90-41a2-b3c4-d5e6f7a8b9c0", map[string]any{"plan": plan})
	}

	sub := &Subscription{
		ID:            uuid.NewString(),
		UserID:        userID,
		Plan:          plan,
		Status:        StatusActive,
		Price:         price,
		StartDate:     time.Now().UTC(),
		PaymentStatus: "pending",
	}
	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// Cancel marks a subscription cancelled, closing its end date.
func (s *Service) Cancel(ctx context.Context, id string, userID uint) (*Subscription, error) {
	sub, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub.UserID != userID {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeForbidden,
			"subscription belongs to another user", nil, "0c1d2e3f-4a5b-4c6d-7e8f-9a0b1c2d3e4f")
	}
	now := time.Now().UTC()
	sub.Status = StatusCancelled
	sub.EndDate = &now
	if err := s.repo.Update(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Subscription, error) {
	sub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound,
			"subscription not found", nil, "9e8d7c6b-5a49-4382-91f0-e1d2c3b4a596")
	}
	return sub, nil
}

func (s *Service) List(ctx context.Context, filter Filter, p *query.Pagination) ([]*Subscription, int64, error) {
	return s.repo.List(ctx, filter, p)
}
