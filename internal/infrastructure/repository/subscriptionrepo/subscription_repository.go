package subscriptionrepo

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"modelhub-server/internal/domain/query"
	"modelhub-server/internal/domain/subscription"
	"modelhub-server/internal/infrastructure/database/entities"
	"modelhub-server/internal/utils/platformerrors"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) Create(ctx context.Context, sub *subscription.Subscription) error {
	entity, err := mapSubscriptionToEntity(ctx, sub)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError, "failed to create subscription", err,
			"8c9d0e1f-2a3b-4c4d-9e5f-6a7b8c9d0e1f")
	}
	return nil
}

func (r *SubscriptionRepository) Update(ctx context.Context, sub *subscription.Subscription) error {
	entity, err := mapSubscriptionToEntity(ctx, sub)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Save(entity).Error; err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError, "failed to update subscription", err,
			"4d5e6f7a-8b9c-4d0e-8f1a-2b3c4d5e6f7a")
	}
	return nil
}

func (r *SubscriptionRepository) FindByID(ctx context.Context, id string) (*subscription.Subscription, error) {
	var entity entities.Subscription
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError, "failed to query subscription", err,
			"0e1f2a3b-4c5d-4e6f-a7b8-c9d0e1f2a3b4")
	}
	return mapEntityToSubscription(&entity)
}

func (r *SubscriptionRepository) List(ctx context.Context, filter subscription.Filter, p *query.Pagination) ([]*subscription.Subscription, int64, error) {
	tx := r.db.WithContext(ctx).Model(&entities.Subscription{})
	if filter.UserID != nil {
		tx = tx.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != nil && *filter.Status != "" {
		tx = tx.Where("status = ?", string(*filter.Status))
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, platformerrors.NewError(ctx, platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError, "failed to count subscriptions", err,
			"6f7a8b9c-0d1e-4f2a-8b3c-4d5e6f7a8b9c")
	}

	limit, offset := p.Bounded(defaultListLimit, maxListLimit)
	var rows []entities.Subscription
	if err := tx.Order("start_date DESC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, 0, platformerrors.NewError(ctx, platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError, "failed to list subscriptions", err,
			"2a3b4c5d-6e7f-4a8b-9c0d-1e2f3a4b5c6d")
	}

	subs := make([]*subscription.Subscription, 0, len(rows))
	for i := range rows {
		s, err := mapEntityToSubscription(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		subs = append(subs, s)
	}
	return subs, total, nil
}

func mapSubscriptionToEntity(ctx context.Context, s *subscription.Subscription) (*entities.Subscription, error) {
	entity := &entities.Subscription{
		ID:            s.ID,
		UserID:        s.UserID,
		Plan:          s.Plan,
		Status:        string(s.Status),
		Price:         s.Price,
		StartDate:     s.StartDate,
		EndDate:       s.EndDate,
		PaymentStatus: s.PaymentStatus,
	}
	if len(s.PaymentMethod) > 0 {
		raw, err := json.Marshal(s.PaymentMethod)
		if err != nil {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository,
				platformerrors.ErrorTypeInternal, "failed to encode payment method", err,
				"8b9c0d1e-2f3a-4b4c-a5d6-e7f8a9b0c1d2")
		}
		entity.PaymentMethod = datatypes.JSON(raw)
	}
	return entity, nil
}

func mapEntityToSubscription(e *entities.Subscription) (*subscription.Subscription, error) {
	s := &subscription.Subscription{
		ID:            e.ID,
		UserID:        e.UserID,
		Plan:          e.Plan,
		Status:        subscription.Status(e.Status),
		Price:         e.Price,
		StartDate:     e.StartDate,
		EndDate:       e.EndDate,
		PaymentStatus: e.PaymentStatus,
	}
	if len(e.PaymentMethod) > 0 {
		if err := json.Unmarshal(e.PaymentMethod, &s.PaymentMethod); err != nil {
			return nil, platformerrors.NewError(context.Background(), platformerrors.LayerRepository,
				platformerrors.ErrorTypeInternal, "failed to decode payment method", err,
				"4c5d6e7f-8a9b-4c0d-b1e2-f3a4b5c6d7e8")
		}
	}
	return s, nil
}
