package newsletterrepo

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"modelhub-server/internal/domain/newsletter"
	"modelhub-server/internal/domain/query"
	"modelhub-server/internal/infrastructure/database/entities"
	"modelhub-server/internal/utils/platformerrors"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type NewsletterRepository struct {
	db *gorm.DB
}

func NewNewsletterRepository(db *gorm.DB) *NewsletterRepository {
	return &NewsletterRepository{db: db}
}

func (r *NewsletterRepository) Create(ctx context.Context, n *newsletter.Newsletter) error {
	entity, err := mapNewsletterToEntity(ctx, n)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError, "failed to create newsletter", err,
			"4f5a6b7c-8d9e-4f0a-b1c2-d3e4f5a6b7c8")
	}
	n.CreatedAt = entity.CreatedAt
	return nil
}

func (r *NewsletterRepository) Update(ctx context.Context, n *newsletter.Newsletter) error {
	entity, err := mapNewsletterToEntity(ctx, n)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Save(entity).Error; err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError, "failed to update newsletter", err,
			"0a1b2c3d-4e5f-4a6b-9c7d-8e9f0a1b2c3d")
	}
	return nil
}

func (r *NewsletterRepository) FindByID(ctx context.Context, id string) (*newsletter.Newsletter, error) {
	var entity entities.Newsletter
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError, "failed to query newsletter", err,
			"6b7c8d9e-0f1a-4b2c-8d3e-4f5a6b7c8d9e")
	}
	return mapEntityToNewsletter(&entity)
}

func (r *NewsletterRepository) List(ctx context.Context, p *query.Pagination) ([]*newsletter.Newsletter, int64, error) {
	tx := r.db.WithContext(ctx).Model(&entities.Newsletter{})

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, platformerrors.NewError(ctx, platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError, "failed to count newsletters", err,
			"2c3d4e5f-6a7b-4c8d-a9e0-f1a2b3c4d5e6")
	}

	limit, offset := p.Bounded(defaultListLimit, maxListLimit)
	var rows []entities.Newsletter
	if err := tx.Order("created_at DESC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, 0, platformerrors.NewError(ctx, platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError, "failed to list newsletters", err,
			"8d9e0f1a-2b3c-4d4e-b5f6-a7b8c9d0e1f2")
	}

	newsletters := make([]*newsletter.Newsletter, 0, len(rows))
	for i := range rows {
		n, err := mapEntityToNewsletter(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		newsletters = append(newsletters, n)
	}
	return newsletters, total, nil
}

func (r *NewsletterRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Newsletter{})
	if result.Error != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError, "failed to delete newsletter", result.Error,
			"4e5f6a7b-8c9d-4e0f-a1b2-c3d4e5f6a7b8")
	}
	if result.RowsAffected == 0 {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository,
			platformerrors.ErrorTypeNotFound, "newsletter not found", nil,
			"0f1a2b3c-4d5e-4f6a-b7c8-d9e0f1a2b3c4")
	}
	return nil
}

func mapNewsletterToEntity(ctx context.Context, n *newsletter.Newsletter) (*entities.Newsletter, error) {
	entity := &entities.Newsletter{
		ID:        n.ID,
		Subject:   n.Subject,
		Content:   n.Content,
		SentAt:    n.SentAt,
		CreatedAt: n.CreatedAt,
	}
	if len(n.Metrics) > 0 {
		raw, err := json.Marshal(n.Metrics)
		if err != nil {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository,
				platformerrors.ErrorTypeInternal, "failed to encode newsletter metrics", err,
				"6a7b8c9d-0e1f-4a2b-9c3d-4e5f6a7b8c9d")
		}
		entity.Metrics = datatypes.JSON(raw)
	}
	return entity, nil
}

func mapEntityToNewsletter(e *entities.Newsletter) (*newsletter.Newsletter, error) {
	n := &newsletter.Newsletter{
		ID:        e.ID,
		Subject:   e.Subject,
		Content:   e.Content,
		SentAt:    e.SentAt,
		CreatedAt: e.CreatedAt,
	}
	if len(e.Metrics) > 0 {
		if err := json.Unmarshal(e.Metrics, &n.Metrics); err != nil {
			return nil, platformerrors.NewError(context.Background(), platformerrors.LayerRepository,
				platformerrors.ErrorTypeInternal, "failed to decode newsletter metrics", err,
				"2b3c4d5e-6f7a-4b8c-8d9e-0f1a2b3c4d5e")
		}
	}
	return n, nil
}
