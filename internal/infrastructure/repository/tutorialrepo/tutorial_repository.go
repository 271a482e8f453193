package tutorialrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"modelhub-server/internal/domain/query"
	"modelhub-server/internal/domain/tutorial"
	"modelhub-server/internal/infrastructure/database/entities"
	"modelhub-server/internal/utils/platformerrors"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type TutorialRepository struct {
	db *gorm.DB
}

func NewTutorialRepository(db *gorm.DB) *TutorialRepository {
	return &TutorialRepository{db: db}
}

func (r *TutorialRepository) Create(ctx context.Context, t *tutorial.Tutorial) error {
	entity := mapTutorialToEntity(t)
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError, "failed to create tutorial", err,
			"2e3f4a5b-6c7d-4e8f-a9b0-c1d2e3f4a5b6")
	}
	t.ID = entity.ID
	t.CreatedAt = entity.CreatedAt
	t.UpdatedAt = entity.UpdatedAt
	return nil
}

func (r *TutorialRepository) Update(ctx context.Context, t *tutorial.Tutorial) error {
	entity := mapTutorialToEntity(t)
	if err := r.db.WithContext(ctx).Save(entity).Error; err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError, "failed to update tutorial", err,
			"8f9a0b1c-2d3e-4f4a-b5c6-d7e8f9a0b1c2")
	}
	return nil
}

func (r *TutorialRepository) FindByID(ctx context.Context, id uint) (*tutorial.Tutorial, error) {
	var entity entities.Tutorial
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError, "failed to query tutorial", err,
			"4a5b6c7d-8e9f-4a0b-8c1d-2e3f4a5b6c7d")
	}
	return mapEntityToTutorial(&entity), nil
}

func (r *TutorialRepository) List(ctx context.Context, filter tutorial.Filter, p *query.Pagination) ([]*tutorial.Tutorial, int64, error) {
	tx := r.db.WithContext(ctx).Model(&entities.Tutorial{})
	if filter.Category != nil && *filter.Category != "" {
		tx = tx.Where("category = ?", *filter.Category)
	}
	if filter.AuthorID != nil {
		tx = tx.Where("author_id = ?", *filter.AuthorID)
	}
	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + *filter.Search + "%"
		tx = tx.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, platformerrors.NewError(ctx, platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError, "failed to count tutorials", err,
			"0b1c2d3e-4f5a-4b6c-9d7e-8f9a0b1c2d3e")
	}

	limit, offset := p.Bounded(defaultListLimit, maxListLimit)
	var rows []entities.Tutorial
	if err := tx.Order("created_at DESC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, 0, platformerrors.NewError(ctx, platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError, "failed to list tutorials", err,
			"6c7d8e9f-0a1b-4c2d-a3e4-f5a6b7c8d9e0")
	}

	tutorials := make([]*tutorial.Tutorial, 0, len(rows))
	for i := range rows {
		tutorials = append(tutorials, mapEntityToTutorial(&rows[i]))
	}
	return tutorials, total, nil
}

func (r *TutorialRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Tutorial{})
	if result.Error != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError, "failed to delete tutorial", result.Error,
			"2d3e4f5a-6b7c-4d8e-9f0a-1b2c3d4e5f6a")
	}
	if result.RowsAffected == 0 {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository,
			platformerrors.ErrorTypeNotFound, "tutorial not found", nil,
			"8e9f0a1b-2c3d-4e5f-b6a7-c8d9e0f1a2b3")
	}
	return nil
}

func mapTutorialToEntity(t *tutorial.Tutorial) *entities.Tutorial {
	return &entities.Tutorial{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Content:     t.Content,
		Category:    t.Category,
		AuthorID:    t.AuthorID,
		URL:         t.URL,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func mapEntityToTutorial(e *entities.Tutorial) *tutorial.Tutorial {
	return &tutorial.Tutorial{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Content:     e.Content,
		Category:    e.Category,
		AuthorID:    e.AuthorID,
		URL:         e.URL,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
