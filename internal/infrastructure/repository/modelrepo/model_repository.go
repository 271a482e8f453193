package modelrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"modelhub-server/internal/domain/catalog"
	"modelhub-server/internal/domain/query"
	"modelhub-server/internal/infrastructure/database/entities"
	"modelhub-server/internal/utils/platformerrors"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// ModelRepository persists catalog models in postgres.
type ModelRepository struct {
	db *gorm.DB
}

func NewModelRepository(db *gorm.DB) *ModelRepository {
	return &ModelRepository{db: db}
}

func (r *ModelRepository) GetByID(ctx context.Context, id string) (*catalog.Model, error) {
	var entity entities.Model
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError, "failed to query model", err,
			"3f1f6a2e-9a41-4a2b-8d71-0c5b6c1f9d02")
	}
	return mapEntityToModel(&entity)
}

// Upsert writes the whole record keyed by id. An existing row is fully
// replaced so refreshes overwrite stale enrichment.
func (r *ModelRepository) Upsert(ctx context.Context, model *catalog.Model) error {
	entity, err := mapModelToEntity(ctx, model)
	if err != nil {
		return err
	}
	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(entity).Error
	if err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError, "failed to upsert model", err,
			"b7a9d3c4-5e10-4f6b-9c2d-7e8f4a1b3c5d")
	}
	return nil
}

func (r *ModelRepository) List(ctx context.Context, filter catalog.ModelFilter, p *query.Pagination) ([]*catalog.Model, int64, error) {
	tx := r.db.WithContext(ctx).Model(&entities.Model{})
	if filter.Category != nil && *filter.Category != "" {
		tx = tx.Where("category = ?", *filter.Category)
	}
	if filter.Source != nil && *filter.Source != "" {
		tx = tx.Where("source = ?", string(*filter.Source))
	}
	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + *filter.Search + "%"
		tx = tx.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, platformerrors.NewError(ctx, platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError, "failed to count models", err,
			"9c4e2f1a-6b3d-4e8f-a1c2-d5b6e7f8a9b0")
	}

	limit, offset := p.Bounded(defaultListLimit, maxListLimit)
	order := "created_at DESC"
	if p != nil && p.Order != "" {
		order = p.Order
	}

	var rows []entities.Model
	if err := tx.Order(order).Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, 0, platformerrors.NewError(ctx, platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError, "failed to list models", err,
			"e2d1c0b9-a8f7-4e6d-b5c4-3a2b1c0d9e8f")
	}

	models := make([]*catalog.Model, 0, len(rows))
	for i := range rows {
		m, err := mapEntityToModel(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		models = append(models, m)
	}
	return models, total, nil
}

func (r *ModelRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Model{})
	if result.Error != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError, "failed to delete model", result.Error,
			"0a1b2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d")
	}
	if result.RowsAffected == 0 {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository,
			platformerrors.ErrorTypeNotFound, "model not found", nil,
			"5f6e7d8c-9b0a-4c1d-a2e3-f4a5b6c7d8e9")
	}
	return nil
}
