package toolrepo

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"modelhub-server/internal/domain/query"
	"modelhub-server/internal/domain/tool"
	"modelhub-server/internal/infrastructure/database/entities"
	"modelhub-server/internal/utils/platformerrors"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type ToolRepository struct {
	db *gorm.DB
}

func NewToolRepository(db *gorm.DB) *ToolRepository {
	return &ToolRepository{db: db}
}

func (r *ToolRepository) Create(ctx context.Context, t *tool.Tool) error {
	entity, err := mapToolToEntity(ctx, t)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError, "failed to create tool", err,
			"f0e1d2c3-b4a5-4968-8776-655443322110")
	}
	t.CreatedAt = entity.CreatedAt
	t.UpdatedAt = entity.UpdatedAt
	return nil
}

func (r *ToolRepository) Update(ctx context.Context, t *tool.Tool) error {
	entity, err := mapToolToEntity(ctx, t)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Save(entity).Error; err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError, "failed to update tool", err,
			"a9b8c7d6-e5f4-4312-a1b0-c9d8e7f6a5b4")
	}
	return nil
}

func (r *ToolRepository) FindByID(ctx context.Context, id string) (*tool.Tool, error) {
	var entity entities.Tool
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError, "failed to query tool", err,
			"4c5d6e7f-8a9b-4c0d-9e1f-2a3b4c5d6e7f")
	}
	return mapEntityToTool(&entity)
}

func (r *ToolRepository) List(ctx context.Context, filter tool.Filter, p *query.Pagination) ([]*tool.Tool, int64, error) {
	tx := r.db.WithContext(ctx).Model(&entities.Tool{})
	if filter.Category != nil && *filter.Category != "" {
		tx = tx.Where("category = ?", *filter.Category)
	}
	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + *filter.Search + "%"
		tx = tx.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, platformerrors.NewError(ctx, platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError, "failed to count tools", err,
			"0d1e2f3a-4b5c-4d6e-8f7a-8b9c0d1e2f3a")
	}

	limit, offset := p.Bounded(defaultListLimit, maxListLimit)
	var rows []entities.Tool
	if err := tx.Order("trending_score DESC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, 0, platformerrors.NewError(ctx, platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError, "failed to list tools", err,
			"6f7a8b9c-0d1e-4f2a-b3c4-d5e6f7a8b9c0")
	}

	tools := make([]*tool.Tool, 0, len(rows))
	for i := range rows {
		t, err := mapEntityToTool(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		tools = append(tools, t)
	}
	return tools, total, nil
}

func (r *ToolRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Tool{})
	if result.Error != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError, "failed to delete tool", result.Error,
			"3a4b5c6d-7e8f-4a9b-8c0d-1e2f3a4b5c6d")
	}
	if result.RowsAffected == 0 {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository,
			platformerrors.ErrorTypeNotFound, "tool not found", nil,
			"9b0c1d2e-3f4a-4b5c-9d6e-7f8a9b0c1d2e")
	}
	return nil
}

func mapToolToEntity(ctx context.Context, t *tool.Tool) (*entities.Tool, error) {
	entity := &entities.Tool{
		ID:            t.ID,
		Name:          t.Name,
		Category:      t.Category,
		Description:   t.Description,
		URL:           t.URL,
		TrendingScore: t.TrendingScore,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
	if len(t.Pricing) > 0 {
		raw, err := json.Marshal(t.Pricing)
		if err != nil {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository,
				platformerrors.ErrorTypeInternal, "failed to encode tool pricing", err,
				"5c6d7e8f-9a0b-4c1d-a2e3-f4a5b6c7d8e9")
		}
		entity.Pricing = datatypes.JSON(raw)
	}
	return entity, nil
}

func mapEntityToTool(e *entities.Tool) (*tool.Tool, error) {
	t := &tool.Tool{
		ID:            e.ID,
		Name:          e.Name,
		Category:      e.Category,
		Description:   e.Description,
		URL:           e.URL,
		TrendingScore: e.TrendingScore,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
	if len(e.Pricing) > 0 {
		if err := json.Unmarshal(e.Pricing, &t.Pricing); err != nil {
			return nil, platformerrors.NewError(context.Background(), platformerrors.LayerRepository,
				platformerrors.ErrorTypeInternal, "failed to decode tool pricing", err,
				"1d2e3f4a-5b6c-4d7e-9f8a-9b0c1d2e3f4a")
		}
	}
	return t, nil
}
