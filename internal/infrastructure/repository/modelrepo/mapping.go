package modelrepo

import (
	"context"
	"encoding/json"

	"gorm.io/datatypes"

	"modelhub-server/internal/domain/catalog"
	"modelhub-server/internal/infrastructure/database/entities"
	"modelhub-server/internal/utils/platformerrors"
)

// toJSON marshals a value into a JSONB column, mapping empty values to NULL.
func toJSON(v any) (datatypes.JSON, error) {
	if v == nil {
		return nil, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if string(raw) == "null" || string(raw) == "[]" || string(raw) == "{}" {
		return nil, nil
	}
	return datatypes.JSON(raw), nil
}

func fromJSON(raw datatypes.JSON, target any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, target)
}

func mapModelToEntity(ctx context.Context, m *catalog.Model) (*entities.Model, error) {
	entity := &entities.Model{
		ID:              m.ID,
		Name:            m.Name,
		Creator:         m.Creator,
		Source:          string(m.Source),
		Category:        m.Category,
		Description:     m.Description,
		HuggingFaceURL:  m.HuggingFaceURL,
		ReplicateURL:    m.ReplicateURL,
		LastUpdated:     m.LastUpdated,
		Downloads:       m.Downloads,
		Likes:           m.Likes,
		ModelType:       string(m.ModelType),
		Citation:        m.Citation,
		PipelineTag:     m.PipelineTag,
		MaskToken:       m.MaskToken,
		DiscussionCount: m.DiscussionCount,
		Gated:           m.Gated,
		Private:         m.Private,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}

	var err error
	fields := []struct {
		src any
		dst *datatypes.JSON
	}{
		{m.BenchmarkMetrics, &entity.BenchmarkMetrics},
		{m.Tags, &entity.Tags},
		{m.Papers, &entity.Papers},
		{m.Spaces, &entity.Spaces},
		{m.ModelTree, &entity.ModelTree},
		{m.TechnicalDetails, &entity.TechnicalDetails},
		{m.WidgetData, &entity.WidgetData},
		{m.Config, &entity.Config},
		{m.CardData, &entity.CardData},
		{m.PullRequests, &entity.PullRequests},
		{m.Siblings, &entity.Siblings},
		{m.Tasks, &entity.Tasks},
		{m.Files, &entity.Files},
		{m.ModelIndex, &entity.ModelIndex},
		{m.AvailableLibraries, &entity.AvailableLibraries},
	}
	for _, f := range fields {
		if *f.dst, err = toJSON(f.src); err != nil {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository,
				platformerrors.ErrorTypeInternal, "failed to encode model payload", err,
				"c8d9e0f1-2a3b-4c5d-9e6f-7a8b9c0d1e2f")
		}
	}
	return entity, nil
}

func mapEntityToModel(e *entities.Model) (*catalog.Model, error) {
	m := &catalog.Model{
		ID:              e.ID,
		Name:            e.Name,
		Creator:         e.Creator,
		Source:          catalog.ModelSource(e.Source),
		Category:        e.Category,
		Description:     e.Description,
		HuggingFaceURL:  e.HuggingFaceURL,
		ReplicateURL:    e.ReplicateURL,
		LastUpdated:     e.LastUpdated,
		Downloads:       e.Downloads,
		Likes:           e.Likes,
		ModelType:       catalog.ModelType(e.ModelType),
		Citation:        e.Citation,
		PipelineTag:     e.PipelineTag,
		MaskToken:       e.MaskToken,
		DiscussionCount: e.DiscussionCount,
		Gated:           e.Gated,
		Private:         e.Private,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}

	for _, f := range []struct {
		raw datatypes.JSON
		dst any
	}{
		{e.BenchmarkMetrics, &m.BenchmarkMetrics},
		{e.Tags, &m.Tags},
		{e.Papers, &m.Papers},
		{e.Spaces, &m.Spaces},
		{e.ModelTree, &m.ModelTree},
		{e.TechnicalDetails, &m.TechnicalDetails},
		{e.WidgetData, &m.WidgetData},
		{e.Config, &m.Config},
		{e.CardData, &m.CardData},
		{e.PullRequests, &m.PullRequests},
		{e.Siblings, &m.Siblings},
		{e.Tasks, &m.Tasks},
		{e.Files, &m.Files},
		{e.ModelIndex, &m.ModelIndex},
		{e.AvailableLibraries, &m.AvailableLibraries},
	} {
		if err := fromJSON(f.raw, f.dst); err != nil {
			return nil, platformerrors.NewError(context.Background(), platformerrors.LayerRepository,
				platformerrors.ErrorTypeInternal, "failed to decode model payload", err,
				"d4e5f6a7-8b9c-4d0e-a1f2-3b4c5d6e7f8a")
		}
	}
	return m, nil
}
