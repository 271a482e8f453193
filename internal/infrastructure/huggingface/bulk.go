package huggingface

import (
	"context"
	"fmt"
	"strconv"

	"modelhub-server/internal/domain/catalog"
	"modelhub-server/internal/utils/platformerrors"
)

type bulkRecord struct {
	ID          string   `json:"id"`
	Author      string   `json:"author"`
	Downloads   int64    `json:"downloads"`
	Likes       int64    `json:"likes"`
	Tags        []string `json:"tags"`
	PipelineTag string   `json:"pipeline_tag"`
}

// Lister adapts the hub's paged model listing to the bulk scrape.
type Lister struct {
	client *Client
	limit  int
}

func NewLister(client *Client, limit int) *Lister {
	if limit <= 0 {
		limit = 100
	}
	return &Lister{client: client, limit: limit}
}

func (l *Lister) Name() string {
	return string(catalog.SourceHuggingFace)
}

func (l *Lister) ListModels(ctx context.Context) ([]catalog.Summary, error) {
	var records []bulkRecord
	resp, err := l.client.client.R().
		SetContext(ctx).
		SetQueryParam("limit", strconv.Itoa(l.limit)).
		SetResult(&records).
		Get(l.client.endpoint("/api/models"))
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal, "failed to list models from provider", err,
			"1f2a3b4c-5d6e-4f7a-9b8c-0d1e2f3a4b5c")
	}
	if resp.IsError() {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal,
			fmt.Sprintf("model listing returned status %d", resp.StatusCode()), nil,
			"7a8b9c0d-1e2f-4a3b-8c4d-5e6f7a8b9c0d")
	}

	summaries := make([]catalog.Summary, 0, len(records))
	for _, record := range records {
		summaries = append(summaries, catalog.Summary{
			ID:        record.ID,
			Name:      record.ID,
			Creator:   record.Author,
			Source:    catalog.SourceHuggingFace,
			URL:       l.client.endpoint("/" + record.ID),
			Tags:      record.Tags,
			Downloads: record.Downloads,
			Likes:     record.Likes,
			ModelType: catalog.ModelTypeDownloadable,
		})
	}
	return summaries, nil
}
