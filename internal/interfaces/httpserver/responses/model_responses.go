package responses

import (
	"modelhub-server/internal/domain/catalog"
)

// ModelFetchResponse wraps a catalog record with how it was obtained.
type ModelFetchResponse struct {
	Status string         `json:"status"`
	Model  *catalog.Model `json:"model"`
}

// ListResponse is the shared paginated list envelope.
type ListResponse[T any] struct {
	Items  []T   `json:"items"`
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

// NewListResponse assembles the list envelope with the effective page bounds.
func NewListResponse[T any](items []T, total int64, limit, offset int) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
}

// NewModelFetchResponse maps a fetch result to the wire envelope.
func NewModelFetchResponse(result *catalog.FetchResult) ModelFetchResponse {
	return ModelFetchResponse{
		Status: string(result.Status),
		Model:  result.Model,
	}
}
