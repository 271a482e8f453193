package tool

import (
	"context"
	"time"

	"modelhub-server/internal/domain/query"
)

// Tool is a listed AI tool with pricing tiers.
type Tool struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Category      string         `json:"category"`
	Description   string         `json:"description"`
	Pricing       map[string]any `json:"pricing,omitempty"`
	URL           string         `json:"url"`
	TrendingScore float64        `json:"trending_score"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// Filter narrows tool listings.
type Filter struct {
	Category *string
	Search   *string
}

type Repository interface {
	Create(ctx context.Context, t *Tool) error
	Update(ctx context.Context, t *Tool) error
	FindByID(ctx context.Context, id string) (*Tool, error)
	List(ctx context.Context, filter Filter, p *query.Pagination) ([]*Tool, int64, error)
	Delete(ctx context.Context, id string) error
}
