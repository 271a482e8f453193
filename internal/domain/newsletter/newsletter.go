package newsletter

import (
	"context"
	"time"

	"modelhub-server/internal/domain/query"
)

// Newsletter is an issue record. Sending is an external concern; this core
// only stores content and delivery metrics reported back by the sender.
type Newsletter struct {
	ID        string         `json:"id"`
	Subject   string         `json:"subject"`
	Content   string         `json:"content"`
	SentAt    *time.Time     `json:"sent_at,omitempty"`
	Metrics   map[string]any `json:"metrics,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

type Repository interface {
	Create(ctx context.Context, n *Newsletter) error
	Update(ctx context.Context, n *Newsletter) error
	FindByID(ctx context.Context, id string) (*Newsletter, error)
	List(ctx context.Context, p *query.Pagination) ([]*Newsletter, int64, error)
	Delete(ctx context.Context, id string) error
}
