package tutorial

import (
	"context"
	"time"

	"modelhub-server/internal/domain/query"
)

// Tutorial is authored learning content.
type Tutorial struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Content     string    `json:"content"`
	Category    string    `json:"category"`
	AuthorID    *uint     `json:"author_id,omitempty"`
	URL         string    `json:"url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Filter narrows tutorial listings.
type Filter struct {
	Category *string
	AuthorID *uint
	Search   *string
}

type Repository interface {
	Create(ctx context.Context, t *Tutorial) error
	Update(ctx context.Context, t *Tutorial) error
	FindByID(ctx context.Context, id uint) (*Tutorial, error)
	List(ctx context.Context, filter Filter, p *query.Pagination) ([]*Tutorial, int64, error)
	Delete(ctx context.Context, id uint) error
}
