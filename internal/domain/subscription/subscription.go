package subscription

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"modelhub-server/internal/domain/query"
)

// Status is the subscription lifecycle state.
type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
	StatusExpired   Status = "expired"
)

// Subscription is a user's plan record. Billing happens in an external
// provider; this core only stores the resulting state.
type Subscription struct {
	ID            string          `json:"id"`
	UserID        uint            `json:"user_id"`
	Plan          string          `json:"plan"`
	Status        Status          `json:"status"`
	Price         decimal.Decimal `json:"price"`
	StartDate     time.Time       `json:"start_date"`
	EndDate       *time.Time      `json:"end_date,omitempty"`
	PaymentStatus string          `json:"payment_status,omitempty"`
	PaymentMethod map[string]any  `json:"payment_method,omitempty"`
}

// Filter narrows subscription listings.
type Filter struct {
	UserID *uint
	Status *Status
}

type Repository interface {
	Create(ctx context.Context, sub *Subscription) error
	Update(ctx context.Context, sub *Subscription) error
	FindByID(ctx context.Context, id string) (*Subscription, error)
	List(ctx context.Context, filter Filter, p *query.Pagination) ([]*Subscription, int64, error)
}
