package user

import (
	"context"
	"time"
)

// User is a registered account. Passwords are stored bcrypt-hashed only.
type User struct {
	ID               uint           `json:"id"`
	Email            string         `json:"email"`
	HashedPassword   string         `json:"-"`
	SubscriptionPlan string         `json:"subscription_plan"`
	Preferences      map[string]any `json:"preferences,omitempty"`
	IsActive         bool           `json:"is_active"`
	IsSuperuser      bool           `json:"is_superuser"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// Repository defines user persistence. FindByEmail returns (nil, nil) when no
// account exists for the address.
type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	Update(ctx context.Context, u *User) error
}
