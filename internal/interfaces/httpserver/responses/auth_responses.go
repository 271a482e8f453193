package responses

import (
	"time"

	"modelhub-server/internal/domain/user"
)

// TokenResponse carries an issued access token.
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// UserResponse is the public account view.
type UserResponse struct {
	ID               uint           `json:"id"`
	Email            string         `json:"email"`
	SubscriptionPlan string         `json:"subscription_plan"`
	Preferences      map[string]any `json:"preferences,omitempty"`
	IsActive         bool           `json:"is_active"`
	IsSuperuser      bool           `json:"is_superuser"`
	CreatedAt        time.Time      `json:"created_at"`
}

func NewUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:               u.ID,
		Email:            u.Email,
		SubscriptionPlan: u.SubscriptionPlan,
		Preferences:      u.Preferences,
		IsActive:         u.IsActive,
		IsSuperuser:      u.IsSuperuser,
		CreatedAt:        u.CreatedAt,
	}
}
