package requests

import (
	"time"

	"modelhub-server/internal/domain/newsletter"
	"modelhub-server/internal/domain/tool"
	"modelhub-server/internal/domain/tutorial"
)

// ToolRequest creates or replaces a tool listing.
type ToolRequest struct {
	ID            string         `json:"id"`
	Name          string         `json:"name" binding:"required"`
	Category      string         `json:"category"`
	Description   string         `json:"description"`
	Pricing       map[string]any `json:"pricing"`
	URL           string         `json:"url"`
	TrendingScore float64        `json:"trending_score"`
}

func (r *ToolRequest) ToDomain() *tool.Tool {
	return &tool.Tool{
		ID:            r.ID,
		Name:          r.Name,
		Category:      r.Category,
		Description:   r.Description,
		Pricing:       r.Pricing,
		URL:           r.URL,
		TrendingScore: r.TrendingScore,
	}
}

// TutorialRequest creates or replaces a tutorial.
type TutorialRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Content     string `json:"content" binding:"required"`
	Category    string `json:"category"`
	URL         string `json:"url"`
}

func (r *TutorialRequest) ToDomain(authorID *uint) *tutorial.Tutorial {
	return &tutorial.Tutorial{
		Title:       r.Title,
		Description: r.Description,
		Content:     r.Content,
		Category:    r.Category,
		AuthorID:    authorID,
		URL:         r.URL,
	}
}

// NewsletterRequest creates or replaces a newsletter issue.
type NewsletterRequest struct {
	Subject string         `json:"subject" binding:"required"`
	Content string         `json:"content"`
	SentAt  *time.Time     `json:"sent_at"`
	Metrics map[string]any `json:"metrics"`
}

func (r *NewsletterRequest) ToDomain() *newsletter.Newsletter {
	return &newsletter.Newsletter{
		Subject: r.Subject,
		Content: r.Content,
		SentAt:  r.SentAt,
		Metrics: r.Metrics,
	}
}

// SubscribeRequest starts a subscription for the authenticated user.
type SubscribeRequest struct {
	Plan string `json:"plan" binding:"required"`
}
