package handlers

import (
	"github.com/rs/zerolog"

	"modelhub-server/internal/config"
	"modelhub-server/internal/domain/catalog"
	"modelhub-server/internal/domain/newsletter"
	"modelhub-server/internal/domain/subscription"
	"modelhub-server/internal/domain/tool"
	"modelhub-server/internal/domain/tutorial"
	"modelhub-server/internal/domain/user"
	"modelhub-server/internal/infrastructure/auth"
)

// Provider wires HTTP handlers.
type Provider struct {
	Model        *ModelHandler
	Auth         *AuthHandler
	Tool         *ToolHandler
	Tutorial     *TutorialHandler
	Newsletter   *NewsletterHandler
	Subscription *SubscriptionHandler
}

func NewProvider(
	cfg *config.Config,
	catalogService *catalog.Service,
	syncService *catalog.SyncService,
	userService *user.Service,
	tokenService *auth.TokenService,
	toolService *tool.Service,
	tutorialService *tutorial.Service,
	newsletterService *newsletter.Service,
	subscriptionService *subscription.Service,
	log zerolog.Logger,
) *Provider {
	return &Provider{
		Model:        NewModelHandler(cfg, catalogService, syncService, log),
		Auth:         NewAuthHandler(userService, tokenService, log),
		Tool:         NewToolHandler(toolService, log),
		Tutorial:     NewTutorialHandler(tutorialService, log),
		Newsletter:   NewNewsletterHandler(newsletterService, log),
		Subscription: NewSubscriptionHandler(subscriptionService, log),
	}
}
