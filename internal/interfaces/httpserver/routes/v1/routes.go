package v1

import (
	"github.com/gin-gonic/gin"

	"modelhub-server/internal/infrastructure/auth"
	"modelhub-server/internal/interfaces/httpserver/handlers"
	"modelhub-server/internal/interfaces/httpserver/middlewares"
)

// Routes encapsulates versioned route registration.
type Routes struct {
	handlers *handlers.Provider
	tokens   *auth.TokenService
}

func NewRoutes(provider *handlers.Provider, tokens *auth.TokenService) *Routes {
	return &Routes{handlers: provider, tokens: tokens}
}

// Register attaches all v1 routes under /v1 prefix.
func (r *Routes) Register(router gin.IRouter) {
	group := router.Group("/v1")
	authed := middlewares.Auth(r.tokens)
	admin := middlewares.RequireSuperuser()

	// Catalog. Reads and the on-demand scrape are public; writes and the
	// bulk scrape trigger are admin-only.
	group.GET("/models", r.handlers.Model.List)
	group.GET("/models/:id", r.handlers.Model.Get)
	group.GET("/models/:id/refresh", r.handlers.Model.Refresh)
	group.POST("/models", authed, admin, r.handlers.Model.Create)
	group.PUT("/models/:id", authed, admin, r.handlers.Model.Update)
	group.DELETE("/models/:id", authed, admin, r.handlers.Model.Delete)
	group.POST("/models/scrape", authed, admin, r.handlers.Model.Scrape)

	// Accounts
	group.POST("/auth/register", r.handlers.Auth.Register)
	group.POST("/auth/login", r.handlers.Auth.Login)
	group.GET("/auth/me", authed, r.handlers.Auth.Me)

	// Tools
	group.GET("/tools", r.handlers.Tool.List)
	group.GET("/tools/:id", r.handlers.Tool.Get)
	group.POST("/tools", authed, admin, r.handlers.Tool.Create)
	group.PUT("/tools/:id", authed, admin, r.handlers.Tool.Update)
	group.DELETE("/tools/:id", authed, admin, r.handlers.Tool.Delete)

	// Tutorials
	group.GET("/tutorials", r.handlers.Tutorial.List)
	group.GET("/tutorials/:id", r.handlers.Tutorial.Get)
	group.POST("/tutorials", authed, r.handlers.Tutorial.Create)
	group.PUT("/tutorials/:id", authed, r.handlers.Tutorial.Update)
	group.DELETE("/tutorials/:id", authed, r.handlers.Tutorial.Delete)

	// Newsletters
	group.GET("/newsletters", r.handlers.Newsletter.List)
	group.GET("/newsletters/:id", r.handlers.Newsletter.Get)
	group.POST("/newsletters", authed, admin, r.handlers.Newsletter.Create)
	group.PUT("/newsletters/:id", authed, admin, r.handlers.Newsletter.Update)
	group.DELETE("/newsletters/:id", authed, admin, r.handlers.Newsletter.Delete)

	// Subscriptions
	group.POST("/subscriptions", authed, r.handlers.Subscription.Subscribe)
	group.GET("/subscriptions", authed, r.handlers.Subscription.List)
	group.GET("/subscriptions/:id", authed, r.handlers.Subscription.Get)
	group.POST("/subscriptions/:id/cancel", authed, r.handlers.Subscription.Cancel)
}
