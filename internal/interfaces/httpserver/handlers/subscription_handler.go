package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"modelhub-server/internal/domain/subscription"
	"modelhub-server/internal/interfaces/httpserver/middlewares"
	"modelhub-server/internal/interfaces/httpserver/requests"
	"modelhub-server/internal/interfaces/httpserver/responses"
	"modelhub-server/internal/utils/platformerrors"
)

// SubscriptionHandler exposes the authenticated subscription endpoints.
type SubscriptionHandler struct {
	service *subscription.Service
	log     zerolog.Logger
}

func NewSubscriptionHandler(service *subscription.Service, log zerolog.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		service: service,
		log:     log.With().Str("component", "subscription-handler").Logger(),
	}
}

func requirePrincipal(c *gin.Context) (middlewares.Principal, bool) {
	principal, ok := middlewares.PrincipalFromContext(c)
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized, "not authenticated", "b0c1d2e3-f4a5-4b6c-8d7e-9f0a1b2c3d4e")
	}
	return principal, ok
}

// Subscribe godoc
// @Summary      Start a subscription
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Param        request  body      requests.SubscribeRequest  true  "Plan selection"
// @Success      201      {object}  subscription.Subscription
// @Failure      400      {object}  responses.ErrorResponse
// @Security     BearerAuth
// @Router       /v1/subscriptions [post]
func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var req requests.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, err.Error(), "6d7e8f9a-0b1c-4d2e-8f3a-4b5c6d7e8f9a")
		return
	}

	sub, err := h.service.Subscribe(c.Request.Context(), principal.UserID, req.Plan)
	if err != nil {
		responses.HandleError(c, err, "failed to start subscription")
		return
	}
	c.JSON(http.StatusCreated, sub)
}

// List godoc
// @Summary      List own subscriptions
// @Tags         subscriptions
// @Produce      json
// @Param        status  query  string  false  "Filter by status"
// @Param        limit   query  int     false  "Page size"
// @Param        offset  query  int     false  "Page offset"
// @Success      200  {object}  responses.ListResponse[subscription.Subscription]
// @Security     BearerAuth
// @Router       /v1/subscriptions [get]
func (h *SubscriptionHandler) List(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	filter := subscription.Filter{UserID: &principal.UserID}
	if raw := requests.OptionalQuery(c, "status"); raw != nil {
		status := subscription.Status(*raw)
		filter.Status = &status
	}
	p := requests.ParsePagination(c)

	subs, total, err := h.service.List(c.Request.Context(), filter, p)
	if err != nil {
		responses.HandleError(c, err, "failed to list subscriptions")
		return
	}
	limit, offset := p.Bounded(defaultListLimit, maxListLimit)
	c.JSON(http.StatusOK, responses.NewListResponse(subs, total, limit, offset))
}

// Get godoc
// @Summary      Get a subscription
// @Tags         subscriptions
// @Produce      json
// @Param        id  path  string  true  "Subscription id"
// @Success      200  {object}  subscription.Subscription
// @Failure      404  {object}  responses.ErrorResponse
// @Security     BearerAuth
// @Router       /v1/subscriptions/{id} [get]
func (h *SubscriptionHandler) Get(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	sub, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		responses.HandleError(c, err, "failed to get subscription")
		return
	}
	if sub.UserID != principal.UserID && !principal.IsSuperuser {
		responses.HandleNewError(c, platformerrors.ErrorTypeForbidden, "subscription belongs to another account", "2e3f4a5b-6c7d-4e8f-8a9b-0c1d2e3f4a5b")
		return
	}
	c.JSON(http.StatusOK, sub)
}

// Cancel godoc
// @Summary      Cancel a subscription
// @Tags         subscriptions
// @Produce      json
// @Param        id  path  string  true  "Subscription id"
// @Success      200  {object}  subscription.Subscription
// @Failure      404  {object}  responses.ErrorResponse
// @Security     BearerAuth
// @Router       /v1/subscriptions/{id}/cancel [post]
func (h *SubscriptionHandler) Cancel(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	sub, err := h.service.Cancel(c.Request.Context(), c.Param("id"), principal.UserID)
	if err != nil {
		responses.HandleError(c, err, "failed to cancel subscription")
		return
	}
	c.JSON(http.StatusOK, sub)
}
