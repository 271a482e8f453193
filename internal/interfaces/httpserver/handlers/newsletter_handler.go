package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"modelhub-server/internal/domain/newsletter"
	"modelhub-server/internal/interfaces/httpserver/requests"
	"modelhub-server/internal/interfaces/httpserver/responses"
	"modelhub-server/internal/utils/platformerrors"
)

// NewsletterHandler exposes newsletter issue endpoints.
type NewsletterHandler struct {
	service *newsletter.Service
	log     zerolog.Logger
}

func NewNewsletterHandler(service *newsletter.Service, log zerolog.Logger) *NewsletterHandler {
	return &NewsletterHandler{
		service: service,
		log:     log.With().Str("component", "newsletter-handler").Logger(),
	}
}

// List godoc
// @Summary      List newsletter issues
// @Tags         newsletters
// @Produce      json
// @Param        limit   query  int  false  "Page size"
// @Param        offset  query  int  false  "Page offset"
// @Success      200  {object}  responses.ListResponse[newsletter.Newsletter]
// @Router       /v1/newsletters [get]
func (h *NewsletterHandler) List(c *gin.Context) {
	p := requests.ParsePagination(c)

	issues, total, err := h.service.List(c.Request.Context(), p)
	if err != nil {
		responses.HandleError(c, err, "failed to list newsletters")
		return
	}
	limit, offset := p.Bounded(defaultListLimit, maxListLimit)
	c.JSON(http.StatusOK, responses.NewListResponse(issues, total, limit, offset))
}

// Get godoc
// @Summary      Get a newsletter issue
// @Tags         newsletters
// @Produce      json
// @Param        id  path  string  true  "Issue id"
// @Success      200  {object}  newsletter.Newsletter
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /v1/newsletters/{id} [get]
func (h *NewsletterHandler) Get(c *gin.Context) {
	record, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		responses.HandleError(c, err, "failed to get newsletter")
		return
	}
	c.JSON(http.StatusOK, record)
}

// Create godoc
// @Summary      Create a newsletter issue
// @Tags         newsletters
// @Accept       json
// @Produce      json
// @Param        request  body      requests.NewsletterRequest  true  "Issue content"
// @Success      201      {object}  newsletter.Newsletter
// @Failure      400      {object}  responses.ErrorResponse
// @Security     BearerAuth
// @Router       /v1/newsletters [post]
func (h *NewsletterHandler) Create(c *gin.Context) {
	var req requests.NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, err.Error(), "7e8f9a0b-1c2d-4e3f-8a4b-5c6d7e8f9a0b")
		return
	}

	record := req.ToDomain()
	if err := h.service.Create(c.Request.Context(), record); err != nil {
		responses.HandleError(c, err, "failed to create newsletter")
		return
	}
	c.JSON(http.StatusCreated, record)
}

// Update godoc
// @Summary      Update a newsletter issue
// @Tags         newsletters
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "Issue id"
// @Param        request  body      requests.NewsletterRequest  true  "Replacement content"
// @Success      200      {object}  newsletter.Newsletter
// @Failure      404      {object}  responses.ErrorResponse
// @Security     BearerAuth
// @Router       /v1/newsletters/{id} [put]
func (h *NewsletterHandler) Update(c *gin.Context) {
	var req requests.NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, err.Error(), "3f4a5b6c-7d8e-4f9a-8b0c-1d2e3f4a5b6c")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("id"), req.ToDomain())
	if err != nil {
		responses.HandleError(c, err, "failed to update newsletter")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary      Delete a newsletter issue
// @Tags         newsletters
// @Param        id  path  string  true  "Issue id"
// @Success      204
// @Failure      404  {object}  responses.ErrorResponse
// @Security     BearerAuth
// @Router       /v1/newsletters/{id} [delete]
func (h *NewsletterHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		responses.HandleError(c, err, "failed to delete newsletter")
		return
	}
	c.Status(http.StatusNoContent)
}
