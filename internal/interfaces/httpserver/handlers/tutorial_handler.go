package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"modelhub-server/internal/domain/tutorial"
	"modelhub-server/internal/interfaces/httpserver/middlewares"
	"modelhub-server/internal/interfaces/httpserver/requests"
	"modelhub-server/internal/interfaces/httpserver/responses"
	"modelhub-server/internal/utils/platformerrors"
)

// TutorialHandler exposes tutorial content endpoints.
type TutorialHandler struct {
	service *tutorial.Service
	log     zerolog.Logger
}

func NewTutorialHandler(service *tutorial.Service, log zerolog.Logger) *TutorialHandler {
	return &TutorialHandler{
		service: service,
		log:     log.With().Str("component", "tutorial-handler").Logger(),
	}
}

func tutorialID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid tutorial id", "9b0c1d2e-3f4a-4b5c-8d6e-7f8a9b0c1d2e")
		return 0, false
	}
	return uint(id), true
}

// List godoc
// @Summary      List tutorials
// @Tags         tutorials
// @Produce      json
// @Param        category   query  string  false  "Filter by category"
// @Param        author_id  query  int     false  "Filter by author"
// @Param        search     query  string  false  "Substring match on title or description"
// @Param        limit      query  int     false  "Page size"
// @Param        offset     query  int     false  "Page offset"
// @Success      200  {object}  responses.ListResponse[tutorial.Tutorial]
// @Router       /v1/tutorials [get]
func (h *TutorialHandler) List(c *gin.Context) {
	filter := tutorial.Filter{
		Category: requests.OptionalQuery(c, "category"),
		Search:   requests.OptionalQuery(c, "search"),
	}
	if raw := c.Query("author_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			authorID := uint(id)
			filter.AuthorID = &authorID
		}
	}
	p := requests.ParsePagination(c)

	tutorials, total, err := h.service.List(c.Request.Context(), filter, p)
	if err != nil {
		responses.HandleError(c, err, "failed to list tutorials")
		return
	}
	limit, offset := p.Bounded(defaultListLimit, maxListLimit)
	c.JSON(http.StatusOK, responses.NewListResponse(tutorials, total, limit, offset))
}

// Get godoc
// @Summary      Get a tutorial
// @Tags         tutorials
// @Produce      json
// @Param        id  path  int  true  "Tutorial id"
// @Success      200  {object}  tutorial.Tutorial
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /v1/tutorials/{id} [get]
func (h *TutorialHandler) Get(c *gin.Context) {
	id, ok := tutorialID(c)
	if !ok {
		return
	}
	record, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		responses.HandleError(c, err, "failed to get tutorial")
		return
	}
	c.JSON(http.StatusOK, record)
}

// Create godoc
// @Summary      Create a tutorial
// @Description  The authenticated caller becomes the author.
// @Tags         tutorials
// @Accept       json
// @Produce      json
// @Param        request  body      requests.TutorialRequest  true  "Tutorial content"
// @Success      201      {object}  tutorial.Tutorial
// @Failure      400      {object}  responses.ErrorResponse
// @Security     BearerAuth
// @Router       /v1/tutorials [post]
func (h *TutorialHandler) Create(c *gin.Context) {
	var req requests.TutorialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, err.Error(), "5c6d7e8f-9a0b-4c1d-8e2f-3a4b5c6d7e8f")
		return
	}

	var authorID *uint
	if principal, ok := middlewares.PrincipalFromContext(c); ok {
		authorID = &principal.UserID
	}

	record := req.ToDomain(authorID)
	if err := h.service.Create(c.Request.Context(), record); err != nil {
		responses.HandleError(c, err, "failed to create tutorial")
		return
	}
	c.JSON(http.StatusCreated, record)
}

// Update godoc
// @Summary      Update a tutorial
// @Tags         tutorials
// @Accept       json
// @Produce      json
// @Param        id       path      int                       true  "Tutorial id"
// @Param        request  body      requests.TutorialRequest  true  "Replacement content"
// @Success      200      {object}  tutorial.Tutorial
// @Failure      404      {object}  responses.ErrorResponse
// @Security     BearerAuth
// @Router       /v1/tutorials/{id} [put]
func (h *TutorialHandler) Update(c *gin.Context) {
	id, ok := tutorialID(c)
	if !ok {
		return
	}
	var req requests.TutorialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, err.Error(), "1d2e3f4a-5b6c-4d7e-8f8a-9b0c1d2e3f4a")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req.ToDomain(nil))
	if err != nil {
		responses.HandleError(c, err, "failed to update tutorial")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary      Delete a tutorial
// @Tags         tutorials
// @Param        id  path  int  true  "Tutorial id"
// @Success      204
// @Failure      404  {object}  responses.ErrorResponse
// @Security     BearerAuth
// @Router       /v1/tutorials/{id} [delete]
func (h *TutorialHandler) Delete(c *gin.Context) {
	id, ok := tutorialID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		responses.HandleError(c, err, "failed to delete tutorial")
		return
	}
	c.Status(http.StatusNoContent)
}
