package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"modelhub-server/internal/domain/tool"
	"modelhub-server/internal/interfaces/httpserver/requests"
	"modelhub-server/internal/interfaces/httpserver/responses"
	"modelhub-server/internal/utils/platformerrors"
)

// ToolHandler exposes the tool listing endpoints.
type ToolHandler struct {
	service *tool.Service
	log     zerolog.Logger
}

func NewToolHandler(service *tool.Service, log zerolog.Logger) *ToolHandler {
	return &ToolHandler{
		service: service,
		log:     log.With().Str("component", "tool-handler").Logger(),
	}
}

// List godoc
// @Summary      List tools
// @Tags         tools
// @Produce      json
// @Param        category  query  string  false  "Filter by category"
// @Param        search    query  string  false  "Substring match on name or description"
// @Param        limit     query  int     false  "Page size"
// @Param        offset    query  int     false  "Page offset"
// @Success      200  {object}  responses.ListResponse[tool.Tool]
// @Router       /v1/tools [get]
func (h *ToolHandler) List(c *gin.Context) {
	filter := tool.Filter{
		Category: requests.OptionalQuery(c, "category"),
		Search:   requests.OptionalQuery(c, "search"),
	}
	p := requests.ParsePagination(c)

	tools, total, err := h.service.List(c.Request.Context(), filter, p)
	if err != nil {
		responses.HandleError(c, err, "failed to list tools")
		return
	}
	limit, offset := p.Bounded(defaultListLimit, maxListLimit)
	c.JSON(http.StatusOK, responses.NewListResponse(tools, total, limit, offset))
}

// Get godoc
// @Summary      Get a tool
// @Tags         tools
// @Produce      json
// @Param        id  path  string  true  "Tool id"
// @Success      200  {object}  tool.Tool
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /v1/tools/{id} [get]
func (h *ToolHandler) Get(c *gin.Context) {
	record, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		responses.HandleError(c, err, "failed to get tool")
		return
	}
	c.JSON(http.StatusOK, record)
}

// Create godoc
// @Summary      Create a tool
// @Tags         tools
// @Accept       json
// @Produce      json
// @Param        request  body      requests.ToolRequest  true  "Tool listing"
// @Success      201      {object}  tool.Tool
// @Failure      400      {object}  responses.ErrorResponse
// @Security     BearerAuth
// @Router       /v1/tools [post]
func (h *ToolHandler) Create(c *gin.Context) {
	var req requests.ToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, err.Error(), "7f8a9b0c-1d2e-4f3a-b4c5-d6e7f8a9b0c1")
		return
	}

	record := req.ToDomain()
	if err := h.service.Create(c.Request.Context(), record); err != nil {
		responses.HandleError(c, err, "failed to create tool")
		return
	}
	c.JSON(http.StatusCreated, record)
}

// Update godoc
// @Summary      Update a tool
// @Tags         tools
// @Accept       json
// @Produce      json
// @Param        id       path      string                true  "Tool id"
// @Param        request  body      requests.ToolRequest  true  "Replacement listing"
// @Success      200      {object}  tool.Tool
// @Failure      404      {object}  responses.ErrorResponse
// @Security     BearerAuth
// @Router       /v1/tools/{id} [put]
func (h *ToolHandler) Update(c *gin.Context) {
	var req requests.ToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, err.Error(), "3d4e5f6a-7b8c-4d9e-8f0a-1b2c3d4e5f6a")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("id"), req.ToDomain())
	if err != nil {
		responses.HandleError(c, err, "failed to update tool")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary      Delete a tool
// @Tags         tools
// @Param        id  path  string  true  "Tool id"
// @Success      204
// @Failure      404  {object}  responses.ErrorResponse
// @Security     BearerAuth
// @Router       /v1/tools/{id} [delete]
func (h *ToolHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		responses.HandleError(c, err, "failed to delete tool")
		return
	}
	c.Status(http.StatusNoContent)
}
