package handlers

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"modelhub-server/internal/config"
	"modelhub-server/internal/domain/catalog"
	"modelhub-server/internal/infrastructure/metrics"
	"modelhub-server/internal/interfaces/httpserver/requests"
	"modelhub-server/internal/interfaces/httpserver/responses"
	"modelhub-server/internal/utils/platformerrors"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
	scrapeTimeout    = 30 * time.Minute
)

// ModelHandler exposes the catalog endpoints.
type ModelHandler struct {
	cfg         *config.Config
	service     *catalog.Service
	syncService *catalog.SyncService
	log         zerolog.Logger
}

func NewModelHandler(cfg *config.Config, service *catalog.Service, syncService *catalog.SyncService, log zerolog.Logger) *ModelHandler {
	return &ModelHandler{
		cfg:         cfg,
		service:     service,
		syncService: syncService,
		log:         log.With().Str("component", "model-handler").Logger(),
	}
}

// modelID reads the path parameter and unescapes the provider-qualified
// identifier ("org%2Fname").
func modelID(c *gin.Context) (string, bool) {
	raw := c.Param("id")
	id, err := url.PathUnescape(raw)
	if err != nil || id == "" {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid model id", "c5d3d1aa-7e22-4f19-9b60-8f41c2a6b7d3")
		return "", false
	}
	return id, true
}

// List godoc
// @Summary      List models
// @Description  Lists catalog models with optional category, source and search filters.
// @Tags         models
// @Produce      json
// @Param        category  query  string  false  "Filter by category"
// @Param        source    query  string  false  "Filter by source"
// @Param        search    query  string  false  "Substring match on name or description"
// @Param        limit     query  int     false  "Page size"
// @Param        offset    query  int     false  "Page offset"
// @Success      200  {object}  responses.ListResponse[catalog.Model]
// @Router       /v1/models [get]
func (h *ModelHandler) List(c *gin.Context) {
	filter := catalog.ModelFilter{
		Category: requests.OptionalQuery(c, "category"),
		Search:   requests.OptionalQuery(c, "search"),
	}
	if raw := requests.OptionalQuery(c, "source"); raw != nil {
		source := catalog.ModelSource(*raw)
		filter.Source = &source
	}
	p := requests.ParsePagination(c)

	models, total, err := h.service.List(c.Request.Context(), filter, p)
	if err != nil {
		responses.HandleError(c, err, "failed to list models")
		return
	}
	limit, offset := p.Bounded(defaultListLimit, maxListLimit)
	c.JSON(http.StatusOK, responses.NewListResponse(models, total, limit, offset))
}

// Get godoc
// @Summary      Get a model
// @Description  Returns the stored record, scraping it live on a cache miss.
// @Tags         models
// @Produce      json
// @Param        id  path  string  true  "URL-encoded model id (org%2Fname)"
// @Success      200  {object}  responses.ModelFetchResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /v1/models/{id} [get]
func (h *ModelHandler) Get(c *gin.Context) {
	id, ok := modelID(c)
	if !ok {
		return
	}

	result, err := h.service.GetOrFetch(c.Request.Context(), id)
	if err != nil {
		responses.HandleError(c, err, "failed to get model")
		return
	}
	metrics.ModelFetchesTotal.WithLabelValues(string(result.Status)).Inc()
	c.JSON(http.StatusOK, responses.NewModelFetchResponse(result))
}

// Refresh godoc
// @Summary      Refresh a model
// @Description  Re-scrapes the provider unconditionally and updates the stored record.
// @Tags         models
// @Produce      json
// @Param        id  path  string  true  "URL-encoded model id (org%2Fname)"
// @Success      200  {object}  responses.ModelFetchResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /v1/models/{id}/refresh [get]
func (h *ModelHandler) Refresh(c *gin.Context) {
	id, ok := modelID(c)
	if !ok {
		return
	}

	result, err := h.service.Refresh(c.Request.Context(), id)
	if err != nil {
		responses.HandleError(c, err, "failed to refresh model")
		return
	}
	metrics.ModelFetchesTotal.WithLabelValues(string(result.Status)).Inc()
	c.JSON(http.StatusOK, responses.NewModelFetchResponse(result))
}

// Create godoc
// @Summary      Create a model
// @Tags         models
// @Accept       json
// @Produce      json
// @Param        request  body      requests.ModelRequest  true  "Model record"
// @Success      201      {object}  catalog.Model
// @Failure      400      {object}  responses.ErrorResponse
// @Security     BearerAuth
// @Router       /v1/models [post]
func (h *ModelHandler) Create(c *gin.Context) {
	var req requests.ModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, err.Error(), "d7e8f9a0-b1c2-4d3e-8f4a-5b6c7d8e9f0a")
		return
	}

	model := req.ToDomain()
	if err := h.service.Create(c.Request.Context(), model); err != nil {
		responses.HandleError(c, err, "failed to create model")
		return
	}
	c.JSON(http.StatusCreated, model)
}

// Update godoc
// @Summary      Update a model
// @Tags         models
// @Accept       json
// @Produce      json
// @Param        id       path      string                 true  "URL-encoded model id"
// @Param        request  body      requests.ModelRequest  true  "Replacement record"
// @Success      200      {object}  catalog.Model
// @Failure      404      {object}  responses.ErrorResponse
// @Security     BearerAuth
// @Router       /v1/models/{id} [put]
func (h *ModelHandler) Update(c *gin.Context) {
	id, ok := modelID(c)
	if !ok {
		return
	}
	var req requests.ModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, err.Error(), "3b4c5d6e-7f8a-4b9c-8d0e-1f2a3b4c5d6e")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req.ToDomain())
	if err != nil {
		responses.HandleError(c, err, "failed to update model")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary      Delete a model
// @Tags         models
// @Param        id  path  string  true  "URL-encoded model id"
// @Success      204
// @Failure      404  {object}  responses.ErrorResponse
// @Security     BearerAuth
// @Router       /v1/models/{id} [delete]
func (h *ModelHandler) Delete(c *gin.Context) {
	id, ok := modelID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		responses.HandleError(c, err, "failed to delete model")
		return
	}
	c.Status(http.StatusNoContent)
}

// Scrape godoc
// @Summary      Trigger a bulk scrape
// @Description  Launches the bulk listing sync across all configured sources in the background.
// @Tags         models
// @Produce      json
// @Success      202  {object}  map[string]string
// @Security     BearerAuth
// @Router       /v1/models/scrape [post]
func (h *ModelHandler) Scrape(c *gin.Context) {
	// The sync outlives the request; detach from the request context.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), scrapeTimeout)
		defer cancel()
		for _, result := range h.syncService.SyncAll(ctx) {
			if result.Err != nil {
				metrics.ScrapeSyncTotal.WithLabelValues(result.Source, "error").Inc()
				continue
			}
			metrics.ScrapeSyncTotal.WithLabelValues(result.Source, "stored").Add(float64(result.Stored))
			if result.Failed > 0 {
				metrics.ScrapeSyncTotal.WithLabelValues(result.Source, "failed").Add(float64(result.Failed))
			}
		}
	}()
	c.JSON(http.StatusAccepted, gin.H{"message": "scrape started"})
}
