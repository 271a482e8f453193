package replicate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"resty.dev/v3"

	"modelhub-server/internal/domain/catalog"
	"modelhub-server/internal/utils/httpclients"
	"modelhub-server/internal/utils/platformerrors"
)

const (
	DefaultBaseURL = "https://api.replicate.com"
	pageURL        = "https://replicate.com"
)

type Config struct {
	BaseURL  string
	APIToken string
	Timeout  time.Duration
}

// Client lists hosted models from the Replicate API. It only serves the bulk
// scrape; Replicate records never go through the enrichment pipeline.
type Client struct {
	client   *resty.Client
	baseURL  string
	apiToken string
	log      zerolog.Logger
}

func NewClient(cfg Config, log zerolog.Logger) *Client {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := httpclients.NewClient("replicate")
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}

	return &Client{
		client:   client,
		baseURL:  baseURL,
		apiToken: cfg.APIToken,
		log:      log.With().Str("component", "replicate-client").Logger(),
	}
}

func (c *Client) Name() string {
	return string(catalog.SourceReplicate)
}

type listResponse struct {
	Results []modelRecord `json:"results"`
}

type modelRecord struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Owner       string `json:"owner"`
	Description string `json:"description"`
	RunCount    int64  `json:"run_count"`
}

// ListModels pulls one page of public models. Without a token the source is
// disabled and lists nothing.
func (c *Client) ListModels(ctx context.Context) ([]catalog.Summary, error) {
	if c.apiToken == "" {
		c.log.Debug().Msg("no API token configured, skipping replicate listing")
		return nil, nil
	}

	var body listResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Token "+c.apiToken).
		SetResult(&body).
		Get(c.baseURL + "/v1/models")
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal, "failed to reach replicate", err,
			"b3c4d5e6-f7a8-4b9c-8d0e-1f2a3b4c5d6e")
	}
	if resp.IsError() {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal,
			fmt.Sprintf("replicate returned status %d", resp.StatusCode()), nil,
			"5d6e7f8a-9b0c-4d1e-a2f3-b4c5d6e7f8a9")
	}

	summaries := make([]catalog.Summary, 0, len(body.Results))
	for _, record := range body.Results {
		id := record.ID
		if id == "" {
			id = record.Owner + "/" + record.Name
		}
		summaries = append(summaries, catalog.Summary{
			ID:          id,
			Name:        record.Name,
			Creator:     record.Owner,
			Source:      catalog.SourceReplicate,
			Description: record.Description,
			URL:         fmt.Sprintf("%s/%s/%s", pageURL, record.Owner, record.Name),
			Downloads:   record.RunCount,
			ModelType:   catalog.ModelTypeAPI,
		})
	}
	return summaries, nil
}
