package huggingface

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

const DefaultBaseURL = "https://huggingface.co"

// Config carries client settings. Retries is the number of retries after the
// first attempt; retrying only fires on transport errors, never on an HTTP
// status the provider actually returned.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	Retries int
}

// Client talks to the Hugging Face hub. It implements catalog.Provider: the
// base record fetch may fail, the six extractors degrade to empty defaults.
type Client struct {
	client  *resty.Client
	baseURL string
	log     zerolog.Logger
}

func NewClient(cfg Config, log zerolog.Logger) *Client {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := httpclients.NewClient("huggingface")
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}
	if cfg.Retries > 0 {
		client.SetRetryCount(cfg.Retries)
		client.SetRetryWaitTime(1 * time.Second)
		client.SetRetryMaxWaitTime(8 * time.Second)
		client.AddRetryConditions(func(resp *resty.Response, err error) bool {
			return err != nil
		})
	}
	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}

	return &Client{
		client:  client,
		baseURL: baseURL,
		log:     log.With().Str("component", "huggingface-client").Logger(),
	}
}

// FetchModel loads the base record. A provider 404 maps to a not-found error;
// everything else surfaces as an external failure.
func (c *Client) FetchModel(ctx context.Context, id string) (*catalog.ProviderRecord, error) {
	var record catalog.ProviderRecord
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&record).
		Get(c.endpoint("/api/models/" + id))
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal, "failed to reach model provider", err,
			"7c1e4f2b-5d8a-4b3c-9e6f-0a1b2c3d4e5f")
	}
	if resp.StatusCode() == 404 {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeNotFound, fmt.Sprintf("model %s not found on provider", id), nil,
			"3e5f7a9b-1c2d-4e3f-8a4b-5c6d7e8f9a0b")
	}
	if resp.IsError() {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal,
			fmt.Sprintf("model provider returned status %d for %s", resp.StatusCode(), id), nil,
			"9f0a1b2c-3d4e-4f5a-b6c7-d8e9f0a1b2c3")
	}
	if record.ID == "" {
		record.ID = id
	}
	record.URL = c.endpoint("/" + id)
	return &record, nil
}

func (c *Client) endpoint(path string) string {
	return c.baseURL + path
}
