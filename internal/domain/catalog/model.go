package catalog

import (
	"context"
	"time"

	"modelhub-server/internal/domain/query"
)

// ModelSource identifies the provider a record was scraped from.
type ModelSource string

const (
	SourceHuggingFace ModelSource = "huggingface"
	SourceReplicate   ModelSource = "replicate"
)

// ModelType distinguishes weights you can download from hosted API models.
type ModelType string

const (
	ModelTypeDownloadable ModelType = "downloadable"
	ModelTypeAPI          ModelType = "api"
)

// Paper is a research paper linked from a model page.
type Paper struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// DependencyTree lists models derived from this one.
type DependencyTree struct {
	Adapters      []string `json:"adapters"`
	Finetunes     []string `json:"finetunes"`
	Merges        []string `json:"merges"`
	Quantizations []string `json:"quantizations"`
}

// TechnicalDetails carries the provider's technical specification block.
type TechnicalDetails struct {
	ModelSize          string   `json:"model_size,omitempty"`
	TensorType         string   `json:"tensor_type,omitempty"`
	Parameters         *int64   `json:"parameters,omitempty"`
	Architecture       string   `json:"architecture,omitempty"`
	License            string   `json:"license,omitempty"`
	DatasetUsed        string   `json:"dataset_used,omitempty"`
	TrainingData       string   `json:"training_data,omitempty"`
	InferenceProviders []string `json:"inference_providers,omitempty"`
	Safetensors        bool     `json:"safetensors"`
}

// DownloadStats is the download-count fragment.
type DownloadStats struct {
	Downloads int64 `json:"downloads"`
}

// Model is the canonical catalog record. The identifier is provider-qualified
// ("org/model-name"), immutable, and the sole key for lookup and upsert.
type Model struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Creator          string           `json:"creator"`
	Source           ModelSource      `json:"source"`
	Category         string           `json:"category"`
	Description      string           `json:"description"`
	HuggingFaceURL   string           `json:"huggingface_url,omitempty"`
	ReplicateURL     string           `json:"replicate_url,omitempty"`
	BenchmarkMetrics map[string]any   `json:"benchmark_metrics,omitempty"`
	Tags             []string         `json:"tags,omitempty"`
	LastUpdated      *time.Time       `json:"last_updated,omitempty"`
	Downloads        int64            `json:"downloads"`
	Likes            int64            `json:"likes"`
	ModelType        ModelType        `json:"model_type"`
	Papers           []Paper          `json:"papers,omitempty"`
	Spaces           []map[string]any `json:"spaces,omitempty"`
	ModelTree        *DependencyTree  `json:"model_tree,omitempty"`
	TechnicalDetails *TechnicalDetails `json:"technical_details,omitempty"`
	Citation         *string          `json:"citation,omitempty"`
	PipelineTag      string           `json:"pipeline_tag,omitempty"`
	MaskToken        string           `json:"mask_token,omitempty"`
	WidgetData       []map[string]any `json:"widget_data,omitempty"`
	Config           map[string]any   `json:"config,omitempty"`
	CardData         map[string]any   `json:"card_data,omitempty"`
	DiscussionCount  int64            `json:"discussion_count"`
	PullRequests     []map[string]any `json:"pull_requests,omitempty"`
	Gated            bool             `json:"gated"`
	Private          bool             `json:"private"`
	Siblings         []map[string]any `json:"siblings,omitempty"`
	Tasks            []string         `json:"tasks,omitempty"`
	Files            []map[string]any `json:"files,omitempty"`
	ModelIndex       map[string]any   `json:"model_index,omitempty"`
	AvailableLibraries []string       `json:"available_libraries,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// ModelFilter narrows catalog listings.
type ModelFilter struct {
	Category *string
	Source   *ModelSource
	Search   *string
}

// Repository defines catalog persistence. GetByID returns (nil, nil) on a miss
// so callers can tell "not cached" from a storage failure.
type Repository interface {
	GetByID(ctx context.Context, id string) (*Model, error)
	Upsert(ctx context.Context, model *Model) error
	List(ctx context.Context, filter ModelFilter, p *query.Pagination) ([]*Model, int64, error)
	Delete(ctx context.Context, id string) error
}
