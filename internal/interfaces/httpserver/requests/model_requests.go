package requests

import (
	"time"

	"modelhub-server/internal/domain/catalog"
)

// ModelRequest carries the fields an admin can set on a catalog record.
type ModelRequest struct {
	ID               string                    `json:"id"`
	Name             string                    `json:"name"`
	Creator          string                    `json:"creator"`
	Source           string                    `json:"source"`
	Category         string                    `json:"category"`
	Description      string                    `json:"description"`
	HuggingFaceURL   string                    `json:"huggingface_url"`
	ReplicateURL     string                    `json:"replicate_url"`
	BenchmarkMetrics map[string]any            `json:"benchmark_metrics"`
	Tags             []string                  `json:"tags"`
	LastUpdated      *time.Time                `json:"last_updated"`
	Downloads        int64                     `json:"downloads"`
	Likes            int64                     `json:"likes"`
	ModelType        string                    `json:"model_type"`
	Papers           []catalog.Paper           `json:"papers"`
	ModelTree        *catalog.DependencyTree   `json:"model_tree"`
	TechnicalDetails *catalog.TechnicalDetails `json:"technical_details"`
	Citation         *string                   `json:"citation"`
	PipelineTag      string                    `json:"pipeline_tag"`
}

// ToDomain converts request to domain model
func (r *ModelRequest) ToDomain() *catalog.Model {
	source := catalog.ModelSource(r.Source)
	if source == "" {
		source = catalog.SourceHuggingFace
	}
	modelType := catalog.ModelType(r.ModelType)
	if modelType == "" {
		modelType = catalog.ModelTypeDownloadable
	}
	name := r.Name
	if name == "" {
		name = r.ID
	}
	return &catalog.Model{
		ID:               r.ID,
		Name:             name,
		Creator:          r.Creator,
		Source:           source,
		Category:         r.Category,
		Description:      r.Description,
		HuggingFaceURL:   r.HuggingFaceURL,
		ReplicateURL:     r.ReplicateURL,
		BenchmarkMetrics: r.BenchmarkMetrics,
		Tags:             r.Tags,
		LastUpdated:      r.LastUpdated,
		Downloads:        r.Downloads,
		Likes:            r.Likes,
		ModelType:        modelType,
		Papers:           r.Papers,
		ModelTree:        r.ModelTree,
		TechnicalDetails: r.TechnicalDetails,
		Citation:         r.Citation,
		PipelineTag:      r.PipelineTag,
	}
}
