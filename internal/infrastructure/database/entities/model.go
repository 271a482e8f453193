package entities

import (
	"time"

	"gorm.io/datatypes"
)

// Model is the persisted catalog record. Provider payload blocks are kept as
// JSONB so the schema survives upstream additions without migrations.
type Model struct {
	ID                 string         `gorm:"column:id;primaryKey"`
	Name               string         `gorm:"column:name;not null;index"`
	Creator            string         `gorm:"column:creator;index"`
	Source             string         `gorm:"column:source;not null;index"`
	Category           string         `gorm:"column:category;not null;index"`
	Description        string         `gorm:"column:description;type:text"`
	HuggingFaceURL     string         `gorm:"column:huggingface_url"`
	ReplicateURL       string         `gorm:"column:replicate_url"`
	BenchmarkMetrics   datatypes.JSON `gorm:"column:benchmark_metrics"`
	Tags               datatypes.JSON `gorm:"column:tags"`
	LastUpdated        *time.Time     `gorm:"column:last_updated"`
	Downloads          int64          `gorm:"column:downloads;default:0"`
	Likes              int64          `gorm:"column:likes;default:0"`
	ModelType          string         `gorm:"column:model_type;not null"`
	Papers             datatypes.JSON `gorm:"column:papers"`
	Spaces             datatypes.JSON `gorm:"column:spaces"`
	ModelTree          datatypes.JSON `gorm:"column:model_tree"`
	TechnicalDetails   datatypes.JSON `gorm:"column:technical_details"`
	Citation           *string        `gorm:"column:citation;type:text"`
	PipelineTag        string         `gorm:"column:pipeline_tag"`
	MaskToken          string         `gorm:"column:mask_token"`
	WidgetData         datatypes.JSON `gorm:"column:widget_data"`
	Config             datatypes.JSON `gorm:"column:config"`
	CardData           datatypes.JSON `gorm:"column:card_data"`
	DiscussionCount    int64          `gorm:"column:discussion_count;default:0"`
	PullRequests       datatypes.JSON `gorm:"column:pull_requests"`
	Gated              bool           `gorm:"column:gated;default:false"`
	Private            bool           `gorm:"column:private;default:false"`
	Siblings           datatypes.JSON `gorm:"column:siblings"`
	Tasks              datatypes.JSON `gorm:"column:tasks"`
	Files              datatypes.JSON `gorm:"column:files"`
	ModelIndex         datatypes.JSON `gorm:"column:model_index"`
	AvailableLibraries datatypes.JSON `gorm:"column:available_libraries"`
	CreatedAt          time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (Model) TableName() string {
	return "models"
}
