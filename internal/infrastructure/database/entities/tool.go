package entities

import (
	"time"

	"gorm.io/datatypes"
)

type Tool struct {
	ID            string         `gorm:"column:id;primaryKey"`
	Name          string         `gorm:"column:name;not null;index"`
	Category      string         `gorm:"column:category;index"`
	Description   string         `gorm:"column:description;type:text"`
	Pricing       datatypes.JSON `gorm:"column:pricing"`
	URL           string         `gorm:"column:url"`
	TrendingScore float64        `gorm:"column:trending_score;default:0"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (Tool) TableName() string {
	return "tools"
}
