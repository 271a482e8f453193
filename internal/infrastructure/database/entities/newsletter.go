package entities

import (
	"time"

	"gorm.io/datatypes"
)

type Newsletter struct {
	ID        string         `gorm:"column:id;primaryKey"`
	Subject   string         `gorm:"column:subject;not null"`
	Content   string         `gorm:"column:content;type:text"`
	SentAt    *time.Time     `gorm:"column:sent_at"`
	Metrics   datatypes.JSON `gorm:"column:metrics"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
}

func (Newsletter) TableName() string {
	return "newsletters"
}
