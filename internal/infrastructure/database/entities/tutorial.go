package entities

import "time"

type Tutorial struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement"`
	Title       string    `gorm:"column:title;not null;index"`
	Description string    `gorm:"column:description;type:text"`
	Content     string    `gorm:"column:content;type:text;not null"`
	Category    string    `gorm:"column:category;index"`
	AuthorID    *uint     `gorm:"column:author_id;index"`
	URL         string    `gorm:"column:url"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Tutorial) TableName() string {
	return "tutorials"
}
