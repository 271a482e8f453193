package entities

import (
	"time"

	"gorm.io/datatypes"
)

type User struct {
	ID               uint           `gorm:"column:id;primaryKey;autoIncrement"`
	Email            string         `gorm:"column:email;not null;uniqueIndex"`
	HashedPassword   string         `gorm:"column:hashed_password;not null"`
	SubscriptionPlan string         `gorm:"column:subscription_plan;default:free"`
	Preferences      datatypes.JSON `gorm:"column:preferences"`
	IsActive         bool           `gorm:"column:is_active;default:true"`
	IsSuperuser      bool           `gorm:"column:is_superuser;default:false"`
	CreatedAt        time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
