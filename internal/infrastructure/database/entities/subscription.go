package entities

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Subscription struct {
	ID            string          `gorm:"column:id;primaryKey"`
	UserID        uint            `gorm:"column:user_id;not null;index"`
	Plan          string          `gorm:"column:plan;not null"`
	Status        string          `gorm:"column:status;not null;index"`
	Price         decimal.Decimal `gorm:"column:price;type:decimal(10,2)"`
	StartDate     time.Time       `gorm:"column:start_date"`
	EndDate       *time.Time      `gorm:"column:end_date"`
	PaymentStatus string          `gorm:"column:payment_status"`
	PaymentMethod datatypes.JSON  `gorm:"column:payment_method"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
