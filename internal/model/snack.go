package model

import "github.com/shopspring/decimal"

type Snack struct {
	BaseModel
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Stock       int             `gorm:"not null" json:"stock"`
	IsAvailable bool            `gorm:"not null;index" json:"is_available"`
	ImageURL    *string         `gorm:"type:varchar(1024)" json:"image_url,omitempty"`
}
