package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a reusable catalog entry. Invoice lines copy its name, unit,
// price and VAT rate at assembly time, so editing or deleting a product
// never changes documents that were already issued.
type Product struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"not null" json:"name" validate:"required"`
	Description string          `json:"description,omitempty"`
	Unit        string          `gorm:"not null" json:"unit" validate:"required"`
	UnitPrice   decimal.Decimal `gorm:"column:price_per_unit;type:numeric;not null" json:"unit_price"`
	Currency    string          `gorm:"not null;default:RON" json:"currency" validate:"required,oneof=RON EUR USD GBP"`
	VATRate     decimal.Decimal `gorm:"column:vat_rate;type:numeric;not null;default:19" json:"vat_rate"`
	IsService   bool            `gorm:"not null;default:false" json:"is_service"`
	CreatedAt   time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}
