package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// CurrencyRate is one RON quotation for a foreign currency on a given date,
// e.g. 4.9 RON per EUR. RON itself is never stored; its rate is always 1.
type CurrencyRate struct {
	ID           int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	CurrencyCode string          `gorm:"not null;uniqueIndex:idx_currency_exchange_code_date,priority:1" json:"currency_code" validate:"required,oneof=EUR USD GBP"`
	Rate         decimal.Decimal `gorm:"column:exchange_rate;type:numeric;not null" json:"rate"`
	Date         datatypes.Date  `gorm:"not null;uniqueIndex:idx_currency_exchange_code_date,priority:2" json:"date"`
	CreatedAt    time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (CurrencyRate) TableName() string { return "currency_exchange" }
