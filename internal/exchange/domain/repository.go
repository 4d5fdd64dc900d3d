package domain

import (
	"context"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ListRatesFilter struct {
	CurrencyCode string
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, rate *CurrencyRate) error
	// FindEffective returns the most recent rate dated on or before the given
	// date, or nil when the currency has no usable quotation.
	FindEffective(ctx context.Context, db *gorm.DB, currencyCode string, date datatypes.Date) (*CurrencyRate, error)
	List(ctx context.Context, db *gorm.DB, filter ListRatesFilter) ([]*CurrencyRate, error)
	Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error)
}
