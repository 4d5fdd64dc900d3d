package domain

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Service interface {
	Add(ctx context.Context, req AddRateRequest) (CurrencyRate, error)
	// Effective resolves the rate used to convert the given currency into RON
	// on the given date. RON resolves to a fixed rate of 1 without touching
	// the store.
	Effective(ctx context.Context, currencyCode string, date datatypes.Date) (CurrencyRate, error)
	List(ctx context.Context, req ListRatesRequest) ([]CurrencyRate, error)
	Delete(ctx context.Context, id int64) error
}

type AddRateRequest struct {
	CurrencyCode string          `json:"currency_code"`
	Rate         decimal.Decimal `json:"rate"`
	Date         datatypes.Date  `json:"date"`
}

type ListRatesRequest struct {
	CurrencyCode string
}
