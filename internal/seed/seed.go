// Package seed fills an empty database with the reference data a fresh
// installation needs: a starting set of currency exchange rates.
package seed

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/bgdnlp/facatura/internal/clock"
	exchangedomain "github.com/bgdnlp/facatura/internal/exchange/domain"
)

// defaultRates are the quotes installed at setup time. They are deliberately
// coarse; day-to-day rates are recorded with the rate commands. RON is the
// base currency and is never quoted.
var defaultRates = []struct {
	code string
	rate string
}{
	{"EUR", "4.9"},
	{"USD", "4.5"},
	{"GBP", "5.7"},
}

// EnsureDefaultRates inserts the default exchange rates, dated now, when the
// exchange table is empty. Against a populated database it does nothing, so
// repeated setups leave recorded rates alone.
func EnsureDefaultRates(db *gorm.DB, clk clock.Clock) error {
	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&exchangedomain.CurrencyRate{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		now := clk.Now()
		for _, quote := range defaultRates {
			rate := exchangedomain.CurrencyRate{
				CurrencyCode: quote.code,
				Rate:         decimal.RequireFromString(quote.rate),
				Date:         datatypes.Date(now),
				CreatedAt:    now,
			}
			if err := tx.Create(&rate).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
