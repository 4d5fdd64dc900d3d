package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/bgdnlp/facatura/internal/exchange/domain"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, rate *domain.CurrencyRate) error {
	return db.WithContext(ctx).Create(rate).Error
}

func (r *repo) FindEffective(ctx context.Context, db *gorm.DB, currencyCode string, date datatypes.Date) (*domain.CurrencyRate, error) {
	var rate domain.CurrencyRate
	err := db.WithContext(ctx).
		Where("currency_code = ? AND date <= ?", currencyCode, time.Time(date)).
		Order("date desc").
		First(&rate).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rate, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListRatesFilter) ([]*domain.CurrencyRate, error) {
	stmt := db.WithContext(ctx).Model(&domain.CurrencyRate{})
	if filter.CurrencyCode != "" {
		stmt = stmt.Where("currency_code = ?", filter.CurrencyCode)
	}

	var items []*domain.CurrencyRate
	if err := stmt.Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error) {
	res := db.WithContext(ctx).Delete(&domain.CurrencyRate{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
