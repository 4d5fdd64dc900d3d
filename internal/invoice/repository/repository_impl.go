package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bgdnlp/facatura/internal/invoice/domain"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, invoice *domain.Invoice) error {
	return db.WithContext(ctx).Create(invoice).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Invoice, error) {
	var invoice domain.Invoice
	err := db.WithContext(ctx).
		Preload("Lines", linesInOrder).
		First(&invoice, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &invoice, nil
}

func (r *repo) FindByNumber(ctx context.Context, db *gorm.DB, number string) (*domain.Invoice, error) {
	var invoice domain.Invoice
	err := db.WithContext(ctx).
		Preload("Lines", linesInOrder).
		First(&invoice, "number = ?", number).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &invoice, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListInvoiceFilter) ([]*domain.Invoice, error) {
	stmt := db.WithContext(ctx).Model(&domain.Invoice{})
	if filter.CompanyID > 0 {
		stmt = stmt.Where("company_id = ?", filter.CompanyID)
	}
	if filter.ClientID > 0 {
		stmt = stmt.Where("client_id = ?", filter.ClientID)
	}
	if filter.Year > 0 {
		stmt = stmt.Where("year = ?", filter.Year)
	}
	if filter.Currency != "" {
		stmt = stmt.Where("currency = ?", filter.Currency)
	}

	var items []*domain.Invoice
	if err := stmt.Order("issue_date desc, id desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func linesInOrder(db *gorm.DB) *gorm.DB {
	return db.Order("position asc")
}
