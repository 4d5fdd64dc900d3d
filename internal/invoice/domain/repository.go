package domain

import (
	"context"

	"gorm.io/gorm"
)

type ListInvoiceFilter struct {
	CompanyID int64
	ClientID  int64
	Year      int
	Currency  string
}

type Repository interface {
	// Insert persists the invoice together with its lines.
	Insert(ctx context.Context, db *gorm.DB, invoice *Invoice) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Invoice, error)
	FindByNumber(ctx context.Context, db *gorm.DB, number string) (*Invoice, error)
	List(ctx context.Context, db *gorm.DB, filter ListInvoiceFilter) ([]*Invoice, error)
}
