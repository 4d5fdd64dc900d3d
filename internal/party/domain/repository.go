package domain

import (
	"context"

	"gorm.io/gorm"
)

type CompanyRepository interface {
	Insert(ctx context.Context, db *gorm.DB, company *Company) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Company, error)
	FindByFiscalCode(ctx context.Context, db *gorm.DB, fiscalCode string) (*Company, error)
	List(ctx context.Context, db *gorm.DB, filter ListPartyFilter) ([]*Company, error)
	Save(ctx context.Context, db *gorm.DB, company *Company) error
	Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error)
}

type ClientRepository interface {
	Insert(ctx context.Context, db *gorm.DB, client *Client) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Client, error)
	FindByFiscalCode(ctx context.Context, db *gorm.DB, fiscalCode string) (*Client, error)
	List(ctx context.Context, db *gorm.DB, filter ListPartyFilter) ([]*Client, error)
	Save(ctx context.Context, db *gorm.DB, client *Client) error
	Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error)
}
