package domain

import (
	"context"

	"gorm.io/gorm"
)

type ListProductFilter struct {
	Query     string
	IsService *bool
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, product *Product) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Product, error)
	List(ctx context.Context, db *gorm.DB, filter ListProductFilter) ([]*Product, error)
	Save(ctx context.Context, db *gorm.DB, product *Product) error
	Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error)
}
