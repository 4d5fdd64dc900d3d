package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bgdnlp/facatura/internal/product/domain"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, product *domain.Product) error {
	return db.WithContext(ctx).Create(product).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Product, error) {
	var p domain.Product
	err := db.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListProductFilter) ([]*domain.Product, error) {
	stmt := db.WithContext(ctx).Model(&domain.Product{})
	if filter.Query != "" {
		stmt = stmt.Where("name LIKE ?", "%"+filter.Query+"%")
	}
	if filter.IsService != nil {
		stmt = stmt.Where("is_service = ?", *filter.IsService)
	}

	var items []*domain.Product
	if err := stmt.Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Save(ctx context.Context, db *gorm.DB, product *domain.Product) error {
	if product == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Save(product).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error) {
	res := db.WithContext(ctx).Delete(&domain.Product{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
