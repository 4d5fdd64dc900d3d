package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bgdnlp/facatura/internal/bankaccount/domain"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, account *domain.BankAccount) error {
	return db.WithContext(ctx).Create(account).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.BankAccount, error) {
	var account domain.BankAccount
	err := db.WithContext(ctx).First(&account, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *repo) ListByOwner(ctx context.Context, db *gorm.DB, ownerType string, ownerID int64) ([]*domain.BankAccount, error) {
	var items []*domain.BankAccount
	err := db.WithContext(ctx).
		Where("owner_type = ? AND owner_id = ?", ownerType, ownerID).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) FindPreferred(ctx context.Context, db *gorm.DB, ownerType string, ownerID int64) (*domain.BankAccount, error) {
	var account domain.BankAccount
	err := db.WithContext(ctx).
		Where("owner_type = ? AND owner_id = ?", ownerType, ownerID).
		Order("is_default desc, id asc").
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *repo) Save(ctx context.Context, db *gorm.DB, account *domain.BankAccount) error {
	if account == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Save(account).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error) {
	res := db.WithContext(ctx).Delete(&domain.BankAccount{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *repo) UnsetDefaults(ctx context.Context, db *gorm.DB, ownerType string, ownerID int64) error {
	return db.WithContext(ctx).
		Model(&domain.BankAccount{}).
		Where("owner_type = ? AND owner_id = ?", ownerType, ownerID).
		Update("is_default", false).Error
}
