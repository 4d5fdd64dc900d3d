package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, account *BankAccount) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*BankAccount, error)
	ListByOwner(ctx context.Context, db *gorm.DB, ownerType string, ownerID int64) ([]*BankAccount, error)
	// FindPreferred returns the owner's default account, or the oldest one
	// when no default is flagged, or nil when the owner has no accounts.
	FindPreferred(ctx context.Context, db *gorm.DB, ownerType string, ownerID int64) (*BankAccount, error)
	Save(ctx context.Context, db *gorm.DB, account *BankAccount) error
	Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error)
	UnsetDefaults(ctx context.Context, db *gorm.DB, ownerType string, ownerID int64) error
}
