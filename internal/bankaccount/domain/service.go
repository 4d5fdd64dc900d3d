package domain

import "context"

type Service interface {
	Create(ctx context.Context, req CreateBankAccountRequest) (BankAccount, error)
	Get(ctx context.Context, id int64) (BankAccount, error)
	Update(ctx context.Context, id int64, req UpdateBankAccountRequest) (BankAccount, error)
	Delete(ctx context.Context, id int64) error
	SetDefault(ctx context.Context, id int64) (BankAccount, error)
	ListByOwner(ctx context.Context, ownerType string, ownerID int64) ([]BankAccount, error)
	// Preferred returns the account to print on documents for the given
	// owner, or nil when the owner has none.
	Preferred(ctx context.Context, ownerType string, ownerID int64) (*BankAccount, error)
}

type CreateBankAccountRequest struct {
	OwnerType     string `json:"owner_type"`
	OwnerID       int64  `json:"owner_id"`
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	SwiftCode     string `json:"swift_code"`
	IBAN          string `json:"iban"`
	Currency      string `json:"currency"`
	IsDefault     bool   `json:"is_default"`
}

// UpdateBankAccountRequest carries only the fields to change; nil fields
// keep their stored value. The owner of an account cannot be changed.
type UpdateBankAccountRequest struct {
	BankName      *string `json:"bank_name"`
	AccountNumber *string `json:"account_number"`
	SwiftCode     *string `json:"swift_code"`
	IBAN          *string `json:"iban"`
	Currency      *string `json:"currency"`
	IsDefault     *bool   `json:"is_default"`
}
