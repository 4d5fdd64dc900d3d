package domain

import "time"

const (
	OwnerCompany = "company"
	OwnerClient  = "client"
)

// BankAccount belongs to either a company or a client. At most one account
// per owner is flagged as the default; that one is printed on invoices.
type BankAccount struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerType     string    `gorm:"not null;index:idx_bank_accounts_owner,priority:1" json:"owner_type" validate:"required,oneof=company client"`
	OwnerID       int64     `gorm:"not null;index:idx_bank_accounts_owner,priority:2" json:"owner_id" validate:"required"`
	BankName      string    `gorm:"not null" json:"bank_name" validate:"required"`
	AccountNumber string    `gorm:"not null" json:"account_number" validate:"required"`
	SwiftCode     string    `json:"swift_code,omitempty"`
	IBAN          string    `gorm:"column:iban" json:"iban,omitempty" validate:"omitempty,iban"`
	Currency      string    `gorm:"not null;default:RON" json:"currency" validate:"required,oneof=RON EUR USD GBP"`
	IsDefault     bool      `gorm:"not null;default:false" json:"is_default"`
	CreatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}
