package domain

import "time"

// Party is the shape shared by invoice issuers (companies) and invoice
// recipients (clients). Both sides of an invoice are identified by their
// fiscal code (CUI).
type Party struct {
	Name               string `gorm:"not null" json:"name" validate:"required"`
	Address            string `gorm:"not null" json:"address" validate:"required"`
	City               string `gorm:"not null" json:"city" validate:"required"`
	County             string `gorm:"not null" json:"county" validate:"required"`
	PostalCode         string `json:"postal_code,omitempty"`
	Country            string `gorm:"not null;default:Romania" json:"country" validate:"required"`
	RegistrationNumber string `json:"registration_number,omitempty"`
	FiscalCode         string `gorm:"not null;uniqueIndex" json:"fiscal_code" validate:"required,cui"`
	VATNumber          string `gorm:"column:vat_number" json:"vat_number,omitempty" validate:"omitempty,vatnum"`
	BankName           string `json:"bank_name,omitempty"`
	BankAccount        string `json:"bank_account,omitempty"`
	Email              string `json:"email,omitempty" validate:"omitempty,email"`
	Phone              string `json:"phone,omitempty" validate:"omitempty,rophone"`
}

type Company struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Party     `gorm:"embedded"`
	Website   string    `json:"website,omitempty" validate:"omitempty,website"`
	LogoPath  string    `json:"logo_path,omitempty"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

type Client struct {
	ID            int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Party         `gorm:"embedded"`
	ContactPerson string    `json:"contact_person,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}
