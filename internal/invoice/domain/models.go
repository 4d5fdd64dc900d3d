// Package domain contains persistence models for invoicing.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Invoice is an issued document. Once assembled it is immutable: lines carry
// copies of the product fields they were built from, totals are stored, and
// rendering reads only what is recorded here.
type Invoice struct {
	ID             int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Number         string          `gorm:"not null;uniqueIndex:idx_invoices_number" json:"number"`
	CompanyID      int64           `gorm:"not null;uniqueIndex:idx_invoices_sequence,priority:1" json:"company_id"`
	ClientID       int64           `gorm:"not null;index:idx_invoices_client" json:"client_id"`
	Year           int             `gorm:"not null;uniqueIndex:idx_invoices_sequence,priority:2" json:"year"`
	SequenceNumber int             `gorm:"not null;uniqueIndex:idx_invoices_sequence,priority:3" json:"sequence_number"`
	IssueDate      datatypes.Date  `gorm:"not null" json:"issue_date"`
	DueDate        datatypes.Date  `gorm:"not null" json:"due_date"`
	Currency       string          `gorm:"not null" json:"currency"`
	ExchangeRate   decimal.Decimal `gorm:"type:numeric;not null" json:"exchange_rate"`
	Subtotal       decimal.Decimal `gorm:"type:numeric;not null" json:"subtotal"`
	VATTotal       decimal.Decimal `gorm:"column:vat_total;type:numeric;not null" json:"vat_total"`
	GrandTotal     decimal.Decimal `gorm:"type:numeric;not null" json:"grand_total"`
	SubtotalRON    decimal.Decimal `gorm:"column:subtotal_ron;type:numeric;not null" json:"subtotal_ron"`
	VATTotalRON    decimal.Decimal `gorm:"column:vat_total_ron;type:numeric;not null" json:"vat_total_ron"`
	GrandTotalRON  decimal.Decimal `gorm:"column:grand_total_ron;type:numeric;not null" json:"grand_total_ron"`
	Notes          string          `json:"notes,omitempty"`
	Lines          []InvoiceLine   `gorm:"foreignKey:InvoiceID" json:"lines,omitempty"`
	CreatedAt      time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (Invoice) TableName() string { return "invoices" }

// InvoiceLine is one priced row of an invoice. ProductID points back at the
// catalog entry the line was built from; it is nil for ad-hoc lines and is
// cleared by the database when the product is later deleted. The copied
// description, unit, price and VAT rate stay as issued either way.
type InvoiceLine struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	InvoiceID   int64           `gorm:"not null;uniqueIndex:idx_invoice_lines_position,priority:1" json:"invoice_id"`
	Position    int             `gorm:"not null;uniqueIndex:idx_invoice_lines_position,priority:2" json:"position"`
	ProductID   *int64          `json:"product_id,omitempty"`
	Description string          `gorm:"not null" json:"description"`
	Unit        string          `gorm:"not null" json:"unit"`
	Quantity    decimal.Decimal `gorm:"type:numeric;not null" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric;not null" json:"unit_price"`
	VATRate     decimal.Decimal `gorm:"column:vat_rate;type:numeric;not null" json:"vat_rate"`
	Subtotal    decimal.Decimal `gorm:"type:numeric;not null" json:"subtotal"`
	VATAmount   decimal.Decimal `gorm:"column:vat_amount;type:numeric;not null" json:"vat_amount"`
	Total       decimal.Decimal `gorm:"type:numeric;not null" json:"total"`
}

// TableName sets the database table name.
func (InvoiceLine) TableName() string { return "invoice_lines" }

// InvoiceSequence tracks the next sequence number per company and year.
// Numbering restarts at 1 each January and is independent between companies.
type InvoiceSequence struct {
	CompanyID  int64     `gorm:"primaryKey;autoIncrement:false" json:"company_id"`
	Year       int       `gorm:"primaryKey;autoIncrement:false" json:"year"`
	NextNumber int       `gorm:"not null" json:"next_number"`
	UpdatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (InvoiceSequence) TableName() string { return "invoice_sequences" }
