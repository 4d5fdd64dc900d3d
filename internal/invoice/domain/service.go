package domain

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Service interface {
	// Assemble builds and persists a complete invoice in one step: it
	// snapshots the referenced records, computes per-line and total amounts,
	// allocates the next sequence number for the issuing company's year and
	// formats the invoice number.
	Assemble(ctx context.Context, req AssembleInvoiceRequest) (Invoice, error)
	Get(ctx context.Context, id int64) (Invoice, error)
	GetByNumber(ctx context.Context, number string) (Invoice, error)
	List(ctx context.Context, req ListInvoicesRequest) ([]Invoice, error)
	RenderHTML(ctx context.Context, id int64) (string, error)
	RenderPDF(ctx context.Context, id int64) ([]byte, error)
}

// LineInput describes one requested invoice line. A line references either a
// catalog product (ProductID set, with an optional unit price override) or is
// ad-hoc (ProductID zero, description, unit and unit price given explicitly).
// Catalog lines always bill at the product's VAT rate.
type LineInput struct {
	ProductID   int64            `json:"product_id"`
	Description string           `json:"description"`
	Unit        string           `json:"unit"`
	Quantity    decimal.Decimal  `json:"quantity"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
	VATRate     *decimal.Decimal `json:"vat_rate"`
}

type AssembleInvoiceRequest struct {
	CompanyID int64          `json:"company_id"`
	ClientID  int64          `json:"client_id"`
	Currency  string         `json:"currency"`
	IssueDate datatypes.Date `json:"issue_date"`
	DueDate   datatypes.Date `json:"due_date"`
	// DueDays is used when DueDate is unset; zero falls back to the
	// configured default.
	DueDays int         `json:"due_days"`
	Notes   string      `json:"notes"`
	Lines   []LineInput `json:"lines"`
}

type ListInvoicesRequest struct {
	CompanyID int64
	ClientID  int64
	Year      int
	Currency  string
}
