package render

import (
	"time"

	"github.com/shopspring/decimal"
)

// RenderInput is the deterministic input used for invoice rendering. Every
// displayed value arrives pre-formatted, so the HTML and PDF renderers emit
// identical figures and rendering the same invoice twice yields identical
// bytes.
type RenderInput struct {
	Invoice     InvoiceView
	Issuer      PartyView
	Recipient   PartyView
	Lines       []LineView
	Totals      TotalsView
	BankAccount *BankAccountView
}

type InvoiceView struct {
	Number       string
	IssueDate    string
	DueDate      string
	Currency     string
	ExchangeRate string // empty for RON invoices
	Notes        string
	// IssuedOn carries the issue date as a value for document metadata.
	IssuedOn time.Time
}

type PartyView struct {
	Name               string
	Address            string
	City               string
	County             string
	PostalCode         string
	Country            string
	RegistrationNumber string
	FiscalCode         string
	VATNumber          string
	Email              string
	Phone              string
	LogoPath           string
}

type LineView struct {
	Position    int
	Description string
	Unit        string
	Quantity    string
	UnitPrice   string
	VATRate     string
	Subtotal    string
	VATAmount   string
	Total       string
}

type TotalsView struct {
	Currency      string
	Subtotal      string
	VATTotal      string
	GrandTotal    string
	ShowRON       bool
	SubtotalRON   string
	VATTotalRON   string
	GrandTotalRON string
}

type BankAccountView struct {
	BankName      string
	AccountNumber string
	IBAN          string
	SwiftCode     string
	Currency      string
}

type Renderer interface {
	RenderHTML(input RenderInput) (string, error)
}

// Amount formats a monetary value with exactly two decimals.
func Amount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Quantity formats a quantity without trailing zeros, e.g. 2.50 as 2.5 and
// 3.00 as 3.
func Quantity(d decimal.Decimal) string {
	return d.String()
}

// Rate formats a VAT percentage without trailing zeros.
func Rate(d decimal.Decimal) string {
	return d.String()
}

// Day formats a date the Romanian way, dd.mm.yyyy.
func Day(t time.Time) string {
	return t.Format("02.01.2006")
}
