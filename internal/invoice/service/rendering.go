package service

import (
	"context"
	"time"

	"github.com/bgdnlp/facatura/internal/apperr"
	bankdomain "github.com/bgdnlp/facatura/internal/bankaccount/domain"
	"github.com/bgdnlp/facatura/internal/invoice/domain"
	"github.com/bgdnlp/facatura/internal/invoice/render"
	partydomain "github.com/bgdnlp/facatura/internal/party/domain"
)

func (s *Service) RenderHTML(ctx context.Context, id int64) (string, error) {
	input, err := s.renderInput(ctx, id)
	if err != nil {
		return "", err
	}
	return s.html.RenderHTML(input)
}

func (s *Service) RenderPDF(ctx context.Context, id int64) ([]byte, error) {
	input, err := s.renderInput(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.pdf.Render(input)
}

// renderInput resolves everything a document shows from the stored records.
// The invoice is already immutable, so rendering it twice builds the same
// input and therefore the same document.
func (s *Service) renderInput(ctx context.Context, id int64) (render.RenderInput, error) {
	invoice, err := s.Get(ctx, id)
	if err != nil {
		return render.RenderInput{}, err
	}

	company, err := s.companies.FindByID(ctx, s.db, invoice.CompanyID)
	if err != nil {
		return render.RenderInput{}, err
	}
	if company == nil {
		return render.RenderInput{}, apperr.Render("invoice %s references missing company %d", invoice.Number, invoice.CompanyID)
	}

	client, err := s.clients.FindByID(ctx, s.db, invoice.ClientID)
	if err != nil {
		return render.RenderInput{}, err
	}
	if client == nil {
		return render.RenderInput{}, apperr.Render("invoice %s references missing client %d", invoice.Number, invoice.ClientID)
	}

	account, err := s.banks.FindPreferred(ctx, s.db, bankdomain.OwnerCompany, invoice.CompanyID)
	if err != nil {
		return render.RenderInput{}, err
	}

	issuer := partyView(company.Party)
	issuer.LogoPath = company.LogoPath

	return render.RenderInput{
		Invoice:     invoiceView(invoice),
		Issuer:      issuer,
		Recipient:   partyView(client.Party),
		Lines:       lineViews(invoice.Lines),
		Totals:      totalsView(invoice),
		BankAccount: bankView(account, company),
	}, nil
}

func invoiceView(invoice domain.Invoice) render.InvoiceView {
	issued := time.Time(invoice.IssueDate)

	rate := ""
	if invoice.Currency != "RON" {
		rate = invoice.ExchangeRate.String()
	}

	return render.InvoiceView{
		Number:       invoice.Number,
		IssueDate:    render.Day(issued),
		DueDate:      render.Day(time.Time(invoice.DueDate)),
		Currency:     invoice.Currency,
		ExchangeRate: rate,
		Notes:        invoice.Notes,
		IssuedOn:     issued,
	}
}

func partyView(party partydomain.Party) render.PartyView {
	return render.PartyView{
		Name:               party.Name,
		Address:            party.Address,
		City:               party.City,
		County:             party.County,
		PostalCode:         party.PostalCode,
		Country:            party.Country,
		RegistrationNumber: party.RegistrationNumber,
		FiscalCode:         party.FiscalCode,
		VATNumber:          party.VATNumber,
		Email:              party.Email,
		Phone:              party.Phone,
	}
}

func lineViews(lines []domain.InvoiceLine) []render.LineView {
	views := make([]render.LineView, 0, len(lines))
	for _, line := range lines {
		views = append(views, render.LineView{
			Position:    line.Position,
			Description: line.Description,
			Unit:        line.Unit,
			Quantity:    render.Quantity(line.Quantity),
			UnitPrice:   render.Amount(line.UnitPrice),
			VATRate:     render.Rate(line.VATRate),
			Subtotal:    render.Amount(line.Subtotal),
			VATAmount:   render.Amount(line.VATAmount),
			Total:       render.Amount(line.Total),
		})
	}
	return views
}

func totalsView(invoice domain.Invoice) render.TotalsView {
	return render.TotalsView{
		Currency:      invoice.Currency,
		Subtotal:      render.Amount(invoice.Subtotal),
		VATTotal:      render.Amount(invoice.VATTotal),
		GrandTotal:    render.Amount(invoice.GrandTotal),
		ShowRON:       invoice.Currency != "RON",
		SubtotalRON:   render.Amount(invoice.SubtotalRON),
		VATTotalRON:   render.Amount(invoice.VATTotalRON),
		GrandTotalRON: render.Amount(invoice.GrandTotalRON),
	}
}

// bankView prefers a registered bank account; a company that only filled in
// the inline bank fields of its own record still gets those printed. The
// inline fields carry no currency, so none is shown for them.
func bankView(account *bankdomain.BankAccount, company *partydomain.Company) *render.BankAccountView {
	if account != nil {
		return &render.BankAccountView{
			BankName:      account.BankName,
			AccountNumber: account.AccountNumber,
			IBAN:          account.IBAN,
			SwiftCode:     account.SwiftCode,
			Currency:      account.Currency,
		}
	}

	if company.BankName == "" || company.BankAccount == "" {
		return nil
	}
	return &render.BankAccountView{
		BankName:      company.BankName,
		AccountNumber: company.BankAccount,
	}
}
