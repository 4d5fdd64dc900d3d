// Package pdf renders assembled invoices as PDF documents.
package pdf

import (
	"strconv"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/bgdnlp/facatura/internal/apperr"
	"github.com/bgdnlp/facatura/internal/invoice/render"
)

// Renderer produces the final PDF bytes for a render input.
type Renderer interface {
	Render(input render.RenderInput) ([]byte, error)
}

type DocumentRenderer struct{}

func New() Renderer {
	return &DocumentRenderer{}
}

// Render lays out the invoice on an A4 page. The document creation date is
// pinned to the invoice issue date so rendering the same invoice twice
// yields identical bytes.
func (p *DocumentRenderer) Render(input render.RenderInput) ([]byte, error) {
	if err := render.Check(input); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Pagina {current} din {total}",
			Place:   props.RightBottom,
		}).
		WithTitle("Factura "+input.Invoice.Number, true).
		WithCreationDate(input.Invoice.IssuedOn).
		Build()

	m := maroto.New(cfg)

	// The header repeats on every page, so a long invoice still identifies
	// itself past the first page.
	header := row.New(12).Add(
		text.NewCol(6, "FACTURA "+input.Invoice.Number, props.Text{
			Size:  14,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
		text.NewCol(6, input.Issuer.Name+" / "+input.Recipient.Name, props.Text{
			Size:  8,
			Align: align.Right,
			Top:   4,
		}),
	)
	if err := m.RegisterHeader(header, row.New(2).Add(line.NewCol(12))); err != nil {
		return nil, apperr.Wrap(apperr.KindRender, "registering pdf header", err)
	}

	if input.Issuer.LogoPath != "" {
		m.AddRow(18,
			image.NewFromFileCol(3, input.Issuer.LogoPath, props.Rect{
				Center:  false,
				Percent: 80,
			}),
			col.New(9),
		)
	}

	metaHeight := 12.0
	metaLeft := col.New(6).Add(
		text.New("Data emiterii: "+input.Invoice.IssueDate, props.Text{Size: 9, Top: 0}),
		text.New("Data scadentei: "+input.Invoice.DueDate, props.Text{Size: 9, Top: 4}),
	)
	metaRight := col.New(6)
	if input.Invoice.ExchangeRate != "" {
		metaHeight = 16
		metaRight = col.New(6).Add(
			text.New("Curs valutar: 1 "+input.Invoice.Currency+" = "+input.Invoice.ExchangeRate+" RON", props.Text{
				Size:  9,
				Align: align.Right,
			}),
		)
	}
	m.AddRow(metaHeight, metaLeft, metaRight)

	m.AddRow(42,
		partyCol("Furnizor", input.Issuer, true),
		partyCol("Cumparator", input.Recipient, false),
	)

	m.AddRow(2, line.NewCol(12))

	m.AddRow(8,
		text.NewCol(1, "#", props.Text{Style: fontstyle.Bold, Size: 8}),
		text.NewCol(3, "Descriere", props.Text{Style: fontstyle.Bold, Size: 8}),
		text.NewCol(1, "UM", props.Text{Style: fontstyle.Bold, Size: 8}),
		text.NewCol(1, "Cant.", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right}),
		text.NewCol(2, "Pret unitar", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right}),
		text.NewCol(1, "TVA %", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right}),
		text.NewCol(1, "Valoare", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right}),
		text.NewCol(1, "TVA", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right}),
		text.NewCol(1, "Total", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right}),
	)

	for _, item := range input.Lines {
		m.AddRow(8,
			text.NewCol(1, strconv.Itoa(item.Position), props.Text{Size: 8}),
			text.NewCol(3, item.Description, props.Text{Size: 8}),
			text.NewCol(1, item.Unit, props.Text{Size: 8}),
			text.NewCol(1, item.Quantity, props.Text{Size: 8, Align: align.Right}),
			text.NewCol(2, item.UnitPrice, props.Text{Size: 8, Align: align.Right}),
			text.NewCol(1, item.VATRate, props.Text{Size: 8, Align: align.Right}),
			text.NewCol(1, item.Subtotal, props.Text{Size: 8, Align: align.Right}),
			text.NewCol(1, item.VATAmount, props.Text{Size: 8, Align: align.Right}),
			text.NewCol(1, item.Total, props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right}),
		)
	}

	m.AddRow(2, line.NewCol(12))

	totalsRow(m, "Subtotal", input.Totals.Subtotal+" "+input.Totals.Currency, false)
	totalsRow(m, "Total TVA", input.Totals.VATTotal+" "+input.Totals.Currency, false)
	totalsRow(m, "TOTAL DE PLATA", input.Totals.GrandTotal+" "+input.Totals.Currency, true)

	if input.Totals.ShowRON {
		totalsRow(m, "Subtotal (RON)", input.Totals.SubtotalRON, false)
		totalsRow(m, "TVA (RON)", input.Totals.VATTotalRON, false)
		totalsRow(m, "Total (RON)", input.Totals.GrandTotalRON, false)
	}

	if input.BankAccount != nil {
		m.AddRow(10,
			text.NewCol(12, bankLine(input.BankAccount), props.Text{Size: 8, Top: 4}),
		)
	}

	if input.Invoice.Notes != "" {
		m.AddRow(12,
			text.NewCol(12, input.Invoice.Notes, props.Text{Size: 8, Top: 4}),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, apperr.Wrap(apperr.KindRender, "generating invoice pdf", err)
	}

	return doc.GetBytes(), nil
}

func partyCol(label string, party render.PartyView, withPhone bool) core.Col {
	location := party.City + ", " + party.County
	if party.PostalCode != "" {
		location += " " + party.PostalCode
	}
	location += ", " + party.Country

	lines := []string{party.Address, location}
	if party.RegistrationNumber != "" {
		lines = append(lines, "Nr. Reg. Com.: "+party.RegistrationNumber)
	}
	lines = append(lines, "CUI: "+party.FiscalCode)
	if party.VATNumber != "" {
		lines = append(lines, "Cod TVA: "+party.VATNumber)
	}
	if party.Email != "" {
		lines = append(lines, party.Email)
	}
	if withPhone && party.Phone != "" {
		lines = append(lines, party.Phone)
	}

	c := col.New(6).Add(
		text.New(label, props.Text{Size: 8, Style: fontstyle.Bold}),
		text.New(party.Name, props.Text{Size: 9, Style: fontstyle.Bold, Top: 5}),
	)
	top := 10.0
	for _, l := range lines {
		c.Add(text.New(l, props.Text{Size: 8, Top: top}))
		top += 4
	}
	return c
}

func totalsRow(m core.Maroto, label, value string, final bool) {
	style := fontstyle.Normal
	size := 9.0
	if final {
		style = fontstyle.Bold
		size = 11
	}
	m.AddRow(7,
		col.New(6),
		text.NewCol(3, label, props.Text{Size: size, Style: style}),
		text.NewCol(3, value, props.Text{Size: size, Style: style, Align: align.Right}),
	)
}

func bankLine(account *render.BankAccountView) string {
	s := "Plata in contul: " + account.BankName
	if account.IBAN != "" {
		s += ", IBAN " + account.IBAN
	} else {
		s += ", cont " + account.AccountNumber
	}
	if account.SwiftCode != "" {
		s += ", SWIFT " + account.SwiftCode
	}
	if account.Currency != "" {
		s += " (" + account.Currency + ")"
	}
	return s
}
