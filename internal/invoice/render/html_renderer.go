package render

import (
	"bytes"
	"html/template"

	"github.com/bgdnlp/facatura/internal/apperr"
)

const invoiceHTMLTemplate = `<!doctype html>
<html lang="ro">
<head>
  <meta charset="utf-8" />
  <title>Factura {{.Invoice.Number}}</title>
  <style>
    * { box-sizing: border-box; }
    body {
      margin: 0;
      padding: 40px;
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
      color: #1a1f36;
      background: #f7f9fc;
      -webkit-font-smoothing: antialiased;
    }
    .invoice-card {
      background: #ffffff;
      max-width: 760px;
      margin: 0 auto;
      padding: 60px;
      box-shadow: 0 2px 5px rgba(0,0,0,0.04);
      border-radius: 4px;
    }
    .header {
      display: flex;
      justify-content: space-between;
      margin-bottom: 40px;
    }
    .header-left h1 {
      margin: 0;
      font-size: 24px;
      font-weight: 700;
    }
    .header-right {
      text-align: right;
      font-weight: 600;
      color: #8792a2;
      font-size: 16px;
    }
    .meta-grid {
      display: flex;
      justify-content: space-between;
      margin-bottom: 40px;
    }
    .col { flex: 1; }
    .label {
      font-size: 11px;
      text-transform: uppercase;
      color: #8792a2;
      margin-bottom: 6px;
      font-weight: 600;
      letter-spacing: 0.3px;
    }
    .value {
      font-size: 13px;
      line-height: 1.5;
    }
    table {
      width: 100%;
      border-collapse: collapse;
      margin-bottom: 30px;
    }
    th {
      text-align: left;
      text-transform: uppercase;
      font-size: 10px;
      color: #8792a2;
      border-bottom: 1px solid #e3e8ee;
      padding: 8px 4px;
      font-weight: 600;
      letter-spacing: 0.3px;
    }
    td {
      padding: 10px 4px;
      border-bottom: 1px solid #e3e8ee;
      font-size: 12px;
      vertical-align: top;
    }
    .td-right { text-align: right; }
    .totals {
      width: 100%;
      display: flex;
      flex-direction: column;
      align-items: flex-end;
    }
    .total-row {
      display: flex;
      justify-content: space-between;
      width: 300px;
      padding: 5px 0;
      font-size: 13px;
    }
    .total-label { color: #697386; }
    .total-value { text-align: right; font-weight: 500; }
    .total-final {
      border-top: 1px solid #e3e8ee;
      margin-top: 8px;
      padding-top: 8px;
      font-weight: 700;
      font-size: 15px;
    }
    .ron-equivalent {
      margin-top: 12px;
      font-size: 12px;
      color: #697386;
    }
    .footer {
      margin-top: 50px;
      font-size: 12px;
      color: #697386;
      border-top: 1px solid #e3e8ee;
      padding-top: 16px;
    }
  </style>
</head>
<body>
  <div class="invoice-card">
    <div class="header">
      <div class="header-left">
        <h1>FACTURA</h1>
        <div class="label" style="margin-top: 12px;">Numar factura</div>
        <div class="value">{{.Invoice.Number}}</div>
      </div>
      <div class="header-right">
        {{if .Issuer.LogoPath}}
          <img src="{{.Issuer.LogoPath}}" style="max-height: 40px;" alt="{{.Issuer.Name}}">
        {{else}}
          {{.Issuer.Name}}
        {{end}}
        <div class="label" style="margin-top: 16px;">Data emiterii</div>
        <div class="value">{{.Invoice.IssueDate}}</div>
        <div class="label" style="margin-top: 8px;">Data scadentei</div>
        <div class="value">{{.Invoice.DueDate}}</div>
        {{if .Invoice.ExchangeRate}}
        <div class="label" style="margin-top: 8px;">Curs valutar</div>
        <div class="value">1 {{.Invoice.Currency}} = {{.Invoice.ExchangeRate}} RON</div>
        {{end}}
      </div>
    </div>

    <div class="meta-grid">
      <div class="col">
        <div class="label">Furnizor</div>
        <div class="value">
          <strong>{{.Issuer.Name}}</strong><br>
          {{.Issuer.Address}}<br>
          {{.Issuer.City}}, {{.Issuer.County}}{{if .Issuer.PostalCode}} {{.Issuer.PostalCode}}{{end}}, {{.Issuer.Country}}<br>
          Nr. Reg. Com.: {{.Issuer.RegistrationNumber}}<br>
          CUI: {{.Issuer.FiscalCode}}<br>
          {{if .Issuer.VATNumber}}Cod TVA: {{.Issuer.VATNumber}}<br>{{end}}
          {{if .Issuer.Email}}{{.Issuer.Email}}<br>{{end}}
          {{if .Issuer.Phone}}{{.Issuer.Phone}}{{end}}
        </div>
      </div>
      <div class="col">
        <div class="label">Cumparator</div>
        <div class="value">
          <strong>{{.Recipient.Name}}</strong><br>
          {{.Recipient.Address}}<br>
          {{.Recipient.City}}, {{.Recipient.County}}{{if .Recipient.PostalCode}} {{.Recipient.PostalCode}}{{end}}, {{.Recipient.Country}}<br>
          {{if .Recipient.RegistrationNumber}}Nr. Reg. Com.: {{.Recipient.RegistrationNumber}}<br>{{end}}
          CUI: {{.Recipient.FiscalCode}}<br>
          {{if .Recipient.VATNumber}}Cod TVA: {{.Recipient.VATNumber}}<br>{{end}}
          {{if .Recipient.Email}}{{.Recipient.Email}}{{end}}
        </div>
      </div>
    </div>

    <table>
      <thead>
        <tr>
          <th>#</th>
          <th style="width: 34%;">Descriere</th>
          <th>UM</th>
          <th class="td-right">Cant.</th>
          <th class="td-right">Pret unitar</th>
          <th class="td-right">TVA %</th>
          <th class="td-right">Valoare</th>
          <th class="td-right">TVA</th>
          <th class="td-right">Total</th>
        </tr>
      </thead>
      <tbody>
        {{range .Lines}}
        <tr>
          <td>{{.Position}}</td>
          <td>{{.Description}}</td>
          <td>{{.Unit}}</td>
          <td class="td-right">{{.Quantity}}</td>
          <td class="td-right">{{.UnitPrice}}</td>
          <td class="td-right">{{.VATRate}}</td>
          <td class="td-right">{{.Subtotal}}</td>
          <td class="td-right">{{.VATAmount}}</td>
          <td class="td-right" style="font-weight: 500;">{{.Total}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>

    <div class="totals">
      <div class="total-row">
        <span class="total-label">Subtotal</span>
        <span class="total-value">{{.Totals.Subtotal}} {{.Totals.Currency}}</span>
      </div>
      <div class="total-row">
        <span class="total-label">Total TVA</span>
        <span class="total-value">{{.Totals.VATTotal}} {{.Totals.Currency}}</span>
      </div>
      <div class="total-row total-final">
        <span class="total-label" style="color: #1a1f36;">TOTAL DE PLATA</span>
        <span class="total-value">{{.Totals.GrandTotal}} {{.Totals.Currency}}</span>
      </div>
      {{if .Totals.ShowRON}}
      <div class="ron-equivalent">
        Echivalent RON: subtotal {{.Totals.SubtotalRON}}, TVA {{.Totals.VATTotalRON}}, total {{.Totals.GrandTotalRON}}
      </div>
      {{end}}
    </div>

    {{if or .BankAccount .Invoice.Notes}}
    <div class="footer">
      {{if .BankAccount}}
        Plata in contul: {{.BankAccount.BankName}}{{if .BankAccount.IBAN}}, IBAN {{.BankAccount.IBAN}}{{else}}, cont {{.BankAccount.AccountNumber}}{{end}}{{if .BankAccount.SwiftCode}}, SWIFT {{.BankAccount.SwiftCode}}{{end}}{{if .BankAccount.Currency}} ({{.BankAccount.Currency}}){{end}}
      {{end}}
      {{if .Invoice.Notes}}<br>{{.Invoice.Notes}}{{end}}
    </div>
    {{end}}

  </div>
</body>
</html>
`

type HTMLRenderer struct {
	tpl *template.Template
}

func NewRenderer() Renderer {
	return &HTMLRenderer{
		tpl: template.Must(template.New("invoice").Parse(invoiceHTMLTemplate)),
	}
}

func (r *HTMLRenderer) RenderHTML(input RenderInput) (string, error) {
	if err := Check(input); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, input); err != nil {
		return "", apperr.Wrap(apperr.KindRender, "executing invoice template", err)
	}

	return buf.String(), nil
}

// Check refuses inputs that would produce an unusable document. There is no
// placeholder fallback: an invoice without a number, parties or lines is a
// broken record, not a renderable one.
func Check(input RenderInput) error {
	if input.Invoice.Number == "" {
		return apperr.Render("invoice has no number")
	}
	if input.Issuer.Name == "" {
		return apperr.Render("invoice has no issuer name")
	}
	if input.Recipient.Name == "" {
		return apperr.Render("invoice has no recipient name")
	}
	if len(input.Lines) == 0 {
		return apperr.Render("invoice has no lines")
	}
	return nil
}
