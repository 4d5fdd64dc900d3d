package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	bankdomain "github.com/bgdnlp/facatura/internal/bankaccount/domain"
	exchangedomain "github.com/bgdnlp/facatura/internal/exchange/domain"
	invoicedomain "github.com/bgdnlp/facatura/internal/invoice/domain"
	partydomain "github.com/bgdnlp/facatura/internal/party/domain"
	productdomain "github.com/bgdnlp/facatura/internal/product/domain"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
}

func field(w io.Writer, label, value string) {
	if value != "" {
		fmt.Fprintf(w, "  %-14s %s\n", label+":", value)
	}
}

func printParty(w io.Writer, p partydomain.Party) {
	field(w, "Name", p.Name)
	field(w, "Address", p.Address)
	field(w, "City", p.City)
	field(w, "County", p.County)
	field(w, "Postal code", p.PostalCode)
	field(w, "Country", p.Country)
	field(w, "Reg. number", p.RegistrationNumber)
	field(w, "Fiscal code", p.FiscalCode)
	field(w, "VAT number", p.VATNumber)
	field(w, "Bank", p.BankName)
	field(w, "Bank account", p.BankAccount)
	field(w, "Email", p.Email)
	field(w, "Phone", p.Phone)
}

func printCompany(w io.Writer, company partydomain.Company) {
	fmt.Fprintf(w, "Company %d\n", company.ID)
	printParty(w, company.Party)
	field(w, "Website", company.Website)
	field(w, "Logo", company.LogoPath)
}

func printCompanyList(w io.Writer, companies []partydomain.Company) {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tFISCAL CODE\tCITY\tCOUNTY")
	for _, c := range companies {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", c.ID, c.Name, c.FiscalCode, c.City, c.County)
	}
	tw.Flush()
}

func printClient(w io.Writer, client partydomain.Client) {
	fmt.Fprintf(w, "Client %d\n", client.ID)
	printParty(w, client.Party)
	field(w, "Contact", client.ContactPerson)
	field(w, "Notes", client.Notes)
}

func printClientList(w io.Writer, clients []partydomain.Client) {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tFISCAL CODE\tCITY\tCONTACT")
	for _, c := range clients {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", c.ID, c.Name, c.FiscalCode, c.City, c.ContactPerson)
	}
	tw.Flush()
}

func printProduct(w io.Writer, product productdomain.Product) {
	fmt.Fprintf(w, "Product %d\n", product.ID)
	field(w, "Name", product.Name)
	field(w, "Description", product.Description)
	field(w, "Unit", product.Unit)
	field(w, "Price", product.UnitPrice.StringFixed(2)+" "+product.Currency)
	field(w, "VAT rate", product.VATRate.String()+"%")
	if product.IsService {
		field(w, "Type", "service")
	} else {
		field(w, "Type", "good")
	}
}

func printProductList(w io.Writer, products []productdomain.Product) {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tUNIT\tPRICE\tCURRENCY\tVAT%\tTYPE")
	for _, p := range products {
		kind := "good"
		if p.IsService {
			kind = "service"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			p.ID, p.Name, p.Unit, p.UnitPrice.StringFixed(2), p.Currency, p.VATRate.String(), kind)
	}
	tw.Flush()
}

func printRateList(w io.Writer, rates []exchangedomain.CurrencyRate) {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tCURRENCY\tRATE\tDATE")
	for _, r := range rates {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n",
			r.ID, r.CurrencyCode, r.Rate.String(), time.Time(r.Date).Format("2006-01-02"))
	}
	tw.Flush()
}

func printBankAccountList(w io.Writer, accounts []bankdomain.BankAccount) {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tBANK\tACCOUNT\tIBAN\tCURRENCY\tDEFAULT")
	for _, acc := range accounts {
		isDefault := ""
		if acc.IsDefault {
			isDefault = "yes"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			acc.ID, acc.BankName, acc.AccountNumber, acc.IBAN, acc.Currency, isDefault)
	}
	tw.Flush()
}

func printInvoice(w io.Writer, invoice invoicedomain.Invoice) {
	fmt.Fprintf(w, "Invoice %s\n", invoice.Number)
	field(w, "Issued", time.Time(invoice.IssueDate).Format("2006-01-02"))
	field(w, "Due", time.Time(invoice.DueDate).Format("2006-01-02"))
	field(w, "Company", fmt.Sprintf("%d", invoice.CompanyID))
	field(w, "Client", fmt.Sprintf("%d", invoice.ClientID))
	field(w, "Currency", invoice.Currency)
	if invoice.Currency != "RON" {
		field(w, "Rate", "1 "+invoice.Currency+" = "+invoice.ExchangeRate.String()+" RON")
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "  #\tDESCRIPTION\tQTY\tUNIT\tPRICE\tVAT%\tTOTAL")
	for _, line := range invoice.Lines {
		fmt.Fprintf(tw, "  %d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			line.Position, line.Description, line.Quantity.String(), line.Unit,
			line.UnitPrice.StringFixed(2), line.VATRate.String(), line.Total.StringFixed(2))
	}
	tw.Flush()

	field(w, "Subtotal", invoice.Subtotal.StringFixed(2)+" "+invoice.Currency)
	field(w, "VAT", invoice.VATTotal.StringFixed(2)+" "+invoice.Currency)
	field(w, "Total", invoice.GrandTotal.StringFixed(2)+" "+invoice.Currency)
	if invoice.Currency != "RON" {
		field(w, "Total (RON)", invoice.GrandTotalRON.StringFixed(2))
	}
	field(w, "Notes", invoice.Notes)
}

func printInvoiceList(w io.Writer, invoices []invoicedomain.Invoice) {
	tw := newTable(w)
	fmt.Fprintln(tw, "NUMBER\tISSUED\tDUE\tCOMPANY\tCLIENT\tCURRENCY\tTOTAL")
	for _, inv := range invoices {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\t%s\n",
			inv.Number,
			time.Time(inv.IssueDate).Format("2006-01-02"),
			time.Time(inv.DueDate).Format("2006-01-02"),
			inv.CompanyID, inv.ClientID, inv.Currency, inv.GrandTotal.StringFixed(2))
	}
	tw.Flush()
}
