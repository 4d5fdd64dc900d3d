package service

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/bgdnlp/facatura/internal/apperr"
	bankdomain "github.com/bgdnlp/facatura/internal/bankaccount/domain"
	"github.com/bgdnlp/facatura/internal/clock"
	"github.com/bgdnlp/facatura/internal/config"
	exchangedomain "github.com/bgdnlp/facatura/internal/exchange/domain"
	"github.com/bgdnlp/facatura/internal/invoice/domain"
	"github.com/bgdnlp/facatura/internal/invoice/format"
	"github.com/bgdnlp/facatura/internal/invoice/pdf"
	"github.com/bgdnlp/facatura/internal/invoice/render"
	"github.com/bgdnlp/facatura/internal/money"
	partydomain "github.com/bgdnlp/facatura/internal/party/domain"
	productdomain "github.com/bgdnlp/facatura/internal/product/domain"
	pkgdb "github.com/bgdnlp/facatura/pkg/db"
)

var (
	defaultVATRate = decimal.NewFromInt(19)
	maxVATRate     = decimal.NewFromInt(100)

	supportedCurrencies = map[string]bool{
		"RON": true,
		"EUR": true,
		"USD": true,
		"GBP": true,
	}
)

type ServiceParam struct {
	DB     *gorm.DB
	Log    *zap.Logger
	Clock  clock.Clock
	Config config.Config

	Invoices  domain.Repository
	Companies partydomain.CompanyRepository
	Clients   partydomain.ClientRepository
	Products  productdomain.Repository
	Rates     exchangedomain.Repository
	Banks     bankdomain.Repository

	HTML render.Renderer
	PDF  pdf.Renderer
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	clock clock.Clock
	cfg   config.Config

	invoices  domain.Repository
	companies partydomain.CompanyRepository
	clients   partydomain.ClientRepository
	products  productdomain.Repository
	rates     exchangedomain.Repository
	banks     bankdomain.Repository

	html render.Renderer
	pdf  pdf.Renderer
}

func New(p ServiceParam) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("invoice.service"),
		clock: p.Clock,
		cfg:   p.Config,

		invoices:  p.Invoices,
		companies: p.Companies,
		clients:   p.Clients,
		products:  p.Products,
		rates:     p.Rates,
		banks:     p.Banks,

		html: p.HTML,
		pdf:  p.PDF,
	}
}

func (s *Service) Assemble(ctx context.Context, req domain.AssembleInvoiceRequest) (domain.Invoice, error) {
	if req.CompanyID <= 0 {
		return domain.Invoice{}, apperr.Validation("invalid company id")
	}
	if req.ClientID <= 0 {
		return domain.Invoice{}, apperr.Validation("invalid client id")
	}
	if len(req.Lines) == 0 {
		return domain.Invoice{}, apperr.Validation("an invoice needs at least one line")
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = s.cfg.DefaultCurrency
	}
	if !supportedCurrencies[currency] {
		return domain.Invoice{}, apperr.Validation("currency must be one of: RON EUR USD GBP")
	}

	issueDay := day(time.Time(req.IssueDate))
	if time.Time(req.IssueDate).IsZero() {
		issueDay = day(s.clock.Now())
	}

	dueDay := day(time.Time(req.DueDate))
	if time.Time(req.DueDate).IsZero() {
		dueDays := req.DueDays
		if dueDays <= 0 {
			dueDays = s.cfg.DueDays
		}
		dueDay = issueDay.AddDate(0, 0, dueDays)
	}
	if dueDay.Before(issueDay) {
		return domain.Invoice{}, apperr.Validation("due date must not be before the issue date")
	}

	var invoice domain.Invoice
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		company, err := s.companies.FindByID(ctx, tx, req.CompanyID)
		if err != nil {
			return err
		}
		if company == nil {
			return apperr.NotFound("company %d not found", req.CompanyID)
		}

		client, err := s.clients.FindByID(ctx, tx, req.ClientID)
		if err != nil {
			return err
		}
		if client == nil {
			return apperr.NotFound("client %d not found", req.ClientID)
		}

		// RON is the base currency and never hits the exchange table.
		exchangeRate := decimal.NewFromInt(1)
		if currency != "RON" {
			quote, err := s.rates.FindEffective(ctx, tx, currency, datatypes.Date(issueDay))
			if err != nil {
				return err
			}
			if quote == nil {
				return apperr.RateUnavailable("no %s exchange rate on or before %s", currency, issueDay.Format("2006-01-02"))
			}
			exchangeRate = quote.Rate
		}

		lines := make([]domain.InvoiceLine, 0, len(req.Lines))
		subtotal := decimal.Zero
		vatTotal := decimal.Zero
		for i, input := range req.Lines {
			line, err := s.resolveLine(ctx, tx, i+1, input)
			if err != nil {
				return err
			}
			subtotal = subtotal.Add(line.Subtotal)
			vatTotal = vatTotal.Add(line.VATAmount)
			lines = append(lines, line)
		}
		grandTotal := subtotal.Add(vatTotal)

		now := s.clock.Now()
		year := issueDay.Year()
		seq, err := s.nextSequence(tx, req.CompanyID, year, now)
		if err != nil {
			return err
		}

		number, err := format.Number(s.cfg.InvoiceNumberFormat, issueDay, seq)
		if err != nil {
			return apperr.Validation("invalid invoice number format: %v", err)
		}

		invoice = domain.Invoice{
			Number:         number,
			CompanyID:      req.CompanyID,
			ClientID:       req.ClientID,
			Year:           year,
			SequenceNumber: seq,
			IssueDate:      datatypes.Date(issueDay),
			DueDate:        datatypes.Date(dueDay),
			Currency:       currency,
			ExchangeRate:   exchangeRate,
			Subtotal:       subtotal,
			VATTotal:       vatTotal,
			GrandTotal:     grandTotal,
			SubtotalRON:    money.Convert(subtotal, exchangeRate),
			VATTotalRON:    money.Convert(vatTotal, exchangeRate),
			GrandTotalRON:  money.Convert(grandTotal, exchangeRate),
			Notes:          strings.TrimSpace(req.Notes),
			Lines:          lines,
			CreatedAt:      now,
		}
		if err := s.invoices.Insert(ctx, tx, &invoice); err != nil {
			if pkgdb.IsDuplicateKeyErr(err) {
				return apperr.Conflict("invoice number %s already exists", number)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return domain.Invoice{}, err
	}

	s.log.Info("invoice assembled",
		zap.Int64("id", invoice.ID),
		zap.String("number", invoice.Number),
		zap.String("currency", invoice.Currency),
		zap.String("grand_total", invoice.GrandTotal.StringFixed(2)),
	)
	return invoice, nil
}

// resolveLine turns one requested line into a stored line. Catalog lines
// snapshot the product's name, unit, price and VAT rate as they are right
// now; a price override replaces the price only. Ad-hoc lines must be
// self-contained and default to the standard VAT rate.
func (s *Service) resolveLine(ctx context.Context, tx *gorm.DB, position int, input domain.LineInput) (domain.InvoiceLine, error) {
	if !input.Quantity.IsPositive() {
		return domain.InvoiceLine{}, apperr.Validation("line %d: quantity must be greater than zero", position)
	}

	line := domain.InvoiceLine{
		Position:    position,
		Description: strings.TrimSpace(input.Description),
		Unit:        strings.TrimSpace(input.Unit),
		Quantity:    input.Quantity,
	}

	if input.ProductID > 0 {
		product, err := s.products.FindByID(ctx, tx, input.ProductID)
		if err != nil {
			return domain.InvoiceLine{}, err
		}
		if product == nil {
			return domain.InvoiceLine{}, apperr.NotFound("line %d: product %d not found", position, input.ProductID)
		}
		if input.VATRate != nil {
			return domain.InvoiceLine{}, apperr.Validation("line %d: the vat rate is fixed by the product", position)
		}

		productID := product.ID
		line.ProductID = &productID
		line.Unit = product.Unit
		line.VATRate = product.VATRate
		if line.Description == "" {
			line.Description = product.Name
		}
		line.UnitPrice = product.UnitPrice
		if input.UnitPrice != nil {
			line.UnitPrice = *input.UnitPrice
		}
	} else {
		if line.Description == "" {
			return domain.InvoiceLine{}, apperr.Validation("line %d: a description is required", position)
		}
		if line.Unit == "" {
			return domain.InvoiceLine{}, apperr.Validation("line %d: a measuring unit is required", position)
		}
		if input.UnitPrice == nil {
			return domain.InvoiceLine{}, apperr.Validation("line %d: a unit price is required", position)
		}
		line.UnitPrice = *input.UnitPrice
		line.VATRate = defaultVATRate
		if input.VATRate != nil {
			line.VATRate = *input.VATRate
		}
	}

	if line.UnitPrice.IsNegative() {
		return domain.InvoiceLine{}, apperr.Validation("line %d: unit price must not be negative", position)
	}
	if line.VATRate.IsNegative() || line.VATRate.GreaterThan(maxVATRate) {
		return domain.InvoiceLine{}, apperr.Validation("line %d: vat rate must be between 0 and 100", position)
	}

	line.Subtotal, line.VATAmount, line.Total = money.LineAmounts(line.Quantity, line.UnitPrice, line.VATRate)
	return line, nil
}

// nextSequence allocates the next number for the company's year inside the
// assembly transaction, so a failed insert rolls the allocation back and
// successful invoices are numbered without gaps.
func (s *Service) nextSequence(tx *gorm.DB, companyID int64, year int, now time.Time) (int, error) {
	var next int
	err := tx.Raw(
		`SELECT next_number FROM invoice_sequences WHERE company_id = ? AND year = ?`,
		companyID, year,
	).Scan(&next).Error
	if err != nil {
		return 0, err
	}

	if next == 0 {
		if err := tx.Exec(
			`INSERT INTO invoice_sequences (company_id, year, next_number, updated_at) VALUES (?, ?, ?, ?)`,
			companyID, year, 2, now,
		).Error; err != nil {
			return 0, err
		}
		return 1, nil
	}

	if err := tx.Exec(
		`UPDATE invoice_sequences SET next_number = ?, updated_at = ? WHERE company_id = ? AND year = ?`,
		next+1, now, companyID, year,
	).Error; err != nil {
		return 0, err
	}
	return next, nil
}

func (s *Service) Get(ctx context.Context, id int64) (domain.Invoice, error) {
	if id <= 0 {
		return domain.Invoice{}, apperr.Validation("invalid invoice id")
	}
	item, err := s.invoices.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Invoice{}, err
	}
	if item == nil {
		return domain.Invoice{}, apperr.NotFound("invoice %d not found", id)
	}
	return *item, nil
}

func (s *Service) GetByNumber(ctx context.Context, number string) (domain.Invoice, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return domain.Invoice{}, apperr.Validation("an invoice number is required")
	}
	item, err := s.invoices.FindByNumber(ctx, s.db, number)
	if err != nil {
		return domain.Invoice{}, err
	}
	if item == nil {
		return domain.Invoice{}, apperr.NotFound("invoice %s not found", number)
	}
	return *item, nil
}

func (s *Service) List(ctx context.Context, req domain.ListInvoicesRequest) ([]domain.Invoice, error) {
	filter := domain.ListInvoiceFilter{
		CompanyID: req.CompanyID,
		ClientID:  req.ClientID,
		Year:      req.Year,
		Currency:  strings.ToUpper(strings.TrimSpace(req.Currency)),
	}
	items, err := s.invoices.List(ctx, s.db, filter)
	if err != nil {
		return nil, err
	}

	invoices := make([]domain.Invoice, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		invoices = append(invoices, *item)
	}
	return invoices, nil
}

// day strips the time of day, keeping dates stable regardless of when
// during the day an invoice is assembled.
func day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
