package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/bgdnlp/facatura/internal/apperr"
	bankdomain "github.com/bgdnlp/facatura/internal/bankaccount/domain"
	bankrepository "github.com/bgdnlp/facatura/internal/bankaccount/repository"
	"github.com/bgdnlp/facatura/internal/clock"
	"github.com/bgdnlp/facatura/internal/config"
	exchangedomain "github.com/bgdnlp/facatura/internal/exchange/domain"
	exchangerepository "github.com/bgdnlp/facatura/internal/exchange/repository"
	"github.com/bgdnlp/facatura/internal/invoice/domain"
	"github.com/bgdnlp/facatura/internal/invoice/pdf"
	"github.com/bgdnlp/facatura/internal/invoice/render"
	"github.com/bgdnlp/facatura/internal/invoice/repository"
	"github.com/bgdnlp/facatura/internal/migration"
	partydomain "github.com/bgdnlp/facatura/internal/party/domain"
	partyrepository "github.com/bgdnlp/facatura/internal/party/repository"
	productdomain "github.com/bgdnlp/facatura/internal/product/domain"
	productrepository "github.com/bgdnlp/facatura/internal/product/repository"
)

var testNow = time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

// newTestDB opens a fresh in-memory database and applies the real SQL
// migrations, so sequence allocation, unique indexes and the foreign key
// actions on invoice lines behave exactly as in a production database file.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared&_pragma=foreign_keys(1)"
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	require.NoError(t, migration.RunMigrations(sqlDB))

	return gdb
}

func testConfig() config.Config {
	return config.Config{
		InvoiceNumberFormat: "FCT-{YYYY}-{SEQ6}",
		DefaultCurrency:     "RON",
		DueDays:             15,
	}
}

func newServiceOver(gdb *gorm.DB, cfg config.Config) domain.Service {
	return New(ServiceParam{
		DB:     gdb,
		Log:    zap.NewNop(),
		Clock:  clock.NewFakeClock(testNow),
		Config: cfg,

		Invoices:  repository.Provide(),
		Companies: partyrepository.ProvideCompany(),
		Clients:   partyrepository.ProvideClient(),
		Products:  productrepository.Provide(),
		Rates:     exchangerepository.Provide(),
		Banks:     bankrepository.Provide(),

		HTML: render.NewRenderer(),
		PDF:  pdf.New(),
	})
}

func newTestService(t *testing.T) (domain.Service, *gorm.DB) {
	t.Helper()
	gdb := newTestDB(t)
	return newServiceOver(gdb, testConfig()), gdb
}

func seedCompany(t *testing.T, db *gorm.DB, name, fiscalCode string) partydomain.Company {
	t.Helper()
	company := partydomain.Company{
		Party: partydomain.Party{
			Name:               name,
			Address:            "Str. Revolutiei 10",
			City:               "Cluj-Napoca",
			County:             "Cluj",
			Country:            "Romania",
			RegistrationNumber: "J12/345/2020",
			FiscalCode:         fiscalCode,
			VATNumber:          "RO1234567",
		},
	}
	require.NoError(t, db.Create(&company).Error)
	return company
}

func seedClient(t *testing.T, db *gorm.DB) partydomain.Client {
	t.Helper()
	client := partydomain.Client{
		Party: partydomain.Party{
			Name:       "Clientul Unu SRL",
			Address:    "Bd. Unirii 1",
			City:       "Bucuresti",
			County:     "Sector 3",
			Country:    "Romania",
			FiscalCode: "RO7654321",
		},
	}
	require.NoError(t, db.Create(&client).Error)
	return client
}

func seedProduct(t *testing.T, db *gorm.DB, name, price string, vatRate int64) productdomain.Product {
	t.Helper()
	product := productdomain.Product{
		Name:      name,
		Unit:      "buc",
		UnitPrice: decimal.RequireFromString(price),
		Currency:  "RON",
		VATRate:   decimal.NewFromInt(vatRate),
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func seedRate(t *testing.T, db *gorm.DB, code, rate string, on time.Time) {
	t.Helper()
	quote := exchangedomain.CurrencyRate{
		CurrencyCode: code,
		Rate:         decimal.RequireFromString(rate),
		Date:         datatypes.Date(on),
	}
	require.NoError(t, db.Create(&quote).Error)
}

func date(year int, month time.Month, dayOfMonth int) time.Time {
	return time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
}

func qty(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAssemble_WorkedExample(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	company := seedCompany(t, db, "Exemplu Software SRL", "RO1234567")
	client := seedClient(t, db)
	product := seedProduct(t, db, "Licenta software", "19.99", 19)

	price := decimal.RequireFromString("10.10")
	vat := decimal.NewFromInt(9)
	invoice, err := svc.Assemble(ctx, domain.AssembleInvoiceRequest{
		CompanyID: company.ID,
		ClientID:  client.ID,
		Lines: []domain.LineInput{
			{ProductID: product.ID, Quantity: qty("3")},
			{Description: "Transport", Unit: "cursa", Quantity: qty("2.5"), UnitPrice: &price, VATRate: &vat},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "FCT-2025-000001", invoice.Number)
	assert.Equal(t, 2025, invoice.Year)
	assert.Equal(t, 1, invoice.SequenceNumber)
	assert.Equal(t, "RON", invoice.Currency, "empty request currency falls back to the configured default")
	assert.Equal(t, "2025-03-10", time.Time(invoice.IssueDate).Format("2006-01-02"))
	assert.Equal(t, "2025-03-25", time.Time(invoice.DueDate).Format("2006-01-02"), "due date defaults to issue date plus the configured days")

	// Each line is rounded to two decimals before aggregation, so the totals
	// are exact sums of the printed line values.
	require.Len(t, invoice.Lines, 2)
	first := invoice.Lines[0]
	assert.Equal(t, 1, first.Position)
	assert.Equal(t, "Licenta software", first.Description)
	assert.Equal(t, "buc", first.Unit)
	require.NotNil(t, first.ProductID)
	assert.Equal(t, product.ID, *first.ProductID)
	assert.Equal(t, "59.97", first.Subtotal.StringFixed(2))
	assert.Equal(t, "11.39", first.VATAmount.StringFixed(2), "59.97 * 19% = 11.3943 rounds half-up to 11.39")
	assert.Equal(t, "71.36", first.Total.StringFixed(2))

	second := invoice.Lines[1]
	assert.Equal(t, 2, second.Position)
	assert.Nil(t, second.ProductID)
	assert.Equal(t, "25.25", second.Subtotal.StringFixed(2))
	assert.Equal(t, "2.27", second.VATAmount.StringFixed(2))
	assert.Equal(t, "27.52", second.Total.StringFixed(2))

	assert.Equal(t, "85.22", invoice.Subtotal.StringFixed(2))
	assert.Equal(t, "13.66", invoice.VATTotal.StringFixed(2))
	assert.Equal(t, "98.88", invoice.GrandTotal.StringFixed(2))

	// A RON invoice stores rate 1 and identical RON equivalents.
	assert.Equal(t, "1", invoice.ExchangeRate.String())
	assert.Equal(t, "98.88", invoice.GrandTotalRON.StringFixed(2))

	fetched, err := svc.Get(ctx, invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, invoice.Number, fetched.Number)
	require.Len(t, fetched.Lines, 2)
	assert.Equal(t, 1, fetched.Lines[0].Position)
	assert.Equal(t, "98.88", fetched.GrandTotal.StringFixed(2))
}

func TestAssemble_RONNeverConsultsRates(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	company := seedCompany(t, db, "Exemplu Software SRL", "RO1234567")
	client := seedClient(t, db)
	product := seedProduct(t, db, "Licenta software", "100", 19)

	// The exchange table is completely empty; a RON invoice must not care.
	invoice, err := svc.Assemble(ctx, domain.AssembleInvoiceRequest{
		CompanyID: company.ID,
		ClientID:  client.ID,
		Currency:  "ron",
		Lines:     []domain.LineInput{{ProductID: product.ID, Quantity: qty("1")}},
	})
	require.NoError(t, err)
	assert.Equal(t, "RON", invoice.Currency)
	assert.Equal(t, "1", invoice.ExchangeRate.String())
}

func TestAssemble_EURSnapshotsEffectiveRate(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	company := seedCompany(t, db, "Exemplu Software SRL", "RO1234567")
	client := seedClient(t, db)
	product := seedProduct(t, db, "Consultanta", "100", 19)

	seedRate(t, db, "EUR", "4.9753", date(2025, time.March, 1))
	seedRate(t, db, "EUR", "5.0100", date(2025, time.March, 11)) // after the issue date, must not win

	invoice, err := svc.Assemble(ctx, domain.AssembleInvoiceRequest{
		CompanyID: company.ID,
		ClientID:  client.ID,
		Currency:  "EUR",
		Lines:     []domain.LineInput{{ProductID: product.ID, Quantity: qty("1")}},
	})
	require.NoError(t, err)

	assert.Equal(t, "4.9753", invoice.ExchangeRate.String())
	assert.Equal(t, "100.00", invoice.Subtotal.StringFixed(2))
	assert.Equal(t, "19.00", invoice.VATTotal.StringFixed(2))
	assert.Equal(t, "119.00", invoice.GrandTotal.StringFixed(2))
	assert.Equal(t, "497.53", invoice.SubtotalRON.StringFixed(2))
	assert.Equal(t, "94.53", invoice.VATTotalRON.StringFixed(2), "19 * 4.9753 = 94.5307 rounds to 94.53")
	assert.Equal(t, "592.06", invoice.GrandTotalRON.StringFixed(2), "119 * 4.9753 = 592.0607 rounds to 592.06")
}

func TestAssemble_RateUnavailable(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	company := seedCompany(t, db, "Exemplu Software SRL", "RO1234567")
	client := seedClient(t, db)
	product := seedProduct(t, db, "Consultanta", "100", 19)

	// The only USD rate is dated after the issue date.
	seedRate(t, db, "USD", "4.5", date(2025, time.March, 15))

	_, err := svc.Assemble(ctx, domain.AssembleInvoiceRequest{
		CompanyID: company.ID,
		ClientID:  client.ID,
		Currency:  "USD",
		Lines:     []domain.LineInput{{ProductID: product.ID, Quantity: qty("1")}},
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindRateUnavailable, apperr.KindOf(err))

	// Nothing was persisted by the failed attempt.
	var count int64
	require.NoError(t, db.Model(&domain.Invoice{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAssemble_SequencesPerCompanyAndYear(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	companyA := seedCompany(t, db, "Firma A SRL", "RO1234567")
	companyB := seedCompany(t, db, "Firma B SRL", "RO2345678")
	client := seedClient(t, db)
	product := seedProduct(t, db, "Licenta software", "100", 19)

	lines := []domain.LineInput{{ProductID: product.ID, Quantity: qty("1")}}

	first, err := svc.Assemble(ctx, domain.AssembleInvoiceRequest{CompanyID: companyA.ID, ClientID: client.ID, Lines: lines})
	require.NoError(t, err)
	second, err := svc.Assemble(ctx, domain.AssembleInvoiceRequest{CompanyID: companyA.ID, ClientID: client.ID, Lines: lines})
	require.NoError(t, err)
	assert.Equal(t, "FCT-2025-000001", first.Number)
	assert.Equal(t, "FCT-2025-000002", second.Number)
	assert.Equal(t, 2, second.SequenceNumber)

	// A different year runs its own sequence from 1.
	previousYear, err := svc.Assemble(ctx, domain.AssembleInvoiceRequest{
		CompanyID: companyA.ID,
		ClientID:  client.ID,
		IssueDate: datatypes.Date(date(2024, time.December, 31)),
		Lines:     lines,
	})
	require.NoError(t, err)
	assert.Equal(t, "FCT-2024-000001", previousYear.Number)
	assert.Equal(t, 1, previousYear.SequenceNumber)
	assert.Equal(t, 2024, previousYear.Year)

	// Company B's sequence also starts at 1, but with the same number format
	// its first number collides with company A's globally unique one.
	_, err = svc.Assemble(ctx, domain.AssembleInvoiceRequest{CompanyID: companyB.ID, ClientID: client.ID, Lines: lines})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	// The failed attempt rolled its sequence allocation back, so with its own
	// number format company B still starts at 1.
	svcB := newServiceOver(db, config.Config{
		InvoiceNumberFormat: "B-{YYYY}-{SEQ4}",
		DefaultCurrency:     "RON",
		DueDays:             15,
	})
	firstB, err := svcB.Assemble(ctx, domain.AssembleInvoiceRequest{CompanyID: companyB.ID, ClientID: client.ID, Lines: lines})
	require.NoError(t, err)
	assert.Equal(t, "B-2025-0001", firstB.Number)
	assert.Equal(t, 1, firstB.SequenceNumber)
}

func TestAssemble_SnapshotsSurviveProductChanges(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	company := seedCompany(t, db, "Exemplu Software SRL", "RO1234567")
	client := seedClient(t, db)
	product := seedProduct(t, db, "Licenta software", "19.99", 19)

	invoice, err := svc.Assemble(ctx, domain.AssembleInvoiceRequest{
		CompanyID: company.ID,
		ClientID:  client.ID,
		Lines:     []domain.LineInput{{ProductID: product.ID, Quantity: qty("3")}},
	})
	require.NoError(t, err)

	require.NoError(t, db.Model(&productdomain.Product{}).
		Where("id = ?", product.ID).
		Update("price_per_unit", decimal.NewFromInt(999)).Error)

	fetched, err := svc.Get(ctx, invoice.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Lines, 1)
	assert.Equal(t, "19.99", fetched.Lines[0].UnitPrice.StringFixed(2), "price edits must not reach issued invoices")
	assert.Equal(t, "71.36", fetched.GrandTotal.StringFixed(2))

	// Deleting the product clears the soft reference and nothing else.
	require.NoError(t, db.Exec(`DELETE FROM products WHERE id = ?`, product.ID).Error)

	fetched, err = svc.Get(ctx, invoice.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Lines, 1)
	assert.Nil(t, fetched.Lines[0].ProductID)
	assert.Equal(t, "Licenta software", fetched.Lines[0].Description)
	assert.Equal(t, "71.36", fetched.GrandTotal.StringFixed(2))
}

func TestAssemble_DueDates(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	company := seedCompany(t, db, "Exemplu Software SRL", "RO1234567")
	client := seedClient(t, db)
	product := seedProduct(t, db, "Licenta software", "100", 19)

	lines := []domain.LineInput{{ProductID: product.ID, Quantity: qty("1")}}

	withDays, err := svc.Assemble(ctx, domain.AssembleInvoiceRequest{
		CompanyID: company.ID, ClientID: client.ID, DueDays: 30, Lines: lines,
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-04-09", time.Time(withDays.DueDate).Format("2006-01-02"))

	explicit, err := svc.Assemble(ctx, domain.AssembleInvoiceRequest{
		CompanyID: company.ID,
		ClientID:  client.ID,
		DueDate:   datatypes.Date(date(2025, time.March, 12)),
		Lines:     lines,
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-03-12", time.Time(explicit.DueDate).Format("2006-01-02"))

	_, err = svc.Assemble(ctx, domain.AssembleInvoiceRequest{
		CompanyID: company.ID,
		ClientID:  client.ID,
		DueDate:   datatypes.Date(date(2025, time.March, 9)),
		Lines:     lines,
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestAssemble_Rejections(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	company := seedCompany(t, db, "Exemplu Software SRL", "RO1234567")
	client := seedClient(t, db)
	product := seedProduct(t, db, "Licenta software", "100", 19)

	override := decimal.NewFromInt(5)
	negative := decimal.RequireFromString("-1")
	vatTooHigh := decimal.NewFromInt(101)

	cases := []struct {
		name string
		req  domain.AssembleInvoiceRequest
		kind apperr.Kind
	}{
		{
			"no lines",
			domain.AssembleInvoiceRequest{CompanyID: company.ID, ClientID: client.ID},
			apperr.KindValidation,
		},
		{
			"unsupported currency",
			domain.AssembleInvoiceRequest{CompanyID: company.ID, ClientID: client.ID, Currency: "JPY",
				Lines: []domain.LineInput{{ProductID: product.ID, Quantity: qty("1")}}},
			apperr.KindValidation,
		},
		{
			"missing company",
			domain.AssembleInvoiceRequest{CompanyID: 9999, ClientID: client.ID,
				Lines: []domain.LineInput{{ProductID: product.ID, Quantity: qty("1")}}},
			apperr.KindNotFound,
		},
		{
			"missing client",
			domain.AssembleInvoiceRequest{CompanyID: company.ID, ClientID: 9999,
				Lines: []domain.LineInput{{ProductID: product.ID, Quantity: qty("1")}}},
			apperr.KindNotFound,
		},
		{
			"missing product",
			domain.AssembleInvoiceRequest{CompanyID: company.ID, ClientID: client.ID,
				Lines: []domain.LineInput{{ProductID: 9999, Quantity: qty("1")}}},
			apperr.KindNotFound,
		},
		{
			"vat override on catalog line",
			domain.AssembleInvoiceRequest{CompanyID: company.ID, ClientID: client.ID,
				Lines: []domain.LineInput{{ProductID: product.ID, Quantity: qty("1"), VATRate: &override}}},
			apperr.KindValidation,
		},
		{
			"zero quantity",
			domain.AssembleInvoiceRequest{CompanyID: company.ID, ClientID: client.ID,
				Lines: []domain.LineInput{{ProductID: product.ID, Quantity: decimal.Zero}}},
			apperr.KindValidation,
		},
		{
			"ad-hoc line without description",
			domain.AssembleInvoiceRequest{CompanyID: company.ID, ClientID: client.ID,
				Lines: []domain.LineInput{{Unit: "buc", Quantity: qty("1"), UnitPrice: &override}}},
			apperr.KindValidation,
		},
		{
			"ad-hoc line without unit",
			domain.AssembleInvoiceRequest{CompanyID: company.ID, ClientID: client.ID,
				Lines: []domain.LineInput{{Description: "Transport", Quantity: qty("1"), UnitPrice: &override}}},
			apperr.KindValidation,
		},
		{
			"ad-hoc line without price",
			domain.AssembleInvoiceRequest{CompanyID: company.ID, ClientID: client.ID,
				Lines: []domain.LineInput{{Description: "Transport", Unit: "cursa", Quantity: qty("1")}}},
			apperr.KindValidation,
		},
		{
			"negative price override",
			domain.AssembleInvoiceRequest{CompanyID: company.ID, ClientID: client.ID,
				Lines: []domain.LineInput{{ProductID: product.ID, Quantity: qty("1"), UnitPrice: &negative}}},
			apperr.KindValidation,
		},
		{
			"ad-hoc vat out of range",
			domain.AssembleInvoiceRequest{CompanyID: company.ID, ClientID: client.ID,
				Lines: []domain.LineInput{{Description: "Transport", Unit: "cursa", Quantity: qty("1"),
					UnitPrice: &override, VATRate: &vatTooHigh}}},
			apperr.KindValidation,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Assemble(ctx, tc.req)
			require.Error(t, err)
			assert.Equal(t, tc.kind, apperr.KindOf(err))
		})
	}

	// None of the failed attempts left a partial record behind.
	var count int64
	require.NoError(t, db.Model(&domain.Invoice{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAssemble_PriceOverrideAndAdHocVATDefault(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	company := seedCompany(t, db, "Exemplu Software SRL", "RO1234567")
	client := seedClient(t, db)
	product := seedProduct(t, db, "Licenta software", "100", 19)

	discounted := decimal.RequireFromString("80")
	adHocPrice := decimal.RequireFromString("50")
	invoice, err := svc.Assemble(ctx, domain.AssembleInvoiceRequest{
		CompanyID: company.ID,
		ClientID:  client.ID,
		Lines: []domain.LineInput{
			{ProductID: product.ID, Quantity: qty("1"), UnitPrice: &discounted},
			{Description: "Deplasare", Unit: "zi", Quantity: qty("1"), UnitPrice: &adHocPrice},
		},
	})
	require.NoError(t, err)

	require.Len(t, invoice.Lines, 2)
	assert.Equal(t, "80.00", invoice.Lines[0].UnitPrice.StringFixed(2))
	assert.Equal(t, "19", invoice.Lines[0].VATRate.String(), "the product's VAT rate survives a price override")
	assert.Equal(t, "19", invoice.Lines[1].VATRate.String(), "ad-hoc lines default to the standard VAT rate")
}

func TestGetByNumberAndList(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	companyA := seedCompany(t, db, "Firma A SRL", "RO1234567")
	client := seedClient(t, db)
	product := seedProduct(t, db, "Licenta software", "100", 19)
	seedRate(t, db, "EUR", "4.9", date(2025, time.March, 1))

	lines := []domain.LineInput{{ProductID: product.ID, Quantity: qty("1")}}

	ron, err := svc.Assemble(ctx, domain.AssembleInvoiceRequest{CompanyID: companyA.ID, ClientID: client.ID, Lines: lines})
	require.NoError(t, err)
	eur, err := svc.Assemble(ctx, domain.AssembleInvoiceRequest{CompanyID: companyA.ID, ClientID: client.ID, Currency: "EUR", Lines: lines})
	require.NoError(t, err)
	older, err := svc.Assemble(ctx, domain.AssembleInvoiceRequest{
		CompanyID: companyA.ID, ClientID: client.ID,
		IssueDate: datatypes.Date(date(2024, time.November, 5)), Lines: lines,
	})
	require.NoError(t, err)

	byNumber, err := svc.GetByNumber(ctx, " "+eur.Number+" ")
	require.NoError(t, err)
	assert.Equal(t, eur.ID, byNumber.ID)
	require.Len(t, byNumber.Lines, 1)

	_, err = svc.GetByNumber(ctx, "FCT-1999-000001")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	all, err := svc.List(ctx, domain.ListInvoicesRequest{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Newest issue dates come first; same-day invoices in reverse creation order.
	assert.Equal(t, eur.ID, all[0].ID)
	assert.Equal(t, ron.ID, all[1].ID)
	assert.Equal(t, older.ID, all[2].ID)

	onlyEUR, err := svc.List(ctx, domain.ListInvoicesRequest{Currency: "eur"})
	require.NoError(t, err)
	require.Len(t, onlyEUR, 1)
	assert.Equal(t, eur.ID, onlyEUR[0].ID)

	only2024, err := svc.List(ctx, domain.ListInvoicesRequest{Year: 2024})
	require.NoError(t, err)
	require.Len(t, only2024, 1)
	assert.Equal(t, older.ID, only2024[0].ID)
}

func TestRenderHTML_DeterministicAndComplete(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	company := seedCompany(t, db, "Exemplu Software SRL", "RO1234567")
	client := seedClient(t, db)
	product := seedProduct(t, db, "Licenta software", "19.99", 19)

	account := bankdomain.BankAccount{
		OwnerType:     bankdomain.OwnerCompany,
		OwnerID:       company.ID,
		BankName:      "Banca Transilvania",
		AccountNumber: "RO49AAAA1B31007593840000",
		IBAN:          "RO49AAAA1B31007593840000",
		Currency:      "RON",
		IsDefault:     true,
	}
	require.NoError(t, db.Create(&account).Error)

	invoice, err := svc.Assemble(ctx, domain.AssembleInvoiceRequest{
		CompanyID: company.ID,
		ClientID:  client.ID,
		Notes:     "Plata in 15 zile.",
		Lines:     []domain.LineInput{{ProductID: product.ID, Quantity: qty("3")}},
	})
	require.NoError(t, err)

	html, err := svc.RenderHTML(ctx, invoice.ID)
	require.NoError(t, err)
	again, err := svc.RenderHTML(ctx, invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, html, again, "rendering the same invoice twice must be byte-identical")

	assert.Contains(t, html, "FACTURA")
	assert.Contains(t, html, invoice.Number)
	assert.Contains(t, html, "Exemplu Software SRL")
	assert.Contains(t, html, "Clientul Unu SRL")
	assert.Contains(t, html, "10.03.2025")
	assert.Contains(t, html, "25.03.2025")
	assert.Contains(t, html, "Licenta software")
	assert.Contains(t, html, "71.36")
	assert.Contains(t, html, "TOTAL DE PLATA")
	assert.Contains(t, html, "IBAN RO49AAAA1B31007593840000")
	assert.Contains(t, html, "Plata in 15 zile.")
	// RON invoices show neither an exchange rate nor RON equivalents.
	assert.NotContains(t, html, "Curs valutar")
	assert.NotContains(t, html, "Echivalent RON")
}

func TestRenderHTML_ShowsRONEquivalents(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	company := seedCompany(t, db, "Exemplu Software SRL", "RO1234567")
	client := seedClient(t, db)
	product := seedProduct(t, db, "Consultanta", "100", 19)
	seedRate(t, db, "EUR", "4.9753", date(2025, time.March, 1))

	invoice, err := svc.Assemble(ctx, domain.AssembleInvoiceRequest{
		CompanyID: company.ID,
		ClientID:  client.ID,
		Currency:  "EUR",
		Lines:     []domain.LineInput{{ProductID: product.ID, Quantity: qty("1")}},
	})
	require.NoError(t, err)

	html, err := svc.RenderHTML(ctx, invoice.ID)
	require.NoError(t, err)

	assert.Contains(t, html, "Curs valutar")
	assert.Contains(t, html, "4.9753")
	assert.Contains(t, html, "Echivalent RON")
	assert.Contains(t, html, "592.06")
}

func TestRenderHTML_InlineBankFallback(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	company := partydomain.Company{
		Party: partydomain.Party{
			Name:               "Firma Veche SRL",
			Address:            "Str. Lunga 2",
			City:               "Brasov",
			County:             "Brasov",
			Country:            "Romania",
			RegistrationNumber: "J08/99/2015",
			FiscalCode:         "RO5550123",
			BankName:           "CEC Bank",
			BankAccount:        "RO11CECE0000000000001234",
		},
	}
	require.NoError(t, db.Create(&company).Error)
	client := seedClient(t, db)
	product := seedProduct(t, db, "Licenta software", "100", 19)

	invoice, err := svc.Assemble(ctx, domain.AssembleInvoiceRequest{
		CompanyID: company.ID,
		ClientID:  client.ID,
		Lines:     []domain.LineInput{{ProductID: product.ID, Quantity: qty("1")}},
	})
	require.NoError(t, err)

	html, err := svc.RenderHTML(ctx, invoice.ID)
	require.NoError(t, err)
	assert.Contains(t, html, "Plata in contul: CEC Bank")
	assert.Contains(t, html, "RO11CECE0000000000001234")
}

func TestRenderPDF_Deterministic(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	company := seedCompany(t, db, "Exemplu Software SRL", "RO1234567")
	client := seedClient(t, db)
	product := seedProduct(t, db, "Licenta software", "19.99", 19)

	invoice, err := svc.Assemble(ctx, domain.AssembleInvoiceRequest{
		CompanyID: company.ID,
		ClientID:  client.ID,
		Lines:     []domain.LineInput{{ProductID: product.ID, Quantity: qty("3")}},
	})
	require.NoError(t, err)

	first, err := svc.RenderPDF(ctx, invoice.ID)
	require.NoError(t, err)
	second, err := svc.RenderPDF(ctx, invoice.ID)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(first, []byte("%PDF")))
	assert.Greater(t, len(first), 1000)
	// The document creation date is pinned to the issue date, so nothing in
	// the output depends on the wall clock.
	assert.Equal(t, first, second)
}

func TestRender_MissingInvoice(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.RenderHTML(ctx, 9999)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = svc.RenderPDF(ctx, 9999)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
