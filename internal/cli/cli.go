// Package cli wires the command line surface: one root command, a family of
// record commands and the invoice commands, all sharing a database handle and
// configuration resolved once per invocation.
package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/bgdnlp/facatura/internal/apperr"
	bankdomain "github.com/bgdnlp/facatura/internal/bankaccount/domain"
	bankrepository "github.com/bgdnlp/facatura/internal/bankaccount/repository"
	bankservice "github.com/bgdnlp/facatura/internal/bankaccount/service"
	"github.com/bgdnlp/facatura/internal/clock"
	"github.com/bgdnlp/facatura/internal/config"
	exchangedomain "github.com/bgdnlp/facatura/internal/exchange/domain"
	exchangerepository "github.com/bgdnlp/facatura/internal/exchange/repository"
	exchangeservice "github.com/bgdnlp/facatura/internal/exchange/service"
	invoicedomain "github.com/bgdnlp/facatura/internal/invoice/domain"
	"github.com/bgdnlp/facatura/internal/invoice/pdf"
	"github.com/bgdnlp/facatura/internal/invoice/render"
	invoicerepository "github.com/bgdnlp/facatura/internal/invoice/repository"
	invoiceservice "github.com/bgdnlp/facatura/internal/invoice/service"
	"github.com/bgdnlp/facatura/internal/logger"
	"github.com/bgdnlp/facatura/internal/migration"
	partydomain "github.com/bgdnlp/facatura/internal/party/domain"
	partyrepository "github.com/bgdnlp/facatura/internal/party/repository"
	partyservice "github.com/bgdnlp/facatura/internal/party/service"
	productdomain "github.com/bgdnlp/facatura/internal/product/domain"
	productrepository "github.com/bgdnlp/facatura/internal/product/repository"
	productservice "github.com/bgdnlp/facatura/internal/product/service"
	"github.com/bgdnlp/facatura/pkg/db"
)

type app struct {
	dbPathFlag   string
	logLevelFlag string

	cfg   config.Config
	log   *zap.Logger
	db    *gorm.DB
	clock clock.Clock

	parties  partydomain.Service
	products productdomain.Service
	rates    exchangedomain.Service
	banks    bankdomain.Service
	invoices invoicedomain.Service
}

// NewRootCmd builds the facatura command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "facatura",
		Short: "Invoicing for Romanian small businesses",
		Long: "facatura keeps the records a small Romanian business invoices from\n" +
			"(companies, clients, products, exchange rates, bank accounts),\n" +
			"assembles numbered invoices and renders them as HTML or PDF.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.dbPathFlag, "db-path", "", "database file (overrides the configured path)")
	flags.StringVar(&a.logLevelFlag, "log-level", "", "log verbosity: debug, info, warn or error")

	root.AddCommand(
		newSetupDBCmd(a),
		newCompanyCmd(a),
		newClientCmd(a),
		newProductCmd(a),
		newRateCmd(a),
		newBankAccountCmd(a),
		newCreateInvoiceCmd(a),
		newInvoiceCmd(a),
	)

	return root
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// init resolves configuration, opens the database and builds the services.
// Migrations run on every invocation; they are embedded and idempotent, so a
// database created by an older build is upgraded the first time it is touched.
func (a *app) init() error {
	cfg := config.Load()
	if a.dbPathFlag != "" {
		cfg.DBPath = a.dbPathFlag
	}
	if a.logLevelFlag != "" {
		cfg.LogLevel = a.logLevelFlag
	}
	a.cfg = cfg

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.log = log

	gdb, err := db.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	a.db = gdb

	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	if err := migration.RunMigrations(sqlDB); err != nil {
		return fmt.Errorf("preparing database %s: %w", cfg.DBPath, err)
	}

	a.clock = clock.System()

	companies := partyrepository.ProvideCompany()
	clients := partyrepository.ProvideClient()

	a.parties = partyservice.New(gdb, log, a.clock, companies, clients)
	a.products = productservice.New(gdb, log, a.clock, productrepository.Provide())
	a.rates = exchangeservice.New(gdb, log, a.clock, exchangerepository.Provide())
	a.banks = bankservice.New(gdb, log, a.clock, bankrepository.Provide(), companies, clients)
	a.invoices = invoiceservice.New(invoiceservice.ServiceParam{
		DB:        gdb,
		Log:       log,
		Clock:     a.clock,
		Config:    cfg,
		Invoices:  invoicerepository.Provide(),
		Companies: companies,
		Clients:   clients,
		Products:  productrepository.Provide(),
		Rates:     exchangerepository.Provide(),
		Banks:     bankrepository.Provide(),
		HTML:      render.NewRenderer(),
		PDF:       pdf.New(),
	})

	return nil
}

func (a *app) close() error {
	if a.log != nil {
		_ = a.log.Sync()
	}
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.Validation("invalid id %q", arg)
	}
	return id, nil
}

func parseDate(value string) (datatypes.Date, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return datatypes.Date{}, apperr.Validation("invalid date %q, expected YYYY-MM-DD", value)
	}
	return datatypes.Date(t), nil
}

func parseDecimal(flag, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, apperr.Validation("invalid --%s %q", flag, value)
	}
	return d, nil
}

// changedString returns the flag's value only when it was set on the command
// line, so update commands can tell "clear this field" from "leave it alone".
func changedString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

func changedBool(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetBool(name)
	return &v
}

func changedDecimal(cmd *cobra.Command, name string) (*decimal.Decimal, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}
	raw, _ := cmd.Flags().GetString(name)
	d, err := parseDecimal(name, raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
