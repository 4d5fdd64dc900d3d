package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DBPath              string
	LogLevel            string
	InvoiceNumberFormat string
	DefaultCurrency     string
	DueDays             int
}

const (
	DefaultDBPath              = "facatura.db"
	DefaultLogLevel            = "warn"
	DefaultInvoiceNumberFormat = "FCT-{YYYY}-{SEQ6}"
	DefaultCurrency            = "RON"
	DefaultDueDays             = 15
)

// Load loads configuration from environment variables and a .env file.
// Every key is read under the FACATURA_ prefix, e.g. FACATURA_DB_PATH.
func Load() Config {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("FACATURA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("db_path", DefaultDBPath)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("invoice_number_format", DefaultInvoiceNumberFormat)
	v.SetDefault("default_currency", DefaultCurrency)
	v.SetDefault("due_days", DefaultDueDays)

	cfg := Config{
		DBPath:              strings.TrimSpace(v.GetString("db_path")),
		LogLevel:            strings.ToLower(strings.TrimSpace(v.GetString("log_level"))),
		InvoiceNumberFormat: strings.TrimSpace(v.GetString("invoice_number_format")),
		DefaultCurrency:     strings.ToUpper(strings.TrimSpace(v.GetString("default_currency"))),
		DueDays:             v.GetInt("due_days"),
	}

	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBPath
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.InvoiceNumberFormat == "" {
		cfg.InvoiceNumberFormat = DefaultInvoiceNumberFormat
	}
	if cfg.DefaultCurrency == "" {
		cfg.DefaultCurrency = DefaultCurrency
	}
	if cfg.DueDays <= 0 {
		cfg.DueDays = DefaultDueDays
	}

	return cfg
}
