package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/bgdnlp/facatura/internal/apperr"
	"github.com/bgdnlp/facatura/internal/clock"
	"github.com/bgdnlp/facatura/internal/exchange/domain"
	"github.com/bgdnlp/facatura/internal/validate"
	"github.com/bgdnlp/facatura/pkg/db"
)

var ronRate = decimal.NewFromInt(1)

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	clock    clock.Clock
	validate *validator.Validate
	repo     domain.Repository
}

func New(gdb *gorm.DB, logger *zap.Logger, clk clock.Clock, repo domain.Repository) domain.Service {
	return &Service{
		db:       gdb,
		log:      logger.Named("exchange.service"),
		clock:    clk,
		validate: validate.New(),
		repo:     repo,
	}
}

func (s *Service) Add(ctx context.Context, req domain.AddRateRequest) (domain.CurrencyRate, error) {
	code := strings.ToUpper(strings.TrimSpace(req.CurrencyCode))
	if code == "RON" {
		return domain.CurrencyRate{}, apperr.Validation("the RON rate is fixed at 1 and is not stored")
	}

	date := req.Date
	if time.Time(date).IsZero() {
		date = datatypes.Date(s.clock.Now())
	}

	rate := domain.CurrencyRate{
		CurrencyCode: code,
		Rate:         req.Rate,
		Date:         date,
	}
	if err := validate.BadRequest(s.validate.Struct(rate)); err != nil {
		return domain.CurrencyRate{}, err
	}
	if !rate.Rate.IsPositive() {
		return domain.CurrencyRate{}, apperr.Validation("rate must be greater than zero")
	}

	rate.CreatedAt = s.clock.Now()
	if err := s.repo.Insert(ctx, s.db, &rate); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.CurrencyRate{}, apperr.Validation(
				"a %s rate for %s already exists", code, dateString(date))
		}
		return domain.CurrencyRate{}, err
	}

	s.log.Info("exchange rate added",
		zap.String("currency", code),
		zap.String("rate", rate.Rate.String()),
		zap.String("date", dateString(date)))
	return rate, nil
}

func (s *Service) Effective(ctx context.Context, currencyCode string, date datatypes.Date) (domain.CurrencyRate, error) {
	code := strings.ToUpper(strings.TrimSpace(currencyCode))
	if time.Time(date).IsZero() {
		date = datatypes.Date(s.clock.Now())
	}
	if code == "RON" {
		return domain.CurrencyRate{CurrencyCode: "RON", Rate: ronRate, Date: date}, nil
	}

	rate, err := s.repo.FindEffective(ctx, s.db, code, date)
	if err != nil {
		return domain.CurrencyRate{}, err
	}
	if rate == nil {
		return domain.CurrencyRate{}, apperr.RateUnavailable(
			"no %s exchange rate on or before %s", code, dateString(date))
	}
	return *rate, nil
}

func (s *Service) List(ctx context.Context, req domain.ListRatesRequest) ([]domain.CurrencyRate, error) {
	filter := domain.ListRatesFilter{
		CurrencyCode: strings.ToUpper(strings.TrimSpace(req.CurrencyCode)),
	}
	items, err := s.repo.List(ctx, s.db, filter)
	if err != nil {
		return nil, err
	}
	rates := make([]domain.CurrencyRate, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		rates = append(rates, *item)
	}
	return rates, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperr.Validation("invalid rate id")
	}
	rows, err := s.repo.Delete(ctx, s.db, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.NotFound("exchange rate %d not found", id)
	}
	return nil
}

func dateString(d datatypes.Date) string {
	return time.Time(d).Format("2006-01-02")
}
