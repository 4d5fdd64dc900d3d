package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/bgdnlp/facatura/internal/apperr"
	"github.com/bgdnlp/facatura/internal/clock"
	"github.com/bgdnlp/facatura/internal/product/domain"
	"github.com/bgdnlp/facatura/internal/validate"
)

var defaultVATRate = decimal.NewFromInt(19)

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
		log:      logger.Named("product.service"),
		clock:    clk,
		validate: validate.New(),
		repo:     repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateProductRequest) (domain.Product, error) {
	vatRate := defaultVATRate
	if req.VATRate != nil {
		vatRate = *req.VATRate
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = "RON"
	}

	product := domain.Product{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Unit:        strings.TrimSpace(req.Unit),
		UnitPrice:   req.UnitPrice,
		Currency:    currency,
		VATRate:     vatRate,
		IsService:   req.IsService,
	}
	if err := s.check(product); err != nil {
		return domain.Product{}, err
	}

	now := s.clock.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	if err := s.repo.Insert(ctx, s.db, &product); err != nil {
		return domain.Product{}, err
	}

	s.log.Info("product created", zap.Int64("id", product.ID), zap.String("name", product.Name))
	return product, nil
}

func (s *Service) Get(ctx context.Context, id int64) (domain.Product, error) {
	if id <= 0 {
		return domain.Product{}, apperr.Validation("invalid product id")
	}
	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Product{}, err
	}
	if item == nil {
		return domain.Product{}, apperr.NotFound("product %d not found", id)
	}
	return *item, nil
}

func (s *Service) Update(ctx context.Context, id int64, req domain.UpdateProductRequest) (domain.Product, error) {
	if id <= 0 {
		return domain.Product{}, apperr.Validation("invalid product id")
	}
	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Product{}, err
	}
	if item == nil {
		return domain.Product{}, apperr.NotFound("product %d not found", id)
	}

	product := *item
	if req.Name != nil {
		product.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		product.Description = strings.TrimSpace(*req.Description)
	}
	if req.Unit != nil {
		product.Unit = strings.TrimSpace(*req.Unit)
	}
	if req.UnitPrice != nil {
		product.UnitPrice = *req.UnitPrice
	}
	if req.Currency != nil {
		product.Currency = strings.ToUpper(strings.TrimSpace(*req.Currency))
	}
	if req.VATRate != nil {
		product.VATRate = *req.VATRate
	}
	if req.IsService != nil {
		product.IsService = *req.IsService
	}

	if err := s.check(product); err != nil {
		return domain.Product{}, err
	}

	if err := s.repo.Save(ctx, s.db, &product); err != nil {
		return domain.Product{}, err
	}
	return product, nil
}

// Delete removes a catalog entry. Invoices that referenced it are untouched:
// their lines carry copies of the product fields, and the database clears the
// dangling product id on the lines.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperr.Validation("invalid product id")
	}
	rows, err := s.repo.Delete(ctx, s.db, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.NotFound("product %d not found", id)
	}
	s.log.Info("product deleted", zap.Int64("id", id))
	return nil
}

func (s *Service) List(ctx context.Context, req domain.ListProductsRequest) ([]domain.Product, error) {
	filter := domain.ListProductFilter{
		Query:     strings.TrimSpace(req.Query),
		IsService: req.IsService,
	}
	items, err := s.repo.List(ctx, s.db, filter)
	if err != nil {
		return nil, err
	}
	products := make([]domain.Product, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		products = append(products, *item)
	}
	return products, nil
}

func (s *Service) check(product domain.Product) error {
	if err := validate.BadRequest(s.validate.Struct(product)); err != nil {
		return err
	}
	if product.UnitPrice.IsNegative() {
		return apperr.Validation("unit price must not be negative")
	}
	if product.VATRate.IsNegative() || product.VATRate.GreaterThan(decimal.NewFromInt(100)) {
		return apperr.Validation("vat rate must be between 0 and 100")
	}
	return nil
}
