package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type Service interface {
	Create(ctx context.Context, req CreateProductRequest) (Product, error)
	Get(ctx context.Context, id int64) (Product, error)
	Update(ctx context.Context, id int64, req UpdateProductRequest) (Product, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, req ListProductsRequest) ([]Product, error)
}

type CreateProductRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Unit        string           `json:"unit"`
	UnitPrice   decimal.Decimal  `json:"unit_price"`
	Currency    string           `json:"currency"`
	VATRate     *decimal.Decimal `json:"vat_rate"`
	IsService   bool             `json:"is_service"`
}

// UpdateProductRequest carries only the fields to change; nil fields keep
// their stored value.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Unit        *string          `json:"unit"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
	Currency    *string          `json:"currency"`
	VATRate     *decimal.Decimal `json:"vat_rate"`
	IsService   *bool            `json:"is_service"`
}

type ListProductsRequest struct {
	Query     string
	IsService *bool
}
