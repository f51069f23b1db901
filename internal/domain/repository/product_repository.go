package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ims-client/internal/domain/entity"
)

// ProductQuery parámetros de listado. Los valores cero no se envían.
type ProductQuery struct {
	Limit     int
	Keyword   string
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD
}

// ProductInput cuerpo de creación/actualización de una caja.
type ProductInput struct {
	Name       string          `json:"name"`
	SKU        string          `json:"sku"`
	CategoryID string          `json:"category"`
	TotalStock int             `json:"totalStock"`
	Sold       int             `json:"sold"`
	Returned   int             `json:"returned"`
	Price      decimal.Decimal `json:"price"`
}

// ProductRepository puerto hacia las cajas de la API remota.
type ProductRepository interface {
	List(ctx context.Context, q ProductQuery) ([]entity.Product, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Create(ctx context.Context, in ProductInput) (*entity.Product, error)
	Update(ctx context.Context, id string, in ProductInput) (*entity.Product, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*entity.ProductStats, error)
}
