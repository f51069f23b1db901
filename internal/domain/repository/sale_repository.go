package repository

import (
	"context"

	"github.com/jhoicas/ims-client/internal/domain/entity"
)

// SaleQuery parámetros de listado de ventas.
type SaleQuery struct {
	Keyword string
	Limit   int
}

// SaleRepository puerto hacia las órdenes de venta de la API remota.
type SaleRepository interface {
	List(ctx context.Context, q SaleQuery) ([]entity.Sale, error)
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}
