package repository

import (
	"context"

	"github.com/jhoicas/ims-client/internal/domain/entity"
)

// ReturnRepository puerto hacia el módulo de devoluciones de la API remota.
type ReturnRepository interface {
	// ListProducts cajas con devoluciones, filtradas por keyword en el servidor.
	ListProducts(ctx context.Context, keyword string, limit int) ([]entity.Product, error)
	Create(ctx context.Context, in entity.ReturnRequest) error
	Stats(ctx context.Context) (*entity.ReturnStats, error)
}
