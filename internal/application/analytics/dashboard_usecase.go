// Package analytics contiene los casos de uso de las pantallas de resumen:
// Dashboard, Reportes y Búsqueda por rango de fechas.
package analytics

import (
	"context"

	"github.com/jhoicas/ims-client/internal/application/dto"
	"github.com/jhoicas/ims-client/internal/application/screen"
	"github.com/jhoicas/ims-client/internal/domain/entity"
	"github.com/jhoicas/ims-client/internal/domain/repository"
)

// DashboardUseCase tarjetas del dashboard con los totales globales del servidor.
type DashboardUseCase struct {
	products repository.ProductRepository
	state    *screen.Store[entity.ProductStats]
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(products repository.ProductRepository, state *screen.Store[entity.ProductStats]) *DashboardUseCase {
	return &DashboardUseCase{products: products, state: state}
}

// GetSummary devuelve los totales de /products/stats.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardResponse, error) {
	res, err := uc.state.Load(ctx, screen.Key(screen.SessionFrom(ctx), "dashboard"), func(ctx context.Context) (entity.ProductStats, error) {
		s, err := uc.products.Stats(ctx)
		if err != nil {
			return entity.ProductStats{}, err
		}
		return *s, nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		TotalStockAdded: res.Value.TotalStockAdded,
		TotalSold:       res.Value.TotalSold,
		TotalReturned:   res.Value.TotalReturned,
		TotalRemaining:  res.Value.TotalRemaining,
		ViewMeta:        screen.Meta(res),
	}, nil
}
