package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/ims-client/internal/application/dto"
	"github.com/jhoicas/ims-client/internal/application/screen"
	"github.com/jhoicas/ims-client/internal/domain"
	"github.com/jhoicas/ims-client/internal/domain/entity"
	"github.com/jhoicas/ims-client/internal/domain/inventory"
	"github.com/jhoicas/ims-client/internal/domain/repository"
)

// SaleUseCase listado de órdenes y cambio de estado.
type SaleUseCase struct {
	repo  repository.SaleRepository
	state *screen.Store[[]entity.Sale]
}

func NewSaleUseCase(repo repository.SaleRepository, state *screen.Store[[]entity.Sale]) *SaleUseCase {
	return &SaleUseCase{repo: repo, state: state}
}

// List busca en el servidor por keyword y vuelve a filtrar localmente
// por id de venta y nombre de cliente.
func (uc *SaleUseCase) List(ctx context.Context, q string) (*dto.SaleListResponse, error) {
	key := screen.Key(screen.SessionFrom(ctx), "sales", q)
	res, err := uc.state.Load(ctx, key, func(ctx context.Context) ([]entity.Sale, error) {
		return uc.repo.List(ctx, repository.SaleQuery{Keyword: q})
	})
	if err != nil {
		return nil, err
	}
	return &dto.SaleListResponse{
		Sales:    dto.ToSaleDTOs(inventory.FilterSales(res.Value, q)),
		Statuses: entity.SaleStatuses,
		ViewMeta: screen.Meta(res),
	}, nil
}

// UpdateStatus acepta cualquiera de los cinco estados; no hay reglas de transición.
func (uc *SaleUseCase) UpdateStatus(ctx context.Context, id string, in dto.UpdateSaleStatusRequest) error {
	if !entity.IsValidSaleStatus(in.Status) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidStatus, in.Status)
	}
	return uc.repo.UpdateStatus(ctx, id, in.Status)
}

func (uc *SaleUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
