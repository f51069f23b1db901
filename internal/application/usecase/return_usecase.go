package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/ims-client/internal/application/dto"
	"github.com/jhoicas/ims-client/internal/application/screen"
	"github.com/jhoicas/ims-client/internal/domain"
	"github.com/jhoicas/ims-client/internal/domain/entity"
	"github.com/jhoicas/ims-client/internal/domain/inventory"
	"github.com/jhoicas/ims-client/internal/domain/repository"
)

// returnsFetchLimit máximo de cajas que pide la pantalla de devoluciones.
const returnsFetchLimit = 100

// ReturnsData cajas devueltas y carpetas recibidas en la misma carga.
type ReturnsData struct {
	Products   []entity.Product
	Categories []entity.Category
}

// ReturnUseCase pantalla de devoluciones.
type ReturnUseCase struct {
	repo       repository.ReturnRepository
	categories repository.CategoryRepository
	state      *screen.Store[ReturnsData]
}

func NewReturnUseCase(repo repository.ReturnRepository, categories repository.CategoryRepository, state *screen.Store[ReturnsData]) *ReturnUseCase {
	return &ReturnUseCase{repo: repo, categories: categories, state: state}
}

// List cajas devueltas de la carpeta indicada que coinciden con q por nombre
// de caja o de carpeta. Los totales son sobre la lista filtrada.
func (uc *ReturnUseCase) List(ctx context.Context, q, folderID string) (*dto.ReturnsResponse, error) {
	key := screen.Key(screen.SessionFrom(ctx), "returns", q)
	res, err := uc.state.Load(ctx, key, func(ctx context.Context) (ReturnsData, error) {
		var data ReturnsData
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			list, err := uc.repo.ListProducts(gctx, q, returnsFetchLimit)
			data.Products = list
			return err
		})
		g.Go(func() error {
			list, err := uc.categories.List(gctx)
			data.Categories = list
			return err
		})
		if err := g.Wait(); err != nil {
			return ReturnsData{}, err
		}
		return data, nil
	})
	if err != nil {
		return nil, err
	}

	items := inventory.Filter(res.Value.Products, inventory.Criteria{
		CategoryFilter:    folderID,
		Query:             q,
		MatchCategoryName: true,
	})
	totals := inventory.Aggregate(items)
	return &dto.ReturnsResponse{
		TotalReturns: totals.ReturnedBoxes,
		TotalValue:   totals.ReturnedValue,
		Folders:      dto.ToFolderDTOs(res.Value.Categories),
		Items:        dto.ToBoxDTOs(items),
		ViewMeta:     screen.Meta(res),
	}, nil
}

// Create registra la devolución de Quantity unidades de una caja.
func (uc *ReturnUseCase) Create(ctx context.Context, in dto.CreateReturnRequest) error {
	if strings.TrimSpace(in.BoxID) == "" {
		return fmt.Errorf("%w: caja obligatoria", domain.ErrInvalidInput)
	}
	if in.Quantity.Int() < 1 {
		return fmt.Errorf("%w: la cantidad debe ser mayor que 0", domain.ErrInvalidInput)
	}
	return uc.repo.Create(ctx, entity.ReturnRequest{
		ProductID: in.BoxID,
		Quantity:  in.Quantity.Int(),
		Reason:    strings.TrimSpace(in.Reason),
	})
}
