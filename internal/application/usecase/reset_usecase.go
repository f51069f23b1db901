package usecase

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/ims-client/internal/application/dto"
	"github.com/jhoicas/ims-client/internal/domain/repository"
	"github.com/jhoicas/ims-client/pkg/logger"
)

const (
	resetSalesLimit    = 1000
	resetProductsLimit = 5000
	resetParallelism   = 8 // borrados simultáneos por fase
)

// ResetUseCase borra todos los datos del usuario: ventas, luego cajas, luego carpetas.
// Un borrado individual fallido se registra y se cuenta, pero no detiene el proceso.
type ResetUseCase struct {
	sales      repository.SaleRepository
	products   repository.ProductRepository
	categories repository.CategoryRepository
	log        *logger.Logger
}

func NewResetUseCase(sales repository.SaleRepository, products repository.ProductRepository, categories repository.CategoryRepository, log *logger.Logger) *ResetUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ResetUseCase{sales: sales, products: products, categories: categories, log: log.WithComponent("reset")}
}

// ClearAll ejecuta las tres fases en orden. Solo falla si no se puede listar una colección.
func (uc *ResetUseCase) ClearAll(ctx context.Context) (*dto.ResetResponse, error) {
	var out dto.ResetResponse
	var failed int64

	sales, err := uc.sales.List(ctx, repository.SaleQuery{Limit: resetSalesLimit})
	if err != nil {
		return nil, fmt.Errorf("listar ventas: %w", err)
	}
	ids := make([]string, 0, len(sales))
	for _, s := range sales {
		ids = append(ids, s.ID)
	}
	out.SalesDeleted = uc.deleteAll(ctx, "venta", ids, uc.sales.Delete, &failed)

	products, err := uc.products.List(ctx, repository.ProductQuery{Limit: resetProductsLimit})
	if err != nil {
		return nil, fmt.Errorf("listar cajas: %w", err)
	}
	ids = ids[:0]
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	out.BoxesDeleted = uc.deleteAll(ctx, "caja", ids, uc.products.Delete, &failed)

	categories, err := uc.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar carpetas: %w", err)
	}
	ids = ids[:0]
	for _, c := range categories {
		ids = append(ids, c.ID)
	}
	out.FoldersDeleted = uc.deleteAll(ctx, "carpeta", ids, uc.categories.Delete, &failed)

	out.Failed = int(failed)
	uc.log.Info().
		Int("sales", out.SalesDeleted).
		Int("boxes", out.BoxesDeleted).
		Int("folders", out.FoldersDeleted).
		Int("failed", out.Failed).
		Msg("datos eliminados")
	return &out, nil
}

// deleteAll borra ids con paralelismo acotado y devuelve cuántos se eliminaron.
func (uc *ResetUseCase) deleteAll(ctx context.Context, kind string, ids []string, del func(context.Context, string) error, failed *int64) int {
	var deleted int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(resetParallelism)
	for _, id := range ids {
		if id == "" {
			continue
		}
		id := id
		g.Go(func() error {
			if err := del(gctx, id); err != nil {
				atomic.AddInt64(failed, 1)
				uc.log.Warn().Err(err).Str("kind", kind).Str("id", id).Msg("no se pudo eliminar")
				return nil
			}
			atomic.AddInt64(&deleted, 1)
			return nil
		})
	}
	_ = g.Wait()
	return int(deleted)
}
