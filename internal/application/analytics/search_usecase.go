package analytics

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/ims-client/internal/application/dto"
	"github.com/jhoicas/ims-client/internal/application/screen"
	"github.com/jhoicas/ims-client/internal/domain/inventory"
	"github.com/jhoicas/ims-client/internal/domain/repository"
)

// SearchRequest parámetros de GET /api/search.
type SearchRequest struct {
	StartDate string
	EndDate   string
	FolderID  string
	Status    string
}

// SearchUseCase búsqueda de cajas por rango de fechas.
// El rango se resuelve en el servidor; aquí solo se agrega y se filtra lo recibido.
type SearchUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	state      *screen.Store[ReportData]
	now        func() time.Time
}

func NewSearchUseCase(products repository.ProductRepository, categories repository.CategoryRepository, state *screen.Store[ReportData]) *SearchUseCase {
	return &SearchUseCase{products: products, categories: categories, state: state, now: time.Now}
}

// Search sin fechas usa el mes en curso. Totals cubre todo el rango;
// Items aplica carpeta y estado (inStock = stock > 0). Folders alimenta el selector de carpeta.
func (uc *SearchUseCase) Search(ctx context.Context, in SearchRequest) (*dto.SearchResponse, error) {
	rng, err := inventory.NewDateRange(in.StartDate, in.EndDate, uc.now())
	if err != nil {
		return nil, err
	}
	sf, err := inventory.ParseStatusFilter(in.Status)
	if err != nil {
		return nil, err
	}

	key := screen.Key(screen.SessionFrom(ctx), "search", rng.Start, rng.End)
	res, err := uc.state.Load(ctx, key, func(ctx context.Context) (ReportData, error) {
		var data ReportData
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			list, err := uc.products.List(gctx, repository.ProductQuery{StartDate: rng.Start, EndDate: rng.End})
			data.Products = list
			return err
		})
		g.Go(func() error {
			list, err := uc.categories.List(gctx)
			data.Categories = list
			return err
		})
		if err := g.Wait(); err != nil {
			return ReportData{}, err
		}
		return data, nil
	})
	if err != nil {
		return nil, err
	}

	items := inventory.Filter(res.Value.Products, inventory.Criteria{
		CategoryFilter: in.FolderID,
		StatusFilter:   sf,
	})
	return &dto.SearchResponse{
		Range:    rng,
		Totals:   inventory.Aggregate(res.Value.Products),
		Folders:  dto.ToFolderDTOs(res.Value.Categories),
		Items:    dto.ToBoxDTOs(items),
		ViewMeta: screen.Meta(res),
	}, nil
}
