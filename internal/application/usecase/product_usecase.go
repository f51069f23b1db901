package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/ims-client/internal/application/dto"
	"github.com/jhoicas/ims-client/internal/application/screen"
	"github.com/jhoicas/ims-client/internal/domain"
	"github.com/jhoicas/ims-client/internal/domain/entity"
	"github.com/jhoicas/ims-client/internal/domain/inventory"
	"github.com/jhoicas/ims-client/internal/domain/repository"
)

// FolderItems carpeta y todas las cajas recibidas en la misma carga.
type FolderItems struct {
	Folder   entity.Category
	Products []entity.Product
}

// BoxUseCase cajas de una carpeta: listado filtrado y CRUD.
type BoxUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	state      *screen.Store[FolderItems]
	now        func() time.Time
}

// NewBoxUseCase construye el caso de uso.
func NewBoxUseCase(products repository.ProductRepository, categories repository.CategoryRepository, state *screen.Store[FolderItems]) *BoxUseCase {
	return &BoxUseCase{products: products, categories: categories, state: state, now: time.Now}
}

// ListByFolder carga en paralelo la carpeta y las cajas, se queda con las de la carpeta
// y aplica estado (autoritativo: "In Stock") y búsqueda por nombre.
// Totals resume las cajas de la carpeta sin filtros de estado ni texto.
func (uc *BoxUseCase) ListByFolder(ctx context.Context, folderID, q, status string) (*dto.FolderItemsResponse, error) {
	sf, err := inventory.ParseStatusFilter(status)
	if err != nil {
		return nil, err
	}

	res, err := uc.state.Load(ctx, screen.Key(screen.SessionFrom(ctx), "folder-items", folderID), func(ctx context.Context) (FolderItems, error) {
		var out FolderItems
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			c, err := uc.categories.GetByID(gctx, folderID)
			if err != nil {
				return err
			}
			if c == nil {
				return domain.ErrNotFound
			}
			out.Folder = *c
			return nil
		})
		g.Go(func() error {
			list, err := uc.products.List(gctx, repository.ProductQuery{})
			if err != nil {
				return err
			}
			out.Products = inventory.ScopeCategory(list, folderID)
			return nil
		})
		if err := g.Wait(); err != nil {
			return FolderItems{}, err
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}

	items := inventory.Filter(res.Value.Products, inventory.Criteria{
		StatusFilter:        sf,
		Query:               q,
		StatusAuthoritative: true,
	})
	return &dto.FolderItemsResponse{
		Folder:   dto.ToFolderDTO(res.Value.Folder),
		Totals:   inventory.Aggregate(res.Value.Products),
		Items:    dto.ToBoxDTOs(items),
		ViewMeta: screen.Meta(res),
	}, nil
}

// Create crea una caja en la carpeta con SKU generado.
func (uc *BoxUseCase) Create(ctx context.Context, folderID string, in dto.BoxRequest) (*dto.BoxDTO, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre de la caja es obligatorio", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(folderID) == "" {
		return nil, fmt.Errorf("%w: carpeta obligatoria", domain.ErrInvalidInput)
	}
	p, err := uc.products.Create(ctx, boxInput(name, inventory.NewSKU(name, uc.now()), folderID, in))
	if err != nil {
		return nil, err
	}
	out := dto.ToBoxDTO(*p)
	return &out, nil
}

// Update edita la caja conservando su SKU y su carpeta.
func (uc *BoxUseCase) Update(ctx context.Context, id string, in dto.BoxRequest) (*dto.BoxDTO, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre de la caja es obligatorio", domain.ErrInvalidInput)
	}
	current, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	sku := current.SKU
	if sku == "" {
		sku = inventory.NewSKU(name, uc.now())
	}
	p, err := uc.products.Update(ctx, id, boxInput(name, sku, current.Category.ID, in))
	if err != nil {
		return nil, err
	}
	out := dto.ToBoxDTO(*p)
	return &out, nil
}

func (uc *BoxUseCase) Delete(ctx context.Context, id string) error {
	return uc.products.Delete(ctx, id)
}

func boxInput(name, sku, folderID string, in dto.BoxRequest) repository.ProductInput {
	return repository.ProductInput{
		Name:       name,
		SKU:        sku,
		CategoryID: folderID,
		TotalStock: in.TotalStock.Int(),
		Sold:       in.Sold.Int(),
		Returned:   in.Returned.Int(),
		Price:      in.Price.Decimal(),
	}
}
