package imsapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jhoicas/ims-client/internal/domain/entity"
	"github.com/jhoicas/ims-client/internal/domain/inventory"
	"github.com/jhoicas/ims-client/internal/domain/repository"
)

// CategoryRepository implementación de repository.CategoryRepository sobre /categories.
type CategoryRepository struct {
	c *Client
}

// NewCategoryRepository construye el repositorio de carpetas.
func NewCategoryRepository(c *Client) *CategoryRepository {
	return &CategoryRepository{c: c}
}

var _ repository.CategoryRepository = (*CategoryRepository)(nil)

// List devuelve todas las carpetas.
func (r *CategoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	body, err := r.c.do(ctx, http.MethodGet, "/categories", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("listar carpetas: %w", err)
	}
	records, err := decodeList(body)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Category, 0, len(records))
	for _, rec := range records {
		out = append(out, inventory.NormalizeCategory(rec))
	}
	return out, nil
}

// GetByID devuelve la carpeta o (nil, nil) si no existe.
func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	body, err := r.c.do(ctx, http.MethodGet, "/categories/"+url.PathEscape(id), nil, nil)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("obtener carpeta: %w", err)
	}
	return r.decodeOne(body)
}

func (r *CategoryRepository) Create(ctx context.Context, in repository.CategoryInput) (*entity.Category, error) {
	body, err := r.c.do(ctx, http.MethodPost, "/categories", nil, in)
	if err != nil {
		return nil, fmt.Errorf("crear carpeta: %w", err)
	}
	return r.decodeOne(body)
}

func (r *CategoryRepository) Update(ctx context.Context, id string, in repository.CategoryInput) (*entity.Category, error) {
	body, err := r.c.do(ctx, http.MethodPut, "/categories/"+url.PathEscape(id), nil, in)
	if err != nil {
		return nil, fmt.Errorf("actualizar carpeta: %w", err)
	}
	return r.decodeOne(body)
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.c.do(ctx, http.MethodDelete, "/categories/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("eliminar carpeta: %w", err)
	}
	return nil
}

func (r *CategoryRepository) decodeOne(body []byte) (*entity.Category, error) {
	rec, err := decodeRecord(body, "category")
	if err != nil {
		return nil, err
	}
	c := inventory.NormalizeCategory(rec)
	return &c, nil
}
