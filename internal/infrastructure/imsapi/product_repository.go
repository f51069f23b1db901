package imsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jhoicas/ims-client/internal/domain/entity"
	"github.com/jhoicas/ims-client/internal/domain/inventory"
	"github.com/jhoicas/ims-client/internal/domain/repository"
)

// ProductRepository implementación de repository.ProductRepository sobre /products.
type ProductRepository struct {
	c *Client
}

// NewProductRepository construye el repositorio de cajas.
func NewProductRepository(c *Client) *ProductRepository {
	return &ProductRepository{c: c}
}

var _ repository.ProductRepository = (*ProductRepository)(nil)

// productBody cuerpo de escritura; la API espera price como número JSON.
type productBody struct {
	Name       string      `json:"name"`
	SKU        string      `json:"sku,omitempty"`
	Category   string      `json:"category"`
	TotalStock int         `json:"totalStock"`
	Sold       int         `json:"sold"`
	Returned   int         `json:"returned"`
	Price      json.Number `json:"price"`
}

func newProductBody(in repository.ProductInput) productBody {
	return productBody{
		Name:       in.Name,
		SKU:        in.SKU,
		Category:   in.CategoryID,
		TotalStock: in.TotalStock,
		Sold:       in.Sold,
		Returned:   in.Returned,
		Price:      json.Number(in.Price.String()),
	}
}

// List lista cajas. Los parámetros vacíos no se envían.
func (r *ProductRepository) List(ctx context.Context, q repository.ProductQuery) ([]entity.Product, error) {
	params := url.Values{}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Keyword != "" {
		params.Set("keyword", q.Keyword)
	}
	if q.StartDate != "" {
		params.Set("startDate", q.StartDate)
	}
	if q.EndDate != "" {
		params.Set("endDate", q.EndDate)
	}

	body, err := r.c.do(ctx, http.MethodGet, "/products", params, nil)
	if err != nil {
		return nil, fmt.Errorf("listar cajas: %w", err)
	}
	return decodeProducts(body)
}

// GetByID devuelve la caja o (nil, nil) si no existe.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	body, err := r.c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id), nil, nil)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("obtener caja: %w", err)
	}
	return decodeProduct(body)
}

func (r *ProductRepository) Create(ctx context.Context, in repository.ProductInput) (*entity.Product, error) {
	body, err := r.c.do(ctx, http.MethodPost, "/products", nil, newProductBody(in))
	if err != nil {
		return nil, fmt.Errorf("crear caja: %w", err)
	}
	return decodeProduct(body)
}

func (r *ProductRepository) Update(ctx context.Context, id string, in repository.ProductInput) (*entity.Product, error) {
	body, err := r.c.do(ctx, http.MethodPut, "/products/"+url.PathEscape(id), nil, newProductBody(in))
	if err != nil {
		return nil, fmt.Errorf("actualizar caja: %w", err)
	}
	return decodeProduct(body)
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.c.do(ctx, http.MethodDelete, "/products/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("eliminar caja: %w", err)
	}
	return nil
}

// Stats totales globales de /products/stats.
func (r *ProductRepository) Stats(ctx context.Context) (*entity.ProductStats, error) {
	body, err := r.c.do(ctx, http.MethodGet, "/products/stats", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("estadísticas de cajas: %w", err)
	}
	rec, err := decodeRecord(body, "stats")
	if err != nil {
		return nil, err
	}
	return &entity.ProductStats{
		TotalStockAdded: inventory.Count(rec["totalStockAdded"]),
		TotalSold:       inventory.Count(rec["totalSold"]),
		TotalReturned:   inventory.Count(rec["totalReturned"]),
		TotalRemaining:  inventory.Count(rec["totalRemaining"]),
	}, nil
}

func decodeProducts(body []byte) ([]entity.Product, error) {
	records, err := decodeList(body)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Product, 0, len(records))
	for _, rec := range records {
		out = append(out, inventory.NormalizeProduct(rec))
	}
	return out, nil
}

func decodeProduct(body []byte) (*entity.Product, error) {
	rec, err := decodeRecord(body, "product")
	if err != nil {
		return nil, err
	}
	p := inventory.NormalizeProduct(rec)
	return &p, nil
}
