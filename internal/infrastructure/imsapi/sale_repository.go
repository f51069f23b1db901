package imsapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jhoicas/ims-client/internal/domain/entity"
	"github.com/jhoicas/ims-client/internal/domain/inventory"
	"github.com/jhoicas/ims-client/internal/domain/repository"
)

// SaleRepository implementación de repository.SaleRepository sobre /sales.
type SaleRepository struct {
	c *Client
}

func NewSaleRepository(c *Client) *SaleRepository {
	return &SaleRepository{c: c}
}

var _ repository.SaleRepository = (*SaleRepository)(nil)

func (r *SaleRepository) List(ctx context.Context, q repository.SaleQuery) ([]entity.Sale, error) {
	params := url.Values{}
	if q.Keyword != "" {
		params.Set("keyword", q.Keyword)
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	body, err := r.c.do(ctx, http.MethodGet, "/sales", params, nil)
	if err != nil {
		return nil, fmt.Errorf("listar ventas: %w", err)
	}
	records, err := decodeList(body)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Sale, 0, len(records))
	for _, rec := range records {
		out = append(out, inventory.NormalizeSale(rec))
	}
	return out, nil
}

// GetByID devuelve la venta o (nil, nil) si no existe.
func (r *SaleRepository) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	body, err := r.c.do(ctx, http.MethodGet, "/sales/"+url.PathEscape(id), nil, nil)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("obtener venta: %w", err)
	}
	rec, err := decodeRecord(body, "sale")
	if err != nil {
		return nil, err
	}
	s := inventory.NormalizeSale(rec)
	return &s, nil
}

// UpdateStatus envía solo el campo status; el resto de la orden no se toca.
func (r *SaleRepository) UpdateStatus(ctx context.Context, id, status string) error {
	payload := map[string]string{"status": status}
	if _, err := r.c.do(ctx, http.MethodPut, "/sales/"+url.PathEscape(id), nil, payload); err != nil {
		return fmt.Errorf("actualizar estado de venta: %w", err)
	}
	return nil
}

func (r *SaleRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.c.do(ctx, http.MethodDelete, "/sales/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("eliminar venta: %w", err)
	}
	return nil
}
