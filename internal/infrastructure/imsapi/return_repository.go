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

// ReturnRepository implementación de repository.ReturnRepository sobre /returns.
type ReturnRepository struct {
	c *Client
}

func NewReturnRepository(c *Client) *ReturnRepository {
	return &ReturnRepository{c: c}
}

var _ repository.ReturnRepository = (*ReturnRepository)(nil)

// ListProducts cajas con devoluciones registradas.
func (r *ReturnRepository) ListProducts(ctx context.Context, keyword string, limit int) ([]entity.Product, error) {
	params := url.Values{}
	if keyword != "" {
		params.Set("keyword", keyword)
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	body, err := r.c.do(ctx, http.MethodGet, "/returns/products", params, nil)
	if err != nil {
		return nil, fmt.Errorf("listar cajas devueltas: %w", err)
	}
	return decodeProducts(body)
}

func (r *ReturnRepository) Create(ctx context.Context, in entity.ReturnRequest) error {
	if _, err := r.c.do(ctx, http.MethodPost, "/returns", nil, in); err != nil {
		return fmt.Errorf("registrar devolución: %w", err)
	}
	return nil
}

func (r *ReturnRepository) Stats(ctx context.Context) (*entity.ReturnStats, error) {
	body, err := r.c.do(ctx, http.MethodGet, "/returns/stats", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("estadísticas de devoluciones: %w", err)
	}
	rec, err := decodeRecord(body, "stats")
	if err != nil {
		return nil, err
	}
	return &entity.ReturnStats{
		TotalReturns: inventory.Count(rec["totalReturns"]),
		TotalValue:   inventory.Amount(rec["totalValue"]),
	}, nil
}
