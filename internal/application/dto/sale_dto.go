package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ims-client/internal/domain/entity"
)

// SaleDTO orden de venta.
type SaleDTO struct {
	ID           string          `json:"id"`
	SaleID       string          `json:"sale_id,omitempty"`
	CustomerName string          `json:"customer_name"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Status       string          `json:"status"`
}

// SaleListResponse respuesta de GET /api/sales.
type SaleListResponse struct {
	Sales    []SaleDTO `json:"sales"`
	Statuses []string  `json:"statuses"`
	ViewMeta
}

// UpdateSaleStatusRequest body de PUT /api/sales/:id/status.
type UpdateSaleStatusRequest struct {
	Status string `json:"status"`
}

// ToSaleDTOs convierte la lista; nunca devuelve nil.
func ToSaleDTOs(sales []entity.Sale) []SaleDTO {
	out := make([]SaleDTO, 0, len(sales))
	for _, s := range sales {
		out = append(out, SaleDTO{
			ID:           s.ID,
			SaleID:       s.SaleID,
			CustomerName: s.CustomerName,
			TotalAmount:  s.TotalAmount,
			Status:       s.Status,
		})
	}
	return out
}
