package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ims-client/internal/domain/entity"
)

// BoxDTO caja tal como la ve el cliente del gateway.
type BoxDTO struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	SKU        string          `json:"sku"`
	FolderID   string          `json:"folder_id,omitempty"`
	FolderName string          `json:"folder_name,omitempty"`
	TotalStock int             `json:"total_stock"`
	Sold       int             `json:"sold"`
	Returned   int             `json:"returned"`
	Stock      int             `json:"stock"`
	Price      decimal.Decimal `json:"price"`
	Status     string          `json:"status"`
}

// BoxRequest body de creación/edición de una caja.
// Los contadores aceptan números o texto numérico; vacío o inválido vale 0.
type BoxRequest struct {
	Name       string `json:"name"`
	TotalStock Number `json:"total_stock"`
	Sold       Number `json:"sold"`
	Returned   Number `json:"returned"`
	Price      Number `json:"price"`
}

// ToBoxDTO convierte la entidad.
func ToBoxDTO(p entity.Product) BoxDTO {
	return BoxDTO{
		ID:         p.ID,
		Name:       p.Name,
		SKU:        p.SKU,
		FolderID:   p.Category.ID,
		FolderName: p.Category.Name,
		TotalStock: p.TotalStock,
		Sold:       p.Sold,
		Returned:   p.Returned,
		Stock:      p.Stock,
		Price:      p.Price,
		Status:     p.Status,
	}
}

// ToBoxDTOs convierte la lista; nunca devuelve nil.
func ToBoxDTOs(products []entity.Product) []BoxDTO {
	out := make([]BoxDTO, 0, len(products))
	for _, p := range products {
		out = append(out, ToBoxDTO(p))
	}
	return out
}
