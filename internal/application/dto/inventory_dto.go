package dto

import (
	"github.com/jhoicas/ims-client/internal/domain/entity"
	"github.com/jhoicas/ims-client/internal/domain/inventory"
)

// FolderDTO carpeta del inventario.
type FolderDTO struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Description         string `json:"description"`
	ProductCount        *int   `json:"product_count,omitempty"`
	TotalRemainingStock *int   `json:"total_remaining_stock,omitempty"`
}

// FolderRequest body de creación/edición de carpeta.
type FolderRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// FolderListResponse respuesta de GET /api/folders.
type FolderListResponse struct {
	Folders []FolderDTO `json:"folders"`
	ViewMeta
}

// FolderItemsResponse respuesta de GET /api/folders/:id/boxes.
type FolderItemsResponse struct {
	Folder FolderDTO        `json:"folder"`
	Totals inventory.Totals `json:"totals"`
	Items  []BoxDTO         `json:"items"`
	ViewMeta
}

// ToFolderDTO convierte la entidad.
func ToFolderDTO(c entity.Category) FolderDTO {
	return FolderDTO{
		ID:                  c.ID,
		Name:                c.Name,
		Description:         c.Description,
		ProductCount:        c.ProductCount,
		TotalRemainingStock: c.TotalRemainingStock,
	}
}

// ToFolderDTOs convierte la lista; nunca devuelve nil.
func ToFolderDTOs(categories []entity.Category) []FolderDTO {
	out := make([]FolderDTO, 0, len(categories))
	for _, c := range categories {
		out = append(out, ToFolderDTO(c))
	}
	return out
}
