package dto

import "github.com/jhoicas/ims-client/internal/domain/inventory"

// ReportResponse respuesta de GET /api/reports.
type ReportResponse struct {
	MonthLabel  string           `json:"month_label"`  // ej: "October 2026"
	FolderID    string           `json:"folder_id"`    // "all" o id de carpeta
	FolderLabel string           `json:"folder_label"` // "All folders", nombre o "Selected"
	Totals      inventory.Totals `json:"totals"`
	Folders     []FolderDTO      `json:"folders"`
	Items       []BoxDTO         `json:"items"`
	ViewMeta
}

// SearchResponse respuesta de GET /api/search.
// Totals se calcula sobre todo el rango; Items refleja los filtros de carpeta y estado.
type SearchResponse struct {
	Range   inventory.DateRange `json:"range"`
	Totals  inventory.Totals    `json:"totals"`
	Folders []FolderDTO         `json:"folders"`
	Items   []BoxDTO            `json:"items"`
	ViewMeta
}
