package entity

// Category representa una carpeta del inventario ("folder" en la UI).
// ProductCount y TotalRemainingStock los calcula el servidor; pueden venir vacíos.
type Category struct {
	ID                  string `json:"_id"`
	Name                string `json:"name"`
	Description         string `json:"description"`
	ProductCount        *int   `json:"productCount,omitempty"`
	TotalRemainingStock *int   `json:"totalRemainingStock,omitempty"`
}

// DefaultCategoryDescription descripción por defecto al crear una carpeta sin descripción.
const DefaultCategoryDescription = "Configure folders"
