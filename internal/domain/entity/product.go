package entity

import "github.com/shopspring/decimal"

// Estados de stock asignados por el servidor. El cliente nunca los recalcula.
const (
	StatusInStock    = "In Stock"
	StatusLowStock   = "Low Stock"
	StatusOutOfStock = "Out of Stock"
)

// CategoryRef referencia ya normalizada a la carpeta de un producto.
// La API puede enviar la categoría embebida ({_id, name, ...}) o solo su id;
// ID queda vacío si no se pudo resolver.
type CategoryRef struct {
	ID   string `json:"_id,omitempty"`
	Name string `json:"name,omitempty"`
}

// Product representa una caja ("box") del inventario.
// Stock = TotalStock - Sold + Returned, mantenido por el servidor.
type Product struct {
	ID         string          `json:"_id"`
	Name       string          `json:"name"`
	SKU        string          `json:"sku"`
	Category   CategoryRef     `json:"category"`
	TotalStock int             `json:"totalStock"`
	Sold       int             `json:"sold"`
	Returned   int             `json:"returned"`
	Stock      int             `json:"stock"`
	Price      decimal.Decimal `json:"price"`
	Status     string          `json:"status"`
}

// ProductStats totales del endpoint /products/stats (tarjetas del dashboard).
type ProductStats struct {
	TotalStockAdded int `json:"totalStockAdded"`
	TotalSold       int `json:"totalSold"`
	TotalReturned   int `json:"totalReturned"`
	TotalRemaining  int `json:"totalRemaining"`
}
