package dto

// DashboardResponse respuesta de GET /api/dashboard: tarjetas con los totales globales.
type DashboardResponse struct {
	TotalStockAdded int `json:"total_stock_added"`
	TotalSold       int `json:"total_sold"`
	TotalReturned   int `json:"total_returned"`
	TotalRemaining  int `json:"total_remaining"`
	ViewMeta
}
