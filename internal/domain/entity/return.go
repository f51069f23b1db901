package entity

import "github.com/shopspring/decimal"

// ReturnRequest registra unidades devueltas de una caja.
type ReturnRequest struct {
	ProductID string `json:"product"`
	Quantity  int    `json:"quantity"`
	Reason    string `json:"reason,omitempty"`
}

// ReturnStats totales del endpoint /returns/stats.
type ReturnStats struct {
	TotalReturns int             `json:"totalReturns"`
	TotalValue   decimal.Decimal `json:"totalValue"`
}
