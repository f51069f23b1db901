package entity

import "github.com/shopspring/decimal"

// Estados de una venta. Cualquier estado puede seguir a cualquier otro.
const (
	SaleStatusPending    = "Pending"
	SaleStatusProcessing = "Processing"
	SaleStatusShipped    = "Shipped"
	SaleStatusCompleted  = "Completed"
	SaleStatusCancelled  = "Cancelled"
)

// SaleStatuses en el orden en que se ofrecen al usuario.
var SaleStatuses = []string{
	SaleStatusPending,
	SaleStatusProcessing,
	SaleStatusShipped,
	SaleStatusCompleted,
	SaleStatusCancelled,
}

// IsValidSaleStatus indica si s es uno de los estados admitidos.
func IsValidSaleStatus(s string) bool {
	for _, st := range SaleStatuses {
		if st == s {
			return true
		}
	}
	return false
}

// Sale representa una orden de venta.
type Sale struct {
	ID           string          `json:"_id"`
	SaleID       string          `json:"saleId,omitempty"`
	CustomerName string          `json:"customerName"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	Status       string          `json:"status"`
}
