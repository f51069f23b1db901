package dto

import "github.com/shopspring/decimal"

// ReturnsResponse respuesta de GET /api/returns.
type ReturnsResponse struct {
	TotalReturns int             `json:"total_returns"`
	TotalValue   decimal.Decimal `json:"total_value"`
	Folders      []FolderDTO     `json:"folders"`
	Items        []BoxDTO        `json:"items"`
	ViewMeta
}

// CreateReturnRequest body de POST /api/returns.
type CreateReturnRequest struct {
	BoxID    string `json:"box_id"`
	Quantity Number `json:"quantity"`
	Reason   string `json:"reason"`
}

// ResetResponse resultado de POST /api/data/reset.
type ResetResponse struct {
	SalesDeleted   int `json:"sales_deleted"`
	BoxesDeleted   int `json:"boxes_deleted"`
	FoldersDeleted int `json:"folders_deleted"`
	Failed         int `json:"failed"`
}
