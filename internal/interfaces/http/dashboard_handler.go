package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/ims-client/internal/application/analytics"
)

// DashboardHandler maneja las tarjetas del dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve los totales globales de stock, vendido, devuelto y restante.
// GET /api/dashboard
//
// Si la API remota falla y hay datos previos responde 200 con stale=true.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
