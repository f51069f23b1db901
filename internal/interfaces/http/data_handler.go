package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ims-client/internal/application/usecase"
)

// DataHandler operaciones sobre todos los datos del usuario.
type DataHandler struct {
	uc *usecase.ResetUseCase
}

func NewDataHandler(uc *usecase.ResetUseCase) *DataHandler {
	return &DataHandler{uc: uc}
}

// Reset borra ventas, cajas y carpetas en ese orden.
// POST /api/data/reset
//
// Los borrados individuales que fallan se cuentan en failed; la respuesta es 200 igual.
func (h *DataHandler) Reset(c *fiber.Ctx) error {
	out, err := h.uc.ClearAll(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
