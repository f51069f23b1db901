package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ims-client/internal/application/dto"
	"github.com/jhoicas/ims-client/internal/application/usecase"
)

// ReturnHandler maneja la pantalla de devoluciones.
type ReturnHandler struct {
	uc *usecase.ReturnUseCase
}

// NewReturnHandler construye el handler.
func NewReturnHandler(uc *usecase.ReturnUseCase) *ReturnHandler {
	return &ReturnHandler{uc: uc}
}

// List godoc
// @Summary      Cajas con devoluciones
// @Tags         returns
// @Security     Bearer
// @Produce      json
// @Param        q         query  string  false  "Búsqueda por nombre de caja o carpeta"
// @Param        category  query  string  false  "id de carpeta o all"
// @Success      200  {object}  dto.ReturnsResponse
// @Router       /api/returns [get]
func (h *ReturnHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("q"), c.Query("category"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar devolución
// @Tags         returns
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReturnRequest  true  "box_id, quantity, reason"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/returns [post]
func (h *ReturnHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReturnRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.Create(c.UserContext(), in); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "devolución registrada"})
}
