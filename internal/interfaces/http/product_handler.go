package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ims-client/internal/application/dto"
	"github.com/jhoicas/ims-client/internal/application/usecase"
)

// BoxHandler maneja las cajas (productos) de una carpeta.
type BoxHandler struct {
	uc *usecase.BoxUseCase
}

// NewBoxHandler construye el handler.
func NewBoxHandler(uc *usecase.BoxUseCase) *BoxHandler {
	return &BoxHandler{uc: uc}
}

// ListByFolder godoc
// @Summary      Cajas de una carpeta
// @Description  Totales de toda la carpeta; la lista aplica búsqueda y estado.
// @Tags         boxes
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID de la carpeta"
// @Param        q       query  string  false  "Búsqueda por nombre"
// @Param        status  query  string  false  "all, inStock, sold, returned"
// @Success      200  {object}  dto.FolderItemsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/folders/{id}/boxes [get]
func (h *BoxHandler) ListByFolder(c *fiber.Ctx) error {
	out, err := h.uc.ListByFolder(c.UserContext(), c.Params("id"), c.Query("q"), c.Query("status"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear caja en la carpeta
// @Description  El SKU se genera a partir del nombre.
// @Tags         boxes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la carpeta"
// @Param        body  body  dto.BoxRequest  true  "Datos de la caja"
// @Success      201   {object}  dto.BoxDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/folders/{id}/boxes [post]
func (h *BoxHandler) Create(c *fiber.Ctx) error {
	var in dto.BoxRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar caja
// @Tags         boxes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la caja"
// @Param        body  body  dto.BoxRequest  true  "Datos de la caja"
// @Success      200   {object}  dto.BoxDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/boxes/{id} [put]
func (h *BoxHandler) Update(c *fiber.Ctx) error {
	var in dto.BoxRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar caja
// @Tags         boxes
// @Security     Bearer
// @Param        id   path  string  true  "ID de la caja"
// @Success      204
// @Router       /api/boxes/{id} [delete]
func (h *BoxHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
