package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ims-client/internal/application/dto"
	"github.com/jhoicas/ims-client/internal/application/usecase"
)

// FolderHandler maneja las carpetas (categorías) del inventario.
type FolderHandler struct {
	uc *usecase.FolderUseCase
}

// NewFolderHandler construye el handler.
func NewFolderHandler(uc *usecase.FolderUseCase) *FolderHandler {
	return &FolderHandler{uc: uc}
}

// List godoc
// @Summary      Listar carpetas
// @Tags         folders
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  false  "Búsqueda por nombre o descripción"
// @Success      200  {object}  dto.FolderListResponse
// @Router       /api/folders [get]
func (h *FolderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener carpeta
// @Tags         folders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la carpeta"
// @Success      200  {object}  dto.FolderDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/folders/{id} [get]
func (h *FolderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear carpeta
// @Tags         folders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FolderRequest  true  "name, description"
// @Success      201   {object}  dto.FolderDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/folders [post]
func (h *FolderHandler) Create(c *fiber.Ctx) error {
	var in dto.FolderRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar carpeta
// @Tags         folders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la carpeta"
// @Param        body  body  dto.FolderRequest  true  "name, description"
// @Success      200   {object}  dto.FolderDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/folders/{id} [put]
func (h *FolderHandler) Update(c *fiber.Ctx) error {
	var in dto.FolderRequest
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
// @Summary      Eliminar carpeta
// @Tags         folders
// @Security     Bearer
// @Param        id   path  string  true  "ID de la carpeta"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/folders/{id} [delete]
func (h *FolderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
