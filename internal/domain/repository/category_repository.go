package repository

import (
	"context"

	"github.com/jhoicas/ims-client/internal/domain/entity"
)

// CategoryInput campos editables de una carpeta.
type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategoryRepository puerto hacia las carpetas de la API remota.
// El borrado no se propaga a las cajas en el cliente; el servidor es la autoridad.
type CategoryRepository interface {
	List(ctx context.Context) ([]entity.Category, error)
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	Create(ctx context.Context, in CategoryInput) (*entity.Category, error)
	Update(ctx context.Context, id string, in CategoryInput) (*entity.Category, error)
	Delete(ctx context.Context, id string) error
}
