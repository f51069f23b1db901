package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/ims-client/internal/application/dto"
	"github.com/jhoicas/ims-client/internal/application/screen"
	"github.com/jhoicas/ims-client/internal/domain"
	"github.com/jhoicas/ims-client/internal/domain/entity"
	"github.com/jhoicas/ims-client/internal/domain/inventory"
	"github.com/jhoicas/ims-client/internal/domain/repository"
)

// FolderUseCase listado y CRUD de carpetas.
type FolderUseCase struct {
	repo  repository.CategoryRepository
	state *screen.Store[[]entity.Category]
}

// NewFolderUseCase construye el caso de uso.
func NewFolderUseCase(repo repository.CategoryRepository, state *screen.Store[[]entity.Category]) *FolderUseCase {
	return &FolderUseCase{repo: repo, state: state}
}

// List devuelve las carpetas cuyo nombre o descripción contienen q.
func (uc *FolderUseCase) List(ctx context.Context, q string) (*dto.FolderListResponse, error) {
	res, err := uc.state.Load(ctx, screen.Key(screen.SessionFrom(ctx), "folders"), uc.repo.List)
	if err != nil {
		return nil, err
	}
	return &dto.FolderListResponse{
		Folders:  dto.ToFolderDTOs(inventory.FilterCategories(res.Value, q)),
		ViewMeta: screen.Meta(res),
	}, nil
}

// Get devuelve la carpeta o ErrNotFound.
func (uc *FolderUseCase) Get(ctx context.Context, id string) (*dto.FolderDTO, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.ToFolderDTO(*c)
	return &out, nil
}

func (uc *FolderUseCase) Create(ctx context.Context, in dto.FolderRequest) (*dto.FolderDTO, error) {
	input, err := folderInput(in)
	if err != nil {
		return nil, err
	}
	c, err := uc.repo.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	out := dto.ToFolderDTO(*c)
	return &out, nil
}

func (uc *FolderUseCase) Update(ctx context.Context, id string, in dto.FolderRequest) (*dto.FolderDTO, error) {
	input, err := folderInput(in)
	if err != nil {
		return nil, err
	}
	c, err := uc.repo.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}
	out := dto.ToFolderDTO(*c)
	return &out, nil
}

// Delete elimina la carpeta. Las cajas no se tocan aquí; el servidor decide.
func (uc *FolderUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// folderInput exige nombre tras recortar espacios y aplica la descripción por defecto.
func folderInput(in dto.FolderRequest) (repository.CategoryInput, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return repository.CategoryInput{}, fmt.Errorf("%w: el nombre de la carpeta es obligatorio", domain.ErrInvalidInput)
	}
	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		desc = entity.DefaultCategoryDescription
	}
	return repository.CategoryInput{Name: name, Description: desc}, nil
}
