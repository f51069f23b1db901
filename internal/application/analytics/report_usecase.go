package analytics

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/ims-client/internal/application/dto"
	"github.com/jhoicas/ims-client/internal/application/screen"
	"github.com/jhoicas/ims-client/internal/domain/entity"
	"github.com/jhoicas/ims-client/internal/domain/inventory"
	"github.com/jhoicas/ims-client/internal/domain/repository"
)

const (
	reportFetchLimit = 1000 // cajas que pide la pantalla de reportes

	AllFoldersLabel     = "All folders"
	SelectedFolderLabel = "Selected"
)

// ReportData cajas y carpetas de una carga de reportes o de búsqueda.
type ReportData struct {
	Products   []entity.Product
	Categories []entity.Category
}

// ReportUseCase reporte mensual filtrable por carpeta.
type ReportUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	state      *screen.Store[ReportData]
	pdf        ReportPDFGenerator
	now        func() time.Time
}

// NewReportUseCase construye el caso de uso. pdf puede ser nil si no se exporta.
func NewReportUseCase(products repository.ProductRepository, categories repository.CategoryRepository, state *screen.Store[ReportData], pdf ReportPDFGenerator) *ReportUseCase {
	return &ReportUseCase{products: products, categories: categories, state: state, pdf: pdf, now: time.Now}
}

// Build pide en paralelo cajas y carpetas y agrega las cajas de la carpeta indicada.
// folderID vacío o "all" agrega todo.
func (uc *ReportUseCase) Build(ctx context.Context, folderID string) (*dto.ReportResponse, error) {
	if folderID == "" {
		folderID = inventory.FilterAll
	}

	res, err := uc.state.Load(ctx, screen.Key(screen.SessionFrom(ctx), "reports"), func(ctx context.Context) (ReportData, error) {
		var data ReportData
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			list, err := uc.products.List(gctx, repository.ProductQuery{Limit: reportFetchLimit})
			data.Products = list
			return err
		})
		g.Go(func() error {
			list, err := uc.categories.List(gctx)
			data.Categories = list
			return err
		})
		if err := g.Wait(); err != nil {
			return ReportData{}, err
		}
		return data, nil
	})
	if err != nil {
		return nil, err
	}

	scoped := inventory.ScopeCategory(res.Value.Products, folderID)
	return &dto.ReportResponse{
		MonthLabel:  MonthLabel(uc.now()),
		FolderID:    folderID,
		FolderLabel: FolderLabel(res.Value.Categories, folderID),
		Totals:      inventory.Aggregate(scoped),
		Folders:     dto.ToFolderDTOs(res.Value.Categories),
		Items:       dto.ToBoxDTOs(scoped),
		ViewMeta:    screen.Meta(res),
	}, nil
}

// ExportPDF construye el reporte de la carpeta y lo exporta a PDF.
func (uc *ReportUseCase) ExportPDF(ctx context.Context, folderID string) ([]byte, *dto.ReportResponse, error) {
	if uc.pdf == nil {
		return nil, nil, fmt.Errorf("reporte: exportación PDF no configurada")
	}
	report, err := uc.Build(ctx, folderID)
	if err != nil {
		return nil, nil, err
	}
	pdfBytes, err := uc.pdf.GenerateReportPDF(ctx, report)
	if err != nil {
		return nil, nil, fmt.Errorf("reporte: generar PDF: %w", err)
	}
	return pdfBytes, report, nil
}

// MonthLabel ej: "October 2026".
func MonthLabel(t time.Time) string {
	return t.Format("January 2006")
}

// FolderLabel nombre de la carpeta seleccionada para el encabezado del reporte.
func FolderLabel(categories []entity.Category, folderID string) string {
	if folderID == "" || folderID == inventory.FilterAll {
		return AllFoldersLabel
	}
	for _, c := range categories {
		if c.ID == folderID && c.Name != "" {
			return c.Name
		}
	}
	return SelectedFolderLabel
}
