package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ims-client/internal/application/apptest"
	"github.com/jhoicas/ims-client/internal/application/dto"
	"github.com/jhoicas/ims-client/internal/application/screen"
	"github.com/jhoicas/ims-client/internal/domain"
	"github.com/jhoicas/ims-client/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var fixedNow = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

func box(id, folder string, sold, returned, stock int, price string) entity.Product {
	return entity.Product{
		ID:       id,
		Category: entity.CategoryRef{ID: folder},
		Sold:     sold,
		Returned: returned,
		Stock:    stock,
		Price:    decimal.RequireFromString(price),
	}
}

func catalog() []entity.Product {
	return []entity.Product{
		box("p1", "c1", 4, 1, 5, "10"),
		box("p2", "c1", 0, 0, 3, "2.5"),
		box("p3", "c2", 2, 2, 0, "100"),
		box("p4", "", 1, 0, 1, "1"), // sin carpeta
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboard_TotalesDelServidor(t *testing.T) {
	products := &apptest.Products{StatsResult: entity.ProductStats{TotalStockAdded: 50, TotalSold: 20, TotalReturned: 2, TotalRemaining: 32}}
	uc := NewDashboardUseCase(products, screen.NewStore[entity.ProductStats](8, time.Minute, nil))

	res, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 50, res.TotalStockAdded)
	assert.Equal(t, 32, res.TotalRemaining)

	products.StatsErr = domain.ErrUpstream
	res, err = uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Stale)
	assert.Equal(t, 20, res.TotalSold)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reportes
// ──────────────────────────────────────────────────────────────────────────────

func newReport(products *apptest.Products) *ReportUseCase {
	cats := &apptest.Categories{Items: []entity.Category{{ID: "c1", Name: "Norte"}, {ID: "c2", Name: "Sur"}}}
	uc := NewReportUseCase(products, cats, screen.NewStore[ReportData](8, time.Minute, nil), &fakePDF{})
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func TestReport_TodasLasCarpetas(t *testing.T) {
	products := &apptest.Products{Items: catalog()}
	uc := newReport(products)

	res, err := uc.Build(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, "October 2026", res.MonthLabel)
	assert.Equal(t, AllFoldersLabel, res.FolderLabel)
	assert.Equal(t, 4, res.Totals.TotalBoxes, "las cajas sin carpeta cuentan en el total general")
	assert.Equal(t, 7, res.Totals.SoldBoxes)
	assert.Equal(t, 1000, products.Queries[0].Limit)
	assert.Len(t, res.Folders, 2)
}

func TestReport_PorCarpeta(t *testing.T) {
	uc := newReport(&apptest.Products{Items: catalog()})

	res, err := uc.Build(context.Background(), "c1")
	require.NoError(t, err)

	assert.Equal(t, "Norte", res.FolderLabel)
	assert.Equal(t, 2, res.Totals.TotalBoxes)
	assert.Equal(t, 4, res.Totals.SoldBoxes)
	assert.True(t, decimal.RequireFromString("40").Equal(res.Totals.SoldValue))
	assert.True(t, decimal.RequireFromString("30").Equal(res.Totals.NetValue))
	assert.True(t, decimal.RequireFromString("25").Equal(res.Totals.ReturnRate))
}

func TestReport_CarpetaDesconocida(t *testing.T) {
	uc := newReport(&apptest.Products{Items: catalog()})

	res, err := uc.Build(context.Background(), "zz")
	require.NoError(t, err)
	assert.Equal(t, SelectedFolderLabel, res.FolderLabel)
	assert.Equal(t, 0, res.Totals.TotalBoxes)
	assert.True(t, res.Totals.ReturnRate.IsZero())
}

type fakePDF struct {
	got *dto.ReportResponse
	err error
}

func (f *fakePDF) GenerateReportPDF(_ context.Context, r *dto.ReportResponse) ([]byte, error) {
	f.got = r
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.3"), nil
}

func TestReport_ExportPDF(t *testing.T) {
	uc := newReport(&apptest.Products{Items: catalog()})
	gen := uc.pdf.(*fakePDF)

	out, report, err := uc.ExportPDF(context.Background(), "c2")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.3"), out)
	assert.Equal(t, "Sur", report.FolderLabel)
	assert.Same(t, report, gen.got)

	gen.err = errors.New("fuente")
	_, _, err = uc.ExportPDF(context.Background(), "c2")
	assert.Error(t, err)

	uc.pdf = nil
	_, _, err = uc.ExportPDF(context.Background(), "c2")
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Búsqueda por fechas
// ──────────────────────────────────────────────────────────────────────────────

func newSearch(products *apptest.Products) *SearchUseCase {
	uc := NewSearchUseCase(products, &apptest.Categories{Items: []entity.Category{{ID: "c1", Name: "Norte"}, {ID: "c2", Name: "Sur"}}}, screen.NewStore[ReportData](8, time.Minute, nil))
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func TestSearch_MesEnCursoPorDefecto(t *testing.T) {
	products := &apptest.Products{Items: catalog()}
	uc := newSearch(products)

	res, err := uc.Search(context.Background(), SearchRequest{})
	require.NoError(t, err)

	assert.Equal(t, "2026-10-01", res.Range.Start)
	assert.Equal(t, "2026-10-31", res.Range.End)
	assert.Equal(t, "2026-10-01", products.Queries[0].StartDate)
	assert.Equal(t, "2026-10-31", products.Queries[0].EndDate)
	assert.Zero(t, products.Queries[0].Limit)
}

func TestSearch_TotalesSobreTodoElRango(t *testing.T) {
	uc := newSearch(&apptest.Products{Items: catalog()})

	res, err := uc.Search(context.Background(), SearchRequest{
		StartDate: "2026-09-01", EndDate: "2026-09-30", FolderID: "c1", Status: "inStock",
	})
	require.NoError(t, err)

	assert.Equal(t, 4, res.Totals.TotalBoxes, "los totales ignoran los filtros de la lista")
	require.Len(t, res.Folders, 2, "la pantalla recibe las carpetas para el selector")
	assert.Equal(t, "Sur", res.Folders[1].Name)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "p1", res.Items[0].ID)
	assert.Equal(t, "p2", res.Items[1].ID)
}

func TestSearch_InStockUsaStock(t *testing.T) {
	uc := newSearch(&apptest.Products{Items: catalog()})

	res, err := uc.Search(context.Background(), SearchRequest{Status: "inStock"})
	require.NoError(t, err)

	var got []string
	for _, it := range res.Items {
		got = append(got, it.ID)
	}
	assert.Equal(t, []string{"p1", "p2", "p4"}, got, "sin estado autoritativo inStock es stock > 0")
}

func TestSearch_RangoInvalido(t *testing.T) {
	products := &apptest.Products{}
	uc := newSearch(products)

	_, err := uc.Search(context.Background(), SearchRequest{StartDate: "2026-10-31", EndDate: "2026-10-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
	assert.Empty(t, products.Queries, "no se consulta la API con un rango inválido")

	_, err = uc.Search(context.Background(), SearchRequest{Status: "vendido"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
