package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/ims-client/internal/application/analytics"
)

// AnalyticsHandler maneja los endpoints de reportes mensuales y búsqueda por fechas.
type AnalyticsHandler struct {
	reports *appanalytics.ReportUseCase
	search  *appanalytics.SearchUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(reports *appanalytics.ReportUseCase, search *appanalytics.SearchUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{reports: reports, search: search}
}

// GetReport godoc
// @Summary      Reporte mensual del inventario
// @Description  Totales de cajas, vendidas, devueltas y restantes con sus valores.
// @Description  category vacío o "all" agrega todas las carpetas.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        category  query  string  false  "id de carpeta o all"
// @Success      200  {object}  dto.ReportResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/reports [get]
func (h *AnalyticsHandler) GetReport(c *fiber.Ctx) error {
	report, err := h.reports.Build(c.UserContext(), c.Query("category"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}

// GetReportPDF godoc
// @Summary      Reporte mensual en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        category  query  string  false  "id de carpeta o all"
// @Success      200
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/reports/pdf [get]
func (h *AnalyticsHandler) GetReportPDF(c *fiber.Ctx) error {
	pdfBytes, report, err := h.reports.ExportPDF(c.UserContext(), c.Query("category"))
	if err != nil {
		return respondError(c, err)
	}
	filename := strings.ReplaceAll(strings.ToLower(report.MonthLabel), " ", "-")
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="report-%s.pdf"`, filename))
	return c.Send(pdfBytes)
}

// Search godoc
// @Summary      Búsqueda por rango de fechas
// @Description  Rango vacío = mes en curso. Los totales cubren todo el rango;
// @Description  la lista aplica los filtros de carpeta y estado.
// @Tags         search
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Param        category    query  string  false  "id de carpeta o all"
// @Param        status      query  string  false  "all, inStock, sold, returned"
// @Success      200  {object}  dto.SearchResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/search [get]
func (h *AnalyticsHandler) Search(c *fiber.Ctx) error {
	res, err := h.search.Search(c.UserContext(), appanalytics.SearchRequest{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		FolderID:  c.Query("category"),
		Status:    c.Query("status"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}
