package analytics

import (
	"context"

	"github.com/jhoicas/ims-client/internal/application/dto"
)

// ReportPDFGenerator puerto para exportar el reporte mensual a PDF.
type ReportPDFGenerator interface {
	GenerateReportPDF(ctx context.Context, report *dto.ReportResponse) ([]byte, error)
}
