// Package pdf genera el reporte mensual de inventario en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: "<Mes Año> Report"        │  Carpeta seleccionada   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  MÉTRICAS: cajas / vendidas / devueltas / restantes          │
//	│  VALORES: vendido / devuelto / restante / neto / % devol.    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Caja | SKU | Vend. | Dev. | Stock | Precio | Valor   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: fecha de generación                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jhoicas/ims-client/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 25, Green: 118, Blue: 210}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorSold    = &props.Color{Red: 46, Green: 125, Blue: 50}
	colorReturn  = &props.Color{Red: 237, Green: 108, Blue: 2}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// currencyPrefix la fuente estándar de PDF no tiene el glifo de la rupia.
const currencyPrefix = "INR "

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa analytics.ReportPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	printer *message.Printer
	now     func() time.Time
}

// NewMarotoPDFGenerator construye el generador. locale (BCP 47) define la
// agrupación de miles; si no se reconoce se usa en-IN.
func NewMarotoPDFGenerator(locale string) *MarotoPDFGenerator {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse("en-IN")
	}
	return &MarotoPDFGenerator{printer: message.NewPrinter(tag), now: time.Now}
}

// GenerateReportPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateReportPDF(_ context.Context, r *dto.ReportResponse) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("pdf: reporte vacío")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(r.MonthLabel+" Report", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.countsRow(r))
	m.AddRows(g.valuesRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, rw := range g.tableDetailRows(r.Items) {
		m.AddRows(rw)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(g.footerRow(r))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título con el mes (izq) y carpeta (der).
func headerRow(r *dto.ReportResponse) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(r.MonthLabel+" Report", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(5).Add(
			text.New("FOLDER", props.Text{
				Style: fontstyle.Bold, Size: 7, Align: align.Right, Color: colorGray, Top: 2,
			}),
			text.New(r.FolderLabel, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
		),
	)
}

// countsRow: cuatro tarjetas con los conteos.
func (g *MarotoPDFGenerator) countsRow(r *dto.ReportResponse) core.Row {
	t := r.Totals
	return row.New(16).Add(
		metricCol("Total boxes", g.printer.Sprint(number.Decimal(t.TotalBoxes)), colorPrimary),
		metricCol("Sold", g.printer.Sprint(number.Decimal(t.SoldBoxes)), colorSold),
		metricCol("Returned", g.printer.Sprint(number.Decimal(t.ReturnedBoxes)), colorReturn),
		metricCol("Remaining", g.printer.Sprint(number.Decimal(t.RemainingBoxes)), colorGray),
	)
}

// valuesRow: valores monetarios redondeados a dos decimales.
func (g *MarotoPDFGenerator) valuesRow(r *dto.ReportResponse) core.Row {
	t := r.Totals.Rounded()
	return row.New(16).Add(
		metricCol("Sold value", g.money(t.SoldValue), colorSold),
		metricCol("Returned value", g.money(t.ReturnedValue), colorReturn),
		metricCol("Net value", g.money(t.NetValue), colorPrimary),
		metricCol("Return rate", g.fixed(t.ReturnRate)+"%", colorGray),
	)
}

func metricCol(label, value string, c *props.Color) core.Col {
	return col.New(3).Add(
		text.New(label, props.Text{Size: 7, Color: colorGray, Top: 2, Align: align.Center}),
		text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Color: c, Top: 7, Align: align.Center}),
	)
}

// tableHeaderRow: cabecera de la tabla de cajas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
		h("Box", 3, align.Left),
		h("SKU", 3, align.Left),
		h("Sold", 1, align.Center),
		h("Ret.", 1, align.Center),
		h("Stock", 1, align.Center),
		h("Price", 1, align.Right),
		h("Sold value", 2, align.Right),
	)
}

// tableDetailRows: una fila por caja.
func (g *MarotoPDFGenerator) tableDetailRows(items []dto.BoxDTO) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, b := range items {
		soldValue := b.Price.Mul(decimal.NewFromInt(int64(b.Sold)))
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(nonEmpty(b.Name, "-"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(nonEmpty(b.SKU, "-"), props.Text{Size: 7, Top: 1, Left: 1, Color: colorGray})),
			col.New(1).Add(text.New(fmt.Sprint(b.Sold), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(fmt.Sprint(b.Returned), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(fmt.Sprint(b.Stock), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(g.fixed(b.Price), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(g.money(soldValue), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	if len(result) == 0 {
		result = append(result, row.New(8).Add(col.New(12).Add(
			text.New("No boxes in this folder", props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 2}),
		)))
	}
	return result
}

func (g *MarotoPDFGenerator) footerRow(r *dto.ReportResponse) core.Row {
	label := "Generated " + g.now().Format("02 Jan 2006 15:04")
	if r.Stale {
		label += " (last known data)"
	}
	return row.New(6).Add(col.New(12).Add(
		text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1, Align: align.Right}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// fixed dos decimales con la agrupación de miles del locale.
func (g *MarotoPDFGenerator) fixed(d decimal.Decimal) string {
	return g.printer.Sprint(number.Decimal(d.Round(2).InexactFloat64(), number.Scale(2)))
}

func (g *MarotoPDFGenerator) money(d decimal.Decimal) string {
	return currencyPrefix + g.fixed(d)
}
