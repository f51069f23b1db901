package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ims-client/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Totals resumen numérico de un conjunto de cajas (reportes, búsqueda, devoluciones).
// Los valores monetarios se devuelven con precisión completa; el redondeo a dos
// decimales ocurre solo al presentarlos.
type Totals struct {
	TotalBoxes     int             `json:"total_boxes"`
	SoldBoxes      int             `json:"sold_boxes"`
	ReturnedBoxes  int             `json:"returned_boxes"`
	RemainingBoxes int             `json:"remaining_boxes"`
	SoldValue      decimal.Decimal `json:"sold_value"`
	ReturnedValue  decimal.Decimal `json:"returned_value"`
	RemainingValue decimal.Decimal `json:"remaining_value"`
	NetValue       decimal.Decimal `json:"net_value"`
	ReturnRate     decimal.Decimal `json:"return_rate"` // % devuelto sobre vendido
}

// Aggregate reduce la lista de cajas a sus totales. Función pura: lista vacía
// produce todos los totales en cero.
func Aggregate(products []entity.Product) Totals {
	var t Totals
	soldValue := decimal.Zero
	returnedValue := decimal.Zero
	remainingValue := decimal.Zero

	for _, p := range products {
		t.TotalBoxes++
		t.SoldBoxes += p.Sold
		t.ReturnedBoxes += p.Returned
		t.RemainingBoxes += p.Stock

		soldValue = soldValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Sold))))
		returnedValue = returnedValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Returned))))
		remainingValue = remainingValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Stock))))
	}

	t.SoldValue = soldValue
	t.ReturnedValue = returnedValue
	t.RemainingValue = remainingValue
	t.NetValue = soldValue.Sub(returnedValue)
	t.ReturnRate = ReturnRate(t.ReturnedBoxes, t.SoldBoxes)
	return t
}

// AggregateCategory agrega solo las cajas de la carpeta indicada ("all" = todas).
func AggregateCategory(products []entity.Product, categoryID string) Totals {
	return Aggregate(ScopeCategory(products, categoryID))
}

// ReturnRate devuelve returned/sold*100, o 0 si no hay ventas.
func ReturnRate(returned, sold int) decimal.Decimal {
	if sold <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(returned)).
		Div(decimal.NewFromInt(int64(sold))).
		Mul(hundred)
}

// Equal compara dos resúmenes por valor numérico.
func (t Totals) Equal(o Totals) bool {
	return t.TotalBoxes == o.TotalBoxes &&
		t.SoldBoxes == o.SoldBoxes &&
		t.ReturnedBoxes == o.ReturnedBoxes &&
		t.RemainingBoxes == o.RemainingBoxes &&
		t.SoldValue.Equal(o.SoldValue) &&
		t.ReturnedValue.Equal(o.ReturnedValue) &&
		t.RemainingValue.Equal(o.RemainingValue) &&
		t.NetValue.Equal(o.NetValue) &&
		t.ReturnRate.Equal(o.ReturnRate)
}

// Rounded copia con los valores monetarios y la tasa redondeados a dos decimales (presentación).
func (t Totals) Rounded() Totals {
	t.SoldValue = t.SoldValue.Round(2)
	t.ReturnedValue = t.ReturnedValue.Round(2)
	t.RemainingValue = t.RemainingValue.Round(2)
	t.NetValue = t.NetValue.Round(2)
	t.ReturnRate = t.ReturnRate.Round(2)
	return t
}
