package inventory

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ims-client/internal/domain/entity"
)

// RawRecord registro JSON tal como lo devuelve la API remota, campo a campo.
// Se decodifica así para que un campo mal formado no invalide el registro completo.
type RawRecord map[string]json.RawMessage

// NormalizeProduct convierte un registro crudo en un Product canónico.
// Nunca falla: campos ausentes, nulos o con tipo inesperado quedan en su valor cero.
func NormalizeProduct(r RawRecord) entity.Product {
	return entity.Product{
		ID:         recordID(r),
		Name:       text(r["name"]),
		SKU:        text(r["sku"]),
		Category:   NormalizeCategoryRef(r["category"]),
		TotalStock: count(r["totalStock"]),
		Sold:       count(r["sold"]),
		Returned:   count(r["returned"]),
		Stock:      count(r["stock"]),
		Price:      amount(r["price"]),
		Status:     text(r["status"]),
	}
}

// NormalizeCategory convierte un registro crudo en una Category.
func NormalizeCategory(r RawRecord) entity.Category {
	return entity.Category{
		ID:                  recordID(r),
		Name:                text(r["name"]),
		Description:         text(r["description"]),
		ProductCount:        optionalCount(r["productCount"]),
		TotalRemainingStock: optionalCount(r["totalRemainingStock"]),
	}
}

// NormalizeSale convierte un registro crudo en una Sale.
// El nombre del cliente puede venir como customerName o customer (texto u objeto).
func NormalizeSale(r RawRecord) entity.Sale {
	customer := text(r["customerName"])
	if customer == "" {
		customer = text(r["customer"])
	}
	if customer == "" {
		if obj := object(r["customer"]); obj != nil {
			customer = text(obj["name"])
		}
	}
	return entity.Sale{
		ID:           recordID(r),
		SaleID:       text(r["saleId"]),
		CustomerName: customer,
		TotalAmount:  amount(r["totalAmount"]),
		Status:       text(r["status"]),
	}
}

// NormalizeCategoryRef reduce el campo category (objeto embebido o id suelto)
// a una referencia canónica. Cualquier otra forma produce un CategoryRef vacío.
func NormalizeCategoryRef(raw json.RawMessage) entity.CategoryRef {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return entity.CategoryRef{}
	}
	switch raw[0] {
	case '"':
		return entity.CategoryRef{ID: text(raw)}
	case '{':
		obj := object(raw)
		return entity.CategoryRef{ID: recordID(obj), Name: text(obj["name"])}
	default:
		return entity.CategoryRef{}
	}
}

// ResolveCategoryID devuelve el id de carpeta del producto y si pudo resolverse.
func ResolveCategoryID(p entity.Product) (string, bool) {
	if p.Category.ID == "" {
		return "", false
	}
	return p.Category.ID, true
}

func recordID(r RawRecord) string {
	if id := text(r["_id"]); id != "" {
		return id
	}
	return text(r["id"])
}

func object(raw json.RawMessage) RawRecord {
	var obj RawRecord
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil
	}
	return obj
}

// text acepta strings y números (ids numéricos); el resto se trata como vacío.
func text(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

// count acepta números (se redondean) y strings numéricos; el resto vale 0.
// Los valores fuera del rango de int se saturan.
func count(raw json.RawMessage) int {
	n, ok := number(raw)
	if !ok {
		return 0
	}
	r := math.Round(n)
	switch {
	case r >= math.MaxInt:
		return math.MaxInt
	case r <= math.MinInt:
		return math.MinInt
	}
	return int(r)
}

func optionalCount(raw json.RawMessage) *int {
	if _, ok := number(raw); !ok {
		return nil
	}
	n := count(raw)
	return &n
}

func number(raw json.RawMessage) (float64, bool) {
	s := strings.TrimSpace(text(raw))
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// amount conserva la precisión completa del valor recibido.
func amount(raw json.RawMessage) decimal.Decimal {
	s := strings.TrimSpace(text(raw))
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Text, Count y Amount exponen las conversiones tolerantes para payloads sueltos
// (estadísticas, respuesta de login) que no son productos, carpetas ni ventas.
func Text(raw json.RawMessage) string { return text(raw) }

func Count(raw json.RawMessage) int { return count(raw) }

func Amount(raw json.RawMessage) decimal.Decimal { return amount(raw) }
