package inventory

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/ims-client/internal/domain"
	"github.com/jhoicas/ims-client/internal/domain/entity"
)

// FilterAll valor que desactiva el filtro de carpeta o de estado.
const FilterAll = "all"

// StatusFilter filtro derivado del estado de una caja. Solo uno activo a la vez.
type StatusFilter string

const (
	StatusAll      StatusFilter = FilterAll
	StatusInStock  StatusFilter = "inStock"
	StatusSold     StatusFilter = "sold"
	StatusReturned StatusFilter = "returned"
)

// ParseStatusFilter valida el filtro recibido del cliente. Vacío equivale a "all".
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch StatusFilter(s) {
	case "", StatusAll:
		return StatusAll, nil
	case StatusInStock, StatusSold, StatusReturned:
		return StatusFilter(s), nil
	default:
		return "", fmt.Errorf("%w: filtro de estado %q", domain.ErrInvalidInput, s)
	}
}

// Criteria parámetros del filtro de cajas.
//
// Orden de aplicación: carpeta → estado → texto.
type Criteria struct {
	CategoryFilter string       // id de carpeta; "all" o vacío = todas
	StatusFilter   StatusFilter // vacío = "all"
	Query          string       // subcadena, sin distinguir mayúsculas

	// StatusAuthoritative: inStock usa Status == "In Stock"; si es false usa Stock > 0.
	StatusAuthoritative bool
	// MatchCategoryName: la búsqueda también compara contra el nombre de la carpeta.
	MatchCategoryName bool
}

// Filter devuelve una lista nueva con las cajas que cumplen todos los criterios,
// conservando el orden de entrada. No modifica products.
func Filter(products []entity.Product, c Criteria) []entity.Product {
	out := ScopeCategory(products, c.CategoryFilter)

	if pred := statusPredicate(c.StatusFilter, c.StatusAuthoritative); pred != nil {
		out = keep(out, pred)
	}

	if c.Query != "" {
		fold := cases.Fold()
		q := fold.String(c.Query)
		out = keep(out, func(p entity.Product) bool {
			if strings.Contains(fold.String(p.Name), q) {
				return true
			}
			return c.MatchCategoryName && strings.Contains(fold.String(p.Category.Name), q)
		})
	}
	return out
}

// ScopeCategory conserva las cajas cuya carpeta resuelta coincide con categoryID.
// Con "all" (o vacío) devuelve una copia completa.
func ScopeCategory(products []entity.Product, categoryID string) []entity.Product {
	if categoryID == "" || categoryID == FilterAll {
		out := make([]entity.Product, len(products))
		copy(out, products)
		return out
	}
	return keep(products, func(p entity.Product) bool {
		id, ok := ResolveCategoryID(p)
		return ok && id == categoryID
	})
}

func statusPredicate(f StatusFilter, authoritative bool) func(entity.Product) bool {
	switch f {
	case StatusInStock:
		if authoritative {
			return func(p entity.Product) bool { return p.Status == entity.StatusInStock }
		}
		return func(p entity.Product) bool { return p.Stock > 0 }
	case StatusSold:
		return func(p entity.Product) bool { return p.Sold > 0 }
	case StatusReturned:
		return func(p entity.Product) bool { return p.Returned > 0 }
	default:
		return nil
	}
}

func keep(products []entity.Product, pred func(entity.Product) bool) []entity.Product {
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

// FilterCategories búsqueda de carpetas por nombre o descripción.
func FilterCategories(categories []entity.Category, query string) []entity.Category {
	out := make([]entity.Category, 0, len(categories))
	fold := cases.Fold()
	q := fold.String(query)
	for _, c := range categories {
		if q == "" ||
			strings.Contains(fold.String(c.Name), q) ||
			strings.Contains(fold.String(c.Description), q) {
			out = append(out, c)
		}
	}
	return out
}

// FilterSales búsqueda de ventas por número de venta (o id) y nombre del cliente.
func FilterSales(sales []entity.Sale, query string) []entity.Sale {
	out := make([]entity.Sale, 0, len(sales))
	fold := cases.Fold()
	q := fold.String(query)
	for _, s := range sales {
		ref := s.SaleID
		if ref == "" {
			ref = s.ID
		}
		if q == "" ||
			strings.Contains(fold.String(ref), q) ||
			strings.Contains(fold.String(s.CustomerName), q) {
			out = append(out, s)
		}
	}
	return out
}
