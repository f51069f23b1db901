package inventory

import (
	"fmt"
	"time"

	"github.com/jhoicas/ims-client/internal/domain"
)

// DateLayout formato canónico de fechas enviado a la API (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// DateRange rango de fechas de la búsqueda. La API filtra; el cliente solo lo transporta.
type DateRange struct {
	Start string `json:"start_date"`
	End   string `json:"end_date"`
}

// CurrentMonth rango del primer al último día del mes de now.
func CurrentMonth(now time.Time) DateRange {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	last := first.AddDate(0, 1, -1)
	return DateRange{Start: first.Format(DateLayout), End: last.Format(DateLayout)}
}

// NewDateRange valida formato y que start no sea posterior a end.
// Si ambos vienen vacíos se usa el mes de now.
func NewDateRange(start, end string, now time.Time) (DateRange, error) {
	if start == "" && end == "" {
		return CurrentMonth(now), nil
	}
	if start == "" || end == "" {
		return DateRange{}, fmt.Errorf("%w: se requieren fecha inicial y final", domain.ErrInvalidRange)
	}
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: fecha inicial %q", domain.ErrInvalidRange, start)
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: fecha final %q", domain.ErrInvalidRange, end)
	}
	if s.After(e) {
		return DateRange{}, fmt.Errorf("%w: la fecha inicial no puede ser posterior a la final", domain.ErrInvalidRange)
	}
	return DateRange{Start: start, End: end}, nil
}
