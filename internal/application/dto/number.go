package dto

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Number campo numérico de formulario: acepta 12, 12.5, "12" o "". Lo inválido vale 0.
type Number struct {
	d decimal.Decimal
}

// NewNumber construye un Number (tests y clientes Go).
func NewNumber(s string) Number {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Number{}
	}
	return Number{d: d}
}

func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		n.d = decimal.Zero
		return nil
	}
	s := string(b)
	if b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			n.d = decimal.Zero
			return nil
		}
	}
	*n = NewNumber(s)
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(n.d.String()), nil
}

// Int parte entera truncada, nunca negativa.
func (n Number) Int() int {
	if n.d.IsNegative() {
		return 0
	}
	return int(n.d.IntPart())
}

// Decimal valor completo, nunca negativo.
func (n Number) Decimal() decimal.Decimal {
	if n.d.IsNegative() {
		return decimal.Zero
	}
	return n.d
}
