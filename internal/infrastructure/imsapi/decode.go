package imsapi

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/ims-client/internal/domain/inventory"
)

// listKeys claves bajo las que la API puede envolver una colección.
var listKeys = []string{"products", "categories", "sales", "orders", "returns", "items", "data"}

// decodeList acepta un arreglo directo o un objeto que lo envuelve (paginado).
// Un objeto sin ninguna colección reconocible se interpreta como lista vacía.
func decodeList(body []byte) ([]inventory.RawRecord, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return []inventory.RawRecord{}, nil
	}
	if body[0] == '[' {
		return decodeArray(body)
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(body, &wrapper); err != nil {
		return nil, fmt.Errorf("imsapi: respuesta de lista inválida: %w", err)
	}
	for _, k := range listKeys {
		raw, ok := wrapper[k]
		if !ok {
			continue
		}
		raw = bytes.TrimSpace(raw)
		if len(raw) > 0 && raw[0] == '[' {
			return decodeArray(raw)
		}
	}
	return []inventory.RawRecord{}, nil
}

// decodeArray decodifica elemento a elemento; los elementos que no son objetos se descartan.
func decodeArray(body []byte) ([]inventory.RawRecord, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("imsapi: arreglo inválido: %w", err)
	}
	out := make([]inventory.RawRecord, 0, len(items))
	for _, it := range items {
		var r inventory.RawRecord
		if err := json.Unmarshal(it, &r); err != nil || r == nil {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// decodeRecord decodifica un objeto; si viene envuelto bajo key, lo desenvuelve.
func decodeRecord(body []byte, key string) (inventory.RawRecord, error) {
	var r inventory.RawRecord
	if err := json.Unmarshal(body, &r); err != nil {
		return nil, fmt.Errorf("imsapi: objeto inválido: %w", err)
	}
	if inner, ok := r[key]; ok {
		var nested inventory.RawRecord
		if err := json.Unmarshal(inner, &nested); err == nil && nested != nil {
			return nested, nil
		}
	}
	return r, nil
}
