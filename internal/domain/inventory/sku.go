package inventory

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewSKU genera el SKU de una caja nueva: <nombre>-<timestamp ms>-<aleatorio>.
func NewSKU(name string, now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:5]
	return FormatSKU(name, now, suffix)
}

// FormatSKU arma el SKU con un sufijo dado.
func FormatSKU(name string, now time.Time, suffix string) string {
	return fmt.Sprintf("%s-%d-%s", strings.TrimSpace(name), now.UnixMilli(), suffix)
}
