package order

import (
	"fmt"
	"strings"

	"storefront/internal/clock"

	"github.com/google/uuid"
)

// NewID returns ORD-<unix millis>-<8 hex chars>.
func NewID(c clock.Clock) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("ORD-%d-%s", c.Now().UnixMilli(), suffix)
}
