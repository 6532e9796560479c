package pricing

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewRequestNumber builds a human-readable request number:
//
//	REQ-<UTC timestamp, second precision, compact>-<6 uppercase hex>
//
// Uniqueness is probabilistic; there is no collision check. The
// timestamp narrows collisions to requests created within the same
// second, and the 24 random bits make those vanishingly unlikely at
// this application's volume.
func NewRequestNumber(now time.Time) string {
	u := uuid.New()
	suffix := strings.ToUpper(hex.EncodeToString(u[:3]))
	return fmt.Sprintf("REQ-%s-%s", now.UTC().Format("20060102150405"), suffix)
}
