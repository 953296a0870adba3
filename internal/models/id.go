package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewID generates an entity id of the form <kind>_<unixmilli>_<suffix>.
// The suffix is drawn from a v4 UUID rather than math/rand so ids stay
// unique even when many are minted within the same millisecond.
func NewID(kind string) string {
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("%s_%d_%s", kind, time.Now().UnixMilli(), suffix)
}

// MonthID derives the natural key of a month from its year and zero-based
// month index. Creating a month that already exists is therefore a no-op
// by construction.
func MonthID(year, month int) string {
	return fmt.Sprintf("month_%d_%d", year, month)
}
