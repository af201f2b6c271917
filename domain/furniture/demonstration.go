package furniture

import (
	"time"

	"github.com/google/uuid"
)

// Demonstration is the immutable record of one client-routine run:
// which variant was exercised and the two sentences it produced.
type Demonstration struct {
	ID        uuid.UUID
	Variant   Variant
	SleepLine string
	SitLine   string
	At        time.Time
}
