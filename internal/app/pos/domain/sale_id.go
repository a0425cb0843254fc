package domain

import (
	"fmt"
	"math/rand"
	"time"
)

// MaxSaleIDLen bounds the sale id column.
const MaxSaleIDLen = 15

// NewSaleID generates a sale id from the current time and a random component,
// formatted "<unix seconds>-<3 digits>" (14 characters for contemporary
// timestamps). Collisions are possible when two sales start in the same
// second; callers retry with a fresh random component on a duplicate-key
// insert failure.
func NewSaleID(now time.Time, r *rand.Rand) string {
	return fmt.Sprintf("%d-%03d", now.Unix(), 100+r.Intn(900))
}
