package clock

import (
	"os"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultTimezone is the shop's civil timezone (Campina Grande - PB).
// The region has no DST transitions.
const DefaultTimezone = "America/Fortaleza"

// Clock supplies "now" in the shop's fixed civil timezone. Everything
// temporal in the service goes through this interface so that the host's
// own timezone never leaks into date comparisons.
type Clock interface {
	Now() time.Time
	Location() *time.Location
}

// StoreClock is the production clock pinned to the store timezone.
type StoreClock struct {
	loc *time.Location
}

// NewStoreClock builds a clock for the timezone in STORE_TIMEZONE,
// falling back to the Campina Grande default.
func NewStoreClock() *StoreClock {
	tz := os.Getenv("STORE_TIMEZONE")
	if tz == "" {
		tz = DefaultTimezone
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Error().Err(err).Str("timezone", tz).Msg("Failed to load store timezone, falling back to default")
		loc, err = time.LoadLocation(DefaultTimezone)
		if err != nil {
			loc = time.FixedZone("BRT", -3*60*60)
		}
	}

	return &StoreClock{loc: loc}
}

func (c *StoreClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *StoreClock) Location() *time.Location {
	return c.loc
}

// Fixed is a clock frozen at a single instant, used in tests.
type Fixed struct {
	Instant time.Time
}

func (f Fixed) Now() time.Time {
	return f.Instant
}

func (f Fixed) Location() *time.Location {
	return f.Instant.Location()
}
