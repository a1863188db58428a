package calendar

import (
	"context"
	"fmt"
	"time"

	"cestodamore/pkg/models"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Calendar answers "is the shop open on this date" questions by combining
// the static weekly schedule with the live holiday closure table. Closure
// lookups are never cached: a closure registered by staff mid-conversation
// must take effect on the very next validation call.
type Calendar struct {
	db       *gorm.DB
	schedule WeeklySchedule
}

// New builds a calendar over the given schedule. The schedule is validated
// once here; it is immutable afterwards.
func New(db *gorm.DB, schedule WeeklySchedule) (*Calendar, error) {
	if err := schedule.Validate(); err != nil {
		return nil, fmt.Errorf("invalid weekly schedule: %w", err)
	}
	return &Calendar{db: db, schedule: schedule}, nil
}

// Schedule exposes the immutable weekly schedule.
func (c *Calendar) Schedule() WeeklySchedule {
	return c.schedule
}

// WindowsFor returns the static windows for the date's weekday.
func (c *Calendar) WindowsFor(date time.Time) []Window {
	return c.schedule.WindowsFor(date)
}

// HolidayFor returns the active closure covering the date, or nil.
// Closures are assumed non-overlapping; when they do overlap, the oldest
// row wins (first-by-insertion, ordered by created_at).
func (c *Calendar) HolidayFor(ctx context.Context, date time.Time) (*models.HolidayClosure, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	var closure models.HolidayClosure
	err := c.db.WithContext(ctx).
		Where("is_active = ? AND start_date <= ? AND end_date >= ?", true, day, day).
		Order("created_at ASC").
		First(&closure).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query holiday closures: %w", err)
	}
	return &closure, nil
}

// ActiveHolidays lists closures that are still current or upcoming as of
// the given date, ordered by start date.
func (c *Calendar) ActiveHolidays(ctx context.Context, from time.Time) ([]models.HolidayClosure, error) {
	day := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)

	var closures []models.HolidayClosure
	err := c.db.WithContext(ctx).
		Where("is_active = ? AND end_date >= ?", true, day).
		Order("start_date ASC").
		Find(&closures).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list holiday closures: %w", err)
	}
	return closures, nil
}

// maxScanDays bounds the forward scan so a misconfigured calendar (every
// day closed) surfaces as an error instead of spinning forever.
const maxScanDays = 366

// OpenDay is the answer to "when are you open next".
type OpenDay struct {
	Date    time.Time
	Weekday time.Weekday
	Windows []Window
}

// NextOpenDay scans forward day-by-day from the day after `after` until it
// finds a weekday with non-empty static windows and no active closure.
func (c *Calendar) NextOpenDay(ctx context.Context, after time.Time) (*OpenDay, error) {
	for i := 1; i <= maxScanDays; i++ {
		candidate := after.AddDate(0, 0, i)
		windows := c.schedule.WindowsFor(candidate)
		if len(windows) == 0 {
			continue
		}

		closure, err := c.HolidayFor(ctx, candidate)
		if err != nil {
			return nil, err
		}
		if closure != nil {
			log.Debug().
				Str("date", candidate.Format("2006-01-02")).
				Str("holiday", closure.Name).
				Msg("Skipping closed day while searching next open day")
			continue
		}

		return &OpenDay{
			Date:    time.Date(candidate.Year(), candidate.Month(), candidate.Day(), 0, 0, 0, 0, candidate.Location()),
			Weekday: candidate.Weekday(),
			Windows: windows,
		}, nil
	}
	return nil, fmt.Errorf("no open day found within %d days after %s", maxScanDays, after.Format("2006-01-02"))
}
