package availability

import (
	"context"
	"time"

	"cestodamore/internal/calendar"
	"cestodamore/internal/clock"
	"cestodamore/pkg/models"

	"github.com/rs/zerolog/log"
)

// BusinessCalendar is the slice of the calendar the engine needs. The
// production implementation is *calendar.Calendar.
type BusinessCalendar interface {
	WindowsFor(date time.Time) []calendar.Window
	HolidayFor(ctx context.Context, date time.Time) (*models.HolidayClosure, error)
	NextOpenDay(ctx context.Context, after time.Time) (*calendar.OpenDay, error)
}

// Policy constants. Kept as named values so the business rule can change
// without touching the state machine.
const (
	// ProductionLeadTime is the minimum delay between order confirmation
	// and the earliest deliverable time.
	ProductionLeadTime = 1 * time.Hour

	// SlotGridStep is the granularity of suggested booking slots.
	SlotGridStep = 30 * time.Minute
)

const dateLayout = "2006-01-02"

// Engine decides whether a (date, optional time) delivery request is
// bookable, and enumerates candidate slots when no time is given.
type Engine struct {
	clock    clock.Clock
	calendar BusinessCalendar
}

// NewEngine creates an availability engine.
func NewEngine(clk clock.Clock, cal BusinessCalendar) *Engine {
	return &Engine{clock: clk, calendar: cal}
}

// Check runs the validation state machine. Malformed inputs and closed
// days come back as typed unavailable results; the error return is
// reserved for downstream failures (closure table unreachable).
func (e *Engine) Check(ctx context.Context, dateStr, timeStr string) (*Result, error) {
	date, err := time.ParseInLocation(dateLayout, dateStr, e.clock.Location())
	if err != nil {
		return &Result{Status: StatusUnavailable, Reason: ReasonInvalidFormat}, nil
	}

	// Sunday fast path, checked before the closure lookup so the weekly
	// closure produces its own reason distinct from holidays.
	if date.Weekday() == time.Sunday {
		next, err := e.calendar.NextOpenDay(ctx, date)
		if err != nil {
			return nil, err
		}
		return &Result{
			Status:        StatusUnavailable,
			Reason:        ReasonClosedWeekly,
			Date:          dateStr,
			NextAvailable: nextAvailableFrom(next),
		}, nil
	}

	closure, err := e.calendar.HolidayFor(ctx, date)
	if err != nil {
		return nil, err
	}
	if closure != nil {
		next, err := e.calendar.NextOpenDay(ctx, date)
		if err != nil {
			return nil, err
		}
		return &Result{
			Status:        StatusUnavailable,
			Reason:        ReasonClosedHoliday,
			Date:          dateStr,
			HolidayName:   closure.Name,
			NextAvailable: nextAvailableFrom(next),
		}, nil
	}

	windows := e.calendar.WindowsFor(date)
	if len(windows) == 0 {
		// Shouldn't happen after the Sunday and holiday checks, but the
		// schedule is configuration and configuration can be wrong.
		log.Warn().Str("date", dateStr).Msg("Weekday has no static windows outside the Sunday fast path")
		next, err := e.calendar.NextOpenDay(ctx, date)
		if err != nil {
			return nil, err
		}
		return &Result{
			Status:        StatusUnavailable,
			Reason:        ReasonNoBusinessHours,
			Date:          dateStr,
			NextAvailable: nextAvailableFrom(next),
		}, nil
	}

	now := e.clock.Now()
	if timeStr == "" {
		return e.checkDateOnly(ctx, dateStr, date, windows, now)
	}
	return e.checkDateTime(ctx, dateStr, timeStr, date, windows, now)
}

// checkDateOnly handles requests that name a day but no time. For future
// days the engine never invents a time: it returns the full window list
// and lets the conversation layer ask the customer.
func (e *Engine) checkDateOnly(ctx context.Context, dateStr string, date time.Time, windows []calendar.Window, now time.Time) (*Result, error) {
	if !sameDay(date, now) {
		return &Result{
			Status:           StatusAvailable,
			Date:             dateStr,
			AvailableWindows: windows,
		}, nil
	}

	minReady := now.Add(ProductionLeadTime)
	slots := enumerateSlots(windows, date, minReady, e.clock.Location())
	if len(slots) == 0 {
		next, err := e.calendar.NextOpenDay(ctx, date)
		if err != nil {
			return nil, err
		}
		return &Result{
			Status:        StatusUnavailable,
			Reason:        ReasonNoSlotsLeftToday,
			Date:          dateStr,
			NextAvailable: nextAvailableFrom(next),
		}, nil
	}

	return &Result{
		Status:           StatusAvailable,
		Date:             dateStr,
		AvailableWindows: windows,
		SuggestedSlots:   slots,
	}, nil
}

// checkDateTime validates a single requested instant against the day's
// windows and, for today, the production lead time.
func (e *Engine) checkDateTime(ctx context.Context, dateStr, timeStr string, date time.Time, windows []calendar.Window, now time.Time) (*Result, error) {
	reqTime, err := calendar.ParseTimeOfDay(timeStr)
	if err != nil {
		return &Result{Status: StatusUnavailable, Reason: ReasonInvalidTimeFormat, Date: dateStr}, nil
	}

	first := windows[0]
	last := windows[len(windows)-1]

	switch {
	case reqTime < first.Open:
		next, err := e.calendar.NextOpenDay(ctx, date)
		if err != nil {
			return nil, err
		}
		return &Result{
			Status:           StatusUnavailable,
			Reason:           ReasonTooEarly,
			Date:             dateStr,
			Time:             reqTime.String(),
			AvailableWindows: windows,
			NextAvailable:    nextAvailableFrom(next),
		}, nil

	case reqTime > last.Close:
		next, err := e.calendar.NextOpenDay(ctx, date)
		if err != nil {
			return nil, err
		}
		return &Result{
			Status:           StatusUnavailable,
			Reason:           ReasonAfterHours,
			Date:             dateStr,
			Time:             reqTime.String(),
			AvailableWindows: windows,
			NextAvailable:    nextAvailableFrom(next),
		}, nil
	}

	// Midday break (or any gap between two windows of the same day).
	for i := 0; i < len(windows)-1; i++ {
		if reqTime > windows[i].Close && reqTime < windows[i+1].Open {
			start := windows[i+1].Open
			return &Result{
				Status:           StatusUnavailable,
				Reason:           ReasonInterval,
				Date:             dateStr,
				Time:             reqTime.String(),
				AvailableWindows: windows,
				NextWindowStart:  &start,
			}, nil
		}
	}

	if sameDay(date, now) {
		minReady := now.Add(ProductionLeadTime)
		requested := reqTime.On(date, e.clock.Location())
		if requested.Before(minReady) {
			return &Result{
				Status:           StatusUnavailable,
				Reason:           ReasonInsufficientProductionTime,
				Date:             dateStr,
				Time:             reqTime.String(),
				AvailableWindows: windows,
				EarliestReady:    ceilToMinute(minReady).Format("15:04"),
			}, nil
		}
	}

	return &Result{
		Status:           StatusAvailable,
		Date:             dateStr,
		Time:             reqTime.String(),
		AvailableWindows: windows,
	}, nil
}

// enumerateSlots intersects each static window with [minReady, close] and
// discretizes the surviving sub-windows on the slot grid: the sub-window
// start is rounded up to the nearest :00/:30 boundary, then stepped by 30
// minutes up to and including the window close.
func enumerateSlots(windows []calendar.Window, date time.Time, minReady time.Time, loc *time.Location) []calendar.TimeOfDay {
	gridMinutes := int(SlotGridStep / time.Minute)
	var slots []calendar.TimeOfDay

	for _, w := range windows {
		closeAt := w.Close.On(date, loc)
		if !closeAt.After(minReady) {
			continue
		}

		start := w.Open.On(date, loc)
		if start.Before(minReady) {
			start = minReady
		}

		startMinutes := minuteOfDayCeil(start)
		firstSlot := ((startMinutes + gridMinutes - 1) / gridMinutes) * gridMinutes
		for m := firstSlot; m <= int(w.Close); m += gridMinutes {
			slots = append(slots, calendar.TimeOfDay(m))
		}
	}
	return slots
}

// minuteOfDayCeil converts an instant to its minute-of-day, rounding up
// when the instant has sub-minute precision so a slot never lands before
// the earliest ready time.
func minuteOfDayCeil(t time.Time) int {
	m := t.Hour()*60 + t.Minute()
	if t.Second() > 0 || t.Nanosecond() > 0 {
		m++
	}
	return m
}

func ceilToMinute(t time.Time) time.Time {
	if t.Second() > 0 || t.Nanosecond() > 0 {
		return t.Truncate(time.Minute).Add(time.Minute)
	}
	return t
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
