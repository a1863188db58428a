package availability

import (
	"time"

	"cestodamore/internal/calendar"
)

// Status is the top-level verdict of an availability check.
type Status string

const (
	StatusAvailable   Status = "available"
	StatusUnavailable Status = "unavailable"
)

// Reason is the closed set of unavailable outcome kinds. These are not
// errors: each one is a valid terminal state of the validation state
// machine, and each carries an actionable alternative for the agent.
type Reason string

const (
	ReasonNone                       Reason = ""
	ReasonInvalidFormat              Reason = "invalid_format"
	ReasonInvalidTimeFormat          Reason = "invalid_time_format"
	ReasonClosedWeekly               Reason = "closed_weekly"
	ReasonClosedHoliday              Reason = "closed_holiday"
	ReasonNoBusinessHours            Reason = "no_business_hours"
	ReasonNoSlotsLeftToday           Reason = "no_slots_left_today"
	ReasonInterval                   Reason = "interval"
	ReasonTooEarly                   Reason = "too_early"
	ReasonAfterHours                 Reason = "after_hours"
	ReasonInsufficientProductionTime Reason = "insufficient_production_time"
)

// Result is the outcome of a delivery availability check. Population is
// consistent by construction: unavailable results always carry a Reason,
// and an available "today, no time" result always carries SuggestedSlots.
type Result struct {
	Status Status `json:"status"`
	Reason Reason `json:"reason,omitempty"`

	// Echo of the validated request.
	Date string `json:"date,omitempty"`
	Time string `json:"time,omitempty"`

	// The requested day's open windows, when the day itself is workable.
	AvailableWindows []calendar.Window `json:"available_windows,omitempty"`

	// Bookable grid slots for the "today, no time given" case.
	SuggestedSlots []calendar.TimeOfDay `json:"suggested_slots,omitempty"`

	// Alternatives attached to unavailable outcomes.
	HolidayName     string               `json:"holiday_name,omitempty"`
	NextWindowStart *calendar.TimeOfDay  `json:"next_window_start,omitempty"`
	EarliestReady   string               `json:"earliest_ready,omitempty"`
	NextAvailable   *NextAvailableDay    `json:"next_available,omitempty"`
}

// NextAvailableDay describes the fallback day offered whenever the
// requested day or time cannot be booked.
type NextAvailableDay struct {
	Date    string            `json:"date"`
	Weekday string            `json:"weekday"`
	Windows []calendar.Window `json:"windows"`
}

func nextAvailableFrom(day *calendar.OpenDay) *NextAvailableDay {
	if day == nil {
		return nil
	}
	return &NextAvailableDay{
		Date:    day.Date.Format("2006-01-02"),
		Weekday: WeekdayName(day.Weekday),
		Windows: day.Windows,
	}
}

var weekdayNames = map[time.Weekday]string{
	time.Monday:    "segunda-feira",
	time.Tuesday:   "terça-feira",
	time.Wednesday: "quarta-feira",
	time.Thursday:  "quinta-feira",
	time.Friday:    "sexta-feira",
	time.Saturday:  "sábado",
	time.Sunday:    "domingo",
}

// WeekdayName renders a weekday in the shop's language.
func WeekdayName(d time.Weekday) string {
	return weekdayNames[d]
}
