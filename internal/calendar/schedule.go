package calendar

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimeOfDay is a civil wall-clock time (no date, no zone), stored as
// minutes since midnight. Interpreted in the shop's fixed local zone.
type TimeOfDay int

// ParseTimeOfDay parses "HH:MM".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

// MustTime is a compile-time schedule helper; panics on malformed input.
func MustTime(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

// TimeOfDayFrom extracts the wall-clock component of an instant.
func TimeOfDayFrom(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

// String renders "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// MarshalJSON renders the wall-clock form, which is what the agent
// payloads carry.
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// On anchors the wall-clock time to a calendar date in the given location.
func (t TimeOfDay) On(date time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, loc)
}

// Window is a fixed weekly open interval, e.g. Mon 07:30-12:00.
// Both endpoints are inclusive for bookings.
type Window struct {
	Open  TimeOfDay `json:"open"`
	Close TimeOfDay `json:"close"`
}

// Contains reports whether t falls inside the window (inclusive).
func (w Window) Contains(t TimeOfDay) bool {
	return t >= w.Open && t <= w.Close
}

// String renders "07:30 às 12:00".
func (w Window) String() string {
	return fmt.Sprintf("%s às %s", w.Open, w.Close)
}

// WeeklySchedule maps each weekday to its ordered, disjoint open windows.
// An empty list means the shop is closed that day. Immutable once built.
type WeeklySchedule map[time.Weekday][]Window

// DefaultSchedule is the shop's fixed weekly schedule:
// Mon-Fri 07:30-12:00 and 14:00-17:00, Sat 08:00-11:00, Sun closed.
func DefaultSchedule() WeeklySchedule {
	weekday := []Window{
		{Open: MustTime("07:30"), Close: MustTime("12:00")},
		{Open: MustTime("14:00"), Close: MustTime("17:00")},
	}
	return WeeklySchedule{
		time.Monday:    weekday,
		time.Tuesday:   weekday,
		time.Wednesday: weekday,
		time.Thursday:  weekday,
		time.Friday:    weekday,
		time.Saturday:  {{Open: MustTime("08:00"), Close: MustTime("11:00")}},
		time.Sunday:    {},
	}
}

// Validate enforces the schedule invariant: windows per day sorted,
// non-overlapping, and each open strictly before its close.
func (s WeeklySchedule) Validate() error {
	for day, windows := range s {
		for i, w := range windows {
			if w.Open >= w.Close {
				return fmt.Errorf("%s window %d: open %s is not before close %s", day, i, w.Open, w.Close)
			}
			if i > 0 && windows[i-1].Close >= w.Open {
				return fmt.Errorf("%s windows %d and %d overlap or are out of order", day, i-1, i)
			}
		}
	}
	return nil
}

// WindowsFor returns the static windows for the date's weekday.
func (s WeeklySchedule) WindowsFor(date time.Time) []Window {
	return s[date.Weekday()]
}
