package calendar

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		wantErr  bool
	}{
		{"07:30", "07:30", false},
		{"00:00", "00:00", false},
		{"23:59", "23:59", false},
		{"25:00", "", true},
		{"12:60", "", true},
		{"meio-dia", "", true},
		{"", "", true},
	}

	for _, test := range tests {
		got, err := ParseTimeOfDay(test.input)
		if test.wantErr {
			if err == nil {
				t.Errorf("ParseTimeOfDay(%q) expected error, got %s", test.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTimeOfDay(%q) unexpected error: %v", test.input, err)
			continue
		}
		if got.String() != test.expected {
			t.Errorf("ParseTimeOfDay(%q) = %s, expected %s", test.input, got, test.expected)
		}
	}
}

func TestWindowString(t *testing.T) {
	w := Window{Open: MustTime("07:30"), Close: MustTime("12:00")}
	if got := w.String(); got != "07:30 às 12:00" {
		t.Errorf("Window.String() = %q, expected %q", got, "07:30 às 12:00")
	}
}

func TestWindowJSONRoundTrip(t *testing.T) {
	w := Window{Open: MustTime("07:30"), Close: MustTime("12:00")}

	data, err := json.Marshal(w)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"open":"07:30","close":"12:00"}` {
		t.Errorf("marshaled window = %s", data)
	}

	var back Window
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != w {
		t.Errorf("round trip = %+v, expected %+v", back, w)
	}
}

func TestWindowContainsIsInclusive(t *testing.T) {
	w := Window{Open: MustTime("08:00"), Close: MustTime("11:00")}

	tests := []struct {
		time     string
		expected bool
	}{
		{"08:00", true},
		{"11:00", true},
		{"09:30", true},
		{"07:59", false},
		{"11:01", false},
	}

	for _, test := range tests {
		if got := w.Contains(MustTime(test.time)); got != test.expected {
			t.Errorf("Contains(%s) = %v, expected %v", test.time, got, test.expected)
		}
	}
}

func TestDefaultScheduleShape(t *testing.T) {
	s := DefaultSchedule()

	if err := s.Validate(); err != nil {
		t.Fatalf("default schedule failed validation: %v", err)
	}

	if len(s[time.Sunday]) != 0 {
		t.Errorf("sunday should have no windows, got %d", len(s[time.Sunday]))
	}
	if len(s[time.Saturday]) != 1 {
		t.Errorf("saturday should have 1 window, got %d", len(s[time.Saturday]))
	}
	for d := time.Monday; d <= time.Friday; d++ {
		if len(s[d]) != 2 {
			t.Errorf("%s should have 2 windows, got %d", d, len(s[d]))
		}
	}

	sat := s[time.Saturday][0]
	if sat.Open.String() != "08:00" || sat.Close.String() != "11:00" {
		t.Errorf("saturday window = %s, expected 08:00 às 11:00", sat)
	}
}

func TestValidateRejectsBadSchedules(t *testing.T) {
	tests := []struct {
		name     string
		schedule WeeklySchedule
	}{
		{
			"open after close",
			WeeklySchedule{time.Monday: {{Open: MustTime("12:00"), Close: MustTime("08:00")}}},
		},
		{
			"zero-length window",
			WeeklySchedule{time.Monday: {{Open: MustTime("08:00"), Close: MustTime("08:00")}}},
		},
		{
			"overlapping windows",
			WeeklySchedule{time.Monday: {
				{Open: MustTime("08:00"), Close: MustTime("12:00")},
				{Open: MustTime("11:00"), Close: MustTime("17:00")},
			}},
		},
		{
			"out of order windows",
			WeeklySchedule{time.Monday: {
				{Open: MustTime("14:00"), Close: MustTime("17:00")},
				{Open: MustTime("07:30"), Close: MustTime("12:00")},
			}},
		},
	}

	for _, test := range tests {
		if err := test.schedule.Validate(); err == nil {
			t.Errorf("%s: expected validation error", test.name)
		}
	}
}

func TestWindowsForUsesWeekday(t *testing.T) {
	s := DefaultSchedule()

	// 2025-03-16 is a Sunday, 2025-03-17 a Monday.
	sunday := time.Date(2025, time.March, 16, 10, 0, 0, 0, time.UTC)
	monday := time.Date(2025, time.March, 17, 10, 0, 0, 0, time.UTC)

	if got := s.WindowsFor(sunday); len(got) != 0 {
		t.Errorf("sunday windows = %d, expected 0", len(got))
	}
	if got := s.WindowsFor(monday); len(got) != 2 {
		t.Errorf("monday windows = %d, expected 2", len(got))
	}
}
