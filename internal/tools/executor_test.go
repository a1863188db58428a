package tools

import (
	"context"
	"errors"
	"strings"
	"testing"

	"cestodamore/internal/availability"
	"cestodamore/internal/calendar"
)

// pureExecutor has no backing services; only tools that never touch the
// database or the network can be called on it.
func pureExecutor() *Executor {
	return NewExecutor(nil, nil, nil, nil, nil, nil)
}

func TestDefinitionsCoverEveryTool(t *testing.T) {
	expected := []string{
		ToolValidateDeliveryAvailability,
		ToolCalculateFreight,
		ToolNotifyHumanSupport,
		ToolSaveCustomerSummary,
		ToolBlockSession,
		ToolGetActiveHolidays,
		ToolSearchProducts,
		ToolGetAdicionais,
		ToolSearchGuidelines,
		ToolGetServiceGuideline,
		ToolGetCurrentBusinessHours,
	}

	names := Names()
	if len(names) != len(expected) {
		t.Fatalf("registry has %d tools, expected %d", len(names), len(expected))
	}

	seen := map[string]bool{}
	for _, n := range names {
		if seen[n] {
			t.Errorf("duplicate tool name %q", n)
		}
		seen[n] = true
	}
	for _, n := range expected {
		if !seen[n] {
			t.Errorf("missing tool %q", n)
		}
	}
}

func TestExecuteUnknownTool(t *testing.T) {
	_, err := pureExecutor().Execute(context.Background(), "fly_to_the_moon", nil)
	if !errors.Is(err, ErrUnknownTool) {
		t.Errorf("error = %v, expected ErrUnknownTool", err)
	}
}

func TestExecuteCalculateFreight(t *testing.T) {
	res, err := pureExecutor().Execute(context.Background(), ToolCalculateFreight, map[string]interface{}{
		"city":           "Campina Grande",
		"payment_method": "pix",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(res.Message, "grátis") {
		t.Errorf("free local PIX delivery message missing: %q", res.Message)
	}

	rendered := res.Render()
	if !strings.HasPrefix(rendered, "```json\n") {
		t.Errorf("rendered response should open with a JSON block: %q", rendered)
	}
	if !strings.Contains(rendered, `"fee": 0`) {
		t.Errorf("rendered response missing fee: %q", rendered)
	}
	if !strings.Contains(rendered, res.Message) {
		t.Errorf("rendered response missing humanized message: %q", rendered)
	}
}

func TestExecuteCalculateFreightValidation(t *testing.T) {
	tests := []struct {
		name     string
		args     map[string]interface{}
		wantCode string
	}{
		{"no city", map[string]interface{}{"payment_method": "pix"}, "missing_city"},
		{"no payment", map[string]interface{}{"city": "Campina Grande"}, "missing_payment_method"},
		{"bad payment", map[string]interface{}{"city": "Campina Grande", "payment_method": "cheque"}, "invalid_payment_method"},
	}

	for _, test := range tests {
		res, err := pureExecutor().Execute(context.Background(), ToolCalculateFreight, test.args)
		if err != nil {
			t.Errorf("%s: validation must be an outcome, not an error: %v", test.name, err)
			continue
		}
		data, ok := res.Data.(map[string]interface{})
		if !ok {
			t.Errorf("%s: data type = %T", test.name, res.Data)
			continue
		}
		if data["success"] != false {
			t.Errorf("%s: success = %v, expected false", test.name, data["success"])
		}
		if data["error"] != test.wantCode {
			t.Errorf("%s: error = %v, expected %s", test.name, data["error"], test.wantCode)
		}
	}
}

func TestExecuteSearchGuidelines(t *testing.T) {
	res, err := pureExecutor().Execute(context.Background(), ToolSearchGuidelines, map[string]interface{}{
		"query": "entrega domingo",
		// Extra automation-platform noise must be ignored.
		"sessionId": "abc",
		"chatInput": "pode entregar domingo?",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data := res.Data.(map[string]interface{})
	if data["total"].(int) == 0 {
		t.Error("expected guideline matches for delivery query")
	}
}

func TestExecuteGetServiceGuideline(t *testing.T) {
	res, err := pureExecutor().Execute(context.Background(), ToolGetServiceGuideline, map[string]interface{}{
		"category": "delivery_rules",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data := res.Data.(map[string]interface{})
	if data["category"] != "delivery_rules" {
		t.Errorf("category = %v", data["category"])
	}
	content, _ := data["content"].(string)
	if !strings.Contains(content, "Domingo") {
		t.Error("delivery rules should mention the Sunday closure")
	}
}

func TestExecuteGetServiceGuidelineUnknown(t *testing.T) {
	res, err := pureExecutor().Execute(context.Background(), ToolGetServiceGuideline, map[string]interface{}{
		"category": "astrologia",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data := res.Data.(map[string]interface{})
	if data["error"] != "unknown_category" {
		t.Errorf("error = %v, expected unknown_category", data["error"])
	}
	if _, ok := data["available_categories"]; !ok {
		t.Error("expected the category list in the failure payload")
	}
}

func TestArgHelpers(t *testing.T) {
	args := map[string]interface{}{
		"text":       "olá",
		"number":     42.5,
		"numeric":    "19.9",
		"flag":       true,
		"flagString": "true",
		"wrongType":  []int{1},
	}

	if got := stringArg(args, "text"); got != "olá" {
		t.Errorf("stringArg = %q", got)
	}
	if got := stringArg(args, "missing"); got != "" {
		t.Errorf("stringArg(missing) = %q, expected empty", got)
	}
	if got := stringArg(args, "wrongType"); got != "" {
		t.Errorf("stringArg(wrongType) = %q, expected empty", got)
	}
	if got := floatArg(args, "number"); got != 42.5 {
		t.Errorf("floatArg = %v", got)
	}
	if got := floatArg(args, "numeric"); got != 19.9 {
		t.Errorf("floatArg(string) = %v", got)
	}
	if got := floatArg(args, "missing"); got != 0 {
		t.Errorf("floatArg(missing) = %v, expected 0", got)
	}
	if !boolArg(args, "flag") || !boolArg(args, "flagString") {
		t.Error("boolArg should accept bool and \"true\"")
	}
	if boolArg(args, "missing") {
		t.Error("boolArg(missing) should be false")
	}
}

func TestTextArgSerializesStructuredValues(t *testing.T) {
	args := map[string]interface{}{
		"prose": "Cliente quer a cesta amanhã",
		"structured": map[string]interface{}{
			"produto": "Cesta Premium",
			"valor":   189.9,
		},
		"list": []interface{}{"rosas", "chocolate"},
	}

	if got := textArg(args, "prose"); got != "Cliente quer a cesta amanhã" {
		t.Errorf("textArg(prose) = %q", got)
	}
	if got := textArg(args, "missing"); got != "" {
		t.Errorf("textArg(missing) = %q, expected empty", got)
	}

	structured := textArg(args, "structured")
	if !strings.Contains(structured, `"produto":"Cesta Premium"`) {
		t.Errorf("structured context lost in translation: %q", structured)
	}
	if got := textArg(args, "list"); got != `["rosas","chocolate"]` {
		t.Errorf("textArg(list) = %q", got)
	}
}

func TestAvailabilityMessages(t *testing.T) {
	windows := []calendar.Window{
		{Open: calendar.MustTime("07:30"), Close: calendar.MustTime("12:00")},
		{Open: calendar.MustTime("14:00"), Close: calendar.MustTime("17:00")},
	}
	next := &availability.NextAvailableDay{
		Date:    "2025-03-17",
		Weekday: "segunda-feira",
		Windows: windows,
	}

	tests := []struct {
		name     string
		result   *availability.Result
		wantPart string
	}{
		{
			"sunday",
			&availability.Result{Status: availability.StatusUnavailable, Reason: availability.ReasonClosedWeekly, NextAvailable: next},
			"domingos",
		},
		{
			"sunday alternative",
			&availability.Result{Status: availability.StatusUnavailable, Reason: availability.ReasonClosedWeekly, NextAvailable: next},
			"segunda-feira (2025-03-17)",
		},
		{
			"holiday",
			&availability.Result{Status: availability.StatusUnavailable, Reason: availability.ReasonClosedHoliday, HolidayName: "Natal", NextAvailable: next},
			"Natal",
		},
		{
			"lead time",
			&availability.Result{Status: availability.StatusUnavailable, Reason: availability.ReasonInsufficientProductionTime, EarliestReady: "10:00"},
			"10:00",
		},
		{
			"available with time",
			&availability.Result{Status: availability.StatusAvailable, Date: "2025-03-17", Time: "15:00"},
			"15:00",
		},
		{
			"available future day",
			&availability.Result{Status: availability.StatusAvailable, Date: "2025-03-17", AvailableWindows: windows},
			"07:30 às 12:00 | 14:00 às 17:00",
		},
		{
			"today slots",
			&availability.Result{
				Status:         availability.StatusAvailable,
				Date:           "2025-03-14",
				SuggestedSlots: []calendar.TimeOfDay{calendar.MustTime("10:00"), calendar.MustTime("10:30")},
			},
			"10:00, 10:30",
		},
	}

	for _, test := range tests {
		msg := availabilityMessage(test.result)
		if !strings.Contains(msg, test.wantPart) {
			t.Errorf("%s: message %q missing %q", test.name, msg, test.wantPart)
		}
	}
}

func TestIntervalMessagePointsAtReopening(t *testing.T) {
	start := calendar.MustTime("14:00")
	msg := availabilityMessage(&availability.Result{
		Status:          availability.StatusUnavailable,
		Reason:          availability.ReasonInterval,
		NextWindowStart: &start,
		AvailableWindows: []calendar.Window{
			{Open: calendar.MustTime("07:30"), Close: calendar.MustTime("12:00")},
			{Open: calendar.MustTime("14:00"), Close: calendar.MustTime("17:00")},
		},
	})
	if !strings.Contains(msg, "Voltamos às 14:00") {
		t.Errorf("interval message missing reopening time: %q", msg)
	}
}
