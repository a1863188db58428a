package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cestodamore/internal/tools"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func newTestContext(t *testing.T, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}

	req := httptest.NewRequest(method, "/call", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// The handler only needs live services for database-backed tools; the
// freight and guideline paths run on a bare executor.
func newTestHandler() *ToolHandler {
	return NewToolHandler(tools.NewExecutor(nil, nil, nil, nil, nil, nil))
}

func TestHealth(t *testing.T) {
	c, rec := newTestContext(t, http.MethodGet, "")

	if err := newTestHandler().Health(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, expected 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestListTools(t *testing.T) {
	c, rec := newTestContext(t, http.MethodGet, "")

	if err := newTestHandler().ListTools(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var body struct {
		Total int `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body.Total != len(tools.Names()) {
		t.Errorf("total = %d, expected %d", body.Total, len(tools.Names()))
	}
}

func TestCallToolSuccess(t *testing.T) {
	payload := `{"tool":"calculate_freight","arguments":{"city":"Campina Grande","payment_method":"pix"}}`
	c, rec := newTestContext(t, http.MethodPost, payload)

	if err := newTestHandler().CallTool(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Success  bool   `json:"success"`
		Tool     string `json:"tool"`
		Response string `json:"response"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if !body.Success {
		t.Error("expected success")
	}
	if body.Tool != "calculate_freight" {
		t.Errorf("tool = %q", body.Tool)
	}
	if !strings.Contains(body.Response, "```json") {
		t.Errorf("response missing structured block: %q", body.Response)
	}
}

func TestCallToolToleratesExtraFields(t *testing.T) {
	// Automation platforms decorate the payload with routing fields.
	payload := `{"tool":"calculate_freight","sessionId":"n8n-123","chatInput":"frete?","arguments":{"city":"Puxinanã","payment_method":"cartao","sessionId":"n8n-123"}}`
	c, rec := newTestContext(t, http.MethodPost, payload)

	if err := newTestHandler().CallTool(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, expected 200: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"fee": 25`) && !strings.Contains(rec.Body.String(), `"fee":25`) {
		t.Errorf("expected neighboring card fee in body: %s", rec.Body.String())
	}
}

func TestCallToolUnknown(t *testing.T) {
	c, rec := newTestContext(t, http.MethodPost, `{"tool":"fly_to_the_moon","arguments":{}}`)

	if err := newTestHandler().CallTool(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, expected 404", rec.Code)
	}
}

func TestCallToolMissingName(t *testing.T) {
	c, rec := newTestContext(t, http.MethodPost, `{"arguments":{}}`)

	if err := newTestHandler().CallTool(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, expected 400", rec.Code)
	}
}

func TestCallToolMalformedBody(t *testing.T) {
	c, rec := newTestContext(t, http.MethodPost, `{"tool": `)

	if err := newTestHandler().CallTool(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, expected 400", rec.Code)
	}
}
