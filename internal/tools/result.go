package tools

import (
	"encoding/json"
	"fmt"
)

// Result is a tool outcome in two layers: Data is the machine-readable
// payload the agent reasons over, Message is the humanized Portuguese
// rendering it can forward to the customer.
type Result struct {
	Data    interface{} `json:"data"`
	Message string      `json:"message,omitempty"`
}

// Render produces the hybrid response body: a fenced JSON block with the
// structured payload, followed by the humanized message.
func (r *Result) Render() string {
	payload, err := json.MarshalIndent(r.Data, "", "  ")
	if err != nil {
		payload = []byte("{}")
	}
	if r.Message == "" {
		return fmt.Sprintf("```json\n%s\n```", payload)
	}
	return fmt.Sprintf("```json\n%s\n```\n\n%s", payload, r.Message)
}

// failure builds the structured payload used when a tool cannot complete
// its job for a business reason (not a transport fault).
func failure(code, message string) *Result {
	return &Result{
		Data: map[string]interface{}{
			"success": false,
			"error":   code,
		},
		Message: message,
	}
}
