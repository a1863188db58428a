package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Client talks to an Evolution API instance (WhatsApp gateway). One
// outbound call per notification, bounded timeout, no retry: a timeout is
// surfaced to the caller as a failure result, never masked.
type Client struct {
	baseURL    string
	apiKey     string
	instance   string
	chatID     string
	httpClient *http.Client
}

// NewClientFromEnv reads the Evolution API settings. Missing values are
// not fatal here; Configured() gates the send path so the tool can answer
// with a structured failure instead of crashing.
func NewClientFromEnv() *Client {
	return &Client{
		baseURL:  strings.TrimRight(os.Getenv("EVOLUTION_API_URL"), "/"),
		apiKey:   os.Getenv("EVOLUTION_API_KEY"),
		instance: os.Getenv("EVOLUTION_API_INSTANCE"),
		chatID:   os.Getenv("SUPPORT_CHAT_ID"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Configured reports whether every required setting is present.
func (c *Client) Configured() bool {
	return c.baseURL != "" && c.apiKey != "" && c.instance != "" && c.chatID != ""
}

type sendTextRequest struct {
	Number string `json:"number"`
	Text   string `json:"text"`
}

type sendTextResponse struct {
	Message struct {
		Key struct {
			ID string `json:"id"`
		} `json:"key"`
	} `json:"message"`
	Error interface{} `json:"error,omitempty"`
}

// SendText posts a text message to the configured support chat.
// Endpoint format: POST {base}/message/sendText/{instance}; the Evolution
// API authenticates with an "apikey" header, not Authorization.
func (c *Client) SendText(ctx context.Context, message string) (string, error) {
	if !c.Configured() {
		return "", fmt.Errorf("evolution API configuration missing")
	}

	endpoint := fmt.Sprintf("%s/message/sendText/%s", c.baseURL, c.instance)

	body, err := json.Marshal(sendTextRequest{Number: c.chatID, Text: message})
	if err != nil {
		return "", fmt.Errorf("failed to encode message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call evolution API: %w", err)
	}
	defer resp.Body.Close()

	var parsed sendTextResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		// A 200 with an unparseable body still means the message left.
		if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated {
			return "", nil
		}
		return "", fmt.Errorf("evolution API returned HTTP %d", resp.StatusCode)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Error().
			Int("status_code", resp.StatusCode).
			Str("endpoint", endpoint).
			Msg("Evolution API rejected notification")
		return "", fmt.Errorf("evolution API returned HTTP %d", resp.StatusCode)
	}

	return parsed.Message.Key.ID, nil
}
