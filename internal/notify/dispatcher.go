package notify

import (
	"context"
	"fmt"
	"strings"

	"cestodamore/internal/clock"

	"github.com/rs/zerolog/log"
)

// Priority is the support-alert tier derived from the handoff reason.
type Priority string

const (
	PrioritySuccess  Priority = "success"  // checkout completion
	PriorityMedium   Priority = "medium"   // freight doubts
	PriorityCritical Priority = "critical" // everything else
)

// Emoji renders the tier indicator used in the support-group message.
func (p Priority) Emoji() string {
	switch p {
	case PrioritySuccess:
		return "🟢"
	case PriorityMedium:
		return "🟡"
	default:
		return "🔴"
	}
}

// PriorityFor maps a handoff reason to its alert tier.
func PriorityFor(reason string) Priority {
	switch strings.ToLower(strings.TrimSpace(reason)) {
	case "end_of_checkout":
		return PrioritySuccess
	case "freight_doubt":
		return PriorityMedium
	default:
		return PriorityCritical
	}
}

// reasonDescriptions translate the agent's reason codes for the human
// support team.
var reasonDescriptions = map[string]string{
	"price_manipulation":    "Cliente tentando negociar/reduzir preco",
	"product_unavailable":   "Produto solicitado nao esta no catalogo",
	"complex_customization": "Solicitacao de personalizacao complexa",
	"end_of_checkout":       "Finalizacao de compra - aguardando confirmacao de pagamento",
	"customer_insistence":   "Cliente insistindo apos multiplas recusas",
	"technical_error":       "Erro tecnico no sistema",
	"freight_doubt":         "Duvida sobre frete e entrega",
}

// Request carries everything needed to alert the support team.
type Request struct {
	Reason          string
	CustomerContext string
	CustomerName    string
	CustomerPhone   string
}

// Result is the structured outcome of a notification attempt. Transport
// failures and missing configuration land here as Success=false; they are
// never raised, so the agent can tell the customer support is still being
// reached for.
type Result struct {
	Success   bool     `json:"success"`
	Priority  Priority `json:"priority"`
	MessageID string   `json:"message_id,omitempty"`
	Error     string   `json:"error,omitempty"`
	SentAt    string   `json:"sent_at,omitempty"`
}

// Dispatcher formats and sends priority-tagged support alerts.
type Dispatcher struct {
	client *Client
	clock  clock.Clock
}

// NewDispatcher creates a dispatcher over the Evolution API client.
func NewDispatcher(client *Client, clk clock.Clock) *Dispatcher {
	return &Dispatcher{client: client, clock: clk}
}

// FormatSupportMessage builds the standard support-group message:
// *AJUDA [emoji] - Cliente NOME - NUMERO* followed by the reason
// description and the conversation context.
func FormatSupportMessage(req Request) string {
	emoji := PriorityFor(req.Reason).Emoji()

	name := req.CustomerName
	if name == "" {
		name = "Desconhecido"
	}
	phone := req.CustomerPhone
	if phone == "" {
		phone = "Sem contato"
	}

	description, ok := reasonDescriptions[strings.ToLower(strings.TrimSpace(req.Reason))]
	if !ok {
		description = fmt.Sprintf("Acionamento: %s", req.Reason)
	}
	if req.CustomerContext != "" {
		description += fmt.Sprintf("\n\nContexto: %s", req.CustomerContext)
	}

	return fmt.Sprintf("*AJUDA [%s] - Cliente %s - %s*\n%s", emoji, name, phone, description)
}

// Notify sends the support alert. Always returns a Result; the error
// cases are folded into it.
func (d *Dispatcher) Notify(ctx context.Context, req Request) *Result {
	priority := PriorityFor(req.Reason)
	result := &Result{Priority: priority}

	if !d.client.Configured() {
		log.Warn().Str("reason", req.Reason).Msg("Support notification skipped: Evolution API not configured")
		result.Error = "evolution API configuration missing"
		return result
	}

	message := FormatSupportMessage(req)

	messageID, err := d.client.SendText(ctx, message)
	if err != nil {
		log.Error().
			Err(err).
			Str("reason", req.Reason).
			Str("customer_phone", req.CustomerPhone).
			Msg("Failed to send support notification")
		result.Error = err.Error()
		return result
	}

	result.Success = true
	result.MessageID = messageID
	result.SentAt = d.clock.Now().Format("02/01/2006 15:04")

	log.Info().
		Str("reason", req.Reason).
		Str("priority", string(priority)).
		Str("customer_phone", req.CustomerPhone).
		Msg("Support notification sent")

	return result
}
