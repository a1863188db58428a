package notify

import (
	"strings"
	"testing"
)

func TestPriorityFor(t *testing.T) {
	tests := []struct {
		reason   string
		expected Priority
	}{
		{"end_of_checkout", PrioritySuccess},
		{"freight_doubt", PriorityMedium},
		{"price_manipulation", PriorityCritical},
		{"product_unavailable", PriorityCritical},
		{"technical_error", PriorityCritical},
		{"algo_novo", PriorityCritical},
		{"END_OF_CHECKOUT", PrioritySuccess},
		{"  freight_doubt  ", PriorityMedium},
	}

	for _, test := range tests {
		if got := PriorityFor(test.reason); got != test.expected {
			t.Errorf("PriorityFor(%q) = %s, expected %s", test.reason, got, test.expected)
		}
	}
}

func TestPriorityEmoji(t *testing.T) {
	tests := []struct {
		priority Priority
		expected string
	}{
		{PrioritySuccess, "🟢"},
		{PriorityMedium, "🟡"},
		{PriorityCritical, "🔴"},
	}

	for _, test := range tests {
		if got := test.priority.Emoji(); got != test.expected {
			t.Errorf("Emoji(%s) = %s, expected %s", test.priority, got, test.expected)
		}
	}
}

func TestFormatSupportMessage(t *testing.T) {
	msg := FormatSupportMessage(Request{
		Reason:          "end_of_checkout",
		CustomerContext: "Cesta Premium, entrega amanhã 10:00",
		CustomerName:    "Maria",
		CustomerPhone:   "5583999990000",
	})

	if !strings.HasPrefix(msg, "*AJUDA [🟢] - Cliente Maria - 5583999990000*") {
		t.Errorf("unexpected header: %q", msg)
	}
	if !strings.Contains(msg, "Finalizacao de compra") {
		t.Errorf("missing reason description: %q", msg)
	}
	if !strings.Contains(msg, "Contexto: Cesta Premium, entrega amanhã 10:00") {
		t.Errorf("missing context: %q", msg)
	}
}

func TestFormatSupportMessageDefaults(t *testing.T) {
	msg := FormatSupportMessage(Request{Reason: "freight_doubt"})

	if !strings.Contains(msg, "Cliente Desconhecido - Sem contato") {
		t.Errorf("missing identity defaults: %q", msg)
	}
	if strings.Contains(msg, "Contexto:") {
		t.Errorf("empty context should be omitted: %q", msg)
	}
}

func TestFormatSupportMessageUnknownReason(t *testing.T) {
	msg := FormatSupportMessage(Request{Reason: "pedido_gigante"})

	if !strings.Contains(msg, "[🔴]") {
		t.Errorf("unknown reason should be critical: %q", msg)
	}
	if !strings.Contains(msg, "Acionamento: pedido_gigante") {
		t.Errorf("unknown reason should pass through: %q", msg)
	}
}
