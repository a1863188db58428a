package tools

import (
	"fmt"
	"strings"

	"cestodamore/internal/availability"
	"cestodamore/internal/calendar"
	"cestodamore/internal/freight"
)

func formatWindows(windows []calendar.Window) string {
	parts := make([]string, len(windows))
	for i, w := range windows {
		parts[i] = w.String()
	}
	return strings.Join(parts, " | ")
}

func formatSlots(slots []calendar.TimeOfDay) string {
	parts := make([]string, len(slots))
	for i, s := range slots {
		parts[i] = s.String()
	}
	return strings.Join(parts, ", ")
}

// nextAvailableSuffix renders the standard "come back on X" tail shared by
// every closed-day message.
func nextAvailableSuffix(next *availability.NextAvailableDay) string {
	if next == nil {
		return ""
	}
	return fmt.Sprintf(" O próximo dia disponível é %s (%s), nos horários: %s.",
		next.Weekday, next.Date, formatWindows(next.Windows))
}

// availabilityMessage humanizes an availability result in the assistant's
// voice. Every unavailable outcome points the customer at an alternative.
func availabilityMessage(res *availability.Result) string {
	switch res.Reason {
	case availability.ReasonInvalidFormat:
		return "Data inválida. Informe no formato AAAA-MM-DD (ex: 2025-03-14)."

	case availability.ReasonInvalidTimeFormat:
		return "Horário inválido. Informe no formato HH:MM (ex: 15:30)."

	case availability.ReasonClosedWeekly:
		return "Não realizamos entregas aos domingos 😔" + nextAvailableSuffix(res.NextAvailable)

	case availability.ReasonClosedHoliday:
		return fmt.Sprintf("Estaremos fechados nesta data: %s.", res.HolidayName) +
			nextAvailableSuffix(res.NextAvailable)

	case availability.ReasonNoBusinessHours:
		return "Não temos expediente nesta data." + nextAvailableSuffix(res.NextAvailable)

	case availability.ReasonNoSlotsLeftToday:
		return "Para hoje não conseguimos mais 😔 precisamos de pelo menos 1 hora para preparar tudo com carinho." +
			nextAvailableSuffix(res.NextAvailable)

	case availability.ReasonInterval:
		msg := "Nesse horário estamos em intervalo."
		if res.NextWindowStart != nil {
			msg = fmt.Sprintf("Nesse horário estamos em intervalo. Voltamos às %s.", res.NextWindowStart)
		}
		return fmt.Sprintf("%s Horários do dia: %s.", msg, formatWindows(res.AvailableWindows))

	case availability.ReasonTooEarly:
		msg := "Nesse horário ainda estaremos fechados."
		if len(res.AvailableWindows) > 0 {
			msg = fmt.Sprintf("Nesse horário ainda estaremos fechados. Abrimos às %s.", res.AvailableWindows[0].Open)
		}
		return fmt.Sprintf("%s Horários do dia: %s.", msg, formatWindows(res.AvailableWindows))

	case availability.ReasonAfterHours:
		return fmt.Sprintf("Nesse horário já estaremos fechados. Horários do dia: %s.", formatWindows(res.AvailableWindows)) +
			nextAvailableSuffix(res.NextAvailable)

	case availability.ReasonInsufficientProductionTime:
		return fmt.Sprintf("Precisamos de pelo menos 1 hora de produção 🕐 O horário mais cedo possível hoje é %s.", res.EarliestReady)
	}

	// Available.
	switch {
	case res.Time != "":
		return fmt.Sprintf("Perfeito! Podemos entregar em %s às %s ✅", res.Date, res.Time)
	case len(res.SuggestedSlots) > 0:
		return fmt.Sprintf("Para hoje ainda conseguimos! Horários disponíveis: %s. Qual prefere?", formatSlots(res.SuggestedSlots))
	default:
		return fmt.Sprintf("A data %s está disponível! Horários de entrega: %s. Qual horário prefere?",
			res.Date, formatWindows(res.AvailableWindows))
	}
}

func paymentLabel(m freight.PaymentMethod) string {
	if m == freight.PaymentPix {
		return "PIX"
	}
	return "cartão"
}

func freightMessage(q *freight.Quote) string {
	if q.Fee == 0 {
		return fmt.Sprintf("Boa notícia: a entrega em %s é grátis no PIX! 🎉", q.City)
	}
	return fmt.Sprintf("O frete para %s fica em R$ %.2f no %s.", q.City, q.Fee, paymentLabel(q.PaymentMethod))
}

func freightValidationMessage(code string) string {
	switch code {
	case freight.ErrMissingCity:
		return "Preciso saber a cidade de entrega para calcular o frete."
	case freight.ErrMissingPaymentMethod:
		return "Preciso saber a forma de pagamento (PIX ou cartão) para calcular o frete."
	case freight.ErrInvalidPaymentMethod:
		return "Forma de pagamento não reconhecida. Aceitamos PIX e cartão."
	default:
		return "Não consegui calcular o frete com esses dados."
	}
}
