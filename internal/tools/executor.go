package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cestodamore/internal/availability"
	"cestodamore/internal/calendar"
	"cestodamore/internal/catalog"
	"cestodamore/internal/clock"
	"cestodamore/internal/freight"
	"cestodamore/internal/guidelines"
	"cestodamore/internal/memory"
	"cestodamore/internal/notify"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ErrUnknownTool marks calls to a name outside the registry.
var ErrUnknownTool = errors.New("unknown tool")

// Executor routes a tool call to the service that implements it.
type Executor struct {
	clock      clock.Clock
	calendar   *calendar.Calendar
	engine     *availability.Engine
	dispatcher *notify.Dispatcher
	memory     *memory.Service
	catalog    *catalog.Repository
}

// NewExecutor wires the tool surface over the domain services.
func NewExecutor(
	clk clock.Clock,
	cal *calendar.Calendar,
	engine *availability.Engine,
	dispatcher *notify.Dispatcher,
	mem *memory.Service,
	cat *catalog.Repository,
) *Executor {
	return &Executor{
		clock:      clk,
		calendar:   cal,
		engine:     engine,
		dispatcher: dispatcher,
		memory:     mem,
		catalog:    cat,
	}
}

// Execute runs one tool call. Arguments arrive as a decoded JSON object;
// unknown extra fields (sessionId, chatInput and friends injected by
// automation platforms) are ignored. The error return is reserved for
// downstream faults; bad input always comes back as a structured Result.
func (e *Executor) Execute(ctx context.Context, name string, args map[string]interface{}) (*Result, error) {
	log.Debug().Str("tool", name).Msg("Executing tool call")

	switch name {
	case ToolValidateDeliveryAvailability:
		return e.validateDeliveryAvailability(ctx, args)
	case ToolCalculateFreight:
		return e.calculateFreight(args)
	case ToolNotifyHumanSupport:
		return e.notifyHumanSupport(ctx, args)
	case ToolSaveCustomerSummary:
		return e.saveCustomerSummary(ctx, args)
	case ToolBlockSession:
		return e.blockSession(ctx, args)
	case ToolGetActiveHolidays:
		return e.getActiveHolidays(ctx)
	case ToolSearchProducts:
		return e.searchProducts(ctx, args)
	case ToolGetAdicionais:
		return e.getAdicionais(ctx)
	case ToolSearchGuidelines:
		return e.searchGuidelines(args)
	case ToolGetServiceGuideline:
		return e.getServiceGuideline(args)
	case ToolGetCurrentBusinessHours:
		return e.getCurrentBusinessHours()
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
}

func (e *Executor) validateDeliveryAvailability(ctx context.Context, args map[string]interface{}) (*Result, error) {
	date := stringArg(args, "date")
	timeStr := stringArg(args, "time")

	res, err := e.engine.Check(ctx, date, timeStr)
	if err != nil {
		return nil, err
	}
	return &Result{Data: res, Message: availabilityMessage(res)}, nil
}

func (e *Executor) calculateFreight(args map[string]interface{}) (*Result, error) {
	city := stringArg(args, "city")
	payment := stringArg(args, "payment_method")

	quote, err := freight.Calculate(city, payment)
	if err != nil {
		var verr *freight.ValidationError
		if errors.As(err, &verr) {
			return failure(verr.Code, freightValidationMessage(verr.Code)), nil
		}
		return nil, err
	}
	return &Result{Data: quote, Message: freightMessage(quote)}, nil
}

func (e *Executor) notifyHumanSupport(ctx context.Context, args map[string]interface{}) (*Result, error) {
	req := notify.Request{
		Reason:          stringArg(args, "reason"),
		CustomerContext: textArg(args, "customer_context"),
		CustomerName:    stringArg(args, "customer_name"),
		CustomerPhone:   stringArg(args, "customer_phone"),
	}
	if req.Reason == "" {
		return failure("missing_reason", "Informe o motivo do acionamento do suporte."), nil
	}

	res := e.dispatcher.Notify(ctx, req)

	data := map[string]interface{}{
		"success":  res.Success,
		"priority": res.Priority,
	}
	if res.MessageID != "" {
		data["message_id"] = res.MessageID
	}
	if res.SentAt != "" {
		data["sent_at"] = res.SentAt
	}
	if res.Error != "" {
		data["error"] = res.Error
	}

	if boolArg(args, "should_block_flow") {
		data["session_blocked"] = e.blockForHandoff(ctx, stringArg(args, "session_id"))
	}

	message := "Equipe de suporte acionada, um atendente humano dará sequência em instantes. 💬"
	if !res.Success {
		message = "Não consegui acionar o suporte agora, mas vou continuar tentando ajudar por aqui."
	}
	return &Result{Data: data, Message: message}, nil
}

// blockForHandoff is best effort: a notification must never fail because
// the session id was stale or malformed.
func (e *Executor) blockForHandoff(ctx context.Context, sessionID string) bool {
	if sessionID == "" {
		return false
	}
	id, err := uuid.Parse(sessionID)
	if err != nil {
		log.Warn().Str("session_id", sessionID).Msg("Handoff block skipped: malformed session id")
		return false
	}
	outcome, err := e.memory.BlockSession(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("Handoff block failed")
		return false
	}
	return outcome == memory.BlockDone
}

func (e *Executor) saveCustomerSummary(ctx context.Context, args map[string]interface{}) (*Result, error) {
	phone := stringArg(args, "customer_phone")
	summary := stringArg(args, "summary")
	if phone == "" {
		return failure("missing_customer_phone", "Preciso do telefone do cliente para salvar a memória."), nil
	}
	if summary == "" {
		return failure("missing_summary", "Preciso do resumo a salvar."), nil
	}

	record, err := e.memory.SaveSummary(ctx, phone, summary)
	if err != nil {
		return nil, err
	}
	return &Result{
		Data: map[string]interface{}{
			"success":        true,
			"customer_phone": record.CustomerPhone,
			"expires_at":     record.ExpiresAt.Format(time.RFC3339),
		},
		Message: "Memória do cliente atualizada. 📝",
	}, nil
}

func (e *Executor) blockSession(ctx context.Context, args map[string]interface{}) (*Result, error) {
	raw := stringArg(args, "session_id")
	if raw == "" {
		return failure("missing_session_id", "Informe o ID da sessão a bloquear."), nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return failure("invalid_session_id", "ID de sessão inválido."), nil
	}

	outcome, err := e.memory.BlockSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if outcome == memory.BlockNotFound {
		return failure("session_not_found", "Sessão não encontrada, nada foi bloqueado."), nil
	}
	return &Result{
		Data: map[string]interface{}{
			"success":    true,
			"session_id": raw,
			"blocked":    true,
		},
		Message: "Sessão bloqueada, a assistente não responderá mais nesta conversa.",
	}, nil
}

func (e *Executor) getActiveHolidays(ctx context.Context) (*Result, error) {
	closures, err := e.calendar.ActiveHolidays(ctx, e.clock.Now())
	if err != nil {
		return nil, err
	}

	items := make([]map[string]interface{}, 0, len(closures))
	for _, c := range closures {
		item := map[string]interface{}{
			"name":         c.Name,
			"start_date":   c.StartDate.Format("2006-01-02"),
			"end_date":     c.EndDate.Format("2006-01-02"),
			"closure_type": c.ClosureType,
		}
		if c.DurationHours != nil {
			item["duration_hours"] = *c.DurationHours
		}
		items = append(items, item)
	}

	message := "Nenhum feriado ou fechamento programado no momento."
	if len(items) > 0 {
		message = fmt.Sprintf("Temos %d fechamento(s) programado(s). Confira as datas antes de agendar a entrega.", len(items))
	}
	return &Result{
		Data: map[string]interface{}{
			"holidays": items,
			"total":    len(items),
		},
		Message: message,
	}, nil
}

func (e *Executor) searchProducts(ctx context.Context, args map[string]interface{}) (*Result, error) {
	term := stringArg(args, "termo")
	if term == "" {
		return failure("missing_term", "Informe o que o cliente procura para eu buscar no catálogo."), nil
	}
	minPrice := floatArg(args, "preco_minimo")
	maxPrice := floatArg(args, "preco_maximo")

	results, err := e.catalog.SearchProducts(ctx, term, minPrice, maxPrice)
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Nenhum produto encontrado para %q. Sugira opções próximas ou acione o suporte.", term)
	if len(results) > 0 {
		message = fmt.Sprintf("Encontrei %d opção(ões) para %q. Envie sempre as fotos junto com os preços!", len(results), term)
	}
	return &Result{
		Data: map[string]interface{}{
			"products": results,
			"total":    len(results),
			"term":     term,
		},
		Message: message,
	}, nil
}

func (e *Executor) getAdicionais(ctx context.Context) (*Result, error) {
	addons, err := e.catalog.ListAddons(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]map[string]interface{}, 0, len(addons))
	for _, a := range addons {
		items = append(items, map[string]interface{}{
			"name":  a.Name,
			"price": a.BasePrice,
		})
	}
	message := "Nenhum adicional cadastrado no momento."
	if len(items) > 0 {
		message = fmt.Sprintf("Temos %d adicional(is) para deixar o presente ainda mais especial. 🎁", len(items))
	}
	return &Result{
		Data: map[string]interface{}{
			"adicionais": items,
			"total":      len(items),
		},
		Message: message,
	}, nil
}

func (e *Executor) searchGuidelines(args map[string]interface{}) (*Result, error) {
	query := stringArg(args, "query")
	if query == "" {
		return failure("missing_query", "Informe a dúvida a procurar nas diretrizes."), nil
	}

	matches := guidelines.Search(query)
	if len(matches) == 0 {
		fallback, _ := guidelines.Get("fallback")
		return &Result{
			Data: map[string]interface{}{
				"matches":  []interface{}{},
				"fallback": fallback,
			},
			Message: "Nenhuma diretriz específica encontrada, siga o protocolo padrão de atendimento.",
		}, nil
	}

	items := make([]map[string]interface{}, 0, len(matches))
	for _, m := range matches {
		items = append(items, map[string]interface{}{
			"category":        m.Category,
			"relevance_score": m.Score,
			"content":         m.Content,
		})
	}
	return &Result{
		Data: map[string]interface{}{
			"matches": items,
			"total":   len(items),
		},
		Message: fmt.Sprintf("Diretriz mais relevante: %s.", matches[0].Category),
	}, nil
}

func (e *Executor) getServiceGuideline(args map[string]interface{}) (*Result, error) {
	category := stringArg(args, "category")
	content, ok := guidelines.Get(category)
	if !ok {
		return &Result{
			Data: map[string]interface{}{
				"success":              false,
				"error":                "unknown_category",
				"available_categories": guidelines.Categories(),
			},
			Message: fmt.Sprintf("Categoria %q não existe. Use uma das categorias listadas.", category),
		}, nil
	}
	return &Result{
		Data: map[string]interface{}{
			"category": category,
			"content":  content,
		},
		Message: fmt.Sprintf("Diretrizes da categoria %s.", category),
	}, nil
}

func (e *Executor) getCurrentBusinessHours() (*Result, error) {
	now := e.clock.Now()
	windows := e.calendar.WindowsFor(now)

	nowTod := calendar.TimeOfDayFrom(now)
	openNow := false
	for _, w := range windows {
		if w.Contains(nowTod) {
			openNow = true
			break
		}
	}

	week := make(map[string]interface{}, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		dayWindows := e.calendar.Schedule()[d]
		if len(dayWindows) == 0 {
			week[availability.WeekdayName(d)] = "fechado"
			continue
		}
		week[availability.WeekdayName(d)] = formatWindows(dayWindows)
	}

	data := map[string]interface{}{
		"open_now":     openNow,
		"current_time": now.Format("15:04"),
		"weekday":      availability.WeekdayName(now.Weekday()),
		"week":         week,
	}

	message := fmt.Sprintf("Estamos fechados agora (%s de %s).", now.Format("15:04"), availability.WeekdayName(now.Weekday()))
	if openNow {
		message = fmt.Sprintf("Estamos abertos agora! Hoje atendemos: %s.", formatWindows(windows))
	} else if len(windows) > 0 {
		message = fmt.Sprintf("Estamos fechados agora. Hoje o atendimento é: %s.", formatWindows(windows))
	}
	return &Result{Data: data, Message: message}, nil
}

// stringArg reads an argument as string, tolerating absence and non-string
// junk from loosely typed callers.
func stringArg(args map[string]interface{}, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

// textArg reads a free-text argument. Agent runtimes sometimes send a
// structured object where prose is expected; it is serialized rather
// than dropped.
func textArg(args map[string]interface{}, key string) string {
	switch v := args[key].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(b)
	}
}

// floatArg reads a numeric argument. JSON numbers decode as float64, but
// some agent runtimes stringify them.
func floatArg(args map[string]interface{}, key string) float64 {
	switch v := args[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		var f float64
		if _, err := fmt.Sscanf(v, "%f", &f); err == nil {
			return f
		}
	}
	return 0
}

func boolArg(args map[string]interface{}, key string) bool {
	switch v := args[key].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	}
	return false
}
