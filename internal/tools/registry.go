package tools

import (
	"github.com/sashabaranov/go-openai"
)

// Tool names, as the agent runtime calls them.
const (
	ToolValidateDeliveryAvailability = "validate_delivery_availability"
	ToolCalculateFreight             = "calculate_freight"
	ToolNotifyHumanSupport           = "notify_human_support"
	ToolSaveCustomerSummary          = "save_customer_summary"
	ToolBlockSession                 = "block_session"
	ToolGetActiveHolidays            = "get_active_holidays"
	ToolSearchProducts               = "search_products"
	ToolGetAdicionais                = "get_adicionais"
	ToolSearchGuidelines             = "search_guidelines"
	ToolGetServiceGuideline          = "get_service_guideline"
	ToolGetCurrentBusinessHours      = "get_current_business_hours"
)

// Definitions returns the JSON-schema description of every tool, in the
// function-calling format the agent runtime consumes.
func Definitions() []openai.Tool {
	return []openai.Tool{
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        ToolValidateDeliveryAvailability,
				Description: "OBRIGATÓRIO antes de confirmar qualquer pedido: valida se uma data (e opcionalmente um horário) de entrega está disponível, considerando horários de funcionamento, feriados e o tempo mínimo de produção de 1 hora. Quando o horário é omitido e a data é hoje, retorna a lista completa de horários possíveis - apresente TODOS ao cliente, nunca um subconjunto.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"date": map[string]interface{}{
							"type":        "string",
							"description": "Data desejada no formato YYYY-MM-DD (ex: 2025-03-14)",
						},
						"time": map[string]interface{}{
							"type":        "string",
							"description": "Horário desejado no formato HH:MM (ex: 15:30). Opcional.",
						},
					},
					"required": []string{"date"},
				},
			},
		},
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        ToolCalculateFreight,
				Description: "Calcula o frete exato para uma cidade e forma de pagamento. Campina Grande: grátis no PIX, R$ 10 no cartão. Cidades vizinhas (até 20km): R$ 15 no PIX, R$ 25 no cartão. SEMPRE use esta função para informar valores de frete - nunca invente valores.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"city": map[string]interface{}{
							"type":        "string",
							"description": "Cidade de entrega informada pelo cliente",
						},
						"payment_method": map[string]interface{}{
							"type":        "string",
							"description": "Forma de pagamento: 'pix' ou 'cartao'",
						},
					},
					"required": []string{"city", "payment_method"},
				},
			},
		},
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        ToolNotifyHumanSupport,
				Description: "Notifica o time de suporte humano via WhatsApp. Use ao finalizar um pedido (reason: end_of_checkout), em dúvidas de frete (freight_doubt) ou em situações críticas (price_manipulation, product_unavailable, complex_customization, customer_insistence, technical_error). Com should_block_flow=true também bloqueia a sessão para a IA parar de responder.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"reason": map[string]interface{}{
							"type":        "string",
							"description": "Motivo do acionamento (ex: end_of_checkout, freight_doubt, price_manipulation)",
						},
						"customer_context": map[string]interface{}{
							"type":        "string",
							"description": "Resumo do contexto da conversa para o atendente humano",
						},
						"customer_name": map[string]interface{}{
							"type":        "string",
							"description": "Nome do cliente, se conhecido",
						},
						"customer_phone": map[string]interface{}{
							"type":        "string",
							"description": "Telefone do cliente, se conhecido",
						},
						"should_block_flow": map[string]interface{}{
							"type":        "boolean",
							"description": "Se true, bloqueia a sessão após notificar (requer session_id)",
						},
						"session_id": map[string]interface{}{
							"type":        "string",
							"description": "ID da sessão de conversa a bloquear",
						},
					},
					"required": []string{"reason"},
				},
			},
		},
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        ToolSaveCustomerSummary,
				Description: "Atualiza a memória de longo prazo de um cliente (preferências, alergias, datas especiais). Cada chamada substitui completamente o resumo anterior. A memória expira em 15 dias.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"customer_phone": map[string]interface{}{
							"type":        "string",
							"description": "Telefone do cliente (chave única da memória)",
						},
						"summary": map[string]interface{}{
							"type":        "string",
							"description": "Resumo completo e atualizado sobre o cliente",
						},
					},
					"required": []string{"customer_phone", "summary"},
				},
			},
		},
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        ToolBlockSession,
				Description: "Bloqueia uma sessão de conversa para que a assistente pare de responder (transferência para humano). A sessão expira em 4 dias.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"session_id": map[string]interface{}{
							"type":        "string",
							"description": "ID da sessão a bloquear",
						},
					},
					"required": []string{"session_id"},
				},
			},
		},
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        ToolGetActiveHolidays,
				Description: "Lista os feriados e fechamentos programados atuais e futuros da loja.",
				Parameters: map[string]interface{}{
					"type":       "object",
					"properties": map[string]interface{}{},
				},
			},
		},
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        ToolSearchProducts,
				Description: "Busca cestas e flores no catálogo com pontuação de relevância. NUNCA invente produtos ou preços - use SEMPRE esta função. SEMPRE envie as URLs das imagens retornadas.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"termo": map[string]interface{}{
							"type":        "string",
							"description": "Termo de busca (ocasião, tipo de cesta, flor, etc.)",
						},
						"preco_minimo": map[string]interface{}{
							"type":        "number",
							"description": "Preço mínimo para filtrar (opcional)",
						},
						"preco_maximo": map[string]interface{}{
							"type":        "number",
							"description": "Preço máximo para filtrar (opcional)",
						},
					},
					"required": []string{"termo"},
				},
			},
		},
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        ToolGetAdicionais,
				Description: "Lista todos os adicionais disponíveis (chocolates, balões, cartões...) para tornar o presente mais especial.",
				Parameters: map[string]interface{}{
					"type":       "object",
					"properties": map[string]interface{}{},
				},
			},
		},
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        ToolSearchGuidelines,
				Description: "Busca nas diretrizes de atendimento o trecho mais relevante para uma dúvida (tipo RAG simples por palavras-chave).",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"query": map[string]interface{}{
							"type":        "string",
							"description": "Dúvida ou tema a procurar nas diretrizes",
						},
					},
					"required": []string{"query"},
				},
			},
		},
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        ToolGetServiceGuideline,
				Description: "Retorna as diretrizes de atendimento de uma categoria específica. Categorias: core, inexistent_products, delivery_rules, customization, closing_protocol, indecision, mass_orders, location, faq_production, product_selection, fallback.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"category": map[string]interface{}{
							"type":        "string",
							"description": "Categoria da diretriz desejada",
						},
					},
					"required": []string{"category"},
				},
			},
		},
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        ToolGetCurrentBusinessHours,
				Description: "Informa se a loja está aberta agora e os horários de funcionamento da semana.",
				Parameters: map[string]interface{}{
					"type":       "object",
					"properties": map[string]interface{}{},
				},
			},
		},
	}
}

// Names lists the registered tool names in definition order.
func Names() []string {
	defs := Definitions()
	names := make([]string, len(defs))
	for i, d := range defs {
		names[i] = d.Function.Name
	}
	return names
}
