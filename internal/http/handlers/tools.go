package handlers

import (
	"errors"
	"net/http"

	"cestodamore/internal/tools"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ToolHandler exposes the assistant tool surface over HTTP.
type ToolHandler struct {
	executor *tools.Executor
}

// NewToolHandler creates a new tool handler
func NewToolHandler(executor *tools.Executor) *ToolHandler {
	return &ToolHandler{executor: executor}
}

// CallRequest is the body of POST /call. Agent runtimes decorate calls
// with extra fields (sessionId, chatInput, action); binding ignores them.
type CallRequest struct {
	Tool      string                 `json:"tool" validate:"required"`
	Arguments map[string]interface{} `json:"arguments"`
}

// Health godoc
// @Summary Health check
// @Description Liveness probe, no authentication required
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *ToolHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "cestodamore-tools",
	})
}

// ListTools godoc
// @Summary List tools
// @Description List the tool definitions available to the agent
// @Tags tools
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /tools [get]
// @Security ApiKeyAuth
func (h *ToolHandler) ListTools(c echo.Context) error {
	defs := tools.Definitions()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"tools": defs,
		"total": len(defs),
	})
}

// CallTool godoc
// @Summary Call a tool
// @Description Execute a named tool with a JSON arguments object
// @Tags tools
// @Accept json
// @Produce json
// @Param request body CallRequest true "Tool call"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]interface{}
// @Router /call [post]
// @Security ApiKeyAuth
func (h *ToolHandler) CallTool(c echo.Context) error {
	var req CallRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request format",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Field 'tool' is required",
		})
	}
	if req.Arguments == nil {
		req.Arguments = map[string]interface{}{}
	}

	result, err := h.executor.Execute(c.Request().Context(), req.Tool, req.Arguments)
	if err != nil {
		if errors.Is(err, tools.ErrUnknownTool) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "Unknown tool: " + req.Tool,
			})
		}
		log.Error().Err(err).Str("tool", req.Tool).Msg("Tool execution failed")
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   "Tool execution failed",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":  true,
		"tool":     req.Tool,
		"data":     result.Data,
		"response": result.Render(),
	})
}
