package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/oms-agent/internal/application/agent"
	"github.com/jhoicas/oms-agent/internal/application/tools"
	"github.com/jhoicas/oms-agent/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Tools     *tools.Toolset
	Agent     *agent.Agent
	JWTSecret string // vacío: /api sin autenticación
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	if deps.JWTSecret != "" {
		api.Use(AuthMiddleware(deps.JWTSecret), RequireScope(jwt.ScopeTools))
	}

	toolsHandler := NewToolsHandler(deps.Tools)
	api.Get("/tools", toolsHandler.List)
	api.Post("/tools/:name", toolsHandler.Invoke)

	agentHandler := NewAgentHandler(deps.Agent)
	api.Post("/agent", agentHandler.Handle)
}
