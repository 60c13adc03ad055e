package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/oms-agent/internal/application/agent"
	"github.com/jhoicas/oms-agent/internal/application/dto"
	"github.com/jhoicas/oms-agent/internal/application/result"
)

// AgentHandler expone el despachador de comandos de texto.
type AgentHandler struct {
	agent *agent.Agent
}

// NewAgentHandler construye el handler.
func NewAgentHandler(a *agent.Agent) *AgentHandler {
	return &AgentHandler{agent: a}
}

// Handle godoc
// @Summary      Ejecutar comando
// @Tags         agent
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AgentRequest  true  "Comando"
// @Success      200   {object}  result.Result
// @Failure      400   {object}  result.Result  "cuerpo inválido, comando vacío o desconocido"
// @Router       /api/agent [post]
func (h *AgentHandler) Handle(c *fiber.Ctx) error {
	var in dto.AgentRequest
	var res result.Result
	switch err := c.BodyParser(&in); {
	case err != nil:
		res = result.Invalid("cuerpo inválido: " + err.Error())
	case strings.TrimSpace(in.Command) == "":
		res = result.Unknown()
	default:
		res = h.agent.Handle(c.UserContext(), in.Command)
	}
	return c.Status(res.HTTPStatus()).JSON(res)
}
