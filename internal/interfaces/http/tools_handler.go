package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/oms-agent/internal/application/dto"
	"github.com/jhoicas/oms-agent/internal/application/tools"
)

// ToolsHandler publica el catálogo de herramientas y su invocación RPC.
type ToolsHandler struct {
	ts *tools.Toolset
}

// NewToolsHandler construye el handler.
func NewToolsHandler(ts *tools.Toolset) *ToolsHandler {
	return &ToolsHandler{ts: ts}
}

// List godoc
// @Summary      Catálogo de herramientas
// @Tags         tools
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  tools.Tool
// @Router       /api/tools [get]
func (h *ToolsHandler) List(c *fiber.Ctx) error {
	return c.JSON(tools.Catalog())
}

// Invoke godoc
// @Summary      Invocar herramienta
// @Tags         tools
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        name  path  string  true  "Nombre de la herramienta"
// @Success      200   {object}  result.Result
// @Failure      400   {object}  result.Result
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  result.Result
// @Failure      503   {object}  result.Result
// @Router       /api/tools/{name} [post]
func (h *ToolsHandler) Invoke(c *fiber.Ctx) error {
	name := c.Params("name")
	res, ok := h.ts.Call(c.UserContext(), name, c.Body())
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "UNKNOWN_TOOL", Message: "herramienta no encontrada: " + name})
	}
	return c.Status(res.HTTPStatus()).JSON(res)
}
