package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vconf-api/internal/application/dto"
)

type configurationService interface {
	DefaultConfiguration(ctx context.Context, modelID string, qty int) (*dto.DefaultConfigResponse, error)
	Quote(ctx context.Context, modelID string, qty int) (*dto.QuoteResponse, error)
}

// ConfigurationHandler lecturas del configurador (configuración estándar y cotización).
type ConfigurationHandler struct {
	uc configurationService
}

// NewConfigurationHandler construye el handler.
func NewConfigurationHandler(uc configurationService) *ConfigurationHandler {
	return &ConfigurationHandler{uc: uc}
}

// DefaultConfig godoc
// @Summary      Configuración estándar de un modelo
// @Description  Componentes por defecto del modelo y precio total = precio unitario * qty.
// @Tags         configurator
// @Security     Bearer
// @Produce      json
// @Param        modelId  path   string  true   "ID del modelo"
// @Param        qty      query  int     false  "Cantidad (default 1)"
// @Success      200  {object}  dto.DefaultConfigResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/default-config/{modelId} [get]
func (h *ConfigurationHandler) DefaultConfig(c *fiber.Ctx) error {
	modelID := c.Params("modelId")
	if modelID == "" {
		return badRequest(c, "VALIDATION", "modelId requerido")
	}
	qty := c.QueryInt("qty", 1)
	out, err := h.uc.DefaultConfiguration(c.UserContext(), modelID, qty)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Quote godoc
// @Summary      Cotizar la configuración efectiva de un modelo
// @Description  Resuelve alternos o configuración estándar y calcula base, impuesto y total sin persistir.
// @Tags         configurator
// @Security     Bearer
// @Produce      json
// @Param        id   path   string  true   "ID del modelo"
// @Param        qty  query  int     false  "Cantidad (default 1)"
// @Success      200  {object}  dto.QuoteResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/models/{id}/quote [get]
func (h *ConfigurationHandler) Quote(c *fiber.Ctx) error {
	modelID := c.Params("id")
	if modelID == "" {
		return badRequest(c, "VALIDATION", "id requerido")
	}
	qty := c.QueryInt("qty", 1)
	out, err := h.uc.Quote(c.UserContext(), modelID, qty)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
