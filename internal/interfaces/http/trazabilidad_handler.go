package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agrotrace/trazabilidad-api/internal/application/dto"
	"github.com/agrotrace/trazabilidad-api/internal/application/usecase"
)

// TrazabilidadHandler maneja las consultas de trazabilidad completa.
type TrazabilidadHandler struct {
	uc *usecase.TrazabilidadUseCase
}

// NewTrazabilidadHandler construye el handler.
func NewTrazabilidadHandler(uc *usecase.TrazabilidadUseCase) *TrazabilidadHandler {
	return &TrazabilidadHandler{uc: uc}
}

// GetByLoteID godoc
// @Summary      Trazabilidad completa de un lote
// @Tags         trazabilidad
// @Produce      json
// @Param        loteId  path  string  true  "ID del lote"
// @Success      200  {object}  dto.TrazabilidadResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/trazabilidad/{loteId} [get]
func (h *TrazabilidadHandler) GetByLoteID(c *fiber.Ctx) error {
	loteID := c.Params("loteId")
	if loteID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_LOTE_ID", Message: "loteId es requerido"})
	}
	out, err := h.uc.GetByLoteID(loteID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByCodigo godoc
// @Summary      Trazabilidad completa por código de lote
// @Tags         trazabilidad
// @Produce      json
// @Param        codigoLote  path  string  true  "Código del lote (XX-YYYY-NNN)"
// @Success      200  {object}  dto.TrazabilidadResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/trazabilidad/codigo/{codigoLote} [get]
func (h *TrazabilidadHandler) GetByCodigo(c *fiber.Ctx) error {
	codigo := c.Params("codigoLote")
	if codigo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_CODIGO", Message: "codigoLote es requerido"})
	}
	out, err := h.uc.GetByCodigo(codigo)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
