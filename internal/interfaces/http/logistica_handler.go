package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agrotrace/trazabilidad-api/internal/application/dto"
	"github.com/agrotrace/trazabilidad-api/internal/application/usecase"
)

// LogisticaHandler maneja las peticiones HTTP para envíos (distribución).
type LogisticaHandler struct {
	uc *usecase.LogisticaUseCase
}

// NewLogisticaHandler construye el handler.
func NewLogisticaHandler(uc *usecase.LogisticaUseCase) *LogisticaHandler {
	return &LogisticaHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar envío de un lote
// @Tags         logistica
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLogisticaRequest  true  "Datos del envío"
// @Success      201   {object}  dto.LogisticaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/logistica [post]
func (h *LogisticaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLogisticaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListAll godoc
// @Summary      Listar todos los envíos (fecha de salida descendente)
// @Tags         logistica
// @Produce      json
// @Success      200  {object}  dto.LogisticaListResponse
// @Router       /api/logistica [get]
func (h *LogisticaHandler) ListAll(c *fiber.Ctx) error {
	out, err := h.uc.ListAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByLote godoc
// @Summary      Listar envíos de un lote (fecha de salida ascendente)
// @Tags         logistica
// @Produce      json
// @Param        loteId  path  string  true  "ID del lote"
// @Success      200  {object}  dto.LogisticaListResponse
// @Router       /api/logistica/lote/{loteId} [get]
func (h *LogisticaHandler) ListByLote(c *fiber.Ctx) error {
	loteID := c.Params("loteId")
	if loteID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_LOTE_ID", Message: "loteId es requerido"})
	}
	out, err := h.uc.ListByLote(loteID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
