package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agrotrace/trazabilidad-api/internal/application/dto"
	"github.com/agrotrace/trazabilidad-api/internal/application/usecase"
)

// ProcesoHandler maneja las peticiones HTTP para procesos de transformación.
type ProcesoHandler struct {
	uc *usecase.ProcesoUseCase
}

// NewProcesoHandler construye el handler.
func NewProcesoHandler(uc *usecase.ProcesoUseCase) *ProcesoHandler {
	return &ProcesoHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar proceso de transformación
// @Tags         procesos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProcesoRequest  true  "Datos del proceso"
// @Success      201   {object}  dto.ProcesoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/procesos [post]
func (h *ProcesoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProcesoRequest
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
// @Summary      Listar todos los procesos (fecha descendente)
// @Tags         procesos
// @Produce      json
// @Success      200  {object}  dto.ProcesoListResponse
// @Router       /api/procesos [get]
func (h *ProcesoHandler) ListAll(c *fiber.Ctx) error {
	out, err := h.uc.ListAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByLote godoc
// @Summary      Listar procesos de un lote (fecha ascendente)
// @Tags         procesos
// @Produce      json
// @Param        loteId  path  string  true  "ID del lote"
// @Success      200  {object}  dto.ProcesoListResponse
// @Router       /api/procesos/lote/{loteId} [get]
func (h *ProcesoHandler) ListByLote(c *fiber.Ctx) error {
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
