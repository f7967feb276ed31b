// Package datahttp expone la capa de datos como un servicio HTTP delgado:
// CRUD sin lógica de negocio sobre los repositorios PostgreSQL, hablando el
// contrato de dataapi. Es la mitad servidor del modo de dos procesos.
package datahttp

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/agrotrace/trazabilidad-api/internal/domain"
	"github.com/agrotrace/trazabilidad-api/internal/domain/repository"
	"github.com/agrotrace/trazabilidad-api/internal/infrastructure/dataapi"
)

// Handler agrupa los repositorios que la capa de datos expone.
type Handler struct {
	lotes     repository.LoteRepository
	procesos  repository.ProcesoRepository
	logistica repository.LogisticaRepository
}

// NewHandler construye el handler de la capa de datos.
func NewHandler(
	lotes repository.LoteRepository,
	procesos repository.ProcesoRepository,
	logistica repository.LogisticaRepository,
) *Handler {
	return &Handler{lotes: lotes, procesos: procesos, logistica: logistica}
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(dataapi.ErrorBody{Code: "NOT_FOUND", Message: msg})
}

func internal(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dataapi.ErrorBody{Code: "INTERNAL", Message: err.Error()})
}

// CreateLote persiste el registro tal cual llega. Devuelve 409 si el código ya existe.
func (h *Handler) CreateLote(c *fiber.Ctx) error {
	var rec dataapi.LoteRecord
	if err := c.BodyParser(&rec); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dataapi.ErrorBody{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.lotes.Create(rec.ToEntity()); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dataapi.ErrorBody{Code: "DUPLICATE", Message: err.Error()})
		}
		return internal(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rec)
}

// ListLotes lista todos los lotes (fecha de cosecha descendente).
func (h *Handler) ListLotes(c *fiber.Ctx) error {
	lotes, err := h.lotes.ListAll()
	if err != nil {
		return internal(c, err)
	}
	recs := make([]*dataapi.LoteRecord, 0, len(lotes))
	for _, l := range lotes {
		recs = append(recs, dataapi.FromLote(l))
	}
	return c.JSON(recs)
}

// GetLote obtiene un lote por ID.
func (h *Handler) GetLote(c *fiber.Ctx) error {
	lote, err := h.lotes.GetByID(c.Params("id"))
	if err != nil {
		return internal(c, err)
	}
	if lote == nil {
		return notFound(c, "lote no encontrado")
	}
	return c.JSON(dataapi.FromLote(lote))
}

// GetLoteByCodigo obtiene un lote por su código.
func (h *Handler) GetLoteByCodigo(c *fiber.Ctx) error {
	lote, err := h.lotes.GetByCodigo(c.Params("codigoLote"))
	if err != nil {
		return internal(c, err)
	}
	if lote == nil {
		return notFound(c, "lote no encontrado")
	}
	return c.JSON(dataapi.FromLote(lote))
}

// CreateProceso persiste el registro tal cual llega.
func (h *Handler) CreateProceso(c *fiber.Ctx) error {
	var rec dataapi.ProcesoRecord
	if err := c.BodyParser(&rec); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dataapi.ErrorBody{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.procesos.Create(rec.ToEntity()); err != nil {
		return internal(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rec)
}

// ListProcesos lista todos los procesos (fecha descendente).
func (h *Handler) ListProcesos(c *fiber.Ctx) error {
	procesos, err := h.procesos.ListAll()
	if err != nil {
		return internal(c, err)
	}
	recs := make([]*dataapi.ProcesoRecord, 0, len(procesos))
	for _, p := range procesos {
		recs = append(recs, dataapi.FromProceso(p))
	}
	return c.JSON(recs)
}

// GetProceso obtiene un proceso por ID.
func (h *Handler) GetProceso(c *fiber.Ctx) error {
	proceso, err := h.procesos.GetByID(c.Params("id"))
	if err != nil {
		return internal(c, err)
	}
	if proceso == nil {
		return notFound(c, "proceso no encontrado")
	}
	return c.JSON(dataapi.FromProceso(proceso))
}

// ListProcesosByLote lista los procesos de un lote (fecha ascendente).
func (h *Handler) ListProcesosByLote(c *fiber.Ctx) error {
	procesos, err := h.procesos.ListByLote(c.Params("loteId"))
	if err != nil {
		return internal(c, err)
	}
	recs := make([]*dataapi.ProcesoRecord, 0, len(procesos))
	for _, p := range procesos {
		recs = append(recs, dataapi.FromProceso(p))
	}
	return c.JSON(recs)
}

// CreateLogistica persiste el registro tal cual llega.
func (h *Handler) CreateLogistica(c *fiber.Ctx) error {
	var rec dataapi.LogisticaRecord
	if err := c.BodyParser(&rec); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dataapi.ErrorBody{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.logistica.Create(rec.ToEntity()); err != nil {
		return internal(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rec)
}

// ListLogistica lista todos los envíos (fecha de salida descendente).
func (h *Handler) ListLogistica(c *fiber.Ctx) error {
	envios, err := h.logistica.ListAll()
	if err != nil {
		return internal(c, err)
	}
	recs := make([]*dataapi.LogisticaRecord, 0, len(envios))
	for _, e := range envios {
		recs = append(recs, dataapi.FromLogistica(e))
	}
	return c.JSON(recs)
}

// GetLogistica obtiene un envío por ID.
func (h *Handler) GetLogistica(c *fiber.Ctx) error {
	envio, err := h.logistica.GetByID(c.Params("id"))
	if err != nil {
		return internal(c, err)
	}
	if envio == nil {
		return notFound(c, "registro de logística no encontrado")
	}
	return c.JSON(dataapi.FromLogistica(envio))
}

// ListLogisticaByLote lista los envíos de un lote (fecha de salida ascendente).
func (h *Handler) ListLogisticaByLote(c *fiber.Ctx) error {
	envios, err := h.logistica.ListByLote(c.Params("loteId"))
	if err != nil {
		return internal(c, err)
	}
	recs := make([]*dataapi.LogisticaRecord, 0, len(envios))
	for _, e := range envios {
		recs = append(recs, dataapi.FromLogistica(e))
	}
	return c.JSON(recs)
}
