package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agrotrace/trazabilidad-api/internal/application/usecase"
)

// RouterDeps dependencias para el router de la API de negocio.
type RouterDeps struct {
	LoteUC         *usecase.LoteUseCase
	ProcesoUC      *usecase.ProcesoUseCase
	LogisticaUC    *usecase.LogisticaUseCase
	TrazabilidadUC *usecase.TrazabilidadUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Lotes (trazabilidad hacia atrás)
	lotes := api.Group("/lotes")
	loteHandler := NewLoteHandler(deps.LoteUC)
	lotes.Post("/", loteHandler.Create)
	lotes.Get("/", loteHandler.List)
	lotes.Get("/codigo/:codigoLote", loteHandler.GetByCodigo)
	lotes.Get("/:id", loteHandler.GetByID)

	// Procesos (trazabilidad interna)
	procesos := api.Group("/procesos")
	procesoHandler := NewProcesoHandler(deps.ProcesoUC)
	procesos.Post("/", procesoHandler.Create)
	procesos.Get("/", procesoHandler.ListAll)
	procesos.Get("/lote/:loteId", procesoHandler.ListByLote)

	// Logística (trazabilidad hacia adelante)
	logistica := api.Group("/logistica")
	logisticaHandler := NewLogisticaHandler(deps.LogisticaUC)
	logistica.Post("/", logisticaHandler.Create)
	logistica.Get("/", logisticaHandler.ListAll)
	logistica.Get("/lote/:loteId", logisticaHandler.ListByLote)

	// Trazabilidad completa
	trazabilidad := api.Group("/trazabilidad")
	trazabilidadHandler := NewTrazabilidadHandler(deps.TrazabilidadUC)
	trazabilidad.Get("/codigo/:codigoLote", trazabilidadHandler.GetByCodigo)
	trazabilidad.Get("/:loteId", trazabilidadHandler.GetByLoteID)
}
