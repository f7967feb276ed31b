package datahttp

import "github.com/gofiber/fiber/v2"

// Router registra las rutas de la capa de datos.
func Router(app *fiber.App, h *Handler) {
	data := app.Group("/data")

	lotes := data.Group("/lotes")
	lotes.Post("/", h.CreateLote)
	lotes.Get("/", h.ListLotes)
	lotes.Get("/codigo/:codigoLote", h.GetLoteByCodigo)
	lotes.Get("/:id", h.GetLote)

	procesos := data.Group("/procesos")
	procesos.Post("/", h.CreateProceso)
	procesos.Get("/", h.ListProcesos)
	procesos.Get("/lote/:loteId", h.ListProcesosByLote)
	procesos.Get("/:id", h.GetProceso)

	logistica := data.Group("/logistica")
	logistica.Post("/", h.CreateLogistica)
	logistica.Get("/", h.ListLogistica)
	logistica.Get("/lote/:loteId", h.ListLogisticaByLote)
	logistica.Get("/:id", h.GetLogistica)
}
