package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrotrace/trazabilidad-api/internal/application/dto"
	"github.com/agrotrace/trazabilidad-api/internal/application/usecase"
	"github.com/agrotrace/trazabilidad-api/internal/domain/entity"
	"github.com/agrotrace/trazabilidad-api/internal/domain/repository"
	apphttp "github.com/agrotrace/trazabilidad-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// Repos en memoria con el mismo contrato que los adaptadores reales:
// (nil, nil) cuando no existe y listados ordenados.

type fakeLotes struct{ items []*entity.Lote }

var _ repository.LoteRepository = (*fakeLotes)(nil)

func (f *fakeLotes) Create(l *entity.Lote) error { f.items = append(f.items, l); return nil }

func (f *fakeLotes) GetByID(id string) (*entity.Lote, error) {
	for _, l := range f.items {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, nil
}

func (f *fakeLotes) GetByCodigo(codigo string) (*entity.Lote, error) {
	for _, l := range f.items {
		if l.CodigoLote == codigo {
			return l, nil
		}
	}
	return nil, nil
}

func (f *fakeLotes) ListAll() ([]*entity.Lote, error) {
	list := append([]*entity.Lote(nil), f.items...)
	sort.SliceStable(list, func(i, j int) bool { return list[i].FechaCosecha.After(list[j].FechaCosecha) })
	return list, nil
}

type fakeProcesos struct{ items []*entity.Proceso }

var _ repository.ProcesoRepository = (*fakeProcesos)(nil)

func (f *fakeProcesos) Create(p *entity.Proceso) error { f.items = append(f.items, p); return nil }

func (f *fakeProcesos) GetByID(id string) (*entity.Proceso, error) {
	for _, p := range f.items {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProcesos) ListAll() ([]*entity.Proceso, error) {
	list := append([]*entity.Proceso(nil), f.items...)
	sort.SliceStable(list, func(i, j int) bool { return list[i].Fecha.After(list[j].Fecha) })
	return list, nil
}

func (f *fakeProcesos) ListByLote(loteID string) ([]*entity.Proceso, error) {
	var list []*entity.Proceso
	for _, p := range f.items {
		if p.LoteID == loteID {
			list = append(list, p)
		}
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Fecha.Before(list[j].Fecha) })
	return list, nil
}

type fakeLogistica struct{ items []*entity.Logistica }

var _ repository.LogisticaRepository = (*fakeLogistica)(nil)

func (f *fakeLogistica) Create(l *entity.Logistica) error { f.items = append(f.items, l); return nil }

func (f *fakeLogistica) GetByID(id string) (*entity.Logistica, error) {
	for _, l := range f.items {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, nil
}

func (f *fakeLogistica) ListAll() ([]*entity.Logistica, error) {
	return append([]*entity.Logistica(nil), f.items...), nil
}

func (f *fakeLogistica) ListByLote(loteID string) ([]*entity.Logistica, error) {
	var list []*entity.Logistica
	for _, l := range f.items {
		if l.LoteID == loteID {
			list = append(list, l)
		}
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].FechaSalida.Before(list[j].FechaSalida) })
	return list, nil
}

// buildTestApp construye la aplicación Fiber completa sobre repos en memoria.
func buildTestApp() *fiber.App {
	lotes := &fakeLotes{}
	procesos := &fakeProcesos{}
	logistica := &fakeLogistica{}
	coherencia := usecase.NewCoherenciaTemporal(lotes, procesos)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		LoteUC:         usecase.NewLoteUseCase(lotes),
		ProcesoUC:      usecase.NewProcesoUseCase(procesos, coherencia),
		LogisticaUC:    usecase.NewLogisticaUseCase(logistica, coherencia),
		TrazabilidadUC: usecase.NewTrazabilidadUseCase(lotes, procesos, logistica),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out T
	require.NoError(t, json.Unmarshal(raw, &out), "cuerpo: %s", raw)
	return out
}

func loteBody() map[string]any {
	return map[string]any{
		"codigoLote":   "MG-2026-001",
		"producto":     "mango",
		"finca":        "La Esperanza",
		"ubicacion":    "Valle",
		"fechaCosecha": "2026-01-10",
		"responsable":  "Ana",
		"cantidadKg":   500,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCrearLote_201(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/lotes/", loteBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	out := decode[dto.LoteResponse](t, resp)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "MG-2026-001", out.CodigoLote)
	assert.Equal(t, "2026-01-10", out.FechaCosecha)
}

func TestCrearLote_Validacion400(t *testing.T) {
	app := buildTestApp()

	body := loteBody()
	body["codigoLote"] = "lote-1"
	resp := doJSON(t, app, http.MethodPost, "/api/lotes/", body)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", out.Code)
	assert.Contains(t, out.Message, "XX-YYYY-NNN")
}

func TestCrearLote_Duplicado409(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/lotes/", loteBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/lotes/", loteBody())
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE", decode[dto.ErrorResponse](t, resp).Code)
}

func TestObtenerLote_404(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/lotes/no-existe", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)
}

func TestCrearProceso_LoteInexistente404(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/procesos/", map[string]any{
		"loteId":      "no-existe",
		"tipoProceso": "lavado",
		"fecha":       "2026-01-11",
		"responsable": "Luis",
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCrearLogistica_SinProcesos422(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/lotes/", loteBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	lote := decode[dto.LoteResponse](t, resp)

	resp = doJSON(t, app, http.MethodPost, "/api/logistica/", map[string]any{
		"loteId":        lote.ID,
		"fechaSalida":   "2026-01-12",
		"destino":       "Mercado Central",
		"transportista": "TransFrío SA",
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "REGLA_NEGOCIO", decode[dto.ErrorResponse](t, resp).Code)
}

func TestCrearProceso_AnteriorACosecha422(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/lotes/", loteBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	lote := decode[dto.LoteResponse](t, resp)

	resp = doJSON(t, app, http.MethodPost, "/api/procesos/", map[string]any{
		"loteId":      lote.ID,
		"tipoProceso": "lavado",
		"fecha":       "2026-01-09",
		"responsable": "Luis",
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "COHERENCIA", decode[dto.ErrorResponse](t, resp).Code)
}

// Recorrido completo por HTTP: lote → proceso → envío → reporte de
// trazabilidad con estado COMPLETO.
func TestTrazabilidad_RecorridoCompleto(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/lotes/", loteBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	lote := decode[dto.LoteResponse](t, resp)

	resp = doJSON(t, app, http.MethodPost, "/api/procesos/", map[string]any{
		"loteId":      lote.ID,
		"tipoProceso": "lavado",
		"fecha":       "2026-01-11",
		"responsable": "Luis",
		"parametros":  map[string]any{"temperatura": 22},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/logistica/", map[string]any{
		"loteId":                lote.ID,
		"fechaSalida":           "2026-01-12",
		"destino":               "Mercado Central",
		"transportista":         "TransFrío SA",
		"temperaturaTransporte": 4.5,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/trazabilidad/"+lote.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	traza := decode[dto.TrazabilidadResponse](t, resp)

	assert.Equal(t, "MG-2026-001", traza.CodigoLote)
	assert.Equal(t, "ORIGEN", traza.TrazabilidadHaciaAtras.Tipo)
	assert.Equal(t, 1, traza.TrazabilidadInterna.TotalProcesos)
	assert.Equal(t, 1, traza.TrazabilidadHaciaAdelante.TotalEnvios)
	assert.Equal(t, entity.EstadoCompleto, traza.EstadoTrazabilidad.Estado)
	assert.Equal(t, 100, traza.EstadoTrazabilidad.Porcentaje)

	// La misma vista se resuelve por código de lote.
	resp = doJSON(t, app, http.MethodGet, "/api/trazabilidad/codigo/MG-2026-001", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	porCodigo := decode[dto.TrazabilidadResponse](t, resp)
	assert.Equal(t, traza, porCodigo)
}

func TestTrazabilidad_404(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/trazabilidad/no-existe", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
