package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrotrace/trazabilidad-api/internal/application/usecase"
	"github.com/agrotrace/trazabilidad-api/internal/domain"
	"github.com/agrotrace/trazabilidad-api/internal/domain/entity"
)

func TestTrazabilidad_LoteInexistente(t *testing.T) {
	uc := usecase.NewTrazabilidadUseCase(&memLotes{}, &memProcesos{}, &memLogistica{})

	_, err := uc.GetByLoteID("no-existe")
	assert.ErrorIs(t, err, domain.ErrLoteNotFound)

	_, err = uc.GetByCodigo("ZZ-2026-999")
	assert.ErrorIs(t, err, domain.ErrLoteNotFound)
}

func TestTrazabilidad_SoloLote(t *testing.T) {
	lotes := &memLotes{}
	loteEnRepo(lotes)
	uc := usecase.NewTrazabilidadUseCase(lotes, &memProcesos{}, &memLogistica{})

	out, err := uc.GetByLoteID("lote-1")
	require.NoError(t, err)

	estado := out.EstadoTrazabilidad
	assert.Equal(t, entity.EstadoIncompleto, estado.Estado)
	assert.Equal(t, 33, estado.Porcentaje)
	assert.True(t, estado.TieneOrigen)
	assert.False(t, estado.TieneProcesos)
	assert.False(t, estado.TieneLogistica)
	assert.Equal(t, "Falta registrar transformación y distribución", estado.Mensaje)

	assert.Equal(t, 0, out.TrazabilidadInterna.TotalProcesos)
	assert.Empty(t, out.TrazabilidadInterna.Procesos)
	assert.Equal(t, 0, out.TrazabilidadHaciaAdelante.TotalEnvios)
}

func TestTrazabilidad_LoteYProcesos(t *testing.T) {
	lotes := &memLotes{}
	loteEnRepo(lotes)
	procesos := &memProcesos{}
	procesoEnRepo(procesos, "2026-01-11")
	uc := usecase.NewTrazabilidadUseCase(lotes, procesos, &memLogistica{})

	out, err := uc.GetByLoteID("lote-1")
	require.NoError(t, err)

	estado := out.EstadoTrazabilidad
	assert.Equal(t, entity.EstadoParcial, estado.Estado)
	assert.Equal(t, 66, estado.Porcentaje)
	assert.Equal(t, "Falta registrar distribución", estado.Mensaje)
	assert.Equal(t, 1, out.TrazabilidadInterna.TotalProcesos)
}

func TestTrazabilidad_CadenaCompleta(t *testing.T) {
	lotes := &memLotes{}
	loteEnRepo(lotes)
	procesos := &memProcesos{}
	procesoEnRepo(procesos, "2026-01-11")
	procesoEnRepo(procesos, "2026-01-13")
	envios := &memLogistica{}
	temp := 4.5
	entrega := fecha("2026-01-16")
	envios.items = append(envios.items, &entity.Logistica{
		ID:                    "envio-1",
		LoteID:                "lote-1",
		FechaSalida:           fecha("2026-01-14"),
		Destino:               "Mercado Central",
		Transportista:         "TransFrío SA",
		TemperaturaTransporte: &temp,
		FechaEntrega:          &entrega,
	})
	uc := usecase.NewTrazabilidadUseCase(lotes, procesos, envios)

	out, err := uc.GetByLoteID("lote-1")
	require.NoError(t, err)

	estado := out.EstadoTrazabilidad
	assert.Equal(t, entity.EstadoCompleto, estado.Estado)
	assert.Equal(t, 100, estado.Porcentaje)
	assert.Equal(t, "Trazabilidad completa registrada", estado.Mensaje)

	assert.Equal(t, "lote-1", out.LoteID)
	assert.Equal(t, "MG-2026-001", out.CodigoLote)
	assert.Equal(t, "ORIGEN", out.TrazabilidadHaciaAtras.Tipo)
	assert.Equal(t, "2026-01-10", out.TrazabilidadHaciaAtras.FechaCosecha)

	interna := out.TrazabilidadInterna
	assert.Equal(t, "TRANSFORMACIÓN", interna.Tipo)
	require.Equal(t, 2, interna.TotalProcesos)
	// Los procesos van en orden cronológico ascendente.
	assert.Equal(t, "2026-01-11", interna.Procesos[0].Fecha)
	assert.Equal(t, "2026-01-13", interna.Procesos[1].Fecha)

	adelante := out.TrazabilidadHaciaAdelante
	assert.Equal(t, "DISTRIBUCIÓN", adelante.Tipo)
	require.Equal(t, 1, adelante.TotalEnvios)
	assert.Equal(t, "2026-01-14", adelante.Envios[0].FechaSalida)
	assert.Equal(t, "2026-01-16", adelante.Envios[0].FechaEntrega)
	require.NotNil(t, adelante.Envios[0].TemperaturaTransporte)
	assert.Equal(t, 4.5, *adelante.Envios[0].TemperaturaTransporte)
}

func TestTrazabilidad_GetByCodigo(t *testing.T) {
	lotes := &memLotes{}
	loteEnRepo(lotes)
	uc := usecase.NewTrazabilidadUseCase(lotes, &memProcesos{}, &memLogistica{})

	porID, err := uc.GetByLoteID("lote-1")
	require.NoError(t, err)
	porCodigo, err := uc.GetByCodigo("MG-2026-001")
	require.NoError(t, err)
	assert.Equal(t, porID, porCodigo)
}
