package usecase

import (
	"fmt"

	"github.com/agrotrace/trazabilidad-api/internal/application/dto"
	"github.com/agrotrace/trazabilidad-api/internal/domain"
	"github.com/agrotrace/trazabilidad-api/internal/domain/entity"
	"github.com/agrotrace/trazabilidad-api/internal/domain/repository"
	"github.com/agrotrace/trazabilidad-api/internal/domain/validacion"
)

// TrazabilidadUseCase compone la trazabilidad completa de un lote: origen
// (hacia atrás), transformación (interna) y distribución (hacia adelante),
// más el estado de completitud.
type TrazabilidadUseCase struct {
	lotes     repository.LoteRepository
	procesos  repository.ProcesoRepository
	logistica repository.LogisticaRepository
}

// NewTrazabilidadUseCase construye el compositor.
func NewTrazabilidadUseCase(
	lotes repository.LoteRepository,
	procesos repository.ProcesoRepository,
	logistica repository.LogisticaRepository,
) *TrazabilidadUseCase {
	return &TrazabilidadUseCase{lotes: lotes, procesos: procesos, logistica: logistica}
}

// GetByLoteID arma el reporte de trazabilidad de un lote.
func (uc *TrazabilidadUseCase) GetByLoteID(loteID string) (*dto.TrazabilidadResponse, error) {
	lote, err := uc.lotes.GetByID(loteID)
	if err != nil {
		return nil, fmt.Errorf("consultar lote: %w", err)
	}
	if lote == nil {
		return nil, domain.ErrLoteNotFound
	}

	procesos, err := uc.procesos.ListByLote(loteID)
	if err != nil {
		return nil, fmt.Errorf("consultar procesos: %w", err)
	}
	envios, err := uc.logistica.ListByLote(loteID)
	if err != nil {
		return nil, fmt.Errorf("consultar logística: %w", err)
	}

	traza := &entity.Trazabilidad{
		Lote:     lote,
		Procesos: procesos,
		Envios:   envios,
		Estado:   entity.CalcularEstado(lote, procesos, envios),
	}
	return toTrazabilidadResponse(traza), nil
}

func toTrazabilidadResponse(t *entity.Trazabilidad) *dto.TrazabilidadResponse {
	lote, procesos, envios, estado := t.Lote, t.Procesos, t.Envios, t.Estado

	procesoItems := make([]dto.ProcesoTrazaItem, 0, len(procesos))
	for _, p := range procesos {
		procesoItems = append(procesoItems, dto.ProcesoTrazaItem{
			ID:            p.ID,
			TipoProceso:   p.TipoProceso,
			Fecha:         p.Fecha.Format(validacion.FormatoFecha),
			Responsable:   p.Responsable,
			Parametros:    p.Parametros,
			Observaciones: p.Observaciones,
		})
	}

	envioItems := make([]dto.EnvioTrazaItem, 0, len(envios))
	for _, e := range envios {
		item := dto.EnvioTrazaItem{
			ID:                    e.ID,
			FechaSalida:           e.FechaSalida.Format(validacion.FormatoFecha),
			Destino:               e.Destino,
			Transportista:         e.Transportista,
			TemperaturaTransporte: e.TemperaturaTransporte,
		}
		if e.FechaEntrega != nil {
			item.FechaEntrega = e.FechaEntrega.Format(validacion.FormatoFecha)
		}
		envioItems = append(envioItems, item)
	}

	return &dto.TrazabilidadResponse{
		LoteID:     lote.ID,
		CodigoLote: lote.CodigoLote,
		TrazabilidadHaciaAtras: dto.OrigenSection{
			Tipo:         "ORIGEN",
			Producto:     lote.Producto,
			Finca:        lote.Finca,
			Ubicacion:    lote.Ubicacion,
			FechaCosecha: lote.FechaCosecha.Format(validacion.FormatoFecha),
			Responsable:  lote.Responsable,
			CantidadKg:   lote.CantidadKg,
		},
		TrazabilidadInterna: dto.TransformacionSection{
			Tipo:          "TRANSFORMACIÓN",
			TotalProcesos: len(procesoItems),
			Procesos:      procesoItems,
		},
		TrazabilidadHaciaAdelante: dto.DistribucionSection{
			Tipo:        "DISTRIBUCIÓN",
			TotalEnvios: len(envioItems),
			Envios:      envioItems,
		},
		EstadoTrazabilidad: dto.EstadoTrazabilidadDTO{
			Estado:         estado.Estado,
			Porcentaje:     estado.Porcentaje,
			TieneOrigen:    estado.TieneOrigen,
			TieneProcesos:  estado.TieneProcesos,
			TieneLogistica: estado.TieneLogistica,
			Mensaje:        estado.Mensaje,
		},
	}
}

// GetByCodigo resuelve el código de lote a un ID y delega en GetByLoteID.
func (uc *TrazabilidadUseCase) GetByCodigo(codigoLote string) (*dto.TrazabilidadResponse, error) {
	lote, err := uc.lotes.GetByCodigo(codigoLote)
	if err != nil {
		return nil, fmt.Errorf("consultar código de lote: %w", err)
	}
	if lote == nil {
		return nil, domain.ErrLoteNotFound
	}
	return uc.GetByLoteID(lote.ID)
}
