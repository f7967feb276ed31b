package usecase

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/agrotrace/trazabilidad-api/internal/application/dto"
	"github.com/agrotrace/trazabilidad-api/internal/domain"
	"github.com/agrotrace/trazabilidad-api/internal/domain/entity"
	"github.com/agrotrace/trazabilidad-api/internal/domain/repository"
	"github.com/agrotrace/trazabilidad-api/internal/domain/validacion"
)

// ProcesoUseCase comandos y consultas sobre procesos de transformación.
type ProcesoUseCase struct {
	repo       repository.ProcesoRepository
	coherencia *CoherenciaTemporal
}

// NewProcesoUseCase construye el caso de uso.
func NewProcesoUseCase(repo repository.ProcesoRepository, coherencia *CoherenciaTemporal) *ProcesoUseCase {
	return &ProcesoUseCase{repo: repo, coherencia: coherencia}
}

// Create registra un proceso: valida campos, verifica coherencia temporal
// contra el lote y persiste.
func (uc *ProcesoUseCase) Create(in dto.CreateProcesoRequest) (*dto.ProcesoResponse, error) {
	errores := validacion.ValidarProceso(validacion.ProcesoInput{
		LoteID:      in.LoteID,
		TipoProceso: in.TipoProceso,
		Fecha:       in.Fecha,
		Responsable: in.Responsable,
	})
	if len(errores) > 0 {
		return nil, domain.NewValidationError(errores)
	}

	fecha, _ := validacion.ParseFecha(in.Fecha) // ya validada
	if err := uc.coherencia.CheckProcesoContraLote(in.LoteID, fecha); err != nil {
		return nil, err
	}

	parametros := in.Parametros
	if len(parametros) == 0 {
		parametros = json.RawMessage(`{}`)
	}
	proceso := &entity.Proceso{
		ID:            uuid.New().String(),
		LoteID:        in.LoteID,
		TipoProceso:   in.TipoProceso,
		Fecha:         fecha,
		Responsable:   in.Responsable,
		Parametros:    parametros,
		Observaciones: in.Observaciones,
		CreatedAt:     time.Now(),
	}
	if err := uc.repo.Create(proceso); err != nil {
		return nil, err
	}
	return toProcesoResponse(proceso), nil
}

// ListAll lista todos los procesos (fecha descendente).
func (uc *ProcesoUseCase) ListAll() (*dto.ProcesoListResponse, error) {
	procesos, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	return toProcesoList(procesos), nil
}

// ListByLote lista los procesos de un lote (fecha ascendente).
func (uc *ProcesoUseCase) ListByLote(loteID string) (*dto.ProcesoListResponse, error) {
	procesos, err := uc.repo.ListByLote(loteID)
	if err != nil {
		return nil, err
	}
	return toProcesoList(procesos), nil
}

func toProcesoList(procesos []*entity.Proceso) *dto.ProcesoListResponse {
	items := make([]dto.ProcesoResponse, 0, len(procesos))
	for _, p := range procesos {
		items = append(items, *toProcesoResponse(p))
	}
	return &dto.ProcesoListResponse{Items: items, Total: len(items)}
}

func toProcesoResponse(p *entity.Proceso) *dto.ProcesoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProcesoResponse{
		ID:            p.ID,
		LoteID:        p.LoteID,
		TipoProceso:   p.TipoProceso,
		Fecha:         p.Fecha.Format(validacion.FormatoFecha),
		Responsable:   p.Responsable,
		Parametros:    p.Parametros,
		Observaciones: p.Observaciones,
		CreatedAt:     p.CreatedAt,
	}
}
