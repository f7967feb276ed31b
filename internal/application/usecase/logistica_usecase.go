package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/agrotrace/trazabilidad-api/internal/application/dto"
	"github.com/agrotrace/trazabilidad-api/internal/domain"
	"github.com/agrotrace/trazabilidad-api/internal/domain/entity"
	"github.com/agrotrace/trazabilidad-api/internal/domain/repository"
	"github.com/agrotrace/trazabilidad-api/internal/domain/validacion"
)

// LogisticaUseCase comandos y consultas sobre envíos (distribución).
type LogisticaUseCase struct {
	repo       repository.LogisticaRepository
	coherencia *CoherenciaTemporal
}

// NewLogisticaUseCase construye el caso de uso.
func NewLogisticaUseCase(repo repository.LogisticaRepository, coherencia *CoherenciaTemporal) *LogisticaUseCase {
	return &LogisticaUseCase{repo: repo, coherencia: coherencia}
}

// Create registra un envío: valida campos, exige al menos un proceso en el
// lote y verifica coherencia temporal contra cosecha y último proceso.
func (uc *LogisticaUseCase) Create(in dto.CreateLogisticaRequest) (*dto.LogisticaResponse, error) {
	errores := validacion.ValidarLogistica(validacion.LogisticaInput{
		LoteID:                in.LoteID,
		FechaSalida:           in.FechaSalida,
		Destino:               in.Destino,
		Transportista:         in.Transportista,
		TemperaturaTransporte: in.TemperaturaTransporte,
		FechaEntrega:          in.FechaEntrega,
	})
	if len(errores) > 0 {
		return nil, domain.NewValidationError(errores)
	}

	if err := uc.coherencia.RequireProcesos(in.LoteID); err != nil {
		return nil, err
	}
	fechaSalida, _ := validacion.ParseFecha(in.FechaSalida) // ya validada
	if err := uc.coherencia.CheckEnvioContraLoteYProcesos(in.LoteID, fechaSalida); err != nil {
		return nil, err
	}

	var fechaEntrega *time.Time
	if in.FechaEntrega != "" {
		fe, _ := validacion.ParseFecha(in.FechaEntrega) // ya validada
		fechaEntrega = &fe
	}
	logistica := &entity.Logistica{
		ID:                    uuid.New().String(),
		LoteID:                in.LoteID,
		FechaSalida:           fechaSalida,
		Destino:               in.Destino,
		Transportista:         in.Transportista,
		TemperaturaTransporte: in.TemperaturaTransporte,
		FechaEntrega:          fechaEntrega,
		CreatedAt:             time.Now(),
	}
	if err := uc.repo.Create(logistica); err != nil {
		return nil, err
	}
	return toLogisticaResponse(logistica), nil
}

// ListAll lista todos los envíos (fecha de salida descendente).
func (uc *LogisticaUseCase) ListAll() (*dto.LogisticaListResponse, error) {
	envios, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	return toLogisticaList(envios), nil
}

// ListByLote lista los envíos de un lote (fecha de salida ascendente).
func (uc *LogisticaUseCase) ListByLote(loteID string) (*dto.LogisticaListResponse, error) {
	envios, err := uc.repo.ListByLote(loteID)
	if err != nil {
		return nil, err
	}
	return toLogisticaList(envios), nil
}

func toLogisticaList(envios []*entity.Logistica) *dto.LogisticaListResponse {
	items := make([]dto.LogisticaResponse, 0, len(envios))
	for _, e := range envios {
		items = append(items, *toLogisticaResponse(e))
	}
	return &dto.LogisticaListResponse{Items: items, Total: len(items)}
}

func toLogisticaResponse(l *entity.Logistica) *dto.LogisticaResponse {
	if l == nil {
		return nil
	}
	resp := &dto.LogisticaResponse{
		ID:                    l.ID,
		LoteID:                l.LoteID,
		FechaSalida:           l.FechaSalida.Format(validacion.FormatoFecha),
		Destino:               l.Destino,
		Transportista:         l.Transportista,
		TemperaturaTransporte: l.TemperaturaTransporte,
		CreatedAt:             l.CreatedAt,
	}
	if l.FechaEntrega != nil {
		resp.FechaEntrega = l.FechaEntrega.Format(validacion.FormatoFecha)
	}
	return resp
}
