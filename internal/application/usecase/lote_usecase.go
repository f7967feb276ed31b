package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/agrotrace/trazabilidad-api/internal/application/dto"
	"github.com/agrotrace/trazabilidad-api/internal/domain"
	"github.com/agrotrace/trazabilidad-api/internal/domain/entity"
	"github.com/agrotrace/trazabilidad-api/internal/domain/repository"
	"github.com/agrotrace/trazabilidad-api/internal/domain/validacion"
)

// LoteUseCase comandos y consultas sobre lotes de cosecha.
type LoteUseCase struct {
	repo repository.LoteRepository
}

// NewLoteUseCase construye el caso de uso.
func NewLoteUseCase(repo repository.LoteRepository) *LoteUseCase {
	return &LoteUseCase{repo: repo}
}

// Create registra un lote: valida campos, verifica unicidad del código y
// persiste. Exactamente una escritura en caso de éxito; ninguna si falla.
func (uc *LoteUseCase) Create(in dto.CreateLoteRequest) (*dto.LoteResponse, error) {
	errores := validacion.ValidarLote(validacion.LoteInput{
		CodigoLote:   in.CodigoLote,
		Producto:     in.Producto,
		Finca:        in.Finca,
		Ubicacion:    in.Ubicacion,
		FechaCosecha: in.FechaCosecha,
		Responsable:  in.Responsable,
		CantidadKg:   in.CantidadKg,
	})
	if len(errores) > 0 {
		return nil, domain.NewValidationError(errores)
	}

	// Chequeo previo de duplicado. No es atómico frente a creaciones
	// concurrentes: la garantía real es el constraint UNIQUE del esquema,
	// que el repositorio mapea también a ErrDuplicate.
	existente, err := uc.repo.GetByCodigo(in.CodigoLote)
	if err != nil {
		return nil, fmt.Errorf("consultar código de lote: %w", err)
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}

	fechaCosecha, _ := validacion.ParseFecha(in.FechaCosecha) // ya validada
	lote := &entity.Lote{
		ID:           uuid.New().String(),
		CodigoLote:   in.CodigoLote,
		Producto:     in.Producto,
		Finca:        in.Finca,
		Ubicacion:    in.Ubicacion,
		FechaCosecha: fechaCosecha,
		Responsable:  in.Responsable,
		CantidadKg:   in.CantidadKg,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(lote); err != nil {
		return nil, err
	}
	return toLoteResponse(lote), nil
}

// GetByID obtiene un lote por ID.
func (uc *LoteUseCase) GetByID(id string) (*dto.LoteResponse, error) {
	lote, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lote == nil {
		return nil, domain.ErrLoteNotFound
	}
	return toLoteResponse(lote), nil
}

// GetByCodigo obtiene un lote por su código (clave natural).
func (uc *LoteUseCase) GetByCodigo(codigoLote string) (*dto.LoteResponse, error) {
	lote, err := uc.repo.GetByCodigo(codigoLote)
	if err != nil {
		return nil, err
	}
	if lote == nil {
		return nil, domain.ErrLoteNotFound
	}
	return toLoteResponse(lote), nil
}

// List lista todos los lotes, ordenados por fecha de cosecha descendente.
func (uc *LoteUseCase) List() (*dto.LoteListResponse, error) {
	lotes, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	items := make([]dto.LoteResponse, 0, len(lotes))
	for _, l := range lotes {
		items = append(items, *toLoteResponse(l))
	}
	return &dto.LoteListResponse{Items: items, Total: len(items)}, nil
}

func toLoteResponse(l *entity.Lote) *dto.LoteResponse {
	if l == nil {
		return nil
	}
	return &dto.LoteResponse{
		ID:           l.ID,
		CodigoLote:   l.CodigoLote,
		Producto:     l.Producto,
		Finca:        l.Finca,
		Ubicacion:    l.Ubicacion,
		FechaCosecha: l.FechaCosecha.Format(validacion.FormatoFecha),
		Responsable:  l.Responsable,
		CantidadKg:   l.CantidadKg,
		CreatedAt:    l.CreatedAt,
	}
}
