package repository

import "github.com/agrotrace/trazabilidad-api/internal/domain/entity"

// ProcesoRepository define el puerto de persistencia para Proceso.
// ListByLote devuelve los procesos ordenados por fecha ascendente.
type ProcesoRepository interface {
	Create(proceso *entity.Proceso) error
	GetByID(id string) (*entity.Proceso, error)
	ListAll() ([]*entity.Proceso, error)
	ListByLote(loteID string) ([]*entity.Proceso, error)
}
