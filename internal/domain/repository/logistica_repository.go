package repository

import "github.com/agrotrace/trazabilidad-api/internal/domain/entity"

// LogisticaRepository define el puerto de persistencia para Logistica.
// ListByLote devuelve los envíos ordenados por fecha de salida ascendente.
type LogisticaRepository interface {
	Create(logistica *entity.Logistica) error
	GetByID(id string) (*entity.Logistica, error)
	ListAll() ([]*entity.Logistica, error)
	ListByLote(loteID string) ([]*entity.Logistica, error)
}
