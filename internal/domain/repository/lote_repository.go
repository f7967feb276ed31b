package repository

import "github.com/agrotrace/trazabilidad-api/internal/domain/entity"

// LoteRepository define el puerto de persistencia para Lote (DIP).
// Los Get devuelven (nil, nil) cuando el registro no existe; los errores
// no-nil son fallas del almacén, nunca "no encontrado".
type LoteRepository interface {
	Create(lote *entity.Lote) error
	GetByID(id string) (*entity.Lote, error)
	GetByCodigo(codigoLote string) (*entity.Lote, error)
	ListAll() ([]*entity.Lote, error)
}
