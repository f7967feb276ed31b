package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/agrotrace/trazabilidad-api/internal/domain/entity"
	"github.com/agrotrace/trazabilidad-api/internal/domain/repository"
)

var _ repository.ProcesoRepository = (*ProcesoRepo)(nil)

// ProcesoRepo implementación del puerto ProcesoRepository sobre PostgreSQL.
type ProcesoRepo struct {
	q Querier
}

// NewProcesoRepository construye el adaptador de persistencia para procesos.
func NewProcesoRepository(q Querier) *ProcesoRepo {
	return &ProcesoRepo{q: q}
}

const procesoColumns = `id, lote_id, tipo_proceso, fecha, responsable, parametros, observaciones, created_at`

// Create persiste un nuevo proceso.
func (r *ProcesoRepo) Create(proceso *entity.Proceso) error {
	query := `
		INSERT INTO procesos (id, lote_id, tipo_proceso, fecha, responsable, parametros, observaciones, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		proceso.ID, proceso.LoteID, proceso.TipoProceso, proceso.Fecha,
		proceso.Responsable, proceso.Parametros, proceso.Observaciones, proceso.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert proceso: %w", err)
	}
	return nil
}

// GetByID obtiene un proceso por ID. Devuelve (nil, nil) si no existe.
func (r *ProcesoRepo) GetByID(id string) (*entity.Proceso, error) {
	query := `SELECT ` + procesoColumns + ` FROM procesos WHERE id = $1`
	proceso, err := scanProceso(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proceso: %w", err)
	}
	return proceso, nil
}

// ListAll lista todos los procesos ordenados por fecha descendente.
func (r *ProcesoRepo) ListAll() ([]*entity.Proceso, error) {
	return r.list(`SELECT ` + procesoColumns + ` FROM procesos ORDER BY fecha DESC`)
}

// ListByLote lista los procesos de un lote ordenados por fecha ascendente.
func (r *ProcesoRepo) ListByLote(loteID string) ([]*entity.Proceso, error) {
	return r.list(`SELECT `+procesoColumns+` FROM procesos WHERE lote_id = $1 ORDER BY fecha ASC`, loteID)
}

func (r *ProcesoRepo) list(query string, args ...any) ([]*entity.Proceso, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list procesos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Proceso
	for rows.Next() {
		proceso, err := scanProceso(rows)
		if err != nil {
			return nil, fmt.Errorf("scan proceso: %w", err)
		}
		list = append(list, proceso)
	}
	return list, rows.Err()
}

func scanProceso(row pgx.Row) (*entity.Proceso, error) {
	var p entity.Proceso
	err := row.Scan(
		&p.ID, &p.LoteID, &p.TipoProceso, &p.Fecha,
		&p.Responsable, &p.Parametros, &p.Observaciones, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
