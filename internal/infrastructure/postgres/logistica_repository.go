package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/agrotrace/trazabilidad-api/internal/domain/entity"
	"github.com/agrotrace/trazabilidad-api/internal/domain/repository"
)

var _ repository.LogisticaRepository = (*LogisticaRepo)(nil)

// LogisticaRepo implementación del puerto LogisticaRepository sobre PostgreSQL.
type LogisticaRepo struct {
	q Querier
}

// NewLogisticaRepository construye el adaptador de persistencia para logística.
func NewLogisticaRepository(q Querier) *LogisticaRepo {
	return &LogisticaRepo{q: q}
}

const logisticaColumns = `id, lote_id, fecha_salida, destino, transportista, temperatura_transporte, fecha_entrega, created_at`

// Create persiste un nuevo registro de logística.
func (r *LogisticaRepo) Create(logistica *entity.Logistica) error {
	query := `
		INSERT INTO logistica (id, lote_id, fecha_salida, destino, transportista, temperatura_transporte, fecha_entrega, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		logistica.ID, logistica.LoteID, logistica.FechaSalida, logistica.Destino,
		logistica.Transportista, logistica.TemperaturaTransporte, logistica.FechaEntrega, logistica.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert logística: %w", err)
	}
	return nil
}

// GetByID obtiene un registro de logística por ID. Devuelve (nil, nil) si no existe.
func (r *LogisticaRepo) GetByID(id string) (*entity.Logistica, error) {
	query := `SELECT ` + logisticaColumns + ` FROM logistica WHERE id = $1`
	logistica, err := scanLogistica(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get logística: %w", err)
	}
	return logistica, nil
}

// ListAll lista todos los envíos ordenados por fecha de salida descendente.
func (r *LogisticaRepo) ListAll() ([]*entity.Logistica, error) {
	return r.list(`SELECT ` + logisticaColumns + ` FROM logistica ORDER BY fecha_salida DESC`)
}

// ListByLote lista los envíos de un lote ordenados por fecha de salida ascendente.
func (r *LogisticaRepo) ListByLote(loteID string) ([]*entity.Logistica, error) {
	return r.list(`SELECT `+logisticaColumns+` FROM logistica WHERE lote_id = $1 ORDER BY fecha_salida ASC`, loteID)
}

func (r *LogisticaRepo) list(query string, args ...any) ([]*entity.Logistica, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list logística: %w", err)
	}
	defer rows.Close()
	var list []*entity.Logistica
	for rows.Next() {
		logistica, err := scanLogistica(rows)
		if err != nil {
			return nil, fmt.Errorf("scan logística: %w", err)
		}
		list = append(list, logistica)
	}
	return list, rows.Err()
}

func scanLogistica(row pgx.Row) (*entity.Logistica, error) {
	var l entity.Logistica
	err := row.Scan(
		&l.ID, &l.LoteID, &l.FechaSalida, &l.Destino,
		&l.Transportista, &l.TemperaturaTransporte, &l.FechaEntrega, &l.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
