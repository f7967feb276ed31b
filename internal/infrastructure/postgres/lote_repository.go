package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/agrotrace/trazabilidad-api/internal/domain"
	"github.com/agrotrace/trazabilidad-api/internal/domain/entity"
	"github.com/agrotrace/trazabilidad-api/internal/domain/repository"
)

var _ repository.LoteRepository = (*LoteRepo)(nil)

// LoteRepo implementación del puerto LoteRepository sobre PostgreSQL.
type LoteRepo struct {
	q Querier
}

// NewLoteRepository construye el adaptador de persistencia para lotes.
func NewLoteRepository(q Querier) *LoteRepo {
	return &LoteRepo{q: q}
}

const loteColumns = `id, codigo_lote, producto, finca, ubicacion, fecha_cosecha, responsable, cantidad_kg, created_at`

// Create persiste un nuevo lote. El constraint UNIQUE de codigo_lote mapea a ErrDuplicate.
func (r *LoteRepo) Create(lote *entity.Lote) error {
	query := `
		INSERT INTO lotes (id, codigo_lote, producto, finca, ubicacion, fecha_cosecha, responsable, cantidad_kg, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		lote.ID, lote.CodigoLote, lote.Producto, lote.Finca, lote.Ubicacion,
		lote.FechaCosecha, lote.Responsable, lote.CantidadKg, lote.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert lote: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID. Devuelve (nil, nil) si no existe.
func (r *LoteRepo) GetByID(id string) (*entity.Lote, error) {
	query := `SELECT ` + loteColumns + ` FROM lotes WHERE id = $1`
	lote, err := scanLote(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lote: %w", err)
	}
	return lote, nil
}

// GetByCodigo obtiene un lote por su código. Devuelve (nil, nil) si no existe.
func (r *LoteRepo) GetByCodigo(codigoLote string) (*entity.Lote, error) {
	query := `SELECT ` + loteColumns + ` FROM lotes WHERE codigo_lote = $1`
	lote, err := scanLote(r.q.QueryRow(context.Background(), query, codigoLote))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lote por código: %w", err)
	}
	return lote, nil
}

// ListAll lista todos los lotes ordenados por fecha de cosecha descendente.
func (r *LoteRepo) ListAll() ([]*entity.Lote, error) {
	query := `SELECT ` + loteColumns + ` FROM lotes ORDER BY fecha_cosecha DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list lotes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Lote
	for rows.Next() {
		lote, err := scanLote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lote: %w", err)
		}
		list = append(list, lote)
	}
	return list, rows.Err()
}

func scanLote(row pgx.Row) (*entity.Lote, error) {
	var l entity.Lote
	err := row.Scan(
		&l.ID, &l.CodigoLote, &l.Producto, &l.Finca, &l.Ubicacion,
		&l.FechaCosecha, &l.Responsable, &l.CantidadKg, &l.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
