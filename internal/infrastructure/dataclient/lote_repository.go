package dataclient

import (
	"fmt"
	"net/http"

	"github.com/agrotrace/trazabilidad-api/internal/domain"
	"github.com/agrotrace/trazabilidad-api/internal/domain/entity"
	"github.com/agrotrace/trazabilidad-api/internal/domain/repository"
	"github.com/agrotrace/trazabilidad-api/internal/infrastructure/dataapi"
)

var _ repository.LoteRepository = (*LoteRepo)(nil)

// LoteRepo implementación del puerto LoteRepository contra la capa de datos HTTP.
type LoteRepo struct {
	c *Client
}

// NewLoteRepository construye el adaptador remoto para lotes.
func NewLoteRepository(c *Client) *LoteRepo {
	return &LoteRepo{c: c}
}

// Create envía el lote a la capa de datos. Un 409 se mapea a ErrDuplicate.
func (r *LoteRepo) Create(lote *entity.Lote) error {
	resp, err := r.c.http.R().
		SetBody(dataapi.FromLote(lote)).
		Post("/data/lotes")
	if err != nil {
		return fmt.Errorf("POST lote: %w", err)
	}
	if resp.StatusCode() == http.StatusConflict {
		return domain.ErrDuplicate
	}
	if resp.IsError() {
		return apiError("POST lote", resp)
	}
	return nil
}

// GetByID obtiene un lote por ID. Un 404 es (nil, nil).
func (r *LoteRepo) GetByID(id string) (*entity.Lote, error) {
	var rec dataapi.LoteRecord
	resp, err := r.c.http.R().
		SetResult(&rec).
		Get("/data/lotes/" + id)
	if err != nil {
		return nil, fmt.Errorf("GET lote: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if resp.IsError() {
		return nil, apiError("GET lote", resp)
	}
	return rec.ToEntity(), nil
}

// GetByCodigo obtiene un lote por su código. Un 404 es (nil, nil).
func (r *LoteRepo) GetByCodigo(codigoLote string) (*entity.Lote, error) {
	var rec dataapi.LoteRecord
	resp, err := r.c.http.R().
		SetResult(&rec).
		Get("/data/lotes/codigo/" + codigoLote)
	if err != nil {
		return nil, fmt.Errorf("GET lote por código: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if resp.IsError() {
		return nil, apiError("GET lote por código", resp)
	}
	return rec.ToEntity(), nil
}

// ListAll lista todos los lotes (la capa de datos ordena por fecha de cosecha DESC).
func (r *LoteRepo) ListAll() ([]*entity.Lote, error) {
	var recs []dataapi.LoteRecord
	resp, err := r.c.http.R().
		SetResult(&recs).
		Get("/data/lotes")
	if err != nil {
		return nil, fmt.Errorf("GET lotes: %w", err)
	}
	if resp.IsError() {
		return nil, apiError("GET lotes", resp)
	}
	list := make([]*entity.Lote, 0, len(recs))
	for i := range recs {
		list = append(list, recs[i].ToEntity())
	}
	return list, nil
}
