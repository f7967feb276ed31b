package dataclient

import (
	"fmt"
	"net/http"

	"github.com/agrotrace/trazabilidad-api/internal/domain/entity"
	"github.com/agrotrace/trazabilidad-api/internal/domain/repository"
	"github.com/agrotrace/trazabilidad-api/internal/infrastructure/dataapi"
)

var _ repository.ProcesoRepository = (*ProcesoRepo)(nil)

// ProcesoRepo implementación del puerto ProcesoRepository contra la capa de datos HTTP.
type ProcesoRepo struct {
	c *Client
}

// NewProcesoRepository construye el adaptador remoto para procesos.
func NewProcesoRepository(c *Client) *ProcesoRepo {
	return &ProcesoRepo{c: c}
}

// Create envía el proceso a la capa de datos.
func (r *ProcesoRepo) Create(proceso *entity.Proceso) error {
	resp, err := r.c.http.R().
		SetBody(dataapi.FromProceso(proceso)).
		Post("/data/procesos")
	if err != nil {
		return fmt.Errorf("POST proceso: %w", err)
	}
	if resp.IsError() {
		return apiError("POST proceso", resp)
	}
	return nil
}

// GetByID obtiene un proceso por ID. Un 404 es (nil, nil).
func (r *ProcesoRepo) GetByID(id string) (*entity.Proceso, error) {
	var rec dataapi.ProcesoRecord
	resp, err := r.c.http.R().
		SetResult(&rec).
		Get("/data/procesos/" + id)
	if err != nil {
		return nil, fmt.Errorf("GET proceso: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if resp.IsError() {
		return nil, apiError("GET proceso", resp)
	}
	return rec.ToEntity(), nil
}

// ListAll lista todos los procesos (fecha DESC, orden de la capa de datos).
func (r *ProcesoRepo) ListAll() ([]*entity.Proceso, error) {
	return r.list("/data/procesos")
}

// ListByLote lista los procesos de un lote (fecha ASC, orden de la capa de datos).
func (r *ProcesoRepo) ListByLote(loteID string) ([]*entity.Proceso, error) {
	return r.list("/data/procesos/lote/" + loteID)
}

func (r *ProcesoRepo) list(path string) ([]*entity.Proceso, error) {
	var recs []dataapi.ProcesoRecord
	resp, err := r.c.http.R().
		SetResult(&recs).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("GET procesos: %w", err)
	}
	if resp.IsError() {
		return nil, apiError("GET procesos", resp)
	}
	list := make([]*entity.Proceso, 0, len(recs))
	for i := range recs {
		list = append(list, recs[i].ToEntity())
	}
	return list, nil
}
