package dataclient

import (
	"fmt"
	"net/http"

	"github.com/agrotrace/trazabilidad-api/internal/domain/entity"
	"github.com/agrotrace/trazabilidad-api/internal/domain/repository"
	"github.com/agrotrace/trazabilidad-api/internal/infrastructure/dataapi"
)

var _ repository.LogisticaRepository = (*LogisticaRepo)(nil)

// LogisticaRepo implementación del puerto LogisticaRepository contra la capa de datos HTTP.
type LogisticaRepo struct {
	c *Client
}

// NewLogisticaRepository construye el adaptador remoto para logística.
func NewLogisticaRepository(c *Client) *LogisticaRepo {
	return &LogisticaRepo{c: c}
}

// Create envía el registro de logística a la capa de datos.
func (r *LogisticaRepo) Create(logistica *entity.Logistica) error {
	resp, err := r.c.http.R().
		SetBody(dataapi.FromLogistica(logistica)).
		Post("/data/logistica")
	if err != nil {
		return fmt.Errorf("POST logística: %w", err)
	}
	if resp.IsError() {
		return apiError("POST logística", resp)
	}
	return nil
}

// GetByID obtiene un registro de logística por ID. Un 404 es (nil, nil).
func (r *LogisticaRepo) GetByID(id string) (*entity.Logistica, error) {
	var rec dataapi.LogisticaRecord
	resp, err := r.c.http.R().
		SetResult(&rec).
		Get("/data/logistica/" + id)
	if err != nil {
		return nil, fmt.Errorf("GET logística: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if resp.IsError() {
		return nil, apiError("GET logística", resp)
	}
	return rec.ToEntity(), nil
}

// ListAll lista todos los envíos (fecha de salida DESC, orden de la capa de datos).
func (r *LogisticaRepo) ListAll() ([]*entity.Logistica, error) {
	return r.list("/data/logistica")
}

// ListByLote lista los envíos de un lote (fecha de salida ASC, orden de la capa de datos).
func (r *LogisticaRepo) ListByLote(loteID string) ([]*entity.Logistica, error) {
	return r.list("/data/logistica/lote/" + loteID)
}

func (r *LogisticaRepo) list(path string) ([]*entity.Logistica, error) {
	var recs []dataapi.LogisticaRecord
	resp, err := r.c.http.R().
		SetResult(&recs).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("GET logística: %w", err)
	}
	if resp.IsError() {
		return nil, apiError("GET logística", resp)
	}
	list := make([]*entity.Logistica, 0, len(recs))
	for i := range recs {
		list = append(list, recs[i].ToEntity())
	}
	return list, nil
}
