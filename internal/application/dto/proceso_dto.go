package dto

import (
	"encoding/json"
	"time"
)

// CreateProcesoRequest datos de entrada para registrar un proceso de
// transformación. Parametros es un blob opaco que se persiste sin interpretar.
type CreateProcesoRequest struct {
	LoteID        string          `json:"loteId"`
	TipoProceso   string          `json:"tipoProceso"`
	Fecha         string          `json:"fecha"`
	Responsable   string          `json:"responsable"`
	Parametros    json.RawMessage `json:"parametros,omitempty"`
	Observaciones string          `json:"observaciones,omitempty"`
}

// ProcesoResponse proyección de un proceso persistido.
type ProcesoResponse struct {
	ID            string          `json:"id"`
	LoteID        string          `json:"loteId"`
	TipoProceso   string          `json:"tipoProceso"`
	Fecha         string          `json:"fecha"`
	Responsable   string          `json:"responsable"`
	Parametros    json.RawMessage `json:"parametros,omitempty"`
	Observaciones string          `json:"observaciones,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ProcesoListResponse listado de procesos.
type ProcesoListResponse struct {
	Items []ProcesoResponse `json:"items"`
	Total int               `json:"total"`
}
