package dto

import "time"

// CreateLogisticaRequest datos de entrada para registrar un envío.
// TemperaturaTransporte y FechaEntrega son opcionales.
type CreateLogisticaRequest struct {
	LoteID                string   `json:"loteId"`
	FechaSalida           string   `json:"fechaSalida"`
	Destino               string   `json:"destino"`
	Transportista         string   `json:"transportista"`
	TemperaturaTransporte *float64 `json:"temperaturaTransporte,omitempty"`
	FechaEntrega          string   `json:"fechaEntrega,omitempty"`
}

// LogisticaResponse proyección de un envío persistido.
type LogisticaResponse struct {
	ID                    string    `json:"id"`
	LoteID                string    `json:"loteId"`
	FechaSalida           string    `json:"fechaSalida"`
	Destino               string    `json:"destino"`
	Transportista         string    `json:"transportista"`
	TemperaturaTransporte *float64  `json:"temperaturaTransporte,omitempty"`
	FechaEntrega          string    `json:"fechaEntrega,omitempty"`
	CreatedAt             time.Time `json:"createdAt"`
}

// LogisticaListResponse listado de envíos.
type LogisticaListResponse struct {
	Items []LogisticaResponse `json:"items"`
	Total int                 `json:"total"`
}
