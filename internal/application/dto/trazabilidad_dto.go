package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// TrazabilidadResponse vista compuesta de la cadena de un lote: origen,
// transformación interna y distribución, más el estado de completitud.
type TrazabilidadResponse struct {
	LoteID                    string                `json:"loteId"`
	CodigoLote                string                `json:"codigoLote"`
	TrazabilidadHaciaAtras    OrigenSection         `json:"trazabilidadHaciaAtras"`
	TrazabilidadInterna       TransformacionSection `json:"trazabilidadInterna"`
	TrazabilidadHaciaAdelante DistribucionSection   `json:"trazabilidadHaciaAdelante"`
	EstadoTrazabilidad        EstadoTrazabilidadDTO `json:"estadoTrazabilidad"`
}

// OrigenSection sección de origen (el lote mismo).
type OrigenSection struct {
	Tipo         string          `json:"tipo"` // siempre "ORIGEN"
	Producto     string          `json:"producto"`
	Finca        string          `json:"finca"`
	Ubicacion    string          `json:"ubicacion"`
	FechaCosecha string          `json:"fechaCosecha"`
	Responsable  string          `json:"responsable"`
	CantidadKg   decimal.Decimal `json:"cantidadKg"`
}

// TransformacionSection sección de transformación interna.
type TransformacionSection struct {
	Tipo          string             `json:"tipo"` // siempre "TRANSFORMACIÓN"
	TotalProcesos int                `json:"totalProcesos"`
	Procesos      []ProcesoTrazaItem `json:"procesos"`
}

// ProcesoTrazaItem proyección de un proceso dentro del reporte (sin loteId ni
// metadatos de persistencia).
type ProcesoTrazaItem struct {
	ID            string          `json:"id"`
	TipoProceso   string          `json:"tipoProceso"`
	Fecha         string          `json:"fecha"`
	Responsable   string          `json:"responsable"`
	Parametros    json.RawMessage `json:"parametros,omitempty"`
	Observaciones string          `json:"observaciones,omitempty"`
}

// DistribucionSection sección de distribución hacia adelante.
type DistribucionSection struct {
	Tipo        string           `json:"tipo"` // siempre "DISTRIBUCIÓN"
	TotalEnvios int              `json:"totalEnvios"`
	Envios      []EnvioTrazaItem `json:"envios"`
}

// EnvioTrazaItem proyección de un envío dentro del reporte.
type EnvioTrazaItem struct {
	ID                    string   `json:"id"`
	FechaSalida           string   `json:"fechaSalida"`
	Destino               string   `json:"destino"`
	Transportista         string   `json:"transportista"`
	TemperaturaTransporte *float64 `json:"temperaturaTransporte,omitempty"`
	FechaEntrega          string   `json:"fechaEntrega,omitempty"`
}

// EstadoTrazabilidadDTO estado de completitud de la cadena.
type EstadoTrazabilidadDTO struct {
	Estado         string `json:"estado"`
	Porcentaje     int    `json:"porcentaje"`
	TieneOrigen    bool   `json:"tieneOrigen"`
	TieneProcesos  bool   `json:"tieneProcesos"`
	TieneLogistica bool   `json:"tieneLogistica"`
	Mensaje        string `json:"mensaje"`
}
