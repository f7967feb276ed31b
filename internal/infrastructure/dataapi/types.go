// Package dataapi define el contrato de alambre entre la capa de negocio y la
// capa de datos: los registros que viajan por HTTP cuando el servicio corre en
// modo de dos procesos (cmd/api + cmd/data).
package dataapi

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/agrotrace/trazabilidad-api/internal/domain/entity"
)

// ErrorBody cuerpo de error de la capa de datos.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// LoteRecord registro de lote en el alambre.
type LoteRecord struct {
	ID           string          `json:"id"`
	CodigoLote   string          `json:"codigoLote"`
	Producto     string          `json:"producto"`
	Finca        string          `json:"finca"`
	Ubicacion    string          `json:"ubicacion"`
	FechaCosecha time.Time       `json:"fechaCosecha"`
	Responsable  string          `json:"responsable"`
	CantidadKg   decimal.Decimal `json:"cantidadKg"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// FromLote convierte la entidad al registro de alambre.
func FromLote(l *entity.Lote) *LoteRecord {
	return &LoteRecord{
		ID:           l.ID,
		CodigoLote:   l.CodigoLote,
		Producto:     l.Producto,
		Finca:        l.Finca,
		Ubicacion:    l.Ubicacion,
		FechaCosecha: l.FechaCosecha,
		Responsable:  l.Responsable,
		CantidadKg:   l.CantidadKg,
		CreatedAt:    l.CreatedAt,
	}
}

// ToEntity convierte el registro de alambre a la entidad de dominio.
func (r *LoteRecord) ToEntity() *entity.Lote {
	return &entity.Lote{
		ID:           r.ID,
		CodigoLote:   r.CodigoLote,
		Producto:     r.Producto,
		Finca:        r.Finca,
		Ubicacion:    r.Ubicacion,
		FechaCosecha: r.FechaCosecha,
		Responsable:  r.Responsable,
		CantidadKg:   r.CantidadKg,
		CreatedAt:    r.CreatedAt,
	}
}

// ProcesoRecord registro de proceso en el alambre.
type ProcesoRecord struct {
	ID            string          `json:"id"`
	LoteID        string          `json:"loteId"`
	TipoProceso   string          `json:"tipoProceso"`
	Fecha         time.Time       `json:"fecha"`
	Responsable   string          `json:"responsable"`
	Parametros    json.RawMessage `json:"parametros,omitempty"`
	Observaciones string          `json:"observaciones,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// FromProceso convierte la entidad al registro de alambre.
func FromProceso(p *entity.Proceso) *ProcesoRecord {
	return &ProcesoRecord{
		ID:            p.ID,
		LoteID:        p.LoteID,
		TipoProceso:   p.TipoProceso,
		Fecha:         p.Fecha,
		Responsable:   p.Responsable,
		Parametros:    p.Parametros,
		Observaciones: p.Observaciones,
		CreatedAt:     p.CreatedAt,
	}
}

// ToEntity convierte el registro de alambre a la entidad de dominio.
func (r *ProcesoRecord) ToEntity() *entity.Proceso {
	return &entity.Proceso{
		ID:            r.ID,
		LoteID:        r.LoteID,
		TipoProceso:   r.TipoProceso,
		Fecha:         r.Fecha,
		Responsable:   r.Responsable,
		Parametros:    r.Parametros,
		Observaciones: r.Observaciones,
		CreatedAt:     r.CreatedAt,
	}
}

// LogisticaRecord registro de logística en el alambre.
type LogisticaRecord struct {
	ID                    string     `json:"id"`
	LoteID                string     `json:"loteId"`
	FechaSalida           time.Time  `json:"fechaSalida"`
	Destino               string     `json:"destino"`
	Transportista         string     `json:"transportista"`
	TemperaturaTransporte *float64   `json:"temperaturaTransporte,omitempty"`
	FechaEntrega          *time.Time `json:"fechaEntrega,omitempty"`
	CreatedAt             time.Time  `json:"createdAt"`
}

// FromLogistica convierte la entidad al registro de alambre.
func FromLogistica(l *entity.Logistica) *LogisticaRecord {
	return &LogisticaRecord{
		ID:                    l.ID,
		LoteID:                l.LoteID,
		FechaSalida:           l.FechaSalida,
		Destino:               l.Destino,
		Transportista:         l.Transportista,
		TemperaturaTransporte: l.TemperaturaTransporte,
		FechaEntrega:          l.FechaEntrega,
		CreatedAt:             l.CreatedAt,
	}
}

// ToEntity convierte el registro de alambre a la entidad de dominio.
func (r *LogisticaRecord) ToEntity() *entity.Logistica {
	return &entity.Logistica{
		ID:                    r.ID,
		LoteID:                r.LoteID,
		FechaSalida:           r.FechaSalida,
		Destino:               r.Destino,
		Transportista:         r.Transportista,
		TemperaturaTransporte: r.TemperaturaTransporte,
		FechaEntrega:          r.FechaEntrega,
		CreatedAt:             r.CreatedAt,
	}
}
