package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateLoteRequest datos de entrada para registrar un lote de cosecha.
// Las fechas viajan como string YYYY-MM-DD (día calendario).
type CreateLoteRequest struct {
	CodigoLote   string          `json:"codigoLote"`
	Producto     string          `json:"producto"`
	Finca        string          `json:"finca"`
	Ubicacion    string          `json:"ubicacion"`
	FechaCosecha string          `json:"fechaCosecha"`
	Responsable  string          `json:"responsable"`
	CantidadKg   decimal.Decimal `json:"cantidadKg"`
}

// LoteResponse proyección de un lote persistido.
type LoteResponse struct {
	ID           string          `json:"id"`
	CodigoLote   string          `json:"codigoLote"`
	Producto     string          `json:"producto"`
	Finca        string          `json:"finca"`
	Ubicacion    string          `json:"ubicacion"`
	FechaCosecha string          `json:"fechaCosecha"`
	Responsable  string          `json:"responsable"`
	CantidadKg   decimal.Decimal `json:"cantidadKg"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// LoteListResponse listado de lotes (orden: fecha de cosecha descendente).
type LoteListResponse struct {
	Items []LoteResponse `json:"items"`
	Total int            `json:"total"`
}
