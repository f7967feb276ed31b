package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lote representa un lote de cosecha: el punto de origen de la trazabilidad.
// CodigoLote es la clave natural (única, formato XX-YYYY-NNN); el lote es
// inmutable una vez creado.
type Lote struct {
	ID           string
	CodigoLote   string // clave natural: dos letras mayúsculas, año, consecutivo
	Producto     string
	Finca        string
	Ubicacion    string
	FechaCosecha time.Time // semántica de día calendario
	Responsable  string
	CantidadKg   decimal.Decimal // debe ser > 0
	CreatedAt    time.Time
}
