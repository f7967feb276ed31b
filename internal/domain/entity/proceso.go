package entity

import (
	"encoding/json"
	"time"
)

// Tipos de proceso válidos (transformación interna del lote).
const (
	ProcesoLavado         = "lavado"
	ProcesoEmpaquetado    = "empaquetado"
	ProcesoControlCalidad = "control_calidad"
	ProcesoClasificacion  = "clasificacion"
	ProcesoSecado         = "secado"
)

// TiposProcesoValidos enumera los tipos aceptados, en el orden en que se
// reportan al usuario.
var TiposProcesoValidos = []string{
	ProcesoLavado,
	ProcesoEmpaquetado,
	ProcesoControlCalidad,
	ProcesoClasificacion,
	ProcesoSecado,
}

// Proceso representa un paso de transformación aplicado a un lote.
// Parametros es un blob estructurado opaco: el dominio nunca lo interpreta.
type Proceso struct {
	ID            string
	LoteID        string
	TipoProceso   string
	Fecha         time.Time // semántica de día calendario
	Responsable   string
	Parametros    json.RawMessage
	Observaciones string
	CreatedAt     time.Time
}
