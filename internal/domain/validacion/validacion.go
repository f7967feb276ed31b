// Package validacion contiene el motor de validación de campos: funciones
// puras que reciben los datos candidatos de cada entidad y devuelven la lista
// ordenada de violaciones. Una lista vacía significa entrada válida; la
// invalidez es un resultado normal, nunca un panic.
//
// Todas las comparaciones de fechas usan semántica de día calendario; "ahora"
// se lee del reloj al momento de validar.
package validacion

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/agrotrace/trazabilidad-api/internal/domain/entity"
)

// FormatoFecha es el layout de fechas de toda la API (día calendario).
const FormatoFecha = "2006-01-02"

// codigoLoteRe: dos letras mayúsculas, año de 4 dígitos, consecutivo de 3.
var codigoLoteRe = regexp.MustCompile(`^[A-Z]{2}-\d{4}-\d{3}$`)

// LoteInput campos candidatos de un lote (fechas como string YYYY-MM-DD).
type LoteInput struct {
	CodigoLote   string
	Producto     string
	Finca        string
	Ubicacion    string
	FechaCosecha string
	Responsable  string
	CantidadKg   decimal.Decimal
}

// ProcesoInput campos candidatos de un proceso.
type ProcesoInput struct {
	LoteID      string
	TipoProceso string
	Fecha       string
	Responsable string
}

// LogisticaInput campos candidatos de un registro de logística.
// Temperatura y FechaEntrega son opcionales (nil / cadena vacía).
type LogisticaInput struct {
	LoteID                string
	FechaSalida           string
	Destino               string
	Transportista         string
	TemperaturaTransporte *float64
	FechaEntrega          string
}

// ParseFecha interpreta una fecha de la API (día calendario).
func ParseFecha(s string) (time.Time, error) {
	return time.Parse(FormatoFecha, s)
}

// ValidarLote aplica las reglas de campo de un lote y devuelve las violaciones.
func ValidarLote(in LoteInput) []string {
	var errores []string

	if !codigoLoteRe.MatchString(in.CodigoLote) {
		errores = append(errores, "Código de lote debe seguir el formato XX-YYYY-NNN (ej: MG-2026-001)")
	}
	if strings.TrimSpace(in.Producto) == "" {
		errores = append(errores, "El producto es obligatorio")
	}
	if strings.TrimSpace(in.Finca) == "" {
		errores = append(errores, "La finca es obligatoria")
	}
	if strings.TrimSpace(in.Ubicacion) == "" {
		errores = append(errores, "La ubicación es obligatoria")
	}
	if fecha, err := ParseFecha(in.FechaCosecha); err != nil {
		errores = append(errores, "La fecha de cosecha no es válida (formato YYYY-MM-DD)")
	} else if fecha.After(time.Now()) {
		errores = append(errores, "La fecha de cosecha no puede ser en el futuro")
	}
	if strings.TrimSpace(in.Responsable) == "" {
		errores = append(errores, "El responsable es obligatorio")
	}
	if !in.CantidadKg.IsPositive() {
		errores = append(errores, "La cantidad debe ser mayor a 0 kg")
	}

	return errores
}

// ValidarProceso aplica las reglas de campo de un proceso y devuelve las violaciones.
func ValidarProceso(in ProcesoInput) []string {
	var errores []string

	if strings.TrimSpace(in.LoteID) == "" {
		errores = append(errores, "El ID del lote es obligatorio")
	}
	if !esTipoProcesoValido(in.TipoProceso) {
		errores = append(errores, fmt.Sprintf("Tipo de proceso debe ser uno de: %s",
			strings.Join(entity.TiposProcesoValidos, ", ")))
	}
	if fecha, err := ParseFecha(in.Fecha); err != nil {
		errores = append(errores, "La fecha del proceso no es válida (formato YYYY-MM-DD)")
	} else if fecha.After(time.Now()) {
		errores = append(errores, "La fecha del proceso no puede ser en el futuro")
	}
	if strings.TrimSpace(in.Responsable) == "" {
		errores = append(errores, "El responsable es obligatorio")
	}

	return errores
}

// ValidarLogistica aplica las reglas de campo de un registro de logística.
func ValidarLogistica(in LogisticaInput) []string {
	var errores []string

	if strings.TrimSpace(in.LoteID) == "" {
		errores = append(errores, "El ID del lote es obligatorio")
	}

	fechaSalida, errSalida := ParseFecha(in.FechaSalida)
	if errSalida != nil {
		errores = append(errores, "La fecha de salida no es válida (formato YYYY-MM-DD)")
	} else if fechaSalida.After(time.Now()) {
		errores = append(errores, "La fecha de salida no puede ser en el futuro")
	}

	if strings.TrimSpace(in.Destino) == "" {
		errores = append(errores, "El destino es obligatorio")
	}
	if strings.TrimSpace(in.Transportista) == "" {
		errores = append(errores, "El transportista es obligatorio")
	}

	if in.TemperaturaTransporte != nil {
		temp := *in.TemperaturaTransporte
		if temp < entity.TemperaturaMinima || temp > entity.TemperaturaMaxima {
			errores = append(errores, "La temperatura de transporte debe estar entre -20°C y 50°C")
		}
	}

	if in.FechaEntrega != "" {
		if fechaEntrega, err := ParseFecha(in.FechaEntrega); err != nil {
			errores = append(errores, "La fecha de entrega no es válida (formato YYYY-MM-DD)")
		} else if errSalida == nil && fechaEntrega.Before(fechaSalida) {
			errores = append(errores, "La fecha de entrega no puede ser anterior a la fecha de salida")
		}
	}

	return errores
}

func esTipoProcesoValido(tipo string) bool {
	for _, t := range entity.TiposProcesoValidos {
		if tipo == t {
			return true
		}
	}
	return false
}
