package entity

// Estados de completitud de la trazabilidad de un lote.
const (
	EstadoCompleto   = "COMPLETO"
	EstadoParcial    = "PARCIAL"
	EstadoIncompleto = "INCOMPLETO"
)

// EstadoTrazabilidad resume qué tan completa está la cadena de un lote.
// El porcentaje pesa 33/33/34 (origen/procesos/logística) para que solo la
// cadena completa llegue exactamente a 100.
type EstadoTrazabilidad struct {
	Estado         string
	Porcentaje     int
	TieneOrigen    bool
	TieneProcesos  bool
	TieneLogistica bool
	Mensaje        string
}

// Trazabilidad es la vista compuesta (no persistida) de un lote: origen,
// transformación interna y distribución, más su estado de completitud.
type Trazabilidad struct {
	Lote     *Lote
	Procesos []*Proceso
	Envios   []*Logistica
	Estado   EstadoTrazabilidad
}

// CalcularEstado deriva el estado de completitud a partir de las tres secciones.
func CalcularEstado(lote *Lote, procesos []*Proceso, envios []*Logistica) EstadoTrazabilidad {
	tieneOrigen := lote != nil
	tieneProcesos := len(procesos) > 0
	tieneLogistica := len(envios) > 0

	porcentaje := 0
	if tieneOrigen {
		porcentaje += 33
	}
	if tieneProcesos {
		porcentaje += 33
	}
	if tieneLogistica {
		porcentaje += 34
	}

	estado := EstadoIncompleto
	switch {
	case porcentaje == 100:
		estado = EstadoCompleto
	case porcentaje >= 66:
		estado = EstadoParcial
	}

	return EstadoTrazabilidad{
		Estado:         estado,
		Porcentaje:     porcentaje,
		TieneOrigen:    tieneOrigen,
		TieneProcesos:  tieneProcesos,
		TieneLogistica: tieneLogistica,
		Mensaje:        mensajeEstado(tieneOrigen, tieneProcesos, tieneLogistica),
	}
}

func mensajeEstado(tieneOrigen, tieneProcesos, tieneLogistica bool) string {
	switch {
	case tieneOrigen && tieneProcesos && tieneLogistica:
		return "Trazabilidad completa registrada"
	case tieneOrigen && tieneProcesos:
		return "Falta registrar distribución"
	case tieneOrigen:
		return "Falta registrar transformación y distribución"
	}
	return "Lote registrado, sin procesos ni distribución"
}
