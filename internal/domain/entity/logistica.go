package entity

import "time"

// Rango de temperatura de transporte permitido (°C), para producto refrigerado.
const (
	TemperaturaMinima = -20.0
	TemperaturaMaxima = 50.0
)

// Logistica representa un envío de un lote hacia un destino (trazabilidad
// hacia adelante). Temperatura y fecha de entrega son opcionales.
type Logistica struct {
	ID                    string
	LoteID                string
	FechaSalida           time.Time // semántica de día calendario
	Destino               string
	Transportista         string
	TemperaturaTransporte *float64   // en [-20, 50] si está presente
	FechaEntrega          *time.Time // >= FechaSalida si está presente
	CreatedAt             time.Time
}
