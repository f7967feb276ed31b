package usecase

import (
	"fmt"
	"sort"
	"time"

	"github.com/agrotrace/trazabilidad-api/internal/domain"
	"github.com/agrotrace/trazabilidad-api/internal/domain/repository"
)

// CoherenciaTemporal verifica las reglas temporales cruzadas entre lote,
// procesos y envíos consultando los repositorios. Aborta en la primera regla
// violada: cosecha <= procesos <= salida de logística.
type CoherenciaTemporal struct {
	lotes    repository.LoteRepository
	procesos repository.ProcesoRepository
}

// NewCoherenciaTemporal construye el verificador.
func NewCoherenciaTemporal(lotes repository.LoteRepository, procesos repository.ProcesoRepository) *CoherenciaTemporal {
	return &CoherenciaTemporal{lotes: lotes, procesos: procesos}
}

// CheckProcesoContraLote verifica que la fecha del proceso no sea anterior a
// la fecha de cosecha del lote al que pertenece.
func (c *CoherenciaTemporal) CheckProcesoContraLote(loteID string, fechaProceso time.Time) error {
	lote, err := c.lotes.GetByID(loteID)
	if err != nil {
		return fmt.Errorf("consultar lote: %w", err)
	}
	if lote == nil {
		return domain.ErrLoteNotFound
	}
	if fechaProceso.Before(lote.FechaCosecha) {
		return fmt.Errorf("%w: la fecha del proceso no puede ser anterior a la fecha de cosecha", domain.ErrCoherencia)
	}
	return nil
}

// RequireProcesos exige que el lote tenga al menos un proceso registrado.
// Corre antes de la verificación de fechas para logística: no hay envío sin
// transformación.
func (c *CoherenciaTemporal) RequireProcesos(loteID string) error {
	procesos, err := c.procesos.ListByLote(loteID)
	if err != nil {
		return fmt.Errorf("consultar procesos: %w", err)
	}
	if len(procesos) == 0 {
		return fmt.Errorf("%w: no se puede registrar logística para un lote sin procesos de transformación", domain.ErrReglaNegocio)
	}
	return nil
}

// CheckEnvioContraLoteYProcesos verifica que la fecha de salida no sea
// anterior a la cosecha ni al último proceso del lote. Los procesos se
// ordenan aquí mismo por fecha en vez de confiar en el orden del almacén.
func (c *CoherenciaTemporal) CheckEnvioContraLoteYProcesos(loteID string, fechaSalida time.Time) error {
	lote, err := c.lotes.GetByID(loteID)
	if err != nil {
		return fmt.Errorf("consultar lote: %w", err)
	}
	if lote == nil {
		return domain.ErrLoteNotFound
	}
	if fechaSalida.Before(lote.FechaCosecha) {
		return fmt.Errorf("%w: la fecha de salida no puede ser anterior a la fecha de cosecha", domain.ErrCoherencia)
	}

	procesos, err := c.procesos.ListByLote(loteID)
	if err != nil {
		return fmt.Errorf("consultar procesos: %w", err)
	}
	if len(procesos) > 0 {
		sort.SliceStable(procesos, func(i, j int) bool {
			return procesos[i].Fecha.Before(procesos[j].Fecha)
		})
		ultimo := procesos[len(procesos)-1]
		if fechaSalida.Before(ultimo.Fecha) {
			return fmt.Errorf("%w: la fecha de salida no puede ser anterior al último proceso", domain.ErrCoherencia)
		}
	}
	return nil
}
