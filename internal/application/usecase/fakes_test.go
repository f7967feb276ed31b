package usecase_test

import (
	"sort"

	"github.com/agrotrace/trazabilidad-api/internal/domain/entity"
	"github.com/agrotrace/trazabilidad-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de repositorio. Respetan el contrato de los
// adaptadores reales: (nil, nil) cuando no existe, orden de los listados, y un
// campo err para simular fallas del almacén.

type memLotes struct {
	items []*entity.Lote
	err   error
}

var _ repository.LoteRepository = (*memLotes)(nil)

func (m *memLotes) Create(lote *entity.Lote) error {
	if m.err != nil {
		return m.err
	}
	m.items = append(m.items, lote)
	return nil
}

func (m *memLotes) GetByID(id string) (*entity.Lote, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, l := range m.items {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, nil
}

func (m *memLotes) GetByCodigo(codigoLote string) (*entity.Lote, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, l := range m.items {
		if l.CodigoLote == codigoLote {
			return l, nil
		}
	}
	return nil, nil
}

func (m *memLotes) ListAll() ([]*entity.Lote, error) {
	if m.err != nil {
		return nil, m.err
	}
	list := append([]*entity.Lote(nil), m.items...)
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].FechaCosecha.After(list[j].FechaCosecha)
	})
	return list, nil
}

type memProcesos struct {
	items []*entity.Proceso
	err   error
}

var _ repository.ProcesoRepository = (*memProcesos)(nil)

func (m *memProcesos) Create(proceso *entity.Proceso) error {
	if m.err != nil {
		return m.err
	}
	m.items = append(m.items, proceso)
	return nil
}

func (m *memProcesos) GetByID(id string) (*entity.Proceso, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, p := range m.items {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (m *memProcesos) ListAll() ([]*entity.Proceso, error) {
	if m.err != nil {
		return nil, m.err
	}
	list := append([]*entity.Proceso(nil), m.items...)
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Fecha.After(list[j].Fecha)
	})
	return list, nil
}

func (m *memProcesos) ListByLote(loteID string) ([]*entity.Proceso, error) {
	if m.err != nil {
		return nil, m.err
	}
	var list []*entity.Proceso
	for _, p := range m.items {
		if p.LoteID == loteID {
			list = append(list, p)
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Fecha.Before(list[j].Fecha)
	})
	return list, nil
}

type memLogistica struct {
	items []*entity.Logistica
	err   error
}

var _ repository.LogisticaRepository = (*memLogistica)(nil)

func (m *memLogistica) Create(logistica *entity.Logistica) error {
	if m.err != nil {
		return m.err
	}
	m.items = append(m.items, logistica)
	return nil
}

func (m *memLogistica) GetByID(id string) (*entity.Logistica, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, l := range m.items {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, nil
}

func (m *memLogistica) ListAll() ([]*entity.Logistica, error) {
	if m.err != nil {
		return nil, m.err
	}
	list := append([]*entity.Logistica(nil), m.items...)
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].FechaSalida.After(list[j].FechaSalida)
	})
	return list, nil
}

func (m *memLogistica) ListByLote(loteID string) ([]*entity.Logistica, error) {
	if m.err != nil {
		return nil, m.err
	}
	var list []*entity.Logistica
	for _, l := range m.items {
		if l.LoteID == loteID {
			list = append(list, l)
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].FechaSalida.Before(list[j].FechaSalida)
	})
	return list, nil
}
