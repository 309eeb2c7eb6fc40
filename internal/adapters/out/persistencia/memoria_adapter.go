package persistencia

import (
	"context"
	"sync"
	"time"

	"github.com/citamed/agenda-slots-service/internal/core/domain"
	"github.com/citamed/agenda-slots-service/internal/core/json_types"
	"github.com/google/uuid"
)

// MemoriaAdapter is an in-memory PersistenciaPort for tests and local runs
// without the collaborator. Not meant for anything durable.
type MemoriaAdapter struct {
	mu             sync.RWMutex
	programaciones map[uuid.UUID]domain.Programacion
	fechas         map[uuid.UUID]domain.Fecha
}

func NewMemoriaAdapter() *MemoriaAdapter {
	return &MemoriaAdapter{
		programaciones: make(map[uuid.UUID]domain.Programacion),
		fechas:         make(map[uuid.UUID]domain.Fecha),
	}
}

func (m *MemoriaAdapter) CrearProgramacion(ctx context.Context, programacion *domain.Programacion) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.programaciones[programacion.ID] = *programacion
	return nil
}

func (m *MemoriaAdapter) ObtenerProgramacion(ctx context.Context, programacionID uuid.UUID) (*domain.Programacion, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	programacion, ok := m.programaciones[programacionID]
	if !ok {
		return nil, nil
	}
	return &programacion, nil
}

func (m *MemoriaAdapter) ListarProgramaciones(ctx context.Context, especialistaID, sucursalID uuid.UUID) ([]domain.Programacion, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	programaciones := make([]domain.Programacion, 0)
	for _, programacion := range m.programaciones {
		if programacion.EspecialistaID == especialistaID && programacion.SucursalID == sucursalID {
			programaciones = append(programaciones, programacion)
		}
	}
	return programaciones, nil
}

func (m *MemoriaAdapter) ObtenerFecha(ctx context.Context, programacionID uuid.UUID, dia time.Time) (*domain.Fecha, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	buscada := json_types.NewDate(dia)
	for _, fecha := range m.fechas {
		if fecha.ProgramacionID == programacionID && fecha.Dia.Igual(buscada) {
			copia := m.copiarFecha(fecha)
			return &copia, nil
		}
	}
	return nil, nil
}

func (m *MemoriaAdapter) ListarFechas(ctx context.Context, programacionID uuid.UUID) ([]domain.Fecha, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	fechas := make([]domain.Fecha, 0)
	for _, fecha := range m.fechas {
		if fecha.ProgramacionID == programacionID {
			fechas = append(fechas, m.copiarFecha(fecha))
		}
	}
	return fechas, nil
}

func (m *MemoriaAdapter) CrearFecha(ctx context.Context, fecha *domain.Fecha) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.fechas[fecha.ID] = m.copiarFecha(*fecha)
	return nil
}

func (m *MemoriaAdapter) ActualizarFecha(ctx context.Context, fecha *domain.Fecha) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.fechas[fecha.ID]; !ok {
		return &domain.NoEncontradoError{Recurso: "fecha", ID: fecha.ID.String()}
	}
	m.fechas[fecha.ID] = m.copiarFecha(*fecha)
	return nil
}

func (m *MemoriaAdapter) EliminarFecha(ctx context.Context, fechaID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.fechas[fechaID]; !ok {
		return &domain.NoEncontradoError{Recurso: "fecha", ID: fechaID.String()}
	}
	delete(m.fechas, fechaID)
	return nil
}

func (m *MemoriaAdapter) CrearHorarios(ctx context.Context, fechaID uuid.UUID, horarios []domain.Horario) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	fecha, ok := m.fechas[fechaID]
	if !ok {
		return &domain.NoEncontradoError{Recurso: "fecha", ID: fechaID.String()}
	}

	fecha.Horarios = append(fecha.Horarios, horarios...)
	m.fechas[fechaID] = fecha
	return nil
}

func (m *MemoriaAdapter) ActualizarHorario(ctx context.Context, fechaID uuid.UUID, horario domain.Horario) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	fecha, ok := m.fechas[fechaID]
	if !ok {
		return &domain.NoEncontradoError{Recurso: "fecha", ID: fechaID.String()}
	}

	for i := range fecha.Horarios {
		if fecha.Horarios[i].ID == horario.ID {
			fecha.Horarios[i] = horario
			m.fechas[fechaID] = fecha
			return nil
		}
	}
	return &domain.NoEncontradoError{Recurso: "horario", ID: horario.ID.String()}
}

func (m *MemoriaAdapter) EliminarHorario(ctx context.Context, horarioID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for fechaID, fecha := range m.fechas {
		for i := range fecha.Horarios {
			if fecha.Horarios[i].ID == horarioID {
				fecha.Horarios = append(fecha.Horarios[:i], fecha.Horarios[i+1:]...)
				m.fechas[fechaID] = fecha
				return nil
			}
		}
	}
	return &domain.NoEncontradoError{Recurso: "horario", ID: horarioID.String()}
}

// copiarFecha clones slot slices so callers never alias the stored state.
func (m *MemoriaAdapter) copiarFecha(fecha domain.Fecha) domain.Fecha {
	horarios := make([]domain.Horario, len(fecha.Horarios))
	copy(horarios, fecha.Horarios)
	fecha.Horarios = horarios
	return fecha
}
