package availability_service

import (
	"context"
	"sort"
	"time"

	"github.com/citamed/agenda-slots-service/internal/core/domain"
	"github.com/citamed/agenda-slots-service/internal/core/json_types"
	"github.com/citamed/agenda-slots-service/internal/core/ports/out"
	"github.com/google/uuid"
)

// AvailabilityService serves the two-stage read path booking clients use:
// pick a date, then pick a slot. Queries are stateless and idempotent.
type AvailabilityService struct {
	persistencia out.PersistenciaPort
	cache        out.CachePort
	logger       out.LoggerPort

	// reloj is replaced in tests to pin "today"
	reloj func() time.Time
}

func NewAvailabilityService(
	persistencia out.PersistenciaPort,
	cache out.CachePort,
	logger out.LoggerPort,
) *AvailabilityService {
	return &AvailabilityService{
		persistencia: persistencia,
		cache:        cache,
		logger:       logger.WithModule("AvailabilityService"),
		reloj:        time.Now,
	}
}

func (s *AvailabilityService) fechasDeProgramacion(ctx context.Context, programacionID uuid.UUID) ([]domain.Fecha, error) {
	if s.cache != nil {
		if fechas, exists := s.cache.GetFechas(ctx, programacionID); exists {
			s.logger.Debug("disponibilidad.fechas.cache_hit", out.LogFields{
				"programacionId": programacionID,
			})
			return fechas, nil
		}
	}

	fechas, err := s.persistencia.ListarFechas(ctx, programacionID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.StoreFechas(ctx, programacionID, fechas)
	}

	return fechas, nil
}

// ListarFechasAbiertas returns, ascending, every future-or-today date of the
// specialist at the branch with at least one Disponible slot. Dates with zero
// open slots never appear.
func (s *AvailabilityService) ListarFechasAbiertas(ctx context.Context, especialistaID, sucursalID uuid.UUID) ([]domain.FechaAbierta, error) {
	programaciones, err := s.persistencia.ListarProgramaciones(ctx, especialistaID, sucursalID)
	if err != nil {
		return nil, err
	}

	hoy := json_types.NewDate(s.reloj())
	porDia := make(map[string]*domain.FechaAbierta)

	for _, programacion := range programaciones {
		fechas, err := s.fechasDeProgramacion(ctx, programacion.ID)
		if err != nil {
			return nil, err
		}

		for i := range fechas {
			fecha := &fechas[i]
			if fecha.Dia.Antes(hoy) {
				continue
			}

			disponibles := len(fecha.HorariosDisponibles())
			if disponibles == 0 {
				continue
			}

			// The same day can be materialized under more than one
			// programación of the pair; counts are summed.
			clave := fecha.Dia.String()
			if existente, ok := porDia[clave]; ok {
				existente.HorariosDisponibles += disponibles
				continue
			}
			porDia[clave] = &domain.FechaAbierta{
				Dia:                 fecha.Dia,
				DiaSemana:           fecha.DiaSemana(),
				HorariosDisponibles: disponibles,
			}
		}
	}

	abiertas := make([]domain.FechaAbierta, 0, len(porDia))
	for _, fecha := range porDia {
		abiertas = append(abiertas, *fecha)
	}
	sort.Slice(abiertas, func(i, j int) bool {
		return abiertas[i].Dia.Date.Before(abiertas[j].Dia.Date)
	})

	s.logger.Debug("disponibilidad.fechas.listed", out.LogFields{
		"especialistaId": especialistaID,
		"sucursalId":     sucursalID,
		"fechas":         len(abiertas),
	})

	return abiertas, nil
}

// ListarHorariosAbiertos returns, ascending, the open times of a chosen day.
// Any Horario whose status is not Disponible is excluded.
func (s *AvailabilityService) ListarHorariosAbiertos(ctx context.Context, especialistaID, sucursalID uuid.UUID, dia time.Time) ([]json_types.TimeOfDay, error) {
	programaciones, err := s.persistencia.ListarProgramaciones(ctx, especialistaID, sucursalID)
	if err != nil {
		return nil, err
	}

	hoy := json_types.NewDate(s.reloj())
	elegido := json_types.NewDate(dia)
	if elegido.Antes(hoy) {
		return []json_types.TimeOfDay{}, nil
	}

	horas := make([]json_types.TimeOfDay, 0)
	for _, programacion := range programaciones {
		fechas, err := s.fechasDeProgramacion(ctx, programacion.ID)
		if err != nil {
			return nil, err
		}

		for i := range fechas {
			if !fechas[i].Dia.Igual(elegido) {
				continue
			}
			for _, horario := range fechas[i].HorariosDisponibles() {
				repetida := false
				for _, hora := range horas {
					if hora.Igual(horario.Hora) {
						repetida = true
						break
					}
				}
				if !repetida {
					horas = append(horas, horario.Hora)
				}
			}
		}
	}

	sort.Slice(horas, func(i, j int) bool {
		return horas[i].Minutos() < horas[j].Minutos()
	})

	return horas, nil
}

// ListarFechas is the administrative variant: every materialized date of a
// Programacion, past ones included, read fresh from the collaborator.
func (s *AvailabilityService) ListarFechas(ctx context.Context, programacionID uuid.UUID) ([]domain.Fecha, error) {
	fechas, err := s.persistencia.ListarFechas(ctx, programacionID)
	if err != nil {
		return nil, err
	}

	sort.Slice(fechas, func(i, j int) bool {
		return fechas[i].Dia.Date.Before(fechas[j].Dia.Date)
	})

	return fechas, nil
}
