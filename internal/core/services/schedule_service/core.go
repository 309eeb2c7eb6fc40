package schedule_service

import (
	"context"
	"fmt"

	"github.com/citamed/agenda-slots-service/internal/core/domain"
	"github.com/citamed/agenda-slots-service/internal/core/ports/out"
	"github.com/google/uuid"
)

// ScheduleService owns the slot lifecycle and the create-schedule
// orchestration. All state lives in the persistence collaborator; the
// service itself is stateless and safe to share.
type ScheduleService struct {
	persistencia out.PersistenciaPort
	cache        out.CachePort
	logger       out.LoggerPort
}

func NewScheduleService(
	persistencia out.PersistenciaPort,
	cache out.CachePort,
	logger out.LoggerPort,
) *ScheduleService {
	return &ScheduleService{
		persistencia: persistencia,
		cache:        cache,
		logger:       logger.WithModule("ScheduleService"),
	}
}

// CrearProgramacion validates, persists and optionally auto-activates the
// first date of the range with the full time grid. Later dates stay lazy:
// they are opened on demand, never eagerly for the whole range.
func (s *ScheduleService) CrearProgramacion(ctx context.Context, definicion domain.DefinicionProgramacion) (*domain.Programacion, int, error) {
	s.logger.Info("programacion.create.started", out.LogFields{
		"especialistaId": definicion.EspecialistaID,
		"sucursalId":     definicion.SucursalID,
	})

	fallas := ValidarDefinicion(definicion)
	if len(fallas) > 0 {
		s.logger.Warn("programacion.create.invalid", out.LogFields{
			"fallas": fallas,
		})
		return nil, 0, &domain.ErrorValidacion{Fallas: fallas}
	}

	programacion := definicion.AProgramacion()
	if err := s.persistencia.CrearProgramacion(ctx, programacion); err != nil {
		s.logger.Error("programacion.create.persist_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, 0, fmt.Errorf("programacion.create.persist_failed: %w", err)
	}

	creados := 0
	if programacion.AutoAperturar {
		dias, err := ExpandirRango(programacion.FechaInicio.Date, programacion.FechaFin.Date)
		if err != nil {
			return nil, 0, err
		}

		primera := dias[0]
		if _, err := s.abrirFecha(ctx, programacion, primera); err != nil {
			return nil, 0, err
		}

		grilla := GenerarGrilla(programacion.HoraInicio, programacion.HoraFin, programacion.Intervalo)
		creados, err = s.abrirHorarios(ctx, programacion, primera, grilla)
		if err != nil {
			return nil, 0, err
		}
	}

	s.logger.Info("programacion.create.finished", out.LogFields{
		"programacionId": programacion.ID,
		"slotsCreados":   creados,
	})

	return programacion, creados, nil
}

func (s *ScheduleService) obtenerProgramacion(ctx context.Context, programacionID uuid.UUID) (*domain.Programacion, error) {
	programacion, err := s.persistencia.ObtenerProgramacion(ctx, programacionID)
	if err != nil {
		return nil, err
	}
	if programacion == nil {
		return nil, &domain.NoEncontradoError{Recurso: "programación", ID: programacionID.String()}
	}
	return programacion, nil
}

// buscarHorario locates a slot and its parent date by scanning the
// programación's materialized dates. The collaborator exposes per-resource
// CRUD only, so the lookup happens on this side.
func (s *ScheduleService) buscarHorario(ctx context.Context, programacionID, horarioID uuid.UUID) (*domain.Fecha, *domain.Horario, error) {
	fechas, err := s.persistencia.ListarFechas(ctx, programacionID)
	if err != nil {
		return nil, nil, err
	}

	for i := range fechas {
		if horario := fechas[i].BuscarHorario(horarioID); horario != nil {
			return &fechas[i], horario, nil
		}
	}

	return nil, nil, &domain.NoEncontradoError{Recurso: "horario", ID: horarioID.String()}
}

func (s *ScheduleService) invalidarCache(ctx context.Context, programacionID uuid.UUID) {
	if s.cache != nil {
		s.cache.InvalidateFechas(ctx, programacionID)
	}
}
