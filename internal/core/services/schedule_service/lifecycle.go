package schedule_service

import (
	"context"
	"fmt"
	"time"

	"github.com/citamed/agenda-slots-service/internal/core/domain"
	"github.com/citamed/agenda-slots-service/internal/core/json_types"
	"github.com/citamed/agenda-slots-service/internal/core/ports/out"
	"github.com/google/uuid"
)

// AbrirFecha idempotently opens a date: when the Fecha already exists it is
// returned untouched, otherwise it is created with zero Horarios. Populating
// slots is a separate step (AbrirHorarios).
func (s *ScheduleService) AbrirFecha(ctx context.Context, programacionID uuid.UUID, dia time.Time) (*domain.Fecha, error) {
	programacion, err := s.obtenerProgramacion(ctx, programacionID)
	if err != nil {
		return nil, err
	}

	return s.abrirFecha(ctx, programacion, dia)
}

func (s *ScheduleService) abrirFecha(ctx context.Context, programacion *domain.Programacion, dia time.Time) (*domain.Fecha, error) {
	fecha, err := s.persistencia.ObtenerFecha(ctx, programacion.ID, dia)
	if err != nil {
		return nil, err
	}
	if fecha != nil {
		return fecha, nil
	}

	fecha = domain.NuevaFecha(programacion.ID, json_types.NewDate(dia))
	if err := s.persistencia.CrearFecha(ctx, fecha); err != nil {
		s.logger.Error("fecha.abrir.persist_failed", out.LogFields{
			"programacionId": programacion.ID,
			"fecha":          fecha.Dia.String(),
			"error":          err.Error(),
		})
		return nil, fmt.Errorf("fecha.abrir.persist_failed: %w", err)
	}

	s.invalidarCache(ctx, programacion.ID)
	s.logger.Info("fecha.abrir.created", out.LogFields{
		"programacionId": programacion.ID,
		"fecha":          fecha.Dia.String(),
	})

	return fecha, nil
}

// AbrirHorarios creates a Disponible Horario for each requested time not
// already present on the date. Existing times are left untouched: no
// duplicate creation, no status overwrite. Returns the count created.
func (s *ScheduleService) AbrirHorarios(ctx context.Context, programacionID uuid.UUID, dia time.Time, horas []json_types.TimeOfDay) (int, error) {
	programacion, err := s.obtenerProgramacion(ctx, programacionID)
	if err != nil {
		return 0, err
	}

	return s.abrirHorarios(ctx, programacion, dia, horas)
}

func (s *ScheduleService) abrirHorarios(ctx context.Context, programacion *domain.Programacion, dia time.Time, horas []json_types.TimeOfDay) (int, error) {
	fecha, err := s.persistencia.ObtenerFecha(ctx, programacion.ID, dia)
	if err != nil {
		return 0, err
	}
	if fecha == nil {
		return 0, &domain.NoEncontradoError{Recurso: "fecha", ID: json_types.NewDate(dia).String()}
	}

	nuevos := make([]domain.Horario, 0, len(horas))
	for _, hora := range horas {
		if fecha.TieneHora(hora) {
			continue
		}
		// Guard against duplicates inside the request itself
		duplicada := false
		for _, nuevo := range nuevos {
			if nuevo.Hora.Igual(hora) {
				duplicada = true
				break
			}
		}
		if duplicada {
			continue
		}
		nuevos = append(nuevos, domain.NuevoHorario(hora))
	}

	if len(nuevos) == 0 {
		return 0, nil
	}

	if err := s.persistencia.CrearHorarios(ctx, fecha.ID, nuevos); err != nil {
		s.logger.Error("horarios.abrir.persist_failed", out.LogFields{
			"programacionId": programacion.ID,
			"fecha":          fecha.Dia.String(),
			"error":          err.Error(),
		})
		return 0, fmt.Errorf("horarios.abrir.persist_failed: %w", err)
	}

	s.invalidarCache(ctx, programacion.ID)
	s.logger.Info("horarios.abrir.created", out.LogFields{
		"programacionId": programacion.ID,
		"fecha":          fecha.Dia.String(),
		"creados":        len(nuevos),
	})

	return len(nuevos), nil
}

// AbrirHorariosLote applies each requested time independently and reports a
// per-item result, so a caller never ends up with silent partial state.
func (s *ScheduleService) AbrirHorariosLote(ctx context.Context, programacionID uuid.UUID, dia time.Time, horas []json_types.TimeOfDay) ([]domain.ResultadoHora, error) {
	programacion, err := s.obtenerProgramacion(ctx, programacionID)
	if err != nil {
		return nil, err
	}

	fecha, err := s.persistencia.ObtenerFecha(ctx, programacion.ID, dia)
	if err != nil {
		return nil, err
	}
	if fecha == nil {
		return nil, &domain.NoEncontradoError{Recurso: "fecha", ID: json_types.NewDate(dia).String()}
	}

	resultados := make([]domain.ResultadoHora, 0, len(horas))
	for _, hora := range horas {
		if fecha.TieneHora(hora) {
			resultados = append(resultados, domain.ResultadoHora{Hora: hora, Creado: false})
			continue
		}

		horario := domain.NuevoHorario(hora)
		if err := s.persistencia.CrearHorarios(ctx, fecha.ID, []domain.Horario{horario}); err != nil {
			resultados = append(resultados, domain.ResultadoHora{Hora: hora, Creado: false, Error: err.Error()})
			continue
		}

		fecha.Horarios = append(fecha.Horarios, horario)
		resultados = append(resultados, domain.ResultadoHora{Hora: hora, Creado: true})
	}

	s.invalidarCache(ctx, programacion.ID)
	return resultados, nil
}

// EditarFecha replaces the date identity and/or its slot-time set. Times
// present in both the old and the new set keep their status; removed times
// are dropped and added times start as Disponible.
func (s *ScheduleService) EditarFecha(ctx context.Context, programacionID uuid.UUID, diaAnterior, diaNuevo time.Time, horas []json_types.TimeOfDay) (*domain.Fecha, error) {
	programacion, err := s.obtenerProgramacion(ctx, programacionID)
	if err != nil {
		return nil, err
	}

	fecha, err := s.persistencia.ObtenerFecha(ctx, programacion.ID, diaAnterior)
	if err != nil {
		return nil, err
	}
	if fecha == nil {
		return nil, &domain.NoEncontradoError{Recurso: "fecha", ID: json_types.NewDate(diaAnterior).String()}
	}

	nuevoDia := json_types.NewDate(diaNuevo)
	if !fecha.Dia.Igual(nuevoDia) {
		// Date uniqueness within the programación
		existente, err := s.persistencia.ObtenerFecha(ctx, programacion.ID, diaNuevo)
		if err != nil {
			return nil, err
		}
		if existente != nil {
			return nil, &domain.ErrorValidacion{
				Fallas: []string{fmt.Sprintf("ya existe una fecha %s en la programación", nuevoDia)},
			}
		}
	}

	horarios := make([]domain.Horario, 0, len(horas))
	for _, hora := range horas {
		duplicada := false
		for _, horario := range horarios {
			if horario.Hora.Igual(hora) {
				duplicada = true
				break
			}
		}
		if duplicada {
			continue
		}

		conservado := false
		for _, previo := range fecha.Horarios {
			if previo.Hora.Igual(hora) {
				horarios = append(horarios, previo)
				conservado = true
				break
			}
		}
		if !conservado {
			horarios = append(horarios, domain.NuevoHorario(hora))
		}
	}

	fecha.Dia = nuevoDia
	fecha.Horarios = horarios

	if err := s.persistencia.ActualizarFecha(ctx, fecha); err != nil {
		s.logger.Error("fecha.editar.persist_failed", out.LogFields{
			"programacionId": programacion.ID,
			"fecha":          fecha.Dia.String(),
			"error":          err.Error(),
		})
		return nil, fmt.Errorf("fecha.editar.persist_failed: %w", err)
	}

	s.invalidarCache(ctx, programacion.ID)
	return fecha, nil
}

// EditarHorario renames a single slot's time-of-day. Fails when the new time
// collides with an existing Horario on the same Fecha.
func (s *ScheduleService) EditarHorario(ctx context.Context, programacionID, horarioID uuid.UUID, horaNueva json_types.TimeOfDay) error {
	fecha, horario, err := s.buscarHorario(ctx, programacionID, horarioID)
	if err != nil {
		return err
	}

	if !horario.Hora.Igual(horaNueva) && fecha.TieneHora(horaNueva) {
		return &domain.HoraDuplicadaError{Fecha: fecha.Dia.String(), Hora: horaNueva.String()}
	}

	horario.Hora = horaNueva
	if err := s.persistencia.ActualizarHorario(ctx, fecha.ID, *horario); err != nil {
		return fmt.Errorf("horario.editar.persist_failed: %w", err)
	}

	s.invalidarCache(ctx, programacionID)
	return nil
}

// EliminarFecha hard-deletes a date, cascading over its Horarios. Bookings
// block the cascade unless forzar is set; compensating an affected booking
// is the caller's responsibility.
func (s *ScheduleService) EliminarFecha(ctx context.Context, programacionID uuid.UUID, dia time.Time, forzar bool) error {
	fecha, err := s.persistencia.ObtenerFecha(ctx, programacionID, dia)
	if err != nil {
		return err
	}
	if fecha == nil {
		return &domain.NoEncontradoError{Recurso: "fecha", ID: json_types.NewDate(dia).String()}
	}

	if fecha.TieneReservas() && !forzar {
		return &domain.FechaConReservasError{Fecha: fecha.Dia.String()}
	}

	if err := s.persistencia.EliminarFecha(ctx, fecha.ID); err != nil {
		return fmt.Errorf("fecha.eliminar.persist_failed: %w", err)
	}

	s.invalidarCache(ctx, programacionID)
	s.logger.Info("fecha.eliminar.finished", out.LogFields{
		"programacionId": programacionID,
		"fecha":          fecha.Dia.String(),
		"forzado":        forzar,
	})

	return nil
}

func (s *ScheduleService) EliminarHorario(ctx context.Context, programacionID, horarioID uuid.UUID) error {
	_, horario, err := s.buscarHorario(ctx, programacionID, horarioID)
	if err != nil {
		return err
	}

	if err := s.persistencia.EliminarHorario(ctx, horario.ID); err != nil {
		return fmt.Errorf("horario.eliminar.persist_failed: %w", err)
	}

	s.invalidarCache(ctx, programacionID)
	return nil
}

// AgregarFecha is the composite operation: create the Fecha when absent,
// then open the given times on it. The date must fall inside the parent
// Programacion's range.
func (s *ScheduleService) AgregarFecha(ctx context.Context, programacionID uuid.UUID, dia time.Time, horas []json_types.TimeOfDay) (*domain.Fecha, error) {
	programacion, err := s.obtenerProgramacion(ctx, programacionID)
	if err != nil {
		return nil, err
	}

	if !programacion.ContieneFecha(dia) {
		return nil, &domain.FueraDeRangoError{
			Fecha:  json_types.NewDate(dia).String(),
			Inicio: programacion.FechaInicio.String(),
			Fin:    programacion.FechaFin.String(),
		}
	}

	if _, err := s.abrirFecha(ctx, programacion, dia); err != nil {
		return nil, err
	}

	if _, err := s.abrirHorarios(ctx, programacion, dia, horas); err != nil {
		return nil, err
	}

	return s.persistencia.ObtenerFecha(ctx, programacion.ID, dia)
}

// MarcarHorario applies a status change reported by the booking collaborator
// or an administrator. Transitions are checked against the one-way lifecycle.
func (s *ScheduleService) MarcarHorario(ctx context.Context, programacionID, horarioID uuid.UUID, estatus domain.HorarioEstatus) error {
	if !estatus.Valido() {
		return &domain.ErrorValidacion{
			Fallas: []string{fmt.Sprintf("estatus desconocido: %q", estatus)},
		}
	}

	fecha, horario, err := s.buscarHorario(ctx, programacionID, horarioID)
	if err != nil {
		return err
	}

	if horario.Estatus == estatus {
		return nil
	}

	if !horario.Estatus.PuedeTransicionarA(estatus) {
		return &domain.ErrorValidacion{
			Fallas: []string{fmt.Sprintf("transición no permitida de %s a %s", horario.Estatus, estatus)},
		}
	}

	anterior := horario.Estatus
	horario.Estatus = estatus
	if err := s.persistencia.ActualizarHorario(ctx, fecha.ID, *horario); err != nil {
		return fmt.Errorf("horario.marcar.persist_failed: %w", err)
	}

	s.invalidarCache(ctx, programacionID)
	s.logger.Info("horario.marcar.finished", out.LogFields{
		"programacionId": programacionID,
		"horarioId":      horarioID,
		"anterior":       anterior,
		"estatus":        estatus,
	})

	return nil
}
