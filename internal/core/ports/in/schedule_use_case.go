package in

import (
	"context"
	"time"

	"github.com/citamed/agenda-slots-service/internal/core/domain"
	"github.com/citamed/agenda-slots-service/internal/core/json_types"
	"github.com/google/uuid"
)

type ScheduleUseCase interface {
	// CrearProgramacion validates and persists a new definition. When
	// auto_aperturar is set it also opens the first date with the full
	// time grid and returns how many slots were generated.
	CrearProgramacion(ctx context.Context, definicion domain.DefinicionProgramacion) (*domain.Programacion, int, error)

	// AbrirFecha idempotently marks a date as open, creating it with zero
	// Horarios when it does not exist yet.
	AbrirFecha(ctx context.Context, programacionID uuid.UUID, dia time.Time) (*domain.Fecha, error)

	// AbrirHorarios creates a Disponible Horario for each requested time
	// not already present (duplicate guard) and returns the count created.
	AbrirHorarios(ctx context.Context, programacionID uuid.UUID, dia time.Time, horas []json_types.TimeOfDay) (int, error)

	// AbrirHorariosLote is the apply-set variant: one result per requested
	// time, so partial failures are explicit.
	AbrirHorariosLote(ctx context.Context, programacionID uuid.UUID, dia time.Time, horas []json_types.TimeOfDay) ([]domain.ResultadoHora, error)

	// EditarFecha moves a date and/or replaces its slot-time set. Statuses
	// of times present in both the old and the new set are preserved.
	EditarFecha(ctx context.Context, programacionID uuid.UUID, diaAnterior, diaNuevo time.Time, horas []json_types.TimeOfDay) (*domain.Fecha, error)

	EditarHorario(ctx context.Context, programacionID, horarioID uuid.UUID, horaNueva json_types.TimeOfDay) error

	// EliminarFecha cascades over child Horarios. It refuses when bookings
	// exist unless forzar is set.
	EliminarFecha(ctx context.Context, programacionID uuid.UUID, dia time.Time, forzar bool) error

	EliminarHorario(ctx context.Context, programacionID, horarioID uuid.UUID) error

	// AgregarFecha creates the date if absent and opens the given times.
	// The date must fall inside the parent Programacion's range.
	AgregarFecha(ctx context.Context, programacionID uuid.UUID, dia time.Time, horas []json_types.TimeOfDay) (*domain.Fecha, error)

	// MarcarHorario applies a status reported back by the booking
	// collaborator (claim, confirmation, administrative hold or reopen).
	MarcarHorario(ctx context.Context, programacionID, horarioID uuid.UUID, estatus domain.HorarioEstatus) error
}
