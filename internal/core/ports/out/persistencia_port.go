package out

import (
	"context"
	"time"

	"github.com/citamed/agenda-slots-service/internal/core/domain"
	"github.com/google/uuid"
)

// PersistenciaPort is the narrow request/response contract with the
// persistence collaborator. It is the single writer of record; this core
// holds no state of its own.
//
// Lookups return (nil, nil) when the resource does not exist so the caller
// can distinguish "absent" from a transport failure.
type PersistenciaPort interface {
	CrearProgramacion(ctx context.Context, programacion *domain.Programacion) error
	ObtenerProgramacion(ctx context.Context, programacionID uuid.UUID) (*domain.Programacion, error)
	ListarProgramaciones(ctx context.Context, especialistaID, sucursalID uuid.UUID) ([]domain.Programacion, error)

	ObtenerFecha(ctx context.Context, programacionID uuid.UUID, dia time.Time) (*domain.Fecha, error)
	ListarFechas(ctx context.Context, programacionID uuid.UUID) ([]domain.Fecha, error)
	CrearFecha(ctx context.Context, fecha *domain.Fecha) error
	// ActualizarFecha replaces the date identity and the full slot set.
	ActualizarFecha(ctx context.Context, fecha *domain.Fecha) error
	EliminarFecha(ctx context.Context, fechaID uuid.UUID) error

	CrearHorarios(ctx context.Context, fechaID uuid.UUID, horarios []domain.Horario) error
	ActualizarHorario(ctx context.Context, fechaID uuid.UUID, horario domain.Horario) error
	EliminarHorario(ctx context.Context, horarioID uuid.UUID) error
}
