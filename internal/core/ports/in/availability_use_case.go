package in

import (
	"context"
	"time"

	"github.com/citamed/agenda-slots-service/internal/core/domain"
	"github.com/citamed/agenda-slots-service/internal/core/json_types"
	"github.com/google/uuid"
)

type AvailabilityUseCase interface {
	// ListarFechasAbiertas is stage one of the selection flow: days with at
	// least one open slot, past days excluded.
	ListarFechasAbiertas(ctx context.Context, especialistaID, sucursalID uuid.UUID) ([]domain.FechaAbierta, error)

	// ListarHorariosAbiertos is stage two: open times for a chosen day.
	ListarHorariosAbiertos(ctx context.Context, especialistaID, sucursalID uuid.UUID, dia time.Time) ([]json_types.TimeOfDay, error)

	// ListarFechas is the administrative variant: every materialized date of
	// a Programacion, with no past-date filter.
	ListarFechas(ctx context.Context, programacionID uuid.UUID) ([]domain.Fecha, error)
}
