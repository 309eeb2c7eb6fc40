package out

import (
	"context"

	"github.com/citamed/agenda-slots-service/internal/core/domain"
	"github.com/google/uuid"
)

// CachePort caches the materialized Fechas of a Programacion for the
// availability read path. Every mutation invalidates the entry.
type CachePort interface {
	GetFechas(ctx context.Context, programacionID uuid.UUID) ([]domain.Fecha, bool)
	StoreFechas(ctx context.Context, programacionID uuid.UUID, fechas []domain.Fecha)
	InvalidateFechas(ctx context.Context, programacionID uuid.UUID)
}
