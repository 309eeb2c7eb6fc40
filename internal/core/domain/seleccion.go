package domain

import (
	"github.com/citamed/agenda-slots-service/internal/core/json_types"
	"github.com/google/uuid"
)

// SeleccionHorario is the immutable result of the two-step selection flow.
// It only combines the caller's choices; claiming the slot is the booking
// collaborator's responsibility.
type SeleccionHorario struct {
	EspecialistaID uuid.UUID            `json:"especialista_id"`
	SucursalID     uuid.UUID            `json:"sucursal_id"`
	Fecha          json_types.Date      `json:"fecha"`
	Hora           json_types.TimeOfDay `json:"hora"`
}
