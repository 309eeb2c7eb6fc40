package domain

import (
	"github.com/citamed/agenda-slots-service/internal/core/json_types"
	"github.com/google/uuid"
)

type HorarioEstatus string

const (
	HorarioEstatusDisponible HorarioEstatus = "Disponible"
	HorarioEstatusReservado  HorarioEstatus = "Reservado"
	HorarioEstatusOcupado    HorarioEstatus = "Ocupado"
	HorarioEstatusBloqueado  HorarioEstatus = "Bloqueado"
	HorarioEstatusCerrado    HorarioEstatus = "Cerrado"
)

func (e HorarioEstatus) Valido() bool {
	switch e {
	case HorarioEstatusDisponible, HorarioEstatusReservado, HorarioEstatusOcupado,
		HorarioEstatusBloqueado, HorarioEstatusCerrado:
		return true
	}
	return false
}

// Bloqueante reports whether the status represents an existing booking that
// must not be discarded silently.
func (e HorarioEstatus) Bloqueante() bool {
	return e == HorarioEstatusReservado || e == HorarioEstatusOcupado
}

// PuedeTransicionarA encodes the one-way lifecycle: bookings only claim
// Disponible (or confirm Reservado into Ocupado), while administrative states
// and the aperturar override can always be applied.
func (e HorarioEstatus) PuedeTransicionarA(destino HorarioEstatus) bool {
	switch destino {
	case HorarioEstatusDisponible, HorarioEstatusBloqueado, HorarioEstatusCerrado:
		// Administrative moves, including the reopen override.
		return true
	case HorarioEstatusReservado:
		return e == HorarioEstatusDisponible || e == HorarioEstatusReservado
	case HorarioEstatusOcupado:
		return e == HorarioEstatusDisponible || e == HorarioEstatusReservado ||
			e == HorarioEstatusOcupado
	}
	return false
}

// Horario is one bookable time unit within a Fecha.
type Horario struct {
	ID      uuid.UUID            `json:"id"`
	Hora    json_types.TimeOfDay `json:"hora"`
	Estatus HorarioEstatus       `json:"estatus"`
}

func NuevoHorario(hora json_types.TimeOfDay) Horario {
	return Horario{
		ID:      uuid.New(),
		Hora:    hora,
		Estatus: HorarioEstatusDisponible,
	}
}

func (h Horario) EstaDisponible() bool {
	return h.Estatus == HorarioEstatusDisponible
}

// ResultadoHora is one entry of an apply-set response: the orchestrator
// reports per-item success instead of leaving silent partial state.
type ResultadoHora struct {
	Hora   json_types.TimeOfDay `json:"hora"`
	Creado bool                 `json:"creado"`
	Error  string               `json:"error,omitempty"`
}
