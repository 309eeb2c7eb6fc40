package domain

import (
	"time"

	"github.com/citamed/agenda-slots-service/internal/core/json_types"
	"github.com/google/uuid"
)

var diasSemana = map[time.Weekday]string{
	time.Sunday:    "Domingo",
	time.Monday:    "Lunes",
	time.Tuesday:   "Martes",
	time.Wednesday: "Miércoles",
	time.Thursday:  "Jueves",
	time.Friday:    "Viernes",
	time.Saturday:  "Sábado",
}

// Fecha is one calendar day materialized under a Programacion. It is created
// lazily, only when an administrator opens it.
type Fecha struct {
	ID             uuid.UUID       `json:"id"`
	ProgramacionID uuid.UUID       `json:"programacion_id"`
	Dia            json_types.Date `json:"fecha"`
	Horarios       []Horario       `json:"horarios"`
}

func NuevaFecha(programacionID uuid.UUID, dia json_types.Date) *Fecha {
	return &Fecha{
		ID:             uuid.New(),
		ProgramacionID: programacionID,
		Dia:            dia,
		Horarios:       []Horario{},
	}
}

// Aperturada is computed, never stored: a Fecha with zero Horarios is
// "not yet opened" and must not surface in availability queries.
func (f *Fecha) Aperturada() bool {
	return len(f.Horarios) > 0
}

func (f *Fecha) HorariosDisponibles() []Horario {
	disponibles := make([]Horario, 0)
	for _, horario := range f.Horarios {
		if horario.EstaDisponible() {
			disponibles = append(disponibles, horario)
		}
	}
	return disponibles
}

// TieneHora enforces the slot-time uniqueness invariant at write time.
func (f *Fecha) TieneHora(hora json_types.TimeOfDay) bool {
	for _, horario := range f.Horarios {
		if horario.Hora.Igual(hora) {
			return true
		}
	}
	return false
}

func (f *Fecha) BuscarHorario(horarioID uuid.UUID) *Horario {
	for i := range f.Horarios {
		if f.Horarios[i].ID == horarioID {
			return &f.Horarios[i]
		}
	}
	return nil
}

// TieneReservas reports whether any child Horario carries a booking.
func (f *Fecha) TieneReservas() bool {
	for _, horario := range f.Horarios {
		if horario.Estatus.Bloqueante() {
			return true
		}
	}
	return false
}

func (f *Fecha) DiaSemana() string {
	return diasSemana[f.Dia.Date.Weekday()]
}

// FechaFormateada is the display form the scheduling pickers show.
func (f *Fecha) FechaFormateada() string {
	return f.Dia.Date.Format("02/01/2006")
}

// FechaAbierta is one row of the first selection stage: a day with at least
// one open slot.
type FechaAbierta struct {
	Dia                 json_types.Date `json:"fecha"`
	DiaSemana           string          `json:"dia_semana"`
	HorariosDisponibles int             `json:"horarios_disponibles"`
}
