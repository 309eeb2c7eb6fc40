package domain

import (
	"time"

	"github.com/citamed/agenda-slots-service/internal/core/json_types"
	"github.com/google/uuid"
)

type ProgramacionTipo string

const (
	ProgramacionTipoRegular  ProgramacionTipo = "Regular"
	ProgramacionTipoTemporal ProgramacionTipo = "Temporal"
	ProgramacionTipoEspecial ProgramacionTipo = "Especial"
)

// IntervalosPermitidos are the only slot spacings the scheduling UI offers.
var IntervalosPermitidos = []int{15, 30, 45, 60, 90, 120}

func IntervaloPermitido(minutos int) bool {
	for _, intervalo := range IntervalosPermitidos {
		if intervalo == minutos {
			return true
		}
	}
	return false
}

// DefinicionProgramacion is the draft a scheduling administrator submits.
// Zero values mean "not provided"; the validator reports every missing or
// inconsistent field at once.
type DefinicionProgramacion struct {
	EspecialistaID uuid.UUID            `json:"especialista_id"`
	SucursalID     uuid.UUID            `json:"sucursal_id"`
	ConsultorioID  *uuid.UUID           `json:"consultorio_id,omitempty"`
	Tipo           ProgramacionTipo     `json:"tipo"`
	FechaInicio    json_types.Date      `json:"fecha_inicio"`
	FechaFin       json_types.Date      `json:"fecha_fin"`
	HoraInicio     json_types.TimeOfDay `json:"hora_inicio"`
	HoraFin        json_types.TimeOfDay `json:"hora_fin"`
	Intervalo      int                  `json:"intervalo"`
	Notas          string               `json:"notas"`
	AutoAperturar  bool                 `json:"auto_aperturar"`
}

// Programacion is the coarse recurring schedule definition. Its recurrence
// parameters are immutable after creation; edits re-derive a new one.
type Programacion struct {
	ID             uuid.UUID            `json:"id"`
	EspecialistaID uuid.UUID            `json:"especialista_id"`
	SucursalID     uuid.UUID            `json:"sucursal_id"`
	ConsultorioID  *uuid.UUID           `json:"consultorio_id,omitempty"`
	Tipo           ProgramacionTipo     `json:"tipo"`
	FechaInicio    json_types.Date      `json:"fecha_inicio"`
	FechaFin       json_types.Date      `json:"fecha_fin"`
	HoraInicio     json_types.TimeOfDay `json:"hora_inicio"`
	HoraFin        json_types.TimeOfDay `json:"hora_fin"`
	Intervalo      int                  `json:"intervalo"`
	Notas          string               `json:"notas"`
	AutoAperturar  bool                 `json:"auto_aperturar"`
}

func (d DefinicionProgramacion) AProgramacion() *Programacion {
	tipo := d.Tipo
	if tipo == "" {
		tipo = ProgramacionTipoRegular
	}

	return &Programacion{
		ID:             uuid.New(),
		EspecialistaID: d.EspecialistaID,
		SucursalID:     d.SucursalID,
		ConsultorioID:  d.ConsultorioID,
		Tipo:           tipo,
		FechaInicio:    d.FechaInicio,
		FechaFin:       d.FechaFin,
		HoraInicio:     d.HoraInicio,
		HoraFin:        d.HoraFin,
		Intervalo:      d.Intervalo,
		Notas:          d.Notas,
		AutoAperturar:  d.AutoAperturar,
	}
}

// ContieneFecha reports whether a day falls inside [FechaInicio, FechaFin].
func (p *Programacion) ContieneFecha(dia time.Time) bool {
	fecha := json_types.NewDate(dia)
	if fecha.Antes(p.FechaInicio) {
		return false
	}
	return !p.FechaFin.Antes(fecha)
}
