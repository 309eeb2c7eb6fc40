package availability_service

import (
	"errors"

	"github.com/citamed/agenda-slots-service/internal/core/domain"
	"github.com/citamed/agenda-slots-service/internal/core/json_types"
	"github.com/google/uuid"
)

var (
	ErrSinFecha = errors.New("selección incompleta: falta elegir la fecha")
	ErrSinHora  = errors.New("selección incompleta: falta elegir la hora")
)

// Seleccion sequences the two selection steps for one booking client.
// Choosing a different date discards any previously chosen time, so a stale
// slot of the old date can never leak into the result.
//
// It performs no network calls and no mutation; claiming the chosen slot is
// the booking collaborator's job, after the selection is combined.
type Seleccion struct {
	especialistaID uuid.UUID
	sucursalID     uuid.UUID
	fecha          *json_types.Date
	hora           *json_types.TimeOfDay
}

func NuevaSeleccion(especialistaID, sucursalID uuid.UUID) *Seleccion {
	return &Seleccion{
		especialistaID: especialistaID,
		sucursalID:     sucursalID,
	}
}

// ElegirFecha sets stage one. Re-selecting a different date resets the time.
func (s *Seleccion) ElegirFecha(fecha json_types.Date) {
	if s.fecha != nil && s.fecha.Igual(fecha) {
		return
	}
	s.fecha = &fecha
	s.hora = nil
}

func (s *Seleccion) ElegirHora(hora json_types.TimeOfDay) error {
	if s.fecha == nil {
		return ErrSinFecha
	}
	s.hora = &hora
	return nil
}

func (s *Seleccion) Fecha() (json_types.Date, bool) {
	if s.fecha == nil {
		return json_types.Date{}, false
	}
	return *s.fecha, true
}

// Resultado combines the two choices into the immutable selection record.
func (s *Seleccion) Resultado() (domain.SeleccionHorario, error) {
	if s.fecha == nil {
		return domain.SeleccionHorario{}, ErrSinFecha
	}
	if s.hora == nil {
		return domain.SeleccionHorario{}, ErrSinHora
	}

	return domain.SeleccionHorario{
		EspecialistaID: s.especialistaID,
		SucursalID:     s.sucursalID,
		Fecha:          *s.fecha,
		Hora:           *s.hora,
	}, nil
}
