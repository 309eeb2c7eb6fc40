package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRangoInvalido is reported by the date-range expander when the start date
// falls after the end date.
var ErrRangoInvalido = errors.New("rango de fechas inválido: fecha_inicio posterior a fecha_fin")

// ErrorValidacion carries the full list of structural failures so the caller
// can render every problem at once instead of one-at-a-time.
type ErrorValidacion struct {
	Fallas []string
}

func (e *ErrorValidacion) Error() string {
	return "definición inválida: " + strings.Join(e.Fallas, "; ")
}

type NoEncontradoError struct {
	Recurso string
	ID      string
}

func (e *NoEncontradoError) Error() string {
	return fmt.Sprintf("%s no encontrado: %s", e.Recurso, e.ID)
}

type HoraDuplicadaError struct {
	Fecha string
	Hora  string
}

func (e *HoraDuplicadaError) Error() string {
	return fmt.Sprintf("la hora %s ya existe en la fecha %s", e.Hora, e.Fecha)
}

type FueraDeRangoError struct {
	Fecha  string
	Inicio string
	Fin    string
}

func (e *FueraDeRangoError) Error() string {
	return fmt.Sprintf("la fecha %s está fuera del rango de la programación [%s, %s]", e.Fecha, e.Inicio, e.Fin)
}

// FechaConReservasError blocks a cascading delete over existing bookings;
// the caller must force it explicitly after compensating the bookings.
type FechaConReservasError struct {
	Fecha string
}

func (e *FechaConReservasError) Error() string {
	return fmt.Sprintf("la fecha %s tiene horarios reservados u ocupados", e.Fecha)
}

// TransporteError wraps failures of the persistence collaborator: it could
// not be reached or returned an unexpected shape.
type TransporteError struct {
	Operacion string
	Err       error
}

func (e *TransporteError) Error() string {
	return fmt.Sprintf("%s: %v", e.Operacion, e.Err)
}

func (e *TransporteError) Unwrap() error {
	return e.Err
}
