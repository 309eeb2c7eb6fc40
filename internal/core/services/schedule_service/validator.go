package schedule_service

import (
	"fmt"

	"github.com/citamed/agenda-slots-service/internal/core/domain"
	"github.com/google/uuid"
)

// ValidarDefinicion collects every structural failure of a draft definition.
// An empty list means structurally valid; conflicts with existing schedules
// are checked by the persistence collaborator, not here.
func ValidarDefinicion(definicion domain.DefinicionProgramacion) []string {
	fallas := make([]string, 0)

	if definicion.EspecialistaID == uuid.Nil {
		fallas = append(fallas, "el especialista es requerido")
	}
	if definicion.SucursalID == uuid.Nil {
		fallas = append(fallas, "la sucursal es requerida")
	}

	if definicion.FechaInicio.IsZero() {
		fallas = append(fallas, "la fecha de inicio es requerida")
	}
	if definicion.FechaFin.IsZero() {
		fallas = append(fallas, "la fecha de fin es requerida")
	}
	if !definicion.FechaInicio.IsZero() && !definicion.FechaFin.IsZero() &&
		definicion.FechaFin.Antes(definicion.FechaInicio) {
		fallas = append(fallas, "la fecha de inicio debe ser anterior o igual a la fecha de fin")
	}

	if definicion.HoraInicio.IsZero() {
		fallas = append(fallas, "la hora de inicio es requerida")
	}
	if definicion.HoraFin.IsZero() {
		fallas = append(fallas, "la hora de fin es requerida")
	}
	if !definicion.HoraInicio.IsZero() && !definicion.HoraFin.IsZero() &&
		definicion.HoraInicio.Minutos() >= definicion.HoraFin.Minutos() {
		fallas = append(fallas, "la hora de inicio debe ser anterior a la hora de fin")
	}

	if definicion.Intervalo == 0 {
		fallas = append(fallas, "el intervalo es requerido")
	} else if !domain.IntervaloPermitido(definicion.Intervalo) {
		fallas = append(fallas, fmt.Sprintf("el intervalo %d no está permitido (valores: 15, 30, 45, 60, 90, 120)", definicion.Intervalo))
	}

	return fallas
}
