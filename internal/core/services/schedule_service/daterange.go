package schedule_service

import (
	"time"

	"github.com/citamed/agenda-slots-service/internal/core/domain"
	"github.com/citamed/agenda-slots-service/internal/utils"
)

// ExpandirRango returns one entry per calendar day from inicio to fin
// inclusive. This is the administrative variant: no past-date filter.
func ExpandirRango(inicio, fin time.Time) ([]time.Time, error) {
	inicioDia := utils.StartCurrentDay(inicio)
	finDia := utils.StartCurrentDay(fin)

	if inicioDia.After(finDia) {
		return nil, domain.ErrRangoInvalido
	}

	dias := make([]time.Time, 0)
	for dia := inicioDia; !dia.After(finDia); dia = utils.StartNextDay(dia) {
		dias = append(dias, dia)
	}

	return dias, nil
}

// ExpandirRangoDisponible is the availability-facing variant: days strictly
// before hoy are excluded, hoy itself is kept. Date-only comparison, the
// time-of-day of hoy is ignored.
func ExpandirRangoDisponible(inicio, fin, hoy time.Time) ([]time.Time, error) {
	dias, err := ExpandirRango(inicio, fin)
	if err != nil {
		return nil, err
	}

	hoyDia := utils.StartCurrentDay(hoy)
	disponibles := make([]time.Time, 0, len(dias))
	for _, dia := range dias {
		if dia.Before(hoyDia) {
			continue
		}
		disponibles = append(disponibles, dia)
	}

	return disponibles, nil
}
