package schedule_service

import (
	"github.com/citamed/agenda-slots-service/internal/core/json_types"
)

// GenerarGrilla steps from inicio to fin inclusive in increments of
// intervalo minutes. The last element never exceeds fin: a window that is
// not a multiple of the interval is cut at the greatest grid point inside it.
// Pure and restartable.
func GenerarGrilla(inicio, fin json_types.TimeOfDay, intervalo int) []json_types.TimeOfDay {
	if intervalo <= 0 {
		return nil
	}

	inicioMin := inicio.Minutos()
	finMin := fin.Minutos()
	if inicioMin > finMin {
		return nil
	}

	grilla := make([]json_types.TimeOfDay, 0, (finMin-inicioMin)/intervalo+1)
	for minuto := inicioMin; minuto <= finMin; minuto += intervalo {
		grilla = append(grilla, json_types.DesdeMinutos(minuto))
	}

	return grilla
}
