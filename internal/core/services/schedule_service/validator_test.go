package schedule_service

import (
	"strings"
	"testing"
	"time"

	"github.com/citamed/agenda-slots-service/internal/core/domain"
	"github.com/citamed/agenda-slots-service/internal/core/json_types"
	"github.com/google/uuid"
)

func definicionValida() domain.DefinicionProgramacion {
	return domain.DefinicionProgramacion{
		EspecialistaID: uuid.New(),
		SucursalID:     uuid.New(),
		Tipo:           domain.ProgramacionTipoRegular,
		FechaInicio:    json_types.NewDate(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)),
		FechaFin:       json_types.NewDate(time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)),
		HoraInicio:     json_types.NewTimeOfDay(9, 0),
		HoraFin:        json_types.NewTimeOfDay(17, 0),
		Intervalo:      30,
	}
}

func TestValidarDefinicionValida(t *testing.T) {
	fallas := ValidarDefinicion(definicionValida())
	if len(fallas) != 0 {
		t.Fatalf("esperaba definición válida, obtuve fallas: %v", fallas)
	}
}

func TestValidarDefinicionAcumulaFallas(t *testing.T) {
	definicion := definicionValida()
	definicion.EspecialistaID = uuid.Nil
	definicion.FechaInicio = json_types.NewDate(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC))
	// fecha_inicio posterior a fecha_fin y especialista ausente: ambas
	// fallas deben reportarse juntas, sin cortocircuito
	fallas := ValidarDefinicion(definicion)

	if len(fallas) < 2 {
		t.Fatalf("esperaba al menos 2 fallas independientes, obtuve %v", fallas)
	}
}

func TestValidarDefinicionCamposRequeridos(t *testing.T) {
	fallas := ValidarDefinicion(domain.DefinicionProgramacion{})

	// especialista, sucursal, dos fechas, dos horas y el intervalo
	if len(fallas) != 7 {
		t.Fatalf("esperaba 7 fallas, obtuve %d: %v", len(fallas), fallas)
	}
}

func TestValidarDefinicionIntervalo(t *testing.T) {
	casos := []struct {
		intervalo int
		valido    bool
	}{
		{15, true},
		{30, true},
		{120, true},
		{0, false},
		{10, false},
		{20, false},
		{150, false},
	}

	for _, caso := range casos {
		definicion := definicionValida()
		definicion.Intervalo = caso.intervalo

		fallas := ValidarDefinicion(definicion)
		if caso.valido && len(fallas) != 0 {
			t.Errorf("intervalo %d: esperaba válido, obtuve %v", caso.intervalo, fallas)
		}
		if !caso.valido && len(fallas) == 0 {
			t.Errorf("intervalo %d: esperaba falla", caso.intervalo)
		}
	}
}

func TestValidarDefinicionHorasInvertidas(t *testing.T) {
	definicion := definicionValida()
	definicion.HoraInicio = json_types.NewTimeOfDay(17, 0)
	definicion.HoraFin = json_types.NewTimeOfDay(9, 0)

	fallas := ValidarDefinicion(definicion)
	if len(fallas) != 1 || !strings.Contains(fallas[0], "hora de inicio") {
		t.Fatalf("esperaba falla de horas invertidas, obtuve %v", fallas)
	}
}
