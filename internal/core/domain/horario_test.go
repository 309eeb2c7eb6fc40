package domain

import (
	"testing"

	"github.com/citamed/agenda-slots-service/internal/core/json_types"
)

func TestPuedeTransicionarA(t *testing.T) {
	casos := []struct {
		desde     HorarioEstatus
		hacia     HorarioEstatus
		permitida bool
	}{
		{HorarioEstatusDisponible, HorarioEstatusReservado, true},
		{HorarioEstatusDisponible, HorarioEstatusOcupado, true},
		{HorarioEstatusDisponible, HorarioEstatusBloqueado, true},
		{HorarioEstatusReservado, HorarioEstatusOcupado, true},
		{HorarioEstatusReservado, HorarioEstatusDisponible, true},
		{HorarioEstatusOcupado, HorarioEstatusReservado, false},
		{HorarioEstatusBloqueado, HorarioEstatusReservado, false},
		{HorarioEstatusBloqueado, HorarioEstatusDisponible, true},
		{HorarioEstatusCerrado, HorarioEstatusOcupado, false},
		{HorarioEstatusCerrado, HorarioEstatusCerrado, true},
	}

	for _, caso := range casos {
		if got := caso.desde.PuedeTransicionarA(caso.hacia); got != caso.permitida {
			t.Errorf("%s a %s: esperaba %v, obtuve %v", caso.desde, caso.hacia, caso.permitida, got)
		}
	}
}

func TestEstatusValido(t *testing.T) {
	for _, estatus := range []HorarioEstatus{
		HorarioEstatusDisponible, HorarioEstatusReservado, HorarioEstatusOcupado,
		HorarioEstatusBloqueado, HorarioEstatusCerrado,
	} {
		if !estatus.Valido() {
			t.Errorf("%s debe ser válido", estatus)
		}
	}
	if HorarioEstatus("Pendiente").Valido() {
		t.Error("Pendiente no es un estatus del ciclo de vida")
	}
}

func TestNuevoHorario(t *testing.T) {
	horario := NuevoHorario(json_types.NewTimeOfDay(9, 0))

	if horario.Estatus != HorarioEstatusDisponible {
		t.Errorf("un horario recién abierto nace Disponible, obtuve %s", horario.Estatus)
	}
	if !horario.EstaDisponible() {
		t.Error("EstaDisponible debe reportar true")
	}
}
