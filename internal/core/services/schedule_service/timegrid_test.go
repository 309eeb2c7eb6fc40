package schedule_service

import (
	"testing"

	"github.com/citamed/agenda-slots-service/internal/core/json_types"
)

func horasDe(grilla []json_types.TimeOfDay) []string {
	horas := make([]string, 0, len(grilla))
	for _, hora := range grilla {
		horas = append(horas, hora.String())
	}
	return horas
}

func TestGenerarGrilla(t *testing.T) {
	casos := []struct {
		nombre    string
		inicio    string
		fin       string
		intervalo int
		esperado  []string
	}{
		{
			nombre:    "ventana de una hora cada 30",
			inicio:    "09:00",
			fin:       "10:00",
			intervalo: 30,
			esperado:  []string{"09:00", "09:30", "10:00"},
		},
		{
			nombre:    "inicio igual a fin produce un solo elemento",
			inicio:    "09:00",
			fin:       "09:00",
			intervalo: 15,
			esperado:  []string{"09:00"},
		},
		{
			nombre:    "ventana no múltiplo corta en el último punto interior",
			inicio:    "09:00",
			fin:       "10:10",
			intervalo: 30,
			esperado:  []string{"09:00", "09:30", "10:00"},
		},
		{
			nombre:    "jornada completa cada 120",
			inicio:    "08:00",
			fin:       "14:00",
			intervalo: 120,
			esperado:  []string{"08:00", "10:00", "12:00", "14:00"},
		},
	}

	for _, caso := range casos {
		t.Run(caso.nombre, func(t *testing.T) {
			inicio, err := json_types.ParseHora(caso.inicio)
			if err != nil {
				t.Fatalf("ParseHora(%q): %v", caso.inicio, err)
			}
			fin, err := json_types.ParseHora(caso.fin)
			if err != nil {
				t.Fatalf("ParseHora(%q): %v", caso.fin, err)
			}

			grilla := GenerarGrilla(inicio, fin, caso.intervalo)
			horas := horasDe(grilla)

			if len(horas) != len(caso.esperado) {
				t.Fatalf("esperaba %v, obtuve %v", caso.esperado, horas)
			}
			for i := range horas {
				if horas[i] != caso.esperado[i] {
					t.Fatalf("esperaba %v, obtuve %v", caso.esperado, horas)
				}
			}
		})
	}
}

func TestGenerarGrillaEsEstrictamenteCreciente(t *testing.T) {
	inicio := json_types.NewTimeOfDay(8, 0)
	fin := json_types.NewTimeOfDay(17, 45)

	for _, intervalo := range []int{15, 30, 45, 60, 90, 120} {
		grilla := GenerarGrilla(inicio, fin, intervalo)

		if len(grilla) == 0 {
			t.Fatalf("intervalo %d: grilla vacía", intervalo)
		}
		if !grilla[0].Igual(inicio) {
			t.Errorf("intervalo %d: primer elemento %s, esperaba %s", intervalo, grilla[0], inicio)
		}
		if grilla[len(grilla)-1].Minutos() > fin.Minutos() {
			t.Errorf("intervalo %d: último elemento %s excede %s", intervalo, grilla[len(grilla)-1], fin)
		}
		for i := 1; i < len(grilla); i++ {
			if grilla[i].Minutos()-grilla[i-1].Minutos() != intervalo {
				t.Errorf("intervalo %d: paso irregular entre %s y %s", intervalo, grilla[i-1], grilla[i])
			}
		}
	}
}

func TestGenerarGrillaEntradasInvalidas(t *testing.T) {
	if grilla := GenerarGrilla(json_types.NewTimeOfDay(9, 0), json_types.NewTimeOfDay(10, 0), 0); grilla != nil {
		t.Errorf("intervalo cero: esperaba nil, obtuve %v", horasDe(grilla))
	}
	if grilla := GenerarGrilla(json_types.NewTimeOfDay(10, 0), json_types.NewTimeOfDay(9, 0), 30); grilla != nil {
		t.Errorf("ventana invertida: esperaba nil, obtuve %v", horasDe(grilla))
	}
}
