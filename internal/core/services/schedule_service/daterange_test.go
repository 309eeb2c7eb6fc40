package schedule_service

import (
	"errors"
	"testing"
	"time"

	"github.com/citamed/agenda-slots-service/internal/core/domain"
)

func dia(anio int, mes time.Month, dia int) time.Time {
	return time.Date(anio, mes, dia, 0, 0, 0, 0, time.UTC)
}

func TestExpandirRango(t *testing.T) {
	dias, err := ExpandirRango(dia(2024, time.January, 1), dia(2024, time.January, 3))
	if err != nil {
		t.Fatalf("ExpandirRango: %v", err)
	}

	if len(dias) != 3 {
		t.Fatalf("esperaba 3 días, obtuve %d", len(dias))
	}
	for i, esperado := range []string{"2024-01-01", "2024-01-02", "2024-01-03"} {
		if dias[i].Format("2006-01-02") != esperado {
			t.Errorf("día %d: esperaba %s, obtuve %s", i, esperado, dias[i].Format("2006-01-02"))
		}
	}
}

func TestExpandirRangoUnSoloDia(t *testing.T) {
	dias, err := ExpandirRango(dia(2024, time.June, 15), dia(2024, time.June, 15))
	if err != nil {
		t.Fatalf("ExpandirRango: %v", err)
	}
	if len(dias) != 1 {
		t.Fatalf("esperaba 1 día, obtuve %d", len(dias))
	}
}

func TestExpandirRangoInvertido(t *testing.T) {
	_, err := ExpandirRango(dia(2024, time.January, 3), dia(2024, time.January, 1))
	if !errors.Is(err, domain.ErrRangoInvalido) {
		t.Fatalf("esperaba ErrRangoInvalido, obtuve %v", err)
	}
}

func TestExpandirRangoDisponibleExcluyePasado(t *testing.T) {
	// hoy cae dentro del rango, con hora distinta de medianoche para
	// verificar la comparación solo por fecha
	hoy := time.Date(2024, time.January, 2, 13, 45, 0, 0, time.UTC)

	dias, err := ExpandirRangoDisponible(dia(2024, time.January, 1), dia(2024, time.January, 4), hoy)
	if err != nil {
		t.Fatalf("ExpandirRangoDisponible: %v", err)
	}

	if len(dias) != 3 {
		t.Fatalf("esperaba 3 días, obtuve %d", len(dias))
	}
	if dias[0].Format("2006-01-02") != "2024-01-02" {
		t.Errorf("hoy debe incluirse: primer día %s", dias[0].Format("2006-01-02"))
	}
	for _, d := range dias {
		if d.Before(dia(2024, time.January, 2)) {
			t.Errorf("día pasado incluido: %s", d.Format("2006-01-02"))
		}
	}
}

func TestExpandirRangoDisponibleSinFiltroFuturo(t *testing.T) {
	hoy := dia(2023, time.December, 25)

	dias, err := ExpandirRangoDisponible(dia(2024, time.January, 1), dia(2024, time.January, 3), hoy)
	if err != nil {
		t.Fatalf("ExpandirRangoDisponible: %v", err)
	}
	if len(dias) != 3 {
		t.Fatalf("esperaba 3 días, obtuve %d", len(dias))
	}
}
