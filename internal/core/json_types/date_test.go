package json_types

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseFecha(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"2030-06-10", "2030-06-10"},
		{"2030-06-10T00:00:00", "2030-06-10"},
		{"2030-06-10T15:30:00Z", "2030-06-10"},
	}

	for _, caso := range casos {
		fecha, err := ParseFecha(caso.entrada)
		if err != nil {
			t.Fatalf("ParseFecha(%q): %v", caso.entrada, err)
		}
		if fecha.String() != caso.esperado {
			t.Errorf("ParseFecha(%q): esperaba %s, obtuve %s", caso.entrada, caso.esperado, fecha)
		}
	}

	if _, err := ParseFecha("10/06/2030"); err == nil {
		t.Error("un formato de despliegue no debe aceptarse como entrada")
	}
}

func TestDateJSON(t *testing.T) {
	fecha, err := ParseFecha("2030-06-10")
	if err != nil {
		t.Fatalf("ParseFecha: %v", err)
	}

	data, err := json.Marshal(fecha)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"2030-06-10"` {
		t.Errorf("esperaba \"2030-06-10\", obtuve %s", data)
	}

	var decodificada Date
	if err := json.Unmarshal([]byte(`"2030-06-10T12:00:00"`), &decodificada); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !decodificada.Igual(fecha) {
		t.Errorf("esperaba %s, obtuve %s", fecha, decodificada)
	}
}

func TestDateIgualYAntes(t *testing.T) {
	// La identidad de día ignora la hora: el mismo día a distintas horas
	// no es "antes"
	manana := NewDate(time.Date(2030, time.June, 10, 8, 0, 0, 0, time.UTC))
	tarde := NewDate(time.Date(2030, time.June, 10, 20, 0, 0, 0, time.UTC))
	siguiente := NewDate(time.Date(2030, time.June, 11, 0, 0, 0, 0, time.UTC))

	if !manana.Igual(tarde) {
		t.Error("el mismo día a distinta hora debe ser igual")
	}
	if manana.Antes(tarde) {
		t.Error("el mismo día no es anterior a sí mismo")
	}
	if !manana.Antes(siguiente) {
		t.Error("el día 10 es anterior al 11")
	}
	if siguiente.Antes(manana) {
		t.Error("el día 11 no es anterior al 10")
	}
}

func TestParseHora(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"09:00", "09:00"},
		{"15:04:05", "15:04"},
	}

	for _, caso := range casos {
		hora, err := ParseHora(caso.entrada)
		if err != nil {
			t.Fatalf("ParseHora(%q): %v", caso.entrada, err)
		}
		if hora.String() != caso.esperado {
			t.Errorf("ParseHora(%q): esperaba %s, obtuve %s", caso.entrada, caso.esperado, hora)
		}
	}

	if _, err := ParseHora("9 am"); err == nil {
		t.Error("formato inválido aceptado")
	}
}

func TestMinutos(t *testing.T) {
	if minutos := NewTimeOfDay(9, 30).Minutos(); minutos != 570 {
		t.Errorf("09:30 son 570 minutos, obtuve %d", minutos)
	}
	if hora := DesdeMinutos(570); hora.String() != "09:30" {
		t.Errorf("570 minutos son 09:30, obtuve %s", hora)
	}
	if !NewTimeOfDay(9, 0).Antes(NewTimeOfDay(9, 30)) {
		t.Error("09:00 es antes que 09:30")
	}
	if !NewTimeOfDay(9, 0).Igual(NewTimeOfDay(9, 0)) {
		t.Error("09:00 debe ser igual a 09:00")
	}
}
