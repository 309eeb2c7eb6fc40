package availability_service

import (
	"context"
	"testing"
	"time"

	"github.com/citamed/agenda-slots-service/internal/adapters/out/logger"
	"github.com/citamed/agenda-slots-service/internal/adapters/out/persistencia"
	"github.com/citamed/agenda-slots-service/internal/core/domain"
	"github.com/citamed/agenda-slots-service/internal/core/json_types"
	"github.com/google/uuid"
)

// ahora is the pinned "today" for every query test
var ahora = time.Date(2030, time.June, 10, 11, 30, 0, 0, time.UTC)

func dia(anio int, mes time.Month, dia int) time.Time {
	return time.Date(anio, mes, dia, 0, 0, 0, 0, time.UTC)
}

func nuevoServicio(memoria *persistencia.MemoriaAdapter) *AvailabilityService {
	servicio := NewAvailabilityService(memoria, nil, logger.NewNopLogger())
	servicio.reloj = func() time.Time { return ahora }
	return servicio
}

func sembrarFecha(t *testing.T, memoria *persistencia.MemoriaAdapter, programacionID uuid.UUID, dia time.Time, estatus ...domain.HorarioEstatus) {
	t.Helper()

	fecha := domain.NuevaFecha(programacionID, json_types.NewDate(dia))
	for i, e := range estatus {
		horario := domain.NuevoHorario(json_types.NewTimeOfDay(9+i/2, (i%2)*30))
		horario.Estatus = e
		fecha.Horarios = append(fecha.Horarios, horario)
	}
	if err := memoria.CrearFecha(context.Background(), fecha); err != nil {
		t.Fatalf("CrearFecha: %v", err)
	}
}

func sembrarProgramacion(t *testing.T, memoria *persistencia.MemoriaAdapter, especialistaID, sucursalID uuid.UUID) *domain.Programacion {
	t.Helper()

	programacion := domain.DefinicionProgramacion{
		EspecialistaID: especialistaID,
		SucursalID:     sucursalID,
		FechaInicio:    json_types.NewDate(dia(2030, time.June, 1)),
		FechaFin:       json_types.NewDate(dia(2030, time.June, 30)),
		HoraInicio:     json_types.NewTimeOfDay(9, 0),
		HoraFin:        json_types.NewTimeOfDay(12, 0),
		Intervalo:      30,
	}.AProgramacion()

	if err := memoria.CrearProgramacion(context.Background(), programacion); err != nil {
		t.Fatalf("CrearProgramacion: %v", err)
	}
	return programacion
}

func TestListarFechasAbiertas(t *testing.T) {
	memoria := persistencia.NewMemoriaAdapter()
	especialistaID, sucursalID := uuid.New(), uuid.New()
	programacion := sembrarProgramacion(t, memoria, especialistaID, sucursalID)
	servicio := nuevoServicio(memoria)

	// ayer: se descarta aunque tenga disponibles
	sembrarFecha(t, memoria, programacion.ID, dia(2030, time.June, 9), domain.HorarioEstatusDisponible)
	// hoy: dos disponibles y un reservado
	sembrarFecha(t, memoria, programacion.ID, dia(2030, time.June, 10),
		domain.HorarioEstatusDisponible, domain.HorarioEstatusReservado, domain.HorarioEstatusDisponible)
	// mañana: abierta pero sin horarios, no debe aparecer
	sembrarFecha(t, memoria, programacion.ID, dia(2030, time.June, 11))
	// pasado mañana: todo tomado, no debe aparecer
	sembrarFecha(t, memoria, programacion.ID, dia(2030, time.June, 12),
		domain.HorarioEstatusOcupado, domain.HorarioEstatusBloqueado)
	// una semana después: un solo disponible
	sembrarFecha(t, memoria, programacion.ID, dia(2030, time.June, 17),
		domain.HorarioEstatusDisponible, domain.HorarioEstatusCerrado)

	abiertas, err := servicio.ListarFechasAbiertas(context.Background(), especialistaID, sucursalID)
	if err != nil {
		t.Fatalf("ListarFechasAbiertas: %v", err)
	}

	if len(abiertas) != 2 {
		t.Fatalf("esperaba 2 fechas abiertas, obtuve %d: %v", len(abiertas), abiertas)
	}
	if abiertas[0].Dia.String() != "2030-06-10" || abiertas[0].HorariosDisponibles != 2 {
		t.Errorf("primera fecha: esperaba 2030-06-10 con 2 disponibles, obtuve %s con %d",
			abiertas[0].Dia, abiertas[0].HorariosDisponibles)
	}
	if abiertas[1].Dia.String() != "2030-06-17" || abiertas[1].HorariosDisponibles != 1 {
		t.Errorf("segunda fecha: esperaba 2030-06-17 con 1 disponible, obtuve %s con %d",
			abiertas[1].Dia, abiertas[1].HorariosDisponibles)
	}
	if abiertas[0].DiaSemana != "Lunes" {
		t.Errorf("2030-06-10 es lunes, obtuve %s", abiertas[0].DiaSemana)
	}
}

func TestListarFechasAbiertasSumaProgramaciones(t *testing.T) {
	memoria := persistencia.NewMemoriaAdapter()
	especialistaID, sucursalID := uuid.New(), uuid.New()
	primera := sembrarProgramacion(t, memoria, especialistaID, sucursalID)
	segunda := sembrarProgramacion(t, memoria, especialistaID, sucursalID)
	servicio := nuevoServicio(memoria)

	sembrarFecha(t, memoria, primera.ID, dia(2030, time.June, 11), domain.HorarioEstatusDisponible)
	sembrarFecha(t, memoria, segunda.ID, dia(2030, time.June, 11),
		domain.HorarioEstatusDisponible, domain.HorarioEstatusDisponible)

	abiertas, err := servicio.ListarFechasAbiertas(context.Background(), especialistaID, sucursalID)
	if err != nil {
		t.Fatalf("ListarFechasAbiertas: %v", err)
	}

	if len(abiertas) != 1 {
		t.Fatalf("esperaba 1 fecha, obtuve %d", len(abiertas))
	}
	if abiertas[0].HorariosDisponibles != 3 {
		t.Errorf("el mismo día bajo dos programaciones debe sumar: esperaba 3, obtuve %d",
			abiertas[0].HorariosDisponibles)
	}
}

func TestListarHorariosAbiertos(t *testing.T) {
	memoria := persistencia.NewMemoriaAdapter()
	especialistaID, sucursalID := uuid.New(), uuid.New()
	programacion := sembrarProgramacion(t, memoria, especialistaID, sucursalID)
	servicio := nuevoServicio(memoria)

	fecha := domain.NuevaFecha(programacion.ID, json_types.NewDate(dia(2030, time.June, 11)))
	for _, caso := range []struct {
		hora    json_types.TimeOfDay
		estatus domain.HorarioEstatus
	}{
		{json_types.NewTimeOfDay(10, 0), domain.HorarioEstatusReservado},
		{json_types.NewTimeOfDay(9, 0), domain.HorarioEstatusDisponible},
		{json_types.NewTimeOfDay(11, 0), domain.HorarioEstatusDisponible},
		{json_types.NewTimeOfDay(10, 30), domain.HorarioEstatusBloqueado},
	} {
		horario := domain.NuevoHorario(caso.hora)
		horario.Estatus = caso.estatus
		fecha.Horarios = append(fecha.Horarios, horario)
	}
	if err := memoria.CrearFecha(context.Background(), fecha); err != nil {
		t.Fatalf("CrearFecha: %v", err)
	}

	horas, err := servicio.ListarHorariosAbiertos(context.Background(), especialistaID, sucursalID, dia(2030, time.June, 11))
	if err != nil {
		t.Fatalf("ListarHorariosAbiertos: %v", err)
	}

	esperadas := []string{"09:00", "11:00"}
	if len(horas) != len(esperadas) {
		t.Fatalf("esperaba %v, obtuve %v", esperadas, horas)
	}
	for i := range horas {
		if horas[i].String() != esperadas[i] {
			t.Errorf("posición %d: esperaba %s, obtuve %s", i, esperadas[i], horas[i])
		}
	}
}

func TestListarHorariosAbiertosDiaPasado(t *testing.T) {
	memoria := persistencia.NewMemoriaAdapter()
	especialistaID, sucursalID := uuid.New(), uuid.New()
	programacion := sembrarProgramacion(t, memoria, especialistaID, sucursalID)
	servicio := nuevoServicio(memoria)

	sembrarFecha(t, memoria, programacion.ID, dia(2030, time.June, 9), domain.HorarioEstatusDisponible)

	horas, err := servicio.ListarHorariosAbiertos(context.Background(), especialistaID, sucursalID, dia(2030, time.June, 9))
	if err != nil {
		t.Fatalf("ListarHorariosAbiertos: %v", err)
	}
	if len(horas) != 0 {
		t.Errorf("un día pasado debe responder vacío, obtuve %v", horas)
	}
}

func TestListarFechasAdministrativo(t *testing.T) {
	memoria := persistencia.NewMemoriaAdapter()
	especialistaID, sucursalID := uuid.New(), uuid.New()
	programacion := sembrarProgramacion(t, memoria, especialistaID, sucursalID)
	servicio := nuevoServicio(memoria)

	sembrarFecha(t, memoria, programacion.ID, dia(2030, time.June, 12))
	sembrarFecha(t, memoria, programacion.ID, dia(2030, time.June, 9), domain.HorarioEstatusOcupado)
	sembrarFecha(t, memoria, programacion.ID, dia(2030, time.June, 10), domain.HorarioEstatusDisponible)

	fechas, err := servicio.ListarFechas(context.Background(), programacion.ID)
	if err != nil {
		t.Fatalf("ListarFechas: %v", err)
	}

	// La vista administrativa incluye días pasados y fechas sin disponibles
	esperadas := []string{"2030-06-09", "2030-06-10", "2030-06-12"}
	if len(fechas) != len(esperadas) {
		t.Fatalf("esperaba %d fechas, obtuve %d", len(esperadas), len(fechas))
	}
	for i := range fechas {
		if fechas[i].Dia.String() != esperadas[i] {
			t.Errorf("posición %d: esperaba %s, obtuve %s", i, esperadas[i], fechas[i].Dia)
		}
	}
}
