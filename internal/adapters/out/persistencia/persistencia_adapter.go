package persistencia

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/citamed/agenda-slots-service/internal/config"
	"github.com/citamed/agenda-slots-service/internal/core/domain"
	"github.com/citamed/agenda-slots-service/internal/core/ports/out"
	"github.com/google/uuid"
)

// PersistenciaAdapter talks to the persistence collaborator over its REST
// contract. Failures surface as domain.TransporteError; a 404 on a lookup is
// mapped to (nil, nil) so the services can tell "absent" apart from "down".
type PersistenciaAdapter struct {
	client   *http.Client
	baseURL  string
	username string
	password string
	logger   out.LoggerPort
}

func NewPersistenciaAdapter(cfg *config.Config, logger out.LoggerPort) *PersistenciaAdapter {
	return &PersistenciaAdapter{
		client:   &http.Client{Timeout: 10 * time.Second},
		baseURL:  cfg.Persistencia.URL,
		username: cfg.Persistencia.Username,
		password: cfg.Persistencia.Password,
		logger:   logger,
	}
}

func (a *PersistenciaAdapter) do(ctx context.Context, operacion, method, url string, body interface{}) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, &domain.TransporteError{Operacion: operacion, Err: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, &domain.TransporteError{Operacion: operacion, Err: err}
	}

	req.SetBasicAuth(a.username, a.password)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Error(operacion+".request_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, &domain.TransporteError{Operacion: operacion, Err: err}
	}

	return resp, nil
}

func (a *PersistenciaAdapter) decode(operacion string, resp *http.Response, target interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		a.logger.Error(operacion+".unexpected_status", out.LogFields{
			"status": resp.StatusCode,
		})
		return &domain.TransporteError{
			Operacion: operacion,
			Err:       fmt.Errorf("unexpected status code: %d", resp.StatusCode),
		}
	}

	if target == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		a.logger.Error(operacion+".decode_failed", out.LogFields{
			"error": err.Error(),
		})
		return &domain.TransporteError{Operacion: operacion, Err: err}
	}

	return nil
}

func (a *PersistenciaAdapter) CrearProgramacion(ctx context.Context, programacion *domain.Programacion) error {
	url := fmt.Sprintf("%s/programaciones", a.baseURL)
	resp, err := a.do(ctx, "persistencia.programacion.crear", http.MethodPost, url, programacion)
	if err != nil {
		return err
	}
	return a.decode("persistencia.programacion.crear", resp, nil)
}

func (a *PersistenciaAdapter) ObtenerProgramacion(ctx context.Context, programacionID uuid.UUID) (*domain.Programacion, error) {
	url := fmt.Sprintf("%s/programaciones/%s", a.baseURL, programacionID)
	resp, err := a.do(ctx, "persistencia.programacion.obtener", http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return nil, nil
	}

	var programacion domain.Programacion
	if err := a.decode("persistencia.programacion.obtener", resp, &programacion); err != nil {
		return nil, err
	}
	return &programacion, nil
}

func (a *PersistenciaAdapter) ListarProgramaciones(ctx context.Context, especialistaID, sucursalID uuid.UUID) ([]domain.Programacion, error) {
	url := fmt.Sprintf("%s/programaciones?especialista_id=%s&sucursal_id=%s", a.baseURL, especialistaID, sucursalID)
	resp, err := a.do(ctx, "persistencia.programaciones.listar", http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	var body struct {
		Programaciones []domain.Programacion `json:"programaciones"`
	}
	if err := a.decode("persistencia.programaciones.listar", resp, &body); err != nil {
		return nil, err
	}
	return body.Programaciones, nil
}

func (a *PersistenciaAdapter) ObtenerFecha(ctx context.Context, programacionID uuid.UUID, dia time.Time) (*domain.Fecha, error) {
	url := fmt.Sprintf("%s/programaciones/%s/fechas/%s", a.baseURL, programacionID, dia.Format("2006-01-02"))
	resp, err := a.do(ctx, "persistencia.fecha.obtener", http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return nil, nil
	}

	var fecha domain.Fecha
	if err := a.decode("persistencia.fecha.obtener", resp, &fecha); err != nil {
		return nil, err
	}
	return &fecha, nil
}

func (a *PersistenciaAdapter) ListarFechas(ctx context.Context, programacionID uuid.UUID) ([]domain.Fecha, error) {
	url := fmt.Sprintf("%s/programaciones/%s/fechas", a.baseURL, programacionID)
	resp, err := a.do(ctx, "persistencia.fechas.listar", http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	var body struct {
		Fechas []domain.Fecha `json:"fechas"`
	}
	if err := a.decode("persistencia.fechas.listar", resp, &body); err != nil {
		return nil, err
	}
	return body.Fechas, nil
}

func (a *PersistenciaAdapter) CrearFecha(ctx context.Context, fecha *domain.Fecha) error {
	url := fmt.Sprintf("%s/programaciones/%s/fechas", a.baseURL, fecha.ProgramacionID)
	resp, err := a.do(ctx, "persistencia.fecha.crear", http.MethodPost, url, fecha)
	if err != nil {
		return err
	}
	return a.decode("persistencia.fecha.crear", resp, nil)
}

func (a *PersistenciaAdapter) ActualizarFecha(ctx context.Context, fecha *domain.Fecha) error {
	url := fmt.Sprintf("%s/fechas/%s", a.baseURL, fecha.ID)
	resp, err := a.do(ctx, "persistencia.fecha.actualizar", http.MethodPut, url, fecha)
	if err != nil {
		return err
	}
	return a.decode("persistencia.fecha.actualizar", resp, nil)
}

func (a *PersistenciaAdapter) EliminarFecha(ctx context.Context, fechaID uuid.UUID) error {
	url := fmt.Sprintf("%s/fechas/%s", a.baseURL, fechaID)
	resp, err := a.do(ctx, "persistencia.fecha.eliminar", http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	return a.decode("persistencia.fecha.eliminar", resp, nil)
}

func (a *PersistenciaAdapter) CrearHorarios(ctx context.Context, fechaID uuid.UUID, horarios []domain.Horario) error {
	url := fmt.Sprintf("%s/fechas/%s/horarios", a.baseURL, fechaID)
	body := map[string]interface{}{"horarios": horarios}
	resp, err := a.do(ctx, "persistencia.horarios.crear", http.MethodPost, url, body)
	if err != nil {
		return err
	}
	return a.decode("persistencia.horarios.crear", resp, nil)
}

func (a *PersistenciaAdapter) ActualizarHorario(ctx context.Context, fechaID uuid.UUID, horario domain.Horario) error {
	url := fmt.Sprintf("%s/fechas/%s/horarios/%s", a.baseURL, fechaID, horario.ID)
	resp, err := a.do(ctx, "persistencia.horario.actualizar", http.MethodPut, url, horario)
	if err != nil {
		return err
	}
	return a.decode("persistencia.horario.actualizar", resp, nil)
}

func (a *PersistenciaAdapter) EliminarHorario(ctx context.Context, horarioID uuid.UUID) error {
	url := fmt.Sprintf("%s/horarios/%s", a.baseURL, horarioID)
	resp, err := a.do(ctx, "persistencia.horario.eliminar", http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	return a.decode("persistencia.horario.eliminar", resp, nil)
}
