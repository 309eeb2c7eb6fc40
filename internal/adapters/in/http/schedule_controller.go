package http

import (
	"net/http"

	"github.com/citamed/agenda-slots-service/internal/config"
	"github.com/citamed/agenda-slots-service/internal/core/domain"
	"github.com/citamed/agenda-slots-service/internal/core/json_types"
	"github.com/citamed/agenda-slots-service/internal/core/ports/in"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ScheduleController struct {
	useCase in.ScheduleUseCase
	cfg     *config.Config
}

func NewScheduleController(useCase in.ScheduleUseCase, cfg *config.Config) *ScheduleController {
	return &ScheduleController{
		useCase: useCase,
		cfg:     cfg,
	}
}

func (c *ScheduleController) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	api.Use(basicAuth(c.cfg))
	{
		api.POST("/programaciones", c.crearProgramacion)
		api.POST("/programaciones/:programacionId/fechas", c.agregarFecha)
		api.POST("/programaciones/:programacionId/fechas/:fecha/aperturar", c.abrirFecha)
		api.POST("/programaciones/:programacionId/fechas/:fecha/horarios", c.abrirHorarios)
		api.PUT("/programaciones/:programacionId/fechas/:fecha", c.editarFecha)
		api.DELETE("/programaciones/:programacionId/fechas/:fecha", c.eliminarFecha)
		api.PUT("/programaciones/:programacionId/horarios/:horarioId", c.editarHorario)
		api.DELETE("/programaciones/:programacionId/horarios/:horarioId", c.eliminarHorario)
		api.PUT("/programaciones/:programacionId/horarios/:horarioId/estatus", c.marcarHorario)
	}
}

type AbrirHorariosRequest struct {
	Horas []string `json:"horas" binding:"required,min=1"`
}

type EditarFechaRequest struct {
	Fecha string   `json:"fecha" binding:"required"`
	Horas []string `json:"horas" binding:"required"`
}

type AgregarFechaRequest struct {
	Fecha string   `json:"fecha" binding:"required"`
	Horas []string `json:"horas" binding:"required,min=1"`
}

type EditarHorarioRequest struct {
	Hora string `json:"hora" binding:"required"`
}

type MarcarHorarioRequest struct {
	Estatus string `json:"estatus" binding:"required"`
}

func parseProgramacionID(ctx *gin.Context) (uuid.UUID, bool) {
	programacionID, err := uuid.Parse(ctx.Param("programacionId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid programacion ID format"})
		return uuid.Nil, false
	}
	return programacionID, true
}

func parseFechaParam(ctx *gin.Context) (json_types.Date, bool) {
	fecha, err := json_types.ParseFecha(ctx.Param("fecha"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected 2006-01-02"})
		return json_types.Date{}, false
	}
	return fecha, true
}

func parseHoras(ctx *gin.Context, raw []string) ([]json_types.TimeOfDay, bool) {
	horas := make([]json_types.TimeOfDay, 0, len(raw))
	for _, str := range raw {
		hora, err := json_types.ParseHora(str)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid time format, expected 15:04: " + str})
			return nil, false
		}
		horas = append(horas, hora)
	}
	return horas, true
}

func (c *ScheduleController) crearProgramacion(ctx *gin.Context) {
	var definicion domain.DefinicionProgramacion
	if err := ctx.ShouldBindJSON(&definicion); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	programacion, slotsCreados, err := c.useCase.CrearProgramacion(ctx.Request.Context(), definicion)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"programacion":  programacion,
		"slots_creados": slotsCreados,
	})
}

func (c *ScheduleController) abrirFecha(ctx *gin.Context) {
	programacionID, ok := parseProgramacionID(ctx)
	if !ok {
		return
	}
	fecha, ok := parseFechaParam(ctx)
	if !ok {
		return
	}

	abierta, err := c.useCase.AbrirFecha(ctx.Request.Context(), programacionID, fecha.Date)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"fecha": abierta})
}

func (c *ScheduleController) abrirHorarios(ctx *gin.Context) {
	programacionID, ok := parseProgramacionID(ctx)
	if !ok {
		return
	}
	fecha, ok := parseFechaParam(ctx)
	if !ok {
		return
	}

	var req AbrirHorariosRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	horas, ok := parseHoras(ctx, req.Horas)
	if !ok {
		return
	}

	resultados, err := c.useCase.AbrirHorariosLote(ctx.Request.Context(), programacionID, fecha.Date, horas)
	if err != nil {
		respondError(ctx, err)
		return
	}

	creados := 0
	for _, resultado := range resultados {
		if resultado.Creado {
			creados++
		}
	}

	ctx.JSON(http.StatusOK, gin.H{
		"creados":    creados,
		"resultados": resultados,
	})
}

func (c *ScheduleController) editarFecha(ctx *gin.Context) {
	programacionID, ok := parseProgramacionID(ctx)
	if !ok {
		return
	}
	fechaAnterior, ok := parseFechaParam(ctx)
	if !ok {
		return
	}

	var req EditarFechaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fechaNueva, err := json_types.ParseFecha(req.Fecha)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected 2006-01-02"})
		return
	}

	horas, ok := parseHoras(ctx, req.Horas)
	if !ok {
		return
	}

	fecha, err := c.useCase.EditarFecha(ctx.Request.Context(), programacionID, fechaAnterior.Date, fechaNueva.Date, horas)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"fecha": fecha})
}

func (c *ScheduleController) eliminarFecha(ctx *gin.Context) {
	programacionID, ok := parseProgramacionID(ctx)
	if !ok {
		return
	}
	fecha, ok := parseFechaParam(ctx)
	if !ok {
		return
	}

	forzar := ctx.Query("forzar") == "true"

	if err := c.useCase.EliminarFecha(ctx.Request.Context(), programacionID, fecha.Date, forzar); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *ScheduleController) agregarFecha(ctx *gin.Context) {
	programacionID, ok := parseProgramacionID(ctx)
	if !ok {
		return
	}

	var req AgregarFechaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fecha, err := json_types.ParseFecha(req.Fecha)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected 2006-01-02"})
		return
	}

	horas, ok := parseHoras(ctx, req.Horas)
	if !ok {
		return
	}

	agregada, err := c.useCase.AgregarFecha(ctx.Request.Context(), programacionID, fecha.Date, horas)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"fecha": agregada})
}

func (c *ScheduleController) editarHorario(ctx *gin.Context) {
	programacionID, ok := parseProgramacionID(ctx)
	if !ok {
		return
	}
	horarioID, err := uuid.Parse(ctx.Param("horarioId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid horario ID format"})
		return
	}

	var req EditarHorarioRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hora, err := json_types.ParseHora(req.Hora)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid time format, expected 15:04"})
		return
	}

	if err := c.useCase.EditarHorario(ctx.Request.Context(), programacionID, horarioID, hora); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *ScheduleController) eliminarHorario(ctx *gin.Context) {
	programacionID, ok := parseProgramacionID(ctx)
	if !ok {
		return
	}
	horarioID, err := uuid.Parse(ctx.Param("horarioId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid horario ID format"})
		return
	}

	if err := c.useCase.EliminarHorario(ctx.Request.Context(), programacionID, horarioID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *ScheduleController) marcarHorario(ctx *gin.Context) {
	programacionID, ok := parseProgramacionID(ctx)
	if !ok {
		return
	}
	horarioID, err := uuid.Parse(ctx.Param("horarioId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid horario ID format"})
		return
	}

	var req MarcarHorarioRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err = c.useCase.MarcarHorario(ctx.Request.Context(), programacionID, horarioID, domain.HorarioEstatus(req.Estatus))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
