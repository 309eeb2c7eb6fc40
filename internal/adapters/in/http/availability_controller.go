package http

import (
	"net/http"

	"github.com/citamed/agenda-slots-service/internal/config"
	"github.com/citamed/agenda-slots-service/internal/core/json_types"
	"github.com/citamed/agenda-slots-service/internal/core/ports/in"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AvailabilityController exposes the two-stage selection read path used by
// booking clients, plus the administrative date listing.
type AvailabilityController struct {
	useCase in.AvailabilityUseCase
	cfg     *config.Config
}

func NewAvailabilityController(useCase in.AvailabilityUseCase, cfg *config.Config) *AvailabilityController {
	return &AvailabilityController{
		useCase: useCase,
		cfg:     cfg,
	}
}

func (c *AvailabilityController) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	api.Use(basicAuth(c.cfg))
	{
		api.GET("/disponibilidad/fechas", c.listarFechasAbiertas)
		api.GET("/disponibilidad/horarios", c.listarHorariosAbiertos)
		api.GET("/programaciones/:programacionId/fechas", c.listarFechas)
	}
}

func parsePareja(ctx *gin.Context) (especialistaID, sucursalID uuid.UUID, ok bool) {
	especialistaID, err := uuid.Parse(ctx.Query("especialista_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid especialista_id"})
		return uuid.Nil, uuid.Nil, false
	}

	sucursalID, err = uuid.Parse(ctx.Query("sucursal_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sucursal_id"})
		return uuid.Nil, uuid.Nil, false
	}

	return especialistaID, sucursalID, true
}

func (c *AvailabilityController) listarFechasAbiertas(ctx *gin.Context) {
	especialistaID, sucursalID, ok := parsePareja(ctx)
	if !ok {
		return
	}

	fechas, err := c.useCase.ListarFechasAbiertas(ctx.Request.Context(), especialistaID, sucursalID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"fechas": fechas})
}

func (c *AvailabilityController) listarHorariosAbiertos(ctx *gin.Context) {
	especialistaID, sucursalID, ok := parsePareja(ctx)
	if !ok {
		return
	}

	fecha, err := json_types.ParseFecha(ctx.Query("fecha"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fecha, expected 2006-01-02"})
		return
	}

	horas, err := c.useCase.ListarHorariosAbiertos(ctx.Request.Context(), especialistaID, sucursalID, fecha.Date)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"fecha":    fecha,
		"horarios": horas,
	})
}

func (c *AvailabilityController) listarFechas(ctx *gin.Context) {
	programacionID, err := uuid.Parse(ctx.Param("programacionId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid programacion ID format"})
		return
	}

	fechas, err := c.useCase.ListarFechas(ctx.Request.Context(), programacionID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"fechas": fechas})
}
