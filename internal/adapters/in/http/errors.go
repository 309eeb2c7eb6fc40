package http

import (
	"errors"
	"net/http"

	"github.com/citamed/agenda-slots-service/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// respondError maps the domain error taxonomy onto HTTP statuses. Validation
// failures always carry the full list so clients can render every problem in
// one pass.
func respondError(ctx *gin.Context, err error) {
	var validacion *domain.ErrorValidacion
	if errors.As(err, &validacion) {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errores": validacion.Fallas})
		return
	}

	var noEncontrado *domain.NoEncontradoError
	if errors.As(err, &noEncontrado) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": noEncontrado.Error()})
		return
	}

	var duplicada *domain.HoraDuplicadaError
	if errors.As(err, &duplicada) {
		ctx.JSON(http.StatusConflict, gin.H{"error": duplicada.Error()})
		return
	}

	var fueraDeRango *domain.FueraDeRangoError
	if errors.As(err, &fueraDeRango) {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": fueraDeRango.Error()})
		return
	}

	var conReservas *domain.FechaConReservasError
	if errors.As(err, &conReservas) {
		ctx.JSON(http.StatusConflict, gin.H{"error": conReservas.Error()})
		return
	}

	var transporte *domain.TransporteError
	if errors.As(err, &transporte) {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": transporte.Error()})
		return
	}

	if errors.Is(err, domain.ErrRangoInvalido) {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
