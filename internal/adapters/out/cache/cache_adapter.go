package cache

import (
	"context"
	"sync"

	"github.com/citamed/agenda-slots-service/internal/config"
	"github.com/citamed/agenda-slots-service/internal/core/domain"
	"github.com/citamed/agenda-slots-service/internal/core/ports/out"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

// CacheAdapter keeps the materialized Fechas of recently queried
// programaciones so the availability read path does not hit the persistence
// collaborator on every picker refresh. Lifecycle mutations and booking
// events invalidate entries through the port.
type CacheAdapter struct {
	fechas *lru.Cache[uuid.UUID, []domain.Fecha]
	mu     sync.RWMutex
	logger out.LoggerPort
}

func NewCacheAdapter(cfg *config.Config, logger out.LoggerPort) (*CacheAdapter, error) {
	if !cfg.Cache.Enabled {
		logger.Info("cache.disabled", out.LogFields{
			"message": "Cache is disabled",
		})
		return nil, nil
	}

	fechasCache, err := lru.New[uuid.UUID, []domain.Fecha](cfg.Cache.FechasSize)
	if err != nil {
		logger.Error("cache.fechas.init_failed", out.LogFields{
			"error": err.Error(),
			"size":  cfg.Cache.FechasSize,
		})
		return nil, err
	}

	return &CacheAdapter{
		fechas: fechasCache,
		logger: logger.WithModule("CacheAdapter"),
	}, nil
}

func (c *CacheAdapter) GetFechas(ctx context.Context, programacionID uuid.UUID) ([]domain.Fecha, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	fechas, exists := c.fechas.Get(programacionID)
	if !exists {
		c.logger.Debug("cache.fechas.miss", out.LogFields{
			"programacionId": programacionID,
		})
		return nil, false
	}

	c.logger.Debug("cache.fechas.hit", out.LogFields{
		"programacionId": programacionID,
		"fechasCount":    len(fechas),
	})
	return fechas, true
}

func (c *CacheAdapter) StoreFechas(ctx context.Context, programacionID uuid.UUID, fechas []domain.Fecha) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.fechas.Add(programacionID, fechas)
	c.logger.Debug("cache.fechas.store", out.LogFields{
		"programacionId": programacionID,
		"fechasCount":    len(fechas),
	})
}

func (c *CacheAdapter) InvalidateFechas(ctx context.Context, programacionID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.fechas.Remove(programacionID)
	c.logger.Debug("cache.fechas.invalidate", out.LogFields{
		"programacionId": programacionID,
	})
}
