// Package health arma las respuestas de /health y /ready.
package health

import (
	"context"

	"github.com/dropDatabas3/pf-zambom-back/internal/observability/logger"
)

// ServiceName viaja en el body de /health para que el balanceador y los
// dashboards identifiquen la API.
const ServiceName = "pf-zambom-back"

// Service define los checks de salud del servicio.
type Service interface {
	// Health es el liveness: estático, no toca dependencias.
	Health() map[string]string
	// Ready es el readiness: true solo si el storage responde.
	Ready(ctx context.Context) bool
}

// Deps son los chequeos inyectables. RedisCheck puede ser nil cuando la
// cache es en memoria.
type Deps struct {
	DBCheck    func(ctx context.Context) error
	RedisCheck func(ctx context.Context) error
}

type service struct {
	deps Deps
}

// NewService crea el service de health checks.
func NewService(deps Deps) Service {
	return &service{deps: deps}
}

func (s *service) Health() map[string]string {
	return map[string]string{"status": "ok", "service": ServiceName}
}

func (s *service) Ready(ctx context.Context) bool {
	log := logger.From(ctx).With(logger.Component("health"), logger.Op("Ready"))

	if s.deps.DBCheck != nil {
		if err := s.deps.DBCheck(ctx); err != nil {
			log.Error("storage no responde", logger.Err(err))
			return false
		}
	}
	// Redis caído degrada (cache JWKS y rate limit) pero la API sigue
	// operativa, así que no voltea el readiness.
	if s.deps.RedisCheck != nil {
		if err := s.deps.RedisCheck(ctx); err != nil {
			log.Warn("redis no responde", logger.Err(err))
		}
	}
	return true
}
