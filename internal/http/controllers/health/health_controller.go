// Package health contiene el controller de health checks y el index.
package health

import (
	"net/http"

	"github.com/dropDatabas3/pf-zambom-back/internal/http/helpers"
	svc "github.com/dropDatabas3/pf-zambom-back/internal/http/services/health"
)

// Controller maneja /, /health y /ready.
type Controller struct {
	service svc.Service
}

// NewController crea el controller de health.
func NewController(service svc.Service) *Controller {
	return &Controller{service: service}
}

// Index maneja GET /, el ping público de la API.
func (c *Controller) Index(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, map[string]string{"message": "API PF-Zambom funcionando"})
}

// Health maneja GET /health (liveness).
func (c *Controller) Health(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, c.service.Health())
}

// Ready maneja GET /ready (readiness). 503 si el storage no responde.
func (c *Controller) Ready(w http.ResponseWriter, r *http.Request) {
	if c.service.Ready(r.Context()) {
		helpers.WriteJSON(w, http.StatusOK, map[string]bool{"ready": true})
		return
	}
	helpers.WriteJSON(w, http.StatusServiceUnavailable, map[string]bool{"ready": false})
}
