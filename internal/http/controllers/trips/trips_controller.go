// Package trips contiene el controller de /trips.
package trips

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	dto "github.com/dropDatabas3/pf-zambom-back/internal/http/dto/trips"
	httperrors "github.com/dropDatabas3/pf-zambom-back/internal/http/errors"
	"github.com/dropDatabas3/pf-zambom-back/internal/http/helpers"
	svc "github.com/dropDatabas3/pf-zambom-back/internal/http/services/trips"
	"github.com/dropDatabas3/pf-zambom-back/internal/store/core"
)

// Controller traduce HTTP ↔ service para trips.
type Controller struct {
	service svc.Service
}

// NewController crea el controller de trips.
func NewController(service svc.Service) *Controller {
	return &Controller{service: service}
}

// List maneja GET /trips.
func (c *Controller) List(w http.ResponseWriter, r *http.Request) {
	items, err := c.service.List(r.Context())
	if err != nil {
		httperrors.WriteError(w, err)
		return
	}
	if items == nil {
		items = []core.Trip{}
	}
	helpers.WriteJSON(w, http.StatusOK, items)
}

// Create maneja POST /trips.
func (c *Controller) Create(w http.ResponseWriter, r *http.Request) {
	t, msg := dto.ParseCreate(helpers.ReadBody(r))
	if msg != "" {
		httperrors.WriteError(w, httperrors.BadRequest(msg))
		return
	}
	if err := c.service.Create(r.Context(), t); err != nil {
		httperrors.WriteError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, t)
}

// Delete maneja DELETE /trips/{id}.
func (c *Controller) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	err := c.service.Delete(r.Context(), id)
	switch {
	case errors.Is(err, core.ErrInvalidID):
		httperrors.WriteError(w, httperrors.BadRequest("ID inválido"))
	case errors.Is(err, core.ErrNotFound):
		httperrors.WriteError(w, httperrors.NotFound("Viagem não encontrada"))
	case err != nil:
		httperrors.WriteError(w, err)
	default:
		helpers.WriteJSON(w, http.StatusOK, map[string]string{"message": "Viagem removida"})
	}
}
