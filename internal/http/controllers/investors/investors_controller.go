// Package investors contiene el controller de /investors.
package investors

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	dto "github.com/dropDatabas3/pf-zambom-back/internal/http/dto/investors"
	httperrors "github.com/dropDatabas3/pf-zambom-back/internal/http/errors"
	"github.com/dropDatabas3/pf-zambom-back/internal/http/helpers"
	svc "github.com/dropDatabas3/pf-zambom-back/internal/http/services/investors"
	"github.com/dropDatabas3/pf-zambom-back/internal/store/core"
)

// Controller traduce HTTP ↔ service para investors.
type Controller struct {
	service svc.Service
}

// NewController crea el controller de investors.
func NewController(service svc.Service) *Controller {
	return &Controller{service: service}
}

// List maneja GET /investors.
func (c *Controller) List(w http.ResponseWriter, r *http.Request) {
	items, err := c.service.List(r.Context())
	if err != nil {
		httperrors.WriteError(w, err)
		return
	}
	if items == nil {
		// el front espera lista, nunca null
		items = []core.Investor{}
	}
	helpers.WriteJSON(w, http.StatusOK, items)
}

// Create maneja POST /investors.
func (c *Controller) Create(w http.ResponseWriter, r *http.Request) {
	inv, msg := dto.ParseCreate(helpers.ReadBody(r))
	if msg != "" {
		httperrors.WriteError(w, httperrors.BadRequest(msg))
		return
	}
	if err := c.service.Create(r.Context(), inv); err != nil {
		httperrors.WriteError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, inv)
}

// Delete maneja DELETE /investors/{id}. El guard de admin ya corrió;
// acá solo se traduce el resultado del repo al contrato.
func (c *Controller) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	err := c.service.Delete(r.Context(), id)
	switch {
	case errors.Is(err, core.ErrInvalidID):
		httperrors.WriteError(w, httperrors.BadRequest("ID inválido"))
	case errors.Is(err, core.ErrNotFound):
		httperrors.WriteError(w, httperrors.NotFound("Investidor não encontrado"))
	case err != nil:
		httperrors.WriteError(w, err)
	default:
		helpers.WriteJSON(w, http.StatusOK, map[string]string{"message": "Investidor removido"})
	}
}
