// Package router arma el árbol de rutas de la API.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dropDatabas3/pf-zambom-back/internal/auth"
	healthctrl "github.com/dropDatabas3/pf-zambom-back/internal/http/controllers/health"
	investorsctrl "github.com/dropDatabas3/pf-zambom-back/internal/http/controllers/investors"
	tripsctrl "github.com/dropDatabas3/pf-zambom-back/internal/http/controllers/trips"
	mw "github.com/dropDatabas3/pf-zambom-back/internal/http/middlewares"
)

// Deps reúne todo lo que el router necesita. El wiring vive en main;
// acá solo se decide qué ruta lleva qué guard.
type Deps struct {
	Health    *healthctrl.Controller
	Investors *investorsctrl.Controller
	Trips     *tripsctrl.Controller

	// Verifier valida los Bearer tokens de las rutas protegidas.
	Verifier *auth.Verifier

	// Metrics expone GET /metrics. Opcional.
	Metrics http.Handler
}

// New construye el contrato público de la API:
//
//	GET  /            público (banner)
//	GET  /health      público (liveness)
//	GET  /ready       público (readiness)
//	GET  /investors   Bearer
//	POST /investors   Bearer
//	DEL  /investors/{id}  Bearer + admin
//	GET  /trips       Bearer
//	POST /trips       Bearer
//	DEL  /trips/{id}  Bearer + admin
func New(deps Deps) chi.Router {
	r := chi.NewRouter()

	// ===========================================================================
	// Rutas públicas
	// ===========================================================================
	r.Get("/", deps.Health.Index)
	r.Get("/health", deps.Health.Health)
	r.Get("/ready", deps.Health.Ready)
	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics)
	}

	requireAuth := mw.RequireAuth(deps.Verifier)
	requireAdmin := mw.RequireAdmin()

	// ===========================================================================
	// Colecciones protegidas
	// ===========================================================================
	r.Route("/investors", func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/", deps.Investors.List)
		r.Post("/", deps.Investors.Create)
		r.With(requireAdmin).Delete("/{id}", deps.Investors.Delete)
	})

	r.Route("/trips", func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/", deps.Trips.List)
		r.Post("/", deps.Trips.Create)
		r.With(requireAdmin).Delete("/{id}", deps.Trips.Delete)
	})

	return r
}
