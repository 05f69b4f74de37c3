package middlewares

import (
	"net/http"
	"runtime/debug"

	"github.com/dropDatabas3/pf-zambom-back/internal/http/errors"
	"github.com/dropDatabas3/pf-zambom-back/internal/observability/logger"
)

// WithRecover captura panics y devuelve un 500 en lugar de tirar el
// proceso. http.ErrAbortHandler se relanza: es la señal estándar de
// net/http para abortar la respuesta sin log.
func WithRecover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.From(r.Context()).Error("panic recovered",
					logger.Op("recover"),
					logger.Any("panic", rec),
					logger.String("stack", string(debug.Stack())),
				)
				errors.WriteError(w, errors.ErrInternal.WithMessage("panic recovered"))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
