package middlewares

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// maxRequestIDLen corta IDs de cliente desmedidos antes de que lleguen
// a los logs.
const maxRequestIDLen = 64

// WithRequestID propaga el X-Request-ID del cliente o genera un UUID
// nuevo. El ID vuelve en el header de respuesta y queda en el contexto
// para que logging y los handlers lo usen.
func WithRequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rid := strings.TrimSpace(r.Header.Get("X-Request-ID"))
			if rid == "" || len(rid) > maxRequestIDLen {
				rid = uuid.NewString()
			}

			w.Header().Set("X-Request-ID", rid)

			ctx := setRequestID(r.Context(), rid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
