package middlewares

import (
	"net/http"

	"github.com/dropDatabas3/pf-zambom-back/internal/auth"
	httpx "github.com/dropDatabas3/pf-zambom-back/internal/http"
	"github.com/dropDatabas3/pf-zambom-back/internal/http/errors"
	"github.com/dropDatabas3/pf-zambom-back/internal/observability/logger"
)

// =================================================================================
// ADMIN MIDDLEWARE
// =================================================================================

// RequireAdmin exige que las claims del contexto pertenezcan a un admin.
// Va siempre DESPUÉS de RequireAuth en la cadena; si no hay claims la
// ruta está mal armada y se responde 401.
func RequireAdmin() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cl := GetClaims(r.Context())
			if cl == nil {
				httpx.RecordAuthFailure("missing_claims")
				errors.WriteError(w, errors.ErrUnauthorized.WithMessage("Authorization header is expected."))
				return
			}

			if !auth.IsAdmin(cl) {
				logger.From(r.Context()).Warn("acceso admin denegado",
					logger.Subject(ClaimString(cl, "sub")),
					logger.Reason("not_admin"),
				)
				httpx.RecordAuthFailure("not_admin")
				errors.WriteError(w, errors.ErrForbidden.WithMessage("Admin role required"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
