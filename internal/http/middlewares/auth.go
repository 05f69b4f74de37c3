package middlewares

import (
	"net/http"
	"strings"

	"github.com/dropDatabas3/pf-zambom-back/internal/auth"
	httpx "github.com/dropDatabas3/pf-zambom-back/internal/http"
	"github.com/dropDatabas3/pf-zambom-back/internal/http/errors"
	"github.com/dropDatabas3/pf-zambom-back/internal/observability/logger"
)

// =================================================================================
// AUTHENTICATION MIDDLEWARES
// =================================================================================

// RequireAuth valida Authorization: Bearer <JWT> y guarda las claims en
// el contexto. Con scopes, además exige que el token los traiga todos.
// El handler protegido nunca corre si algo falla.
func RequireAuth(v *auth.Verifier, scopes ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, aerr := v.Verify(r.Context(), r.Header.Get("Authorization"))
			if aerr != nil {
				writeAuthError(w, r, aerr)
				return
			}

			if !auth.HasRequiredScopes(claims, scopes) {
				logger.From(r.Context()).Warn("scopes insuficientes",
					logger.Subject(ClaimString(claims, "sub")),
					logger.Scope(strings.Join(scopes, " ")),
					logger.Reason("insufficient_scope"),
				)
				httpx.RecordAuthFailure("insufficient_scope")
				errors.WriteError(w, errors.ErrForbidden.WithMessage("insufficient_scope"))
				return
			}

			// Inyectar claims en contexto
			ctx := WithClaims(r.Context(), claims)
			if sub := ClaimString(claims, "sub"); sub != "" {
				ctx = WithUserID(ctx, sub)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// writeAuthError mapea el error tipado del verifier al contrato HTTP:
// 500 cuando el backend de claves no responde, 401 para todo lo demás.
func writeAuthError(w http.ResponseWriter, r *http.Request, aerr *auth.Error) {
	log := logger.From(r.Context())
	httpx.RecordAuthFailure(string(aerr.Kind))

	if aerr.Unavailable() {
		log.Error("verificación sin key set", logger.Reason(string(aerr.Kind)), logger.Err(aerr))
		errors.WriteError(w, errors.ErrInternal.WithMessage(aerr.Message).WithCause(aerr))
		return
	}

	log.Warn("token rechazado", logger.Reason(string(aerr.Kind)))
	w.Header().Set("WWW-Authenticate",
		`Bearer realm="api", error="invalid_token", error_description="`+aerr.Message+`"`)
	errors.WriteError(w, errors.ErrUnauthorized.WithMessage(aerr.Message).WithCause(aerr))
}
