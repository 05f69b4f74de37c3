package middlewares

import (
	"net/http"
	"strings"
)

// WithCORS maneja CORS para los orígenes permitidos. El contrato viene
// del front existente:
//
//   - La lista puede ser "*" (o "any"), que publica Allow-Origin "*".
//   - Con orígenes nombrados se refleja el Origin solo si matchea exacto.
//   - Métodos GET,POST,PUT,DELETE,OPTIONS; headers Authorization,
//     Content-Type, Accept e Idempotency-Key; preflight cacheado 1h.
//   - El preflight OPTIONS corta acá con 204, sin pasar por los guards.
func WithCORS(allowed []string) Middleware {
	trim := func(s string) string { return strings.TrimRight(strings.TrimSpace(s), "/") }

	wildcard := false
	alist := make([]string, 0, len(allowed))
	for _, v := range allowed {
		o := trim(v)
		if o == "*" || strings.EqualFold(o, "any") {
			wildcard = true
			continue
		}
		if o != "" {
			alist = append(alist, o)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := trim(r.Header.Get("Origin"))
			allowedOrigin := ""

			switch {
			case wildcard:
				allowedOrigin = "*"
			default:
				for _, a := range alist {
					if origin != "" && strings.EqualFold(origin, a) {
						allowedOrigin = origin
						break
					}
				}
			}

			// Ayuda a caches/proxies
			w.Header().Add("Vary", "Origin")

			if allowedOrigin != "" {
				h := w.Header()
				h.Set("Access-Control-Allow-Origin", allowedOrigin)
				h.Set("Access-Control-Allow-Credentials", "true")
				h.Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
				h.Set("Access-Control-Allow-Headers", "Authorization,Content-Type,Accept,Idempotency-Key")
				h.Set("Access-Control-Max-Age", "3600")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
