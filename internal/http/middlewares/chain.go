package middlewares

import "net/http"

// Middleware es un decorador de http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain arma la cebolla del servicio: Chain(h, A, B, C) ejecuta
// A -> B -> C -> h, o sea el primero de la lista es el más externo
// (en main: logging primero, CORS pegado al router).
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
