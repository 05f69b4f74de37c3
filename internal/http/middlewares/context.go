package middlewares

import "context"

type ctxKey string

const (
	// ctxClaimsKey guarda las claims JWT verificadas
	ctxClaimsKey ctxKey = "claims"
	// ctxUserIDKey guarda el sub extraído del token
	ctxUserIDKey ctxKey = "user_id"
	// ctxRequestIDKey guarda el request ID
	ctxRequestIDKey ctxKey = "request_id"
)

// WithClaims inyecta las claims verificadas en el contexto.
func WithClaims(ctx context.Context, claims map[string]any) context.Context {
	return context.WithValue(ctx, ctxClaimsKey, claims)
}

// WithUserID inyecta el user ID en el contexto.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ctxUserIDKey, userID)
}

func setRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxRequestIDKey, requestID)
}

// GetClaims obtiene las claims del contexto. Retorna nil si la ruta no
// pasó por RequireAuth.
func GetClaims(ctx context.Context) map[string]any {
	m, _ := ctx.Value(ctxClaimsKey).(map[string]any)
	return m
}

// GetUserID obtiene el user ID del contexto, o "".
func GetUserID(ctx context.Context) string {
	s, _ := ctx.Value(ctxUserIDKey).(string)
	return s
}

// GetRequestID obtiene el request ID del contexto, o "".
func GetRequestID(ctx context.Context) string {
	s, _ := ctx.Value(ctxRequestIDKey).(string)
	return s
}

// ClaimString extrae un string de las claims.
func ClaimString(claims map[string]any, key string) string {
	s, _ := claims[key].(string)
	return s
}
