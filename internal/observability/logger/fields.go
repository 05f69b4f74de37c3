package logger

import "go.uber.org/zap"

// Constructores de campos estándar para que los logs usen siempre
// las mismas keys y Grafana/Loki puedan indexarlas.

// ───────────── HTTP ─────────────

// RequestID crea un campo para el ID del request.
func RequestID(v string) zap.Field {
	return zap.String("request_id", v)
}

// Method crea un campo para el método HTTP.
func Method(v string) zap.Field {
	return zap.String("method", v)
}

// Path crea un campo para el path del request.
func Path(v string) zap.Field {
	return zap.String("path", v)
}

// Status crea un campo para el status code HTTP.
func Status(v int) zap.Field {
	return zap.Int("status", v)
}

// Bytes crea un campo para los bytes de respuesta.
func Bytes(v int) zap.Field {
	return zap.Int("bytes", v)
}

// DurationMs crea un campo para la duración en milisegundos.
func DurationMs(v int64) zap.Field {
	return zap.Int64("duration_ms", v)
}

// ClientIP crea un campo para la IP del cliente.
func ClientIP(v string) zap.Field {
	return zap.String("client_ip", v)
}

// ───────────── Auth ─────────────

// Kid crea un campo para el key ID de un token.
func Kid(v string) zap.Field {
	return zap.String("kid", v)
}

// Subject crea un campo para el sub del token.
func Subject(v string) zap.Field {
	return zap.String("sub", v)
}

// Scope crea un campo para un scope requerido.
func Scope(v string) zap.Field {
	return zap.String("scope", v)
}

// Reason crea un campo para la causa de un rechazo.
func Reason(v string) zap.Field {
	return zap.String("reason", v)
}

// JWKSURL crea un campo para la URL del key set.
func JWKSURL(v string) zap.Field {
	return zap.String("jwks_url", v)
}

// ───────────── Datos ─────────────

// DocID crea un campo para el ID de un documento.
func DocID(v string) zap.Field {
	return zap.String("doc_id", v)
}

// Count crea un campo para un conteo.
func Count(v int) zap.Field {
	return zap.Int("count", v)
}

// ───────────── Sistema ─────────────

// Component crea un campo para el componente/módulo.
func Component(v string) zap.Field {
	return zap.String("component", v)
}

// Op crea un campo para la operación actual.
func Op(v string) zap.Field {
	return zap.String("op", v)
}

// Err crea un campo para un error.
func Err(err error) zap.Field {
	return zap.Error(err)
}

// ───────────── Genéricos ─────────────

// String crea un campo string genérico.
func String(key, v string) zap.Field {
	return zap.String(key, v)
}

// Int crea un campo int genérico.
func Int(key string, v int) zap.Field {
	return zap.Int(key, v)
}

// Any crea un campo genérico para cualquier tipo.
func Any(key string, v any) zap.Field {
	return zap.Any(key, v)
}
