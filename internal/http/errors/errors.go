// Package errors define el error HTTP estándar de la API y su
// serialización. El contrato con el front es:
//
//	{"error": <código o texto>, "message": <detalle opcional>}
//
// Los fallos de auth usan códigos estables (unauthorized, forbidden,
// internal_server_error) con el detalle en "message"; los errores de
// validación CRUD mandan el texto pt-BR directo en "error", sin
// "message", porque así lo consume el front existente.
package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError es el error estándar de la capa HTTP.
type APIError struct {
	HTTPStatus int    `json:"-"`
	Code       string `json:"error"`
	Message    string `json:"message,omitempty"`
	Err        error  `json:"-"` // causa original, solo para logs
}

// Error implementa la interfaz error.
func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %s: %v", e.HTTPStatus, e.Code, e.Message, e.Err)
	}
	if e.Message != "" {
		return fmt.Sprintf("[%d] %s: %s", e.HTTPStatus, e.Code, e.Message)
	}
	return fmt.Sprintf("[%d] %s", e.HTTPStatus, e.Code)
}

// Unwrap permite acceder a la causa original.
func (e *APIError) Unwrap() error { return e.Err }

// WithMessage devuelve una COPIA con el detalle puesto, para no mutar
// las variables base del catálogo.
func (e *APIError) WithMessage(msg string) *APIError {
	ne := *e
	ne.Message = msg
	return &ne
}

// WithCause devuelve una COPIA conservando la causa para logs.
func (e *APIError) WithCause(err error) *APIError {
	ne := *e
	ne.Err = err
	return &ne
}

// =================================================================================
// CATÁLOGO BASE
// =================================================================================

var (
	// ErrUnauthorized cubre todos los rechazos de autenticación (401).
	ErrUnauthorized = &APIError{HTTPStatus: http.StatusUnauthorized, Code: "unauthorized"}

	// ErrForbidden cubre scopes insuficientes y falta de rol admin (403).
	ErrForbidden = &APIError{HTTPStatus: http.StatusForbidden, Code: "forbidden"}

	// ErrInternal cubre fallos del servicio, incluido JWKS caído (500).
	ErrInternal = &APIError{HTTPStatus: http.StatusInternalServerError, Code: "internal_server_error"}
)

// BadRequest arma un 400 de validación. El texto viaja en el campo
// "error" tal cual lo espera el front.
func BadRequest(text string) *APIError {
	return &APIError{HTTPStatus: http.StatusBadRequest, Code: text}
}

// NotFound arma un 404 con el texto en el campo "error".
func NotFound(text string) *APIError {
	return &APIError{HTTPStatus: http.StatusNotFound, Code: text}
}

// FromError convierte un error genérico en *APIError. Cualquier cosa
// que no sea APIError se responde como 500 conservando la causa.
func FromError(err error) *APIError {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr
	}
	return ErrInternal.WithCause(err)
}

// WriteError escribe la respuesta JSON del error con su status.
func WriteError(w http.ResponseWriter, err error) {
	apiErr := FromError(err)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(apiErr.HTTPStatus)
	_ = json.NewEncoder(w).Encode(apiErr)
}
