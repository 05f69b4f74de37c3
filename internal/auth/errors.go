// Package auth verifica access tokens RS256 emitidos por el tenant
// configurado: descarga y cachea el JWKS publicado, valida
// firma/audience/issuer y decide autorización por scopes o rol admin.
package auth

import "fmt"

// Kind clasifica el fallo de autenticación. El middleware lo usa para
// elegir el status HTTP y para el label de métricas.
type Kind string

const (
	MissingHeader       Kind = "missing_header"
	MalformedScheme     Kind = "malformed_scheme"
	MissingToken        Kind = "missing_token"
	ExtraTokenParts     Kind = "extra_token_parts"
	MalformedToken      Kind = "malformed_token"
	KeyStoreUnavailable Kind = "keystore_unavailable"
	UnknownSigningKey   Kind = "unknown_signing_key"
	TokenExpired        Kind = "token_expired"
	InvalidToken        Kind = "invalid_token"
)

// Error es el error tipado que produce el Verifier. Message es el texto
// estable que ve el cliente; Err conserva la causa solo para logs.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implementa la interfaz error.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("auth: %s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("auth: %s: %s", e.Kind, e.Message)
}

// Unwrap permite inspeccionar la causa con errors.Is/As.
func (e *Error) Unwrap() error { return e.Err }

// Unavailable indica que el fallo es del backend de claves y no del
// token del cliente. El middleware responde 500 en vez de 401.
func (e *Error) Unavailable() bool { return e.Kind == KeyStoreUnavailable }

func newError(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, Err: cause}
}
