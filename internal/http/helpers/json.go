// Package helpers reúne utilidades compartidas por los controllers.
package helpers

import (
	"encoding/json"
	"io"
	"net/http"
)

// ReadBody decodifica el body JSON en un mapa genérico. Tolerante a
// propósito: body ausente, ilegible o que no sea un objeto JSON termina
// en mapa vacío, y la validación de campos obligatorios decide después.
// Limita la lectura a 1MB.
func ReadBody(r *http.Request) map[string]any {
	if r.Body == nil {
		return map[string]any{}
	}
	defer r.Body.Close()

	b, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		return map[string]any{}
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil || m == nil {
		return map[string]any{}
	}
	return m
}

// WriteJSON escribe una respuesta JSON estándar.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
