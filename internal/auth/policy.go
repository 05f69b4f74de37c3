package auth

import "strings"

// Policy: predicados puros sobre las claims ya verificadas. No tocan
// red ni estado; la decisión de status HTTP vive en los middlewares.

// HasRequiredScopes informa si el token trae todos los scopes
// requeridos. Un scope cuenta si aparece en la claim "scope" (string
// separado por espacios) o en la lista "permissions" (RBAC del emisor).
// La comparación es exacta, sensible a mayúsculas. Sin requeridos, pasa.
func HasRequiredScopes(claims map[string]any, required []string) bool {
	if len(required) == 0 {
		return true
	}
	granted := make(map[string]bool)
	if s, ok := claims["scope"].(string); ok {
		for _, sc := range strings.Fields(s) {
			granted[sc] = true
		}
	}
	for _, p := range stringList(claims["permissions"]) {
		granted[p] = true
	}
	for _, want := range required {
		if !granted[want] {
			return false
		}
	}
	return true
}

// adminChecks son las estrategias de detección de admin, en orden.
// La primera que devuelve true decide. Tener la lista explícita deja
// claro qué forma de claim gana cuando un token trae varias.
var adminChecks = []func(map[string]any) bool{
	adminByPermissions,
	adminByRoleClaim,
	adminByNamespacedRoles,
}

// IsAdmin decide si el token pertenece a un admin. Tolera las distintas
// formas en que el emisor puede representar roles: permissions RBAC,
// claim roles/role, o una claim custom namespaced terminada en "/roles".
func IsAdmin(claims map[string]any) bool {
	if len(claims) == 0 {
		return false
	}
	for _, check := range adminChecks {
		if check(claims) {
			return true
		}
	}
	return false
}

// 1) RBAC: permissions con alguno de los permisos de borrado.
func adminByPermissions(claims map[string]any) bool {
	for _, p := range stringList(claims["permissions"]) {
		if p == "delete:trip" || p == "delete:investor" {
			return true
		}
	}
	return false
}

// 2) roles o role: string suelto o lista, case-insensitive. La claim
// "role" solo se consulta cuando "roles" no aportó valores.
func adminByRoleClaim(claims map[string]any) bool {
	roles := roleValues(claims["roles"])
	if len(roles) == 0 {
		roles = roleValues(claims["role"])
	}
	for _, r := range roles {
		if strings.EqualFold(r, "admin") {
			return true
		}
	}
	return false
}

// 3) claim custom namespaced, ej. "https://pf-zambom.app/roles".
func adminByNamespacedRoles(claims map[string]any) bool {
	for k, v := range claims {
		if !strings.HasSuffix(k, "/roles") {
			continue
		}
		for _, r := range stringList(v) {
			if strings.EqualFold(r, "admin") {
				return true
			}
		}
	}
	return false
}

// roleValues normaliza una claim de rol: string suelto o lista.
func roleValues(v any) []string {
	if s, ok := v.(string); ok {
		if s == "" {
			return nil
		}
		return []string{s}
	}
	return stringList(v)
}

// stringList extrae los strings de una claim lista. El decoder JSON
// entrega []any, pero los tests suelen armar []string directo.
func stringList(v any) []string {
	switch arr := v.(type) {
	case []string:
		return arr
	case []any:
		out := make([]string, 0, len(arr))
		for _, it := range arr {
			if s, ok := it.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
