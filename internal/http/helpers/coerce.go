package helpers

import (
	"strconv"
	"strings"
	"time"
)

// Truthy decide si un valor JSON "vino": nil, string vacío, cero,
// false y colecciones vacías cuentan como ausentes. Es la regla con la
// que el front arma sus bodies, así que la validación la respeta.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	case float64:
		return x != 0
	case []any:
		return len(x) > 0
	case map[string]any:
		return len(x) > 0
	default:
		return true
	}
}

// PickTruthy devuelve el primer valor truthy entre las claves, en
// orden. Los alias del contrato (name|nome, preco|price) se resuelven
// con esto.
func PickTruthy(m map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := m[k]; ok && Truthy(v) {
			return v
		}
	}
	return nil
}

// ToFloat acepta números JSON o strings numéricos ("10.5").
func ToFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// isoLayouts cubre fecha sola, timestamp naive (separador T o espacio)
// y timestamp con offset. Go tolera fracciones de segundo aunque el
// layout no las declare.
var isoLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseISODate convierte un string ISO-8601 en time.Time. Los
// timestamps sin zona se interpretan como UTC. Cualquier otro tipo o
// formato falla.
func ParseISODate(v any) (time.Time, bool) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, false
	}
	s = strings.TrimSpace(s)
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
