// file: internals/features/dimensional/data_entry/service/coerce.go
package service

import (
	"fmt"
	"strconv"
	"strings"
)

/* =========================================================
 * KOERSI NILAI MENTAH → NILAI BERTIPE
 * Default-nya disengaja dan terdokumentasi: angka rusak → 0,
 * reference rusak → NULL. Dua-duanya di-assert di test.
 * ========================================================= */

func coerceString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// coerceNumber: parse ke float64, gagal → 0.
func coerceNumber(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return f
		}
		return 0
	default:
		return 0
	}
}

// coerceBool: truthiness — bool apa adanya, angka ≠ 0, string
// "true"/"false" diparse dan string non-kosong lain dianggap true.
func coerceBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	case int:
		return t != 0
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(t)); err == nil {
			return b
		}
		return strings.TrimSpace(t) != ""
	default:
		return v != nil
	}
}

// coerceReference: parse ke id integer, gagal → nil (NULL di DB).
func coerceReference(v any) *int {
	switch t := v.(type) {
	case float64:
		n := int(t)
		return &n
	case int:
		n := t
		return &n
	case int64:
		n := int(t)
		return &n
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
			return &n
		}
		return nil
	default:
		return nil
	}
}
