package export

import (
	"fmt"
	"strconv"
	"time"
)

type dateStyle int

const (
	dateWire    dateStyle = iota // RFC 3339, machine-facing outputs
	dateDisplay                  // dd.mm.yyyy, reader-facing outputs
)

// cell renders an arbitrary row value as text. Nil pointers become a dash
// so tabular outputs stay aligned.
func cell(v any, style dateStyle) string {
	switch val := v.(type) {
	case nil:
		return "-"
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case time.Time:
		return formatDate(val, style)
	case *time.Time:
		if val == nil {
			return "-"
		}
		return formatDate(*val, style)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func formatDate(t time.Time, style dateStyle) string {
	if style == dateDisplay {
		return t.UTC().Format("02.01.2006")
	}
	return t.UTC().Format(time.RFC3339)
}

// periodLabel renders a report window for title pages and metadata.
func periodLabel(from, to time.Time) string {
	return from.UTC().Format("02.01.2006") + " – " + to.UTC().Format("02.01.2006")
}
