package template

import (
	"fmt"
	"strings"
	"time"
)

var (
	esWeekdays = [...]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}
	esMonths   = [...]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio",
		"agosto", "septiembre", "octubre", "noviembre", "diciembre"}
)

// FormatLongDate formats the calendar date of t in the locale's long form.
// Supported locales: "en" (default) and "es".
func FormatLongDate(t time.Time, locale string) string {
	switch lang(locale) {
	case "es":
		return fmt.Sprintf("%s, %d de %s de %d", esWeekdays[t.Weekday()], t.Day(), esMonths[t.Month()-1], t.Year())
	default:
		return t.Format("Monday, January 2, 2006")
	}
}

// FormatTime formats an "HH:MM" clock value for the locale. Unparseable input is returned unchanged.
func FormatTime(clock, locale string) string {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return clock
	}
	if lang(locale) == "en" {
		return t.Format("3:04 PM")
	}
	return t.Format("15:04")
}

// lang reduces "es-ES" or "es_MX" to "es".
func lang(locale string) string {
	l := strings.ToLower(strings.TrimSpace(locale))
	if i := strings.IndexAny(l, "-_"); i > 0 {
		l = l[:i]
	}
	if l == "" {
		return "en"
	}
	return l
}
