// Package format renders currency and dates in pt-BR, matching the
// conventions used by the report and the views.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var monthNames = []string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// Currency formats a value as Brazilian reais: 1234.5 -> "R$ 1.234,50".
func Currency(value float64) string {
	negative := value < 0
	abs := math.Abs(value)

	s := strconv.FormatFloat(abs, 'f', 2, 64)
	intPart, decPart, _ := strings.Cut(s, ".")

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(digit)
	}

	out := "R$ " + grouped.String() + "," + decPart
	if negative {
		out = "-" + out
	}
	return out
}

// Date converts a YYYY-MM-DD date to DD/MM/YYYY. Malformed input is
// returned unchanged.
func Date(date string) string {
	parts := strings.SplitN(date, "-", 3)
	if len(parts) != 3 {
		return date
	}
	return fmt.Sprintf("%s/%s/%s", parts[2], parts[1], parts[0])
}

// MonthName renders a month the way the calendar header shows it:
// "maio de 2024".
func MonthName(t time.Time) string {
	return fmt.Sprintf("%s de %d", monthNames[t.Month()-1], t.Year())
}
