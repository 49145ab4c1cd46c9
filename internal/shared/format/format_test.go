package format

import (
	"testing"
	"time"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "R$ 0,00"},
		{5, "R$ 5,00"},
		{1234.5, "R$ 1.234,50"},
		{1234567.89, "R$ 1.234.567,89"},
		{-50, "-R$ 50,00"},
		{999.999, "R$ 1.000,00"}, // rounded to cents
	}

	for _, tt := range tests {
		if got := Currency(tt.value); got != tt.want {
			t.Errorf("Currency(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestDate(t *testing.T) {
	if got := Date("2024-05-01"); got != "01/05/2024" {
		t.Errorf("Date() = %q, want 01/05/2024", got)
	}
	if got := Date("2024"); got != "2024" {
		t.Errorf("Date(partial) = %q, want unchanged", got)
	}
}

func TestMonthName(t *testing.T) {
	d := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	if got := MonthName(d); got != "maio de 2024" {
		t.Errorf("MonthName() = %q, want %q", got, "maio de 2024")
	}
}
