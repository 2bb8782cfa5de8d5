package services

import (
	"testing"
	"time"
)

func TestNormalizeDisplay(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"plain", "Farmacia Central", "Farmacia Central"},
		{"trims", "  Farmacia Central  ", "Farmacia Central"},
		{"collapses internal runs", "Farmacia \t  Central", "Farmacia Central"},
		{"preserves accents and case", "  Línea  LÁCTEOS ", "Línea LÁCTEOS"},
		{"number", 42.5, "42.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeDisplay(tt.in); got != tt.want {
				t.Errorf("NormalizeDisplay(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeDisplay_Idempotent(t *testing.T) {
	in := "  Jugo  de   Naranja "
	once := NormalizeDisplay(in)
	if twice := NormalizeDisplay(once); twice != once {
		t.Errorf("not idempotent: %q != %q", twice, once)
	}
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"folds accents", "Línea LÁCTEOS", "linea lacteos"},
		{"equivalent variants collapse", "  lÁcteos ", "lacteos"},
		{"enye folds", "Ñandú", "nandu"},
		{"nil", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeKey(tt.in); got != tt.want {
				t.Errorf("NormalizeKey(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripDiacritics(t *testing.T) {
	if got := StripDiacritics("fábrica"); got != "fabrica" {
		t.Errorf("StripDiacritics(fábrica) = %q", got)
	}
	if got := StripDiacritics("PERÚ"); got != "PERU" {
		t.Errorf("StripDiacritics(PERÚ) = %q", got)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"float", 12.5, 12.5},
		{"int", 7, 7},
		{"numeric string", "19.90", 19.9},
		{"padded string", " 3 ", 3},
		{"malformed string", "abc", 0},
		{"empty string", "", 0},
		{"nil", nil, 0},
		{"bool", true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseAmount(tt.in); !floatClose(got, tt.want) {
				t.Errorf("ParseAmount(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseCount(t *testing.T) {
	if got := ParseCount(3.7); got != 3 {
		t.Errorf("ParseCount(3.7) = %d, want 3", got)
	}
	if got := ParseCount("12"); got != 12 {
		t.Errorf("ParseCount(12) = %d, want 12", got)
	}
}

func TestParseDate(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"iso with zone", "2025-03-09T00:00:00Z", "09-03-25"},
		{"iso without zone", "2025-03-09T00:00:00", "09-03-25"},
		{"bare date", "2025-03-09", "09-03-25"},
		{"short form", "09-03-25", "09-03-25"},
		{"malformed falls back to now", "not-a-date", "15-06-25"},
		{"nil falls back to now", nil, "15-06-25"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDateDDMMYY(ParseDate(tt.in, now)); got != tt.want {
				t.Errorf("ParseDate(%v) rendered %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
