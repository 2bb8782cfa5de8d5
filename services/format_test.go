package services

import "testing"

func TestFormatPEN_Values(t *testing.T) {
	tests := []struct {
		name   string
		input  float64
		expect string
	}{
		{"zero", 0, "S/ 0.00"},
		{"small", 123.45, "S/ 123.45"},
		{"thousands", 1234.5, "S/ 1,234.50"},
		{"millions", 1234567.89, "S/ 1,234,567.89"},
		{"exact thousand", 1000, "S/ 1,000.00"},
		{"negative", -1234.5, "-S/ 1,234.50"},
		{"rounds to 2 decimals", 9.999, "S/ 10.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPEN(tt.input); got != tt.expect {
				t.Errorf("FormatPEN(%v) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestApplyThousandsGrouping(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1", "1"},
		{"123", "123"},
		{"1234", "1,234"},
		{"123456", "123,456"},
		{"1234567", "1,234,567"},
	}
	for _, tt := range tests {
		if got := applyThousandsGrouping(tt.in); got != tt.want {
			t.Errorf("applyThousandsGrouping(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
